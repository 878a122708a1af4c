package main

import (
	"os"

	"github.com/r11/vcenter-registrar/pkg/cli"
	"github.com/r11/vcenter-registrar/pkg/logger"
)

func main() {
	logger.Init()

	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
