package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateHostAddress(t *testing.T) {
	valid := []string{
		"esxi1.example.com",
		"esxi1",
		"192.168.1.100",
		"esxi1.example.com:443",
		"192.168.1.100:8443",
	}
	for _, addr := range valid {
		assert.NoError(t, ValidateHostAddress(addr), addr)
	}

	invalid := []string{
		"",
		"https://esxi1.example.com",
		"esxi1.example.com:0",
		"esxi1.example.com:99999",
		"esxi1.example.com:https",
		"-esxi1",
	}
	for _, addr := range invalid {
		assert.Error(t, ValidateHostAddress(addr), addr)
	}
}
