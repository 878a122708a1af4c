package vcenter

import "fmt"

// Step names the registration phase a failure came from.
type Step string

const (
	StepLogin      Step = "login"
	StepDatacenter Step = "datacenter"
	StepFolder     Step = "folder"
	StepAddHost    Step = "add-host"
)

// RegistrationError is the single error kind the registration flow produces.
// Every failure mode (connection failure, HTTP error status, malformed JSON,
// not-found lookup) is normalized into it with a message naming the server,
// datacenter, or host involved.
type RegistrationError struct {
	Step    Step
	Message string
	Err     error
}

func (e *RegistrationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err)
	}
	return e.Message
}

func (e *RegistrationError) Unwrap() error { return e.Err }

func registrationErr(step Step, cause error, format string, args ...interface{}) *RegistrationError {
	return &RegistrationError{
		Step:    step,
		Message: fmt.Sprintf(format, args...),
		Err:     cause,
	}
}
