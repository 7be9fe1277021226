package core

import "fmt"

// LoopOutcome is what a tick step reports back to the scheduler.
type LoopOutcome struct {
	exit bool
	code int
}

// Continue lets the loop carry on.
var Continue = LoopOutcome{}

// Exit ends the loop and asks the caller to terminate with code.
func Exit(code int) LoopOutcome {
	return LoopOutcome{exit: true, code: code}
}

func (o LoopOutcome) IsExit() bool {
	return o.exit
}

// Code is the requested exit code. It is zero for Continue.
func (o LoopOutcome) Code() int {
	return o.code
}

func (o LoopOutcome) String() string {
	if o.exit {
		return fmt.Sprintf("Exit(%d)", o.code)
	}
	return "Continue"
}
