package engine

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/cekidot/engine/core"
)

// Decision tells the World what to do with a per-tick failure.
type Decision struct {
	Abort bool
	Code  int
}

// ErrorPolicy decides how the World reacts to an operational failure in
// stage (update, render, resize).
type ErrorPolicy func(stage string, err error) Decision

// AbortOnError stops the World with code on the first failure.
func AbortOnError(code int) ErrorPolicy {
	return func(stage string, err error) Decision {
		core.LogError("%s failed, shutting down: %s", stage, err)
		return Decision{Abort: true, Code: code}
	}
}

// LogAndContinue logs the failure and keeps the loop running.
func LogAndContinue() ErrorPolicy {
	return func(stage string, err error) Decision {
		core.LogError("%s failed, continuing: %s", stage, err)
		return Decision{}
	}
}

// PolicyFromName maps a config value to a policy. "abort" (or empty) stops
// with exit code 1.
func PolicyFromName(name string) (ErrorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "abort":
		return AbortOnError(1), nil
	case "continue":
		return LogAndContinue(), nil
	default:
		return nil, fmt.Errorf("unknown error policy %q", name)
	}
}
