package location

import (
	"fmt"

	"planet-distance/locale"
)

// ValidationError reports manual coordinates that are not two numbers.
type ValidationError struct {
	Input string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s (input %q)", e.Message(), e.Input)
}

// Message returns the locale key shown to the user.
func (e *ValidationError) Message() string { return locale.MsgEnterValidCoordinates }

// PermissionOrUnavailableError reports a device location request that was
// denied or failed.
type PermissionOrUnavailableError struct {
	Err error
}

func (e *PermissionOrUnavailableError) Error() string {
	if e.Err == nil {
		return e.Message()
	}
	return fmt.Sprintf("%s: %v", e.Message(), e.Err)
}

func (e *PermissionOrUnavailableError) Unwrap() error { return e.Err }

// Message returns the locale key shown to the user.
func (e *PermissionOrUnavailableError) Message() string { return locale.MsgLocationUnavailable }

// UnsupportedError reports that no device location capability exists.
type UnsupportedError struct{}

func (e *UnsupportedError) Error() string { return e.Message() }

// Message returns the locale key shown to the user.
func (e *UnsupportedError) Message() string { return locale.MsgLocationUnsupported }
