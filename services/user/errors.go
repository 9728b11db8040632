package user

import "fmt"

// ValidationError rejects a malformed registration payload.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string {
	return e.Msg
}

// AuthError signals failed authentication. The message is deliberately vague
// so callers cannot distinguish an unknown email from a wrong password.
type AuthError struct {
	Msg string
}

func (e AuthError) Error() string {
	return e.Msg
}

// NotFoundError signals an unknown user reference.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("user %s not found", e.ID)
}
