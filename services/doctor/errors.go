package doctor

import "fmt"

// ValidationError rejects a malformed profile or schedule before any write.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string {
	return e.Msg
}

// NotFoundError signals an unknown doctor reference.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	if e.ID == "" {
		return "doctor profile not found"
	}
	return fmt.Sprintf("doctor %s not found", e.ID)
}
