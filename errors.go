package carteira

import "fmt"

// ValidationError reports malformed or out-of-range user input on a mutating
// operation. The operation it aborts leaves no partial state behind.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an operation referencing an unknown position id.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("position %q not found", e.ID)
}

// RateLimitError is returned by quote providers when the upstream service
// throttles the request. It is recoverable: the quote cache treats it like a
// partial fetch failure and keeps serving cached entries.
type RateLimitError struct {
	Provider string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s: rate limited, retry later", e.Provider)
}
