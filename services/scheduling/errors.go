package scheduling

import "fmt"

type MatchError struct {
	Code    string
	Message string
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewMatchError(code, msg string) error {
	return &MatchError{
		Code:    code,
		Message: msg,
	}
}

// ErrNoProviderAvailable is the defined outcome when no painter can take the
// requested window. Callers fall back to SuggestAlternatives.
var ErrNoProviderAvailable = NewMatchError("noProviderAvailable", "no painters are available for the requested time slot")
