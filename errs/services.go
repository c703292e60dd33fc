package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Outbound generation collaborator errors
var (
	ErrGenerationFailed = errors.New("content generation failed")
)

// NewGenerationError wraps an upstream model failure. The evaluator never
// returns one of these; only the content-generation path propagates them.
func NewGenerationError(operation string, cause error) *ApiErr {
	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrGenerationFailed,
		Details:    fmt.Sprintf("%s: %v", operation, cause),
		Cause:      cause,
	}
}

func IsGenerationError(err error) bool {
	return errors.Is(err, ErrGenerationFailed)
}
