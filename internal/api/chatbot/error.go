package chatbot

import (
	"fmt"

	"PortfolioGolang/pkg/response"
)

var (
	ErrComposeFailed   = response.NewError(500, "failed to compose response")
	ErrSessionNotFound = response.NewError(404, "session not found")
)

// UnknownPlaceholderError reports a template placeholder with no profile
// binding. Templates are static, so this surfacing means a template bug.
type UnknownPlaceholderError struct {
	Placeholder string
}

func (e *UnknownPlaceholderError) Error() string {
	return fmt.Sprintf("unknown template placeholder %q", e.Placeholder)
}
