package feedback

import (
	"net/http"

	"PortfolioGolang/pkg/response"
)

var (
	ErrFeedbackNotFound = response.NewError(http.StatusNotFound, "feedback not found")
)
