package auth

import (
	"net/http"

	"PortfolioGolang/pkg/response"
)

var (
	ErrEmailAlreadyExists     = response.NewError(http.StatusConflict, "email already exists")
	ErrUsernameAlreadyExists  = response.NewError(http.StatusConflict, "username already exists")
	ErrInvalidEmailOrPassword = response.NewError(http.StatusBadRequest, "email or password is wrong")
	ErrUserNotFound           = response.NewError(http.StatusNotFound, "user not found")
	ErrUserWithEmailNotFound  = response.NewError(http.StatusNotFound, "user with email not found")
	ErrInvalidOTP             = response.NewError(http.StatusBadRequest, "invalid otp")
	ErrPasswordSame           = response.NewError(http.StatusBadRequest, "password same as before")
)
