package projects

import (
	"net/http"

	"PortfolioGolang/pkg/response"
)

var (
	ErrProjectNotFound     = response.NewError(http.StatusNotFound, "project not found")
	ErrSlugAlreadyExists   = response.NewError(http.StatusConflict, "project with the same title already exists")
	ErrNoDownloadAvailable = response.NewError(http.StatusNotFound, "project has no downloadable file")
	ErrInvalidImageFile    = response.NewError(http.StatusBadRequest, "invalid image file")
	ErrFailedToUploadFile  = response.NewError(http.StatusInternalServerError, "failed to upload file")
	ErrAchievementNotFound = response.NewError(http.StatusNotFound, "achievement not found")
)
