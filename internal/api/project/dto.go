package projects

import "time"

type CreateProjectRequest struct {
	Title            string `json:"title" validate:"required,min=3,max=256"`
	Description      string `json:"description" validate:"required"`
	ShortDescription string `json:"short_description" validate:"omitempty,max=512"`
	ProjectType      string `json:"project_type" validate:"required,oneof=web desktop mobile other"`
	Version          string `json:"version" validate:"omitempty,max=32"`
	Status           string `json:"status" validate:"required,oneof=completed in_progress planned"`
	Tags             string `json:"tags" validate:"omitempty,max=512"`
	Technologies     string `json:"technologies" validate:"omitempty,max=512"`
	ExternalURL      string `json:"external_url" validate:"omitempty,url"`
}

type UpdateProjectRequest struct {
	Title            string `json:"title" validate:"omitempty,min=3,max=256"`
	Description      string `json:"description" validate:"omitempty"`
	ShortDescription string `json:"short_description" validate:"omitempty,max=512"`
	ProjectType      string `json:"project_type" validate:"omitempty,oneof=web desktop mobile other"`
	Version          string `json:"version" validate:"omitempty,max=32"`
	Status           string `json:"status" validate:"omitempty,oneof=completed in_progress planned"`
	Tags             string `json:"tags" validate:"omitempty,max=512"`
	Technologies     string `json:"technologies" validate:"omitempty,max=512"`
	ExternalURL      string `json:"external_url" validate:"omitempty,url"`
}

type ProjectResponse struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Description      string    `json:"description,omitempty"`
	ShortDescription string    `json:"short_description"`
	ThumbnailURL     string    `json:"thumbnail_url"`
	ProjectType      string    `json:"project_type"`
	Version          string    `json:"version"`
	Status           string    `json:"status"`
	Tags             []string  `json:"tags"`
	Technologies     []string  `json:"technologies"`
	HasDownload      bool      `json:"has_download"`
	ExternalURL      string    `json:"external_url"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type ProjectDetailResponse struct {
	ProjectResponse
	Media []MediaResponse `json:"media"`
}

type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Total    int               `json:"total"`
}

type MediaResponse struct {
	ID       string `json:"id"`
	ImageURL string `json:"image_url"`
	Caption  string `json:"caption"`
	Position int    `json:"position"`
}

type DownloadResponse struct {
	DownloadURL string `json:"download_url"`
}

type AchievementResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	Position    int       `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
}

type AchievementListResponse struct {
	Achievements []AchievementResponse `json:"achievements"`
}
