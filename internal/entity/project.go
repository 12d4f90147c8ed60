package entity

import (
	"strings"
	"time"
)

type ProjectType string

const (
	ProjectTypeWeb     ProjectType = "web"
	ProjectTypeDesktop ProjectType = "desktop"
	ProjectTypeMobile  ProjectType = "mobile"
	ProjectTypeOther   ProjectType = "other"
)

type ProjectStatus string

const (
	ProjectStatusCompleted  ProjectStatus = "completed"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusPlanned    ProjectStatus = "planned"
)

type Project struct {
	ID               string        `db:"id"`
	Title            string        `db:"title"`
	Slug             string        `db:"slug"`
	Description      string        `db:"description"`
	ShortDescription string        `db:"short_description"`
	ThumbnailURL     string        `db:"thumbnail_url"`
	ProjectType      ProjectType   `db:"project_type"`
	Version          string        `db:"version"`
	Status           ProjectStatus `db:"status"`
	Tags             string        `db:"tags"`
	Technologies     string        `db:"technologies"`
	HasDownload      bool          `db:"has_download"`
	DownloadFileURL  string        `db:"download_file_url"`
	ExternalURL      string        `db:"external_url"`
	CreatedAt        time.Time     `db:"created_at"`
	UpdatedAt        time.Time     `db:"updated_at"`
}

// Tags and Technologies are stored comma-separated, the way the admin types them.
func (p Project) TagsList() []string {
	return splitCommaList(p.Tags)
}

func (p Project) TechnologiesList() []string {
	return splitCommaList(p.Technologies)
}

func splitCommaList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

type ProjectMedia struct {
	ID        string `db:"id"`
	ProjectID string `db:"project_id"`
	ImageURL  string `db:"image_url"`
	Caption   string `db:"caption"`
	Position  int    `db:"position"`
}
