package projectService

import (
	"mime/multipart"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	projects "PortfolioGolang/internal/api/project"
	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"
)

const defaultPerPage = 12

func (s *projectService) ListProjects(c context.Context, page int, perPage int) (projects.ProjectListResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 50 {
		perPage = defaultPerPage
	}

	repo, err := s.projectRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return projects.ProjectListResponse{}, err
	}

	list, err := repo.Projects.List(c, perPage, (page-1)*perPage)
	if err != nil {
		return projects.ProjectListResponse{}, err
	}

	total, err := repo.Projects.Count(c)
	if err != nil {
		return projects.ProjectListResponse{}, err
	}

	result := projects.ProjectListResponse{
		Projects: make([]projects.ProjectResponse, 0, len(list)),
		Total:    total,
	}
	for _, project := range list {
		resp := toProjectResponse(project)
		resp.Description = ""
		resp.ThumbnailURL = s.presignOrKeep(requestID, project.ThumbnailURL)
		result.Projects = append(result.Projects, resp)
	}

	return result, nil
}

func (s *projectService) GetProjectBySlug(c context.Context, slug string) (projects.ProjectDetailResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.projectRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return projects.ProjectDetailResponse{}, err
	}

	project, err := repo.Projects.GetBySlug(c, slug)
	if err != nil {
		return projects.ProjectDetailResponse{}, err
	}

	media, err := repo.Media.ListByProject(c, project.ID)
	if err != nil {
		return projects.ProjectDetailResponse{}, err
	}

	detail := projects.ProjectDetailResponse{
		ProjectResponse: toProjectResponse(project),
		Media:           make([]projects.MediaResponse, 0, len(media)),
	}
	detail.ThumbnailURL = s.presignOrKeep(requestID, project.ThumbnailURL)

	for _, m := range media {
		detail.Media = append(detail.Media, projects.MediaResponse{
			ID:       m.ID,
			ImageURL: s.presignOrKeep(requestID, m.ImageURL),
			Caption:  m.Caption,
			Position: m.Position,
		})
	}

	return detail, nil
}

func (s *projectService) CreateProject(
	c context.Context,
	req projects.CreateProjectRequest,
	thumbnail *multipart.FileHeader,
	download *multipart.FileHeader,
) (projects.ProjectResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.projectRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return projects.ProjectResponse{}, err
	}
	defer repo.Rollback()

	projectID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return projects.ProjectResponse{}, err
	}

	project := entity.Project{
		ID:               projectID,
		Title:            req.Title,
		Slug:             s.utils.Slugify(req.Title),
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		ProjectType:      entity.ProjectType(req.ProjectType),
		Version:          req.Version,
		Status:           entity.ProjectStatus(req.Status),
		Tags:             req.Tags,
		Technologies:     req.Technologies,
		ExternalURL:      req.ExternalURL,
	}

	if thumbnail != nil {
		if err := s.utils.ValidateImageFile(thumbnail); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Rejected thumbnail upload")
			return projects.ProjectResponse{}, projects.ErrInvalidImageFile
		}

		project.ThumbnailURL, err = s.uploadFile(requestID, thumbnail)
		if err != nil {
			return projects.ProjectResponse{}, err
		}
	}

	if download != nil {
		project.DownloadFileURL, err = s.uploadFile(requestID, download)
		if err != nil {
			return projects.ProjectResponse{}, err
		}
		project.HasDownload = true
	}

	if err := repo.Projects.CreateProject(c, project); err != nil {
		return projects.ProjectResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit project creation")
		return projects.ProjectResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"project_id": projectID,
		"slug":       project.Slug,
	}).Info("Project created")

	return toProjectResponse(project), nil
}

func (s *projectService) UpdateProject(
	c context.Context,
	slug string,
	req projects.UpdateProjectRequest,
	thumbnail *multipart.FileHeader,
	download *multipart.FileHeader,
) (projects.ProjectResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.projectRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return projects.ProjectResponse{}, err
	}
	defer repo.Rollback()

	project, err := repo.Projects.GetBySlug(c, slug)
	if err != nil {
		return projects.ProjectResponse{}, err
	}

	if req.Title != "" {
		project.Title = req.Title
		project.Slug = s.utils.Slugify(req.Title)
	}
	if req.Description != "" {
		project.Description = req.Description
	}
	if req.ShortDescription != "" {
		project.ShortDescription = req.ShortDescription
	}
	if req.ProjectType != "" {
		project.ProjectType = entity.ProjectType(req.ProjectType)
	}
	if req.Version != "" {
		project.Version = req.Version
	}
	if req.Status != "" {
		project.Status = entity.ProjectStatus(req.Status)
	}
	if req.Tags != "" {
		project.Tags = req.Tags
	}
	if req.Technologies != "" {
		project.Technologies = req.Technologies
	}
	if req.ExternalURL != "" {
		project.ExternalURL = req.ExternalURL
	}

	if thumbnail != nil {
		if err := s.utils.ValidateImageFile(thumbnail); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Rejected thumbnail upload")
			return projects.ProjectResponse{}, projects.ErrInvalidImageFile
		}

		project.ThumbnailURL, err = s.uploadFile(requestID, thumbnail)
		if err != nil {
			return projects.ProjectResponse{}, err
		}
	}

	if download != nil {
		project.DownloadFileURL, err = s.uploadFile(requestID, download)
		if err != nil {
			return projects.ProjectResponse{}, err
		}
		project.HasDownload = true
	}

	if err := repo.Projects.UpdateProject(c, project); err != nil {
		return projects.ProjectResponse{}, err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit project update")
		return projects.ProjectResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"project_id": project.ID,
	}).Info("Project updated")

	return toProjectResponse(project), nil
}

func (s *projectService) DeleteProject(c context.Context, slug string) error {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.projectRepository.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	project, err := repo.Projects.GetBySlug(c, slug)
	if err != nil {
		return err
	}

	if err := repo.Media.DeleteByProject(c, project.ID); err != nil {
		return err
	}

	if err := repo.Projects.DeleteProject(c, project.ID); err != nil {
		return err
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit project deletion")
		return err
	}

	// Stored objects are cleaned up after the row is gone; a failed delete
	// only leaves an orphan in the bucket.
	for _, fileURL := range []string{project.ThumbnailURL, project.DownloadFileURL} {
		if fileURL == "" {
			continue
		}
		if err := s.s3Client.DeleteFile(fileURL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Failed to delete stored file")
		}
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"project_id": project.ID,
	}).Info("Project deleted")

	return nil
}

func (s *projectService) GetDownloadURL(c context.Context, slug string) (projects.DownloadResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.projectRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return projects.DownloadResponse{}, err
	}

	project, err := repo.Projects.GetBySlug(c, slug)
	if err != nil {
		return projects.DownloadResponse{}, err
	}

	if !project.HasDownload || project.DownloadFileURL == "" {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"project_id": project.ID,
		}).Warn("Download requested for project without a file")
		return projects.DownloadResponse{}, projects.ErrNoDownloadAvailable
	}

	downloadURL, err := s.s3Client.PresignUrl(project.DownloadFileURL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to presign download URL")
		return projects.DownloadResponse{}, err
	}

	return projects.DownloadResponse{DownloadURL: downloadURL}, nil
}

func (s *projectService) ListAchievements(c context.Context) (projects.AchievementListResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	repo, err := s.projectRepository.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return projects.AchievementListResponse{}, err
	}

	list, err := repo.Achievements.ListActive(c)
	if err != nil {
		return projects.AchievementListResponse{}, err
	}

	result := projects.AchievementListResponse{
		Achievements: make([]projects.AchievementResponse, 0, len(list)),
	}
	for _, achievement := range list {
		result.Achievements = append(result.Achievements, projects.AchievementResponse{
			ID:          achievement.ID,
			Title:       achievement.Title,
			Description: achievement.Description,
			ImageURL:    s.presignOrKeep(requestID, achievement.ImageURL),
			Position:    achievement.Position,
			CreatedAt:   achievement.CreatedAt,
		})
	}

	return result, nil
}

func (s *projectService) uploadFile(requestID string, file *multipart.FileHeader) (string, error) {
	location, err := s.s3Client.UploadFile(file)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to upload file")
		return "", projects.ErrFailedToUploadFile
	}
	return location, nil
}

// presignOrKeep swaps a stored object URL for a short-lived presigned one.
// When presigning fails the stored URL is returned so the listing still
// renders.
func (s *projectService) presignOrKeep(requestID string, fileURL string) string {
	if fileURL == "" {
		return ""
	}

	presigned, err := s.s3Client.PresignUrl(fileURL)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to presign file URL")
		return fileURL
	}

	return presigned
}
