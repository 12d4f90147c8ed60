package projectService

import (
	"context"
	"mime/multipart"

	"github.com/sirupsen/logrus"

	projects "PortfolioGolang/internal/api/project"
	projectRepository "PortfolioGolang/internal/api/project/repository"
	"PortfolioGolang/internal/entity"
	"PortfolioGolang/pkg/s3"
	"PortfolioGolang/pkg/utils"
)

type IProjectService interface {
	ListProjects(c context.Context, page int, perPage int) (projects.ProjectListResponse, error)
	GetProjectBySlug(c context.Context, slug string) (projects.ProjectDetailResponse, error)
	CreateProject(c context.Context, req projects.CreateProjectRequest, thumbnail *multipart.FileHeader, download *multipart.FileHeader) (projects.ProjectResponse, error)
	UpdateProject(c context.Context, slug string, req projects.UpdateProjectRequest, thumbnail *multipart.FileHeader, download *multipart.FileHeader) (projects.ProjectResponse, error)
	DeleteProject(c context.Context, slug string) error
	GetDownloadURL(c context.Context, slug string) (projects.DownloadResponse, error)
	ListAchievements(c context.Context) (projects.AchievementListResponse, error)
}

type projectService struct {
	log               *logrus.Logger
	projectRepository projectRepository.Repository
	s3Client          s3.ItfS3
	utils             utils.IUtils
}

func NewProjectService(
	log *logrus.Logger,
	repo projectRepository.Repository,
	s3Client s3.ItfS3,
	utils utils.IUtils,
) IProjectService {
	return &projectService{
		log:               log,
		projectRepository: repo,
		s3Client:          s3Client,
		utils:             utils,
	}
}

func toProjectResponse(project entity.Project) projects.ProjectResponse {
	return projects.ProjectResponse{
		ID:               project.ID,
		Title:            project.Title,
		Slug:             project.Slug,
		Description:      project.Description,
		ShortDescription: project.ShortDescription,
		ThumbnailURL:     project.ThumbnailURL,
		ProjectType:      string(project.ProjectType),
		Version:          project.Version,
		Status:           string(project.Status),
		Tags:             project.TagsList(),
		Technologies:     project.TechnologiesList(),
		HasDownload:      project.HasDownload,
		ExternalURL:      project.ExternalURL,
		CreatedAt:        project.CreatedAt,
		UpdatedAt:        project.UpdatedAt,
	}
}
