package projectService

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	projects "PortfolioGolang/internal/api/project"
	projectRepository "PortfolioGolang/internal/api/project/repository"
	"PortfolioGolang/internal/entity"
	"PortfolioGolang/pkg/utils"
)

type stubProjects struct {
	bySlug  map[string]entity.Project
	listed  []entity.Project
	created *entity.Project
	updated *entity.Project
	deleted []string
}

func (s *stubProjects) CreateProject(_ context.Context, project entity.Project) error {
	s.created = &project
	return nil
}

func (s *stubProjects) GetBySlug(_ context.Context, slug string) (entity.Project, error) {
	project, ok := s.bySlug[slug]
	if !ok {
		return entity.Project{}, projects.ErrProjectNotFound
	}
	return project, nil
}

func (s *stubProjects) GetByID(_ context.Context, id string) (entity.Project, error) {
	for _, project := range s.bySlug {
		if project.ID == id {
			return project, nil
		}
	}
	return entity.Project{}, projects.ErrProjectNotFound
}

func (s *stubProjects) List(_ context.Context, limit int, offset int) ([]entity.Project, error) {
	if offset >= len(s.listed) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.listed) {
		end = len(s.listed)
	}
	return s.listed[offset:end], nil
}

func (s *stubProjects) Count(_ context.Context) (int, error) {
	return len(s.listed), nil
}

func (s *stubProjects) UpdateProject(_ context.Context, project entity.Project) error {
	s.updated = &project
	return nil
}

func (s *stubProjects) DeleteProject(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

type stubMedia struct {
	byProject map[string][]entity.ProjectMedia
}

func (s *stubMedia) CreateMedia(_ context.Context, _ entity.ProjectMedia) error { return nil }

func (s *stubMedia) ListByProject(_ context.Context, projectID string) ([]entity.ProjectMedia, error) {
	return s.byProject[projectID], nil
}

func (s *stubMedia) DeleteByProject(_ context.Context, _ string) error { return nil }

type stubAchievements struct {
	active []entity.Achievement
}

func (s *stubAchievements) ListActive(_ context.Context) ([]entity.Achievement, error) {
	return s.active, nil
}

type stubRepo struct {
	projects     *stubProjects
	media        *stubMedia
	achievements *stubAchievements
	commits      int
}

func (s *stubRepo) NewClient(_ bool) (projectRepository.Client, error) {
	return projectRepository.Client{
		Projects:     s.projects,
		Media:        s.media,
		Achievements: s.achievements,
		Commit:       func() error { s.commits++; return nil },
		Rollback:     func() error { return nil },
	}, nil
}

type stubS3 struct {
	presignErr error
	deleted    []string
}

func (s *stubS3) UploadFile(_ *multipart.FileHeader) (string, error) {
	return "https://bucket.s3.amazonaws.com/uploaded", nil
}

func (s *stubS3) PresignUrl(fileURL string) (string, error) {
	if s.presignErr != nil {
		return "", s.presignErr
	}
	return "https://signed.example.com/" + fileURL, nil
}

func (s *stubS3) DeleteFile(fileName string) error {
	s.deleted = append(s.deleted, fileName)
	return nil
}

func newTestService(t *testing.T, repo *stubRepo, s3Client *stubS3) IProjectService {
	t.Helper()

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	if repo.projects == nil {
		repo.projects = &stubProjects{bySlug: map[string]entity.Project{}}
	}
	if repo.media == nil {
		repo.media = &stubMedia{byProject: map[string][]entity.ProjectMedia{}}
	}
	if repo.achievements == nil {
		repo.achievements = &stubAchievements{}
	}

	return NewProjectService(logger, repo, s3Client, utils.New())
}

func TestCreateProjectSlugifiesTitle(t *testing.T) {
	repo := &stubRepo{}
	svc := newTestService(t, repo, &stubS3{})

	result, err := svc.CreateProject(context.Background(), projects.CreateProjectRequest{
		Title:       "My Chatbot: The Demo!",
		Description: "A demo project",
		ProjectType: "web",
		Status:      "completed",
	}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "my-chatbot-the-demo", result.Slug)
	assert.NotEmpty(t, result.ID)
	assert.False(t, result.HasDownload)
	require.NotNil(t, repo.projects.created)
	assert.Equal(t, 1, repo.commits)
}

func TestGetProjectBySlugIncludesMedia(t *testing.T) {
	repo := &stubRepo{
		projects: &stubProjects{bySlug: map[string]entity.Project{
			"demo": {ID: "p1", Title: "Demo", Slug: "demo", ThumbnailURL: "thumb.png"},
		}},
		media: &stubMedia{byProject: map[string][]entity.ProjectMedia{
			"p1": {
				{ID: "m1", ProjectID: "p1", ImageURL: "shot1.png", Position: 1},
				{ID: "m2", ProjectID: "p1", ImageURL: "shot2.png", Position: 2},
			},
		}},
	}
	svc := newTestService(t, repo, &stubS3{})

	result, err := svc.GetProjectBySlug(context.Background(), "demo")
	require.NoError(t, err)

	assert.Equal(t, "https://signed.example.com/thumb.png", result.ThumbnailURL)
	require.Len(t, result.Media, 2)
	assert.Equal(t, "https://signed.example.com/shot1.png", result.Media[0].ImageURL)
}

func TestGetProjectBySlugNotFound(t *testing.T) {
	svc := newTestService(t, &stubRepo{}, &stubS3{})

	_, err := svc.GetProjectBySlug(context.Background(), "missing")
	assert.ErrorIs(t, err, projects.ErrProjectNotFound)
}

func TestListProjectsStripsDescription(t *testing.T) {
	repo := &stubRepo{
		projects: &stubProjects{
			bySlug: map[string]entity.Project{},
			listed: []entity.Project{
				{ID: "p1", Slug: "one", Description: "long body", ShortDescription: "short"},
				{ID: "p2", Slug: "two", Description: "another body"},
			},
		},
	}
	svc := newTestService(t, repo, &stubS3{})

	result, err := svc.ListProjects(context.Background(), 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Total)
	require.Len(t, result.Projects, 2)
	assert.Empty(t, result.Projects[0].Description)
	assert.Equal(t, "short", result.Projects[0].ShortDescription)
}

func TestListProjectsKeepsStoredURLWhenPresignFails(t *testing.T) {
	repo := &stubRepo{
		projects: &stubProjects{
			bySlug: map[string]entity.Project{},
			listed: []entity.Project{{ID: "p1", Slug: "one", ThumbnailURL: "thumb.png"}},
		},
	}
	svc := newTestService(t, repo, &stubS3{presignErr: errors.New("no such key")})

	result, err := svc.ListProjects(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Projects, 1)
	assert.Equal(t, "thumb.png", result.Projects[0].ThumbnailURL)
}

func TestGetDownloadURL(t *testing.T) {
	repo := &stubRepo{
		projects: &stubProjects{bySlug: map[string]entity.Project{
			"with-file": {ID: "p1", Slug: "with-file", HasDownload: true, DownloadFileURL: "app.zip"},
			"no-file":   {ID: "p2", Slug: "no-file"},
			"flagged":   {ID: "p3", Slug: "flagged", HasDownload: true},
		}},
	}
	svc := newTestService(t, repo, &stubS3{})

	result, err := svc.GetDownloadURL(context.Background(), "with-file")
	require.NoError(t, err)
	assert.Equal(t, "https://signed.example.com/app.zip", result.DownloadURL)

	_, err = svc.GetDownloadURL(context.Background(), "no-file")
	assert.ErrorIs(t, err, projects.ErrNoDownloadAvailable)

	// Flag without a stored file still counts as no download.
	_, err = svc.GetDownloadURL(context.Background(), "flagged")
	assert.ErrorIs(t, err, projects.ErrNoDownloadAvailable)
}

func TestDeleteProjectRemovesStoredFiles(t *testing.T) {
	repo := &stubRepo{
		projects: &stubProjects{bySlug: map[string]entity.Project{
			"demo": {ID: "p1", Slug: "demo", ThumbnailURL: "thumb.png", DownloadFileURL: "app.zip"},
		}},
	}
	s3Client := &stubS3{}
	svc := newTestService(t, repo, s3Client)

	err := svc.DeleteProject(context.Background(), "demo")
	require.NoError(t, err)

	assert.Equal(t, []string{"p1"}, repo.projects.deleted)
	assert.ElementsMatch(t, []string{"thumb.png", "app.zip"}, s3Client.deleted)
}

func TestUpdateProjectRetitlesSlug(t *testing.T) {
	repo := &stubRepo{
		projects: &stubProjects{bySlug: map[string]entity.Project{
			"old-title": {ID: "p1", Title: "Old Title", Slug: "old-title", Status: entity.ProjectStatusPlanned},
		}},
	}
	svc := newTestService(t, repo, &stubS3{})

	result, err := svc.UpdateProject(context.Background(), "old-title", projects.UpdateProjectRequest{
		Title:  "New Title",
		Status: "completed",
	}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "new-title", result.Slug)
	assert.Equal(t, "completed", result.Status)
	require.NotNil(t, repo.projects.updated)
	assert.Equal(t, "p1", repo.projects.updated.ID)
}

func TestListAchievements(t *testing.T) {
	repo := &stubRepo{
		achievements: &stubAchievements{active: []entity.Achievement{
			{ID: "a1", Title: "First", Position: 1, IsActive: true, ImageURL: "badge.png"},
			{ID: "a2", Title: "Second", Position: 2, IsActive: true},
		}},
	}
	svc := newTestService(t, repo, &stubS3{})

	result, err := svc.ListAchievements(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Achievements, 2)
	assert.Equal(t, "First", result.Achievements[0].Title)
	assert.Equal(t, "https://signed.example.com/badge.png", result.Achievements[0].ImageURL)
	assert.Empty(t, result.Achievements[1].ImageURL)
}
