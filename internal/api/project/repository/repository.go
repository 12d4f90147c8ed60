package projectRepository

import (
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"

	"PortfolioGolang/internal/entity"
)

func New(db *sqlx.DB, log *logrus.Logger) Repository {
	return &repository{
		DB:  db,
		log: log,
	}
}

type repository struct {
	DB  *sqlx.DB
	log *logrus.Logger
}

type Repository interface {
	NewClient(tx bool) (Client, error)
}

func (r *repository) NewClient(tx bool) (Client, error) {
	var db sqlx.ExtContext
	var commitFunc, rollbackFunc func() error

	db = r.DB

	if tx {
		txx, err := r.DB.Beginx()
		if err != nil {
			return Client{}, err
		}

		db = txx
		commitFunc = txx.Commit
		rollbackFunc = txx.Rollback
	} else {
		commitFunc = func() error { return nil }
		rollbackFunc = func() error { return nil }
	}

	return Client{
		Projects:     &projectRepository{q: db, log: r.log},
		Media:        &mediaRepository{q: db, log: r.log},
		Achievements: &achievementRepository{q: db, log: r.log},
		Commit:       commitFunc,
		Rollback:     rollbackFunc,
	}, nil
}

type Client struct {
	Projects interface {
		CreateProject(ctx context.Context, project entity.Project) error
		GetBySlug(ctx context.Context, slug string) (entity.Project, error)
		GetByID(ctx context.Context, id string) (entity.Project, error)
		List(ctx context.Context, limit int, offset int) ([]entity.Project, error)
		Count(ctx context.Context) (int, error)
		UpdateProject(ctx context.Context, project entity.Project) error
		DeleteProject(ctx context.Context, id string) error
	}

	Media interface {
		CreateMedia(ctx context.Context, media entity.ProjectMedia) error
		ListByProject(ctx context.Context, projectID string) ([]entity.ProjectMedia, error)
		DeleteByProject(ctx context.Context, projectID string) error
	}

	Achievements interface {
		ListActive(ctx context.Context) ([]entity.Achievement, error)
	}

	Commit   func() error
	Rollback func() error
}

type projectRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}

type mediaRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}

type achievementRepository struct {
	q   sqlx.ExtContext
	log *logrus.Logger
}
