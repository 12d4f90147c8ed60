package projectRepository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	projects "PortfolioGolang/internal/api/project"
	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"
)

type ProjectDB struct {
	ID               sql.NullString `db:"id"`
	Title            sql.NullString `db:"title"`
	Slug             sql.NullString `db:"slug"`
	Description      sql.NullString `db:"description"`
	ShortDescription sql.NullString `db:"short_description"`
	ThumbnailURL     sql.NullString `db:"thumbnail_url"`
	ProjectType      sql.NullString `db:"project_type"`
	Version          sql.NullString `db:"version"`
	Status           sql.NullString `db:"status"`
	Tags             sql.NullString `db:"tags"`
	Technologies     sql.NullString `db:"technologies"`
	HasDownload      bool           `db:"has_download"`
	DownloadFileURL  sql.NullString `db:"download_file_url"`
	ExternalURL      sql.NullString `db:"external_url"`
	CreatedAt        sql.NullTime   `db:"created_at"`
	UpdatedAt        sql.NullTime   `db:"updated_at"`
}

func (p ProjectDB) toEntity() entity.Project {
	return entity.Project{
		ID:               p.ID.String,
		Title:            p.Title.String,
		Slug:             p.Slug.String,
		Description:      p.Description.String,
		ShortDescription: p.ShortDescription.String,
		ThumbnailURL:     p.ThumbnailURL.String,
		ProjectType:      entity.ProjectType(p.ProjectType.String),
		Version:          p.Version.String,
		Status:           entity.ProjectStatus(p.Status.String),
		Tags:             p.Tags.String,
		Technologies:     p.Technologies.String,
		HasDownload:      p.HasDownload,
		DownloadFileURL:  p.DownloadFileURL.String,
		ExternalURL:      p.ExternalURL.String,
		CreatedAt:        p.CreatedAt.Time,
		UpdatedAt:        p.UpdatedAt.Time,
	}
}

func projectArgs(project entity.Project) map[string]interface{} {
	return map[string]interface{}{
		"id":                project.ID,
		"title":             project.Title,
		"slug":              project.Slug,
		"description":       project.Description,
		"short_description": project.ShortDescription,
		"thumbnail_url":     project.ThumbnailURL,
		"project_type":      string(project.ProjectType),
		"version":           project.Version,
		"status":            string(project.Status),
		"tags":              project.Tags,
		"technologies":      project.Technologies,
		"has_download":      project.HasDownload,
		"download_file_url": project.DownloadFileURL,
		"external_url":      project.ExternalURL,
	}
}

func (r *projectRepository) CreateProject(c context.Context, project entity.Project) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := projectArgs(project)
	argsKV["created_at"] = time.Now()

	query, args, err := sqlx.Named(queryCreateProject, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateProject")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(c, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Project slug already exists")
			return projects.ErrSlugAlreadyExists
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating project")

		return err
	}

	return nil
}

func (r *projectRepository) GetBySlug(c context.Context, slug string) (entity.Project, error) {
	requestID := contextPkg.GetRequestID(c)
	var project ProjectDB

	argsKV := map[string]interface{}{
		"slug": slug,
	}

	query, args, err := sqlx.Named(queryGetProjectBySlug, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBySlug named query preparation err")
		return entity.Project{}, err
	}

	query = r.q.Rebind(query)

	if err := sqlx.GetContext(c, r.q, &project, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetBySlug no rows found")
			return entity.Project{}, projects.ErrProjectNotFound
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when getting project by slug")
		return entity.Project{}, err
	}

	return project.toEntity(), nil
}

func (r *projectRepository) GetByID(c context.Context, id string) (entity.Project, error) {
	requestID := contextPkg.GetRequestID(c)
	var project ProjectDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetProjectByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID named query preparation err")
		return entity.Project{}, err
	}

	query = r.q.Rebind(query)

	if err := sqlx.GetContext(c, r.q, &project, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("GetByID no rows found")
			return entity.Project{}, projects.ErrProjectNotFound
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when getting project by ID")
		return entity.Project{}, err
	}

	return project.toEntity(), nil
}

func (r *projectRepository) List(c context.Context, limit int, offset int) ([]entity.Project, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []ProjectDB

	argsKV := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}

	query, args, err := sqlx.Named(queryListProjects, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := sqlx.SelectContext(c, r.q, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when listing projects")
		return nil, err
	}

	result := make([]entity.Project, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toEntity())
	}

	return result, nil
}

func (r *projectRepository) Count(c context.Context) (int, error) {
	requestID := contextPkg.GetRequestID(c)
	var total int

	if err := sqlx.GetContext(c, r.q, &total, r.q.Rebind(queryCountProjects)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when counting projects")
		return 0, err
	}

	return total, nil
}

func (r *projectRepository) UpdateProject(c context.Context, project entity.Project) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := projectArgs(project)
	argsKV["updated_at"] = time.Now()

	query, args, err := sqlx.Named(queryUpdateProject, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("UpdateProject named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Project slug already exists")
			return projects.ErrSlugAlreadyExists
		}

		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating project")
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return projects.ErrProjectNotFound
	}

	return nil
}

func (r *projectRepository) DeleteProject(c context.Context, id string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteProject, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteProject named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(c, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting project")
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return projects.ErrProjectNotFound
	}

	return nil
}
