package projectRepository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"
)

type ProjectMediaDB struct {
	ID        sql.NullString `db:"id"`
	ProjectID sql.NullString `db:"project_id"`
	ImageURL  sql.NullString `db:"image_url"`
	Caption   sql.NullString `db:"caption"`
	Position  int            `db:"position"`
}

func (m ProjectMediaDB) toEntity() entity.ProjectMedia {
	return entity.ProjectMedia{
		ID:        m.ID.String,
		ProjectID: m.ProjectID.String,
		ImageURL:  m.ImageURL.String,
		Caption:   m.Caption.String,
		Position:  m.Position,
	}
}

func (r *mediaRepository) CreateMedia(c context.Context, media entity.ProjectMedia) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         media.ID,
		"project_id": media.ProjectID,
		"image_url":  media.ImageURL,
		"caption":    media.Caption,
		"position":   media.Position,
	}

	query, args, err := sqlx.Named(queryCreateMedia, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateMedia")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating project media")
		return err
	}

	return nil
}

func (r *mediaRepository) ListByProject(c context.Context, projectID string) ([]entity.ProjectMedia, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []ProjectMediaDB

	argsKV := map[string]interface{}{
		"project_id": projectID,
	}

	query, args, err := sqlx.Named(queryListMediaByProject, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("ListByProject named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := sqlx.SelectContext(c, r.q, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when listing project media")
		return nil, err
	}

	result := make([]entity.ProjectMedia, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toEntity())
	}

	return result, nil
}

func (r *mediaRepository) DeleteByProject(c context.Context, projectID string) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"project_id": projectID,
	}

	query, args, err := sqlx.Named(queryDeleteMediaByProject, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("DeleteByProject named query preparation err")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting project media")
		return err
	}

	return nil
}
