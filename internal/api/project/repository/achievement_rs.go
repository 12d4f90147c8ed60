package projectRepository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"
)

type AchievementDB struct {
	ID          sql.NullString `db:"id"`
	Title       sql.NullString `db:"title"`
	Description sql.NullString `db:"description"`
	ImageURL    sql.NullString `db:"image_url"`
	Position    int            `db:"position"`
	IsActive    bool           `db:"is_active"`
	CreatedAt   sql.NullTime   `db:"created_at"`
}

func (a AchievementDB) toEntity() entity.Achievement {
	return entity.Achievement{
		ID:          a.ID.String,
		Title:       a.Title.String,
		Description: a.Description.String,
		ImageURL:    a.ImageURL.String,
		Position:    a.Position,
		IsActive:    a.IsActive,
		CreatedAt:   a.CreatedAt.Time,
	}
}

func (r *achievementRepository) ListActive(c context.Context) ([]entity.Achievement, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []AchievementDB

	if err := sqlx.SelectContext(c, r.q, &rows, r.q.Rebind(queryListActiveAchievements)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when listing achievements")
		return nil, err
	}

	result := make([]entity.Achievement, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toEntity())
	}

	return result, nil
}
