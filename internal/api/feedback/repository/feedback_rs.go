package feedbackRepository

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"PortfolioGolang/internal/entity"
	contextPkg "PortfolioGolang/pkg/context"
)

type FeedbackDB struct {
	ID        sql.NullString `db:"id"`
	Name      sql.NullString `db:"name"`
	Email     sql.NullString `db:"email"`
	Subject   sql.NullString `db:"subject"`
	Message   sql.NullString `db:"message"`
	CreatedAt sql.NullTime   `db:"created_at"`
}

func (f FeedbackDB) toEntity() entity.Feedback {
	return entity.Feedback{
		ID:        f.ID.String,
		Name:      f.Name.String,
		Email:     f.Email.String,
		Subject:   f.Subject.String,
		Message:   f.Message.String,
		CreatedAt: f.CreatedAt.Time,
	}
}

func (r *feedbackRepository) CreateFeedback(c context.Context, feedback entity.Feedback) error {
	requestID := contextPkg.GetRequestID(c)
	argsKV := map[string]interface{}{
		"id":         feedback.ID,
		"name":       feedback.Name,
		"email":      feedback.Email,
		"subject":    feedback.Subject,
		"message":    feedback.Message,
		"created_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryCreateFeedback, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateFeedback")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(c, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating feedback")
		return err
	}

	return nil
}

func (r *feedbackRepository) List(c context.Context, limit int, offset int) ([]entity.Feedback, error) {
	requestID := contextPkg.GetRequestID(c)
	var rows []FeedbackDB

	argsKV := map[string]interface{}{
		"limit":  limit,
		"offset": offset,
	}

	query, args, err := sqlx.Named(queryListFeedback, argsKV)
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
		}).Error("Database error when listing feedback")
		return nil, err
	}

	result := make([]entity.Feedback, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toEntity())
	}

	return result, nil
}

func (r *feedbackRepository) Count(c context.Context) (int, error) {
	requestID := contextPkg.GetRequestID(c)
	var total int

	if err := sqlx.GetContext(c, r.q, &total, r.q.Rebind(queryCountFeedback)); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when counting feedback")
		return 0, err
	}

	return total, nil
}
