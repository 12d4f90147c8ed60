package feedbackRepository

const (
	queryCreateFeedback = `
INSERT INTO feedback (id, name, email, subject, message, created_at)
VALUES (:id, :name, :email, :subject, :message, :created_at)`

	queryListFeedback = `
SELECT id, name, email, subject, message, created_at
FROM feedback
ORDER BY created_at DESC
LIMIT :limit OFFSET :offset`

	queryCountFeedback = `
SELECT COUNT(*) FROM feedback`
)
