package authRepository

const (
	queryCreateUser = `
INSERT INTO users (id, username, email, password, is_admin, created_at)
VALUES (:id, :username, :email, :password, :is_admin, :created_at)`

	queryGetByID = `
SELECT id, username, email, password, is_admin, created_at, updated_at
FROM users
    WHERE id = :id`

	queryGetByEmail = `
SELECT id, username, email, password, is_admin, created_at, updated_at
FROM users
    WHERE email = :email`

	queryUpdateUserPassword = `
UPDATE users
SET password = :password,
    updated_at = :updated_at
WHERE email = :email`
)
