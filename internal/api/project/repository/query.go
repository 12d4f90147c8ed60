package projectRepository

const (
	queryCreateProject = `
INSERT INTO projects (id, title, slug, description, short_description, thumbnail_url,
                      project_type, version, status, tags, technologies,
                      has_download, download_file_url, external_url, created_at)
VALUES (:id, :title, :slug, :description, :short_description, :thumbnail_url,
        :project_type, :version, :status, :tags, :technologies,
        :has_download, :download_file_url, :external_url, :created_at)`

	queryGetProjectBySlug = `
SELECT id, title, slug, description, short_description, thumbnail_url,
       project_type, version, status, tags, technologies,
       has_download, download_file_url, external_url, created_at, updated_at
FROM projects
    WHERE slug = :slug`

	queryGetProjectByID = `
SELECT id, title, slug, description, short_description, thumbnail_url,
       project_type, version, status, tags, technologies,
       has_download, download_file_url, external_url, created_at, updated_at
FROM projects
    WHERE id = :id`

	queryListProjects = `
SELECT id, title, slug, description, short_description, thumbnail_url,
       project_type, version, status, tags, technologies,
       has_download, download_file_url, external_url, created_at, updated_at
FROM projects
ORDER BY created_at DESC
LIMIT :limit OFFSET :offset`

	queryCountProjects = `
SELECT COUNT(*) FROM projects`

	queryUpdateProject = `
UPDATE projects
SET title             = :title,
    slug              = :slug,
    description       = :description,
    short_description = :short_description,
    thumbnail_url     = :thumbnail_url,
    project_type      = :project_type,
    version           = :version,
    status            = :status,
    tags              = :tags,
    technologies      = :technologies,
    has_download      = :has_download,
    download_file_url = :download_file_url,
    external_url      = :external_url,
    updated_at        = :updated_at
WHERE id = :id`

	queryDeleteProject = `
DELETE FROM projects
    WHERE id = :id`

	queryCreateMedia = `
INSERT INTO project_media (id, project_id, image_url, caption, position)
VALUES (:id, :project_id, :image_url, :caption, :position)`

	queryListMediaByProject = `
SELECT id, project_id, image_url, caption, position
FROM project_media
WHERE project_id = :project_id
ORDER BY position ASC`

	queryDeleteMediaByProject = `
DELETE FROM project_media
    WHERE project_id = :project_id`

	queryListActiveAchievements = `
SELECT id, title, description, image_url, position, is_active, created_at
FROM achievements
WHERE is_active = TRUE
ORDER BY position ASC`
)
