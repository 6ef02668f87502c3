package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/videoparty/clips-ms-go/internal/db"
	"github.com/videoparty/clips-ms-go/internal/model"
	"github.com/videoparty/clips-ms-go/internal/port"
	clipService "github.com/videoparty/clips-ms-go/internal/usecase/clip"
)

type ClipRepository struct {
	db *sql.DB
}

// compile-time check: *ClipRepository must satisfy port.ClipRepository
var _ port.ClipRepository = (*ClipRepository)(nil)

func NewClipRepository(db *sql.DB) *ClipRepository {
	return &ClipRepository{db: db}
}

const clipColumns = `id, filename, original_name, size_bytes, mime_type, title, description, game, tags, is_private, uploaded_at, views, likes, video_url, storage_key, thumbnail_url, thumbnail_key`

func (r *ClipRepository) Create(ctx context.Context, clip *model.Clip) error {
	log.Printf("creating database record for clip #%s (%q)...", clip.ID, clip.Filename)

	const query = `
      INSERT INTO clips
        (id, filename, original_name, size_bytes, mime_type, title, description, game, tags, is_private, uploaded_at, views, likes, video_url, storage_key, thumbnail_url, thumbnail_key)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		clip.ID, clip.Filename, clip.OriginalName,
		clip.SizeBytes, clip.MimeType,
		clip.Title, clip.Description, clip.Game,
		clip.Tags, clip.IsPrivate, clip.UploadedAt,
		clip.Views, clip.Likes,
		clip.VideoURL, clip.StorageKey,
		clip.ThumbnailURL, clip.ThumbnailKey,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *ClipRepository) GetByID(ctx context.Context, ID db.UUID) (*model.Clip, error) {
	log.Printf("fetching clip #%s from the database...", ID)

	const query = `
      SELECT ` + clipColumns + `
      FROM clips
      WHERE id = ?
    `
	row := r.db.QueryRowContext(ctx, query, ID)
	clip, err := scanClip(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, clipService.ErrClipNotFound
		}
		return nil, err
	}

	return clip, nil
}

func (r *ClipRepository) List(ctx context.Context) ([]*model.Clip, error) {
	log.Print("listing all clips from the database, newest first...")

	const query = `
      SELECT ` + clipColumns + `
      FROM clips
      ORDER BY uploaded_at DESC
    `
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	var clips []*model.Clip
	for rows.Next() {
		clip, err := scanClip(rows)
		if err != nil {
			return nil, err
		}
		clips = append(clips, clip)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return clips, nil
}

func (r *ClipRepository) Update(ctx context.Context, clip *model.Clip) error {
	log.Printf("updating database record for clip #%s...", clip.ID)

	const query = `
      UPDATE clips
      SET
        title         = ?,
        description   = ?,
        game          = ?,
        tags          = ?,
        is_private    = ?,
        views         = ?,
        likes         = ?,
        video_url     = ?,
        thumbnail_url = ?,
        thumbnail_key = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		clip.Title,
		clip.Description,
		clip.Game,
		clip.Tags,
		clip.IsPrivate,
		clip.Views,
		clip.Likes,
		clip.VideoURL,
		clip.ThumbnailURL,
		clip.ThumbnailKey,
		clip.ID, // WHERE clause
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *ClipRepository) UpdateVideoURL(ctx context.Context, ID db.UUID, videoURL string) error {
	log.Printf("rewriting video_url for clip #%s...", ID)

	const query = `UPDATE clips SET video_url = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, videoURL, ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return clipService.ErrClipNotFound
	}

	return nil
}

func (r *ClipRepository) Delete(ctx context.Context, ID db.UUID) error {
	log.Printf("deleting database record for clip #%s...", ID)

	const query = `DELETE FROM clips WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return clipService.ErrClipNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanClip(row rowScanner) (*model.Clip, error) {
	var clip model.Clip
	if err := row.Scan(
		&clip.ID, &clip.Filename, &clip.OriginalName,
		&clip.SizeBytes, &clip.MimeType,
		&clip.Title, &clip.Description, &clip.Game,
		&clip.Tags, &clip.IsPrivate, &clip.UploadedAt,
		&clip.Views, &clip.Likes,
		&clip.VideoURL, &clip.StorageKey,
		&clip.ThumbnailURL, &clip.ThumbnailKey,
	); err != nil {
		return nil, err
	}
	return &clip, nil
}
