package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-builder/internal/types"
)

// Resumes are stored with the full canonical record as a JSONB document plus
// denormalized columns for listing. Every query is scoped to the owning user
// so one account can never read another's records.

// CreateResume stores a new record for a user and returns the stored form
func (db *DB) CreateResume(ctx context.Context, userID uuid.UUID, rec types.ResumeRecord) (*types.ResumeRecord, error) {
	rec = rec.Normalize()

	content, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume: %w", err)
	}

	var id uuid.UUID
	var createdAt, updatedAt time.Time
	err = db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, title, content)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		userID, rec.Title, content,
	).Scan(&id, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}

	rec.ID = id
	rec.CreatedAt = createdAt
	rec.UpdatedAt = updatedAt
	return &rec, nil
}

// GetResume retrieves one record by ID for a user; nil when not found
func (db *DB) GetResume(ctx context.Context, userID, resumeID uuid.UUID) (*types.ResumeRecord, error) {
	var content []byte
	var createdAt, updatedAt time.Time
	err := db.pool.QueryRow(ctx,
		`SELECT content, created_at, updated_at
		 FROM resumes WHERE id = $1 AND user_id = $2`,
		resumeID, userID,
	).Scan(&content, &createdAt, &updatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	var rec types.ResumeRecord
	if err := json.Unmarshal(content, &rec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume %s: %w", resumeID, err)
	}
	rec.ID = resumeID
	rec.CreatedAt = createdAt
	rec.UpdatedAt = updatedAt
	return &rec, nil
}

// ListResumes retrieves summaries of a user's records, most recent first
func (db *DB) ListResumes(ctx context.Context, userID uuid.UUID) ([]types.ResumeSummary, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, updated_at
		 FROM resumes WHERE user_id = $1 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var summaries []types.ResumeSummary
	for rows.Next() {
		var s types.ResumeSummary
		if err := rows.Scan(&s.ID, &s.Title, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// UpdateResume replaces a record's content; nil when not found
func (db *DB) UpdateResume(ctx context.Context, userID uuid.UUID, rec types.ResumeRecord) (*types.ResumeRecord, error) {
	resumeID := rec.ID
	rec = rec.Normalize()
	rec.ID = resumeID

	content, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resume: %w", err)
	}

	var createdAt, updatedAt time.Time
	err = db.pool.QueryRow(ctx,
		`UPDATE resumes SET title = $1, content = $2, updated_at = NOW()
		 WHERE id = $3 AND user_id = $4
		 RETURNING created_at, updated_at`,
		rec.Title, content, resumeID, userID,
	).Scan(&createdAt, &updatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}

	rec.CreatedAt = createdAt
	rec.UpdatedAt = updatedAt
	return &rec, nil
}

// DeleteResume removes a record; found reports whether it existed
func (db *DB) DeleteResume(ctx context.Context, userID, resumeID uuid.UUID) (found bool, err error) {
	result, err := db.pool.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND user_id = $2`,
		resumeID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
