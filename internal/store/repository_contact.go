// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-folio/internal/logger"
	"github.com/MKhiriev/go-folio/models"
)

const contactSubmissionsTable = "contact_submissions"

// contactRepository is the SQL implementation of [ContactRepository] over
// the contact_submissions table.
type contactRepository struct {
	logger *logger.Logger
	db     *DB
	now    func() time.Time
}

// NewContactRepository constructs a [ContactRepository] backed by db.
func NewContactRepository(db *DB, logger *logger.Logger) ContactRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating contact repository")
	return &contactRepository{
		db:     db,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// SaveSubmission implements [ContactRepository]. Timestamps are set here so
// both dialects store the same values.
func (r *contactRepository) SaveSubmission(ctx context.Context, s models.ContactSubmission) (models.ContactSubmission, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	s.CreatedAt, s.UpdatedAt = now, now
	if s.Status == "" {
		s.Status = models.SubmissionPending
	}

	query, args, err := r.db.builder.
		Insert(contactSubmissionsTable).
		Columns("public_id", "name", "email", "message", "status", "created_at", "updated_at").
		Values(s.PublicID, s.Name, s.Email, s.Message, string(s.Status), s.CreatedAt, s.UpdatedAt).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.ContactSubmission{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	attempts := 0
	err = r.db.withRetry(ctx, func() error {
		attempts++
		return r.db.QueryRowContext(ctx, query, args...).Scan(&s.ID)
	})
	// An earlier attempt may have committed before reporting the error.
	if attempts > 1 && isUniqueViolation(err) {
		if id, lookupErr := r.idByPublicID(ctx, s.PublicID); lookupErr == nil {
			log.Debug().Str("public_id", s.PublicID).Msg("insert committed by an earlier attempt")
			s.ID, err = id, nil
		}
	}
	switch {
	case err == nil:
		return s, nil
	case isUniqueViolation(err):
		return models.ContactSubmission{}, ErrSubmissionAlreadyExists
	case errors.Is(err, sql.ErrNoRows):
		log.Err(err).Str("func", "*contactRepository.SaveSubmission").Msg("insert returned no id")
		return models.ContactSubmission{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	default:
		log.Err(err).Str("func", "*contactRepository.SaveSubmission").Msg("error inserting submission")
		return models.ContactSubmission{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (r *contactRepository) idByPublicID(ctx context.Context, publicID string) (int64, error) {
	query, args, err := r.db.builder.
		Select("id").
		From(contactSubmissionsTable).
		Where(sq.Eq{"public_id": publicID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// MarkSent implements [ContactRepository].
func (r *contactRepository) MarkSent(ctx context.Context, publicID, messageID string) error {
	return r.updateStatus(ctx, publicID, sq.Eq{
		"status":         string(models.SubmissionSent),
		"message_id":     messageID,
		"failure_reason": nil,
	})
}

// MarkFailed implements [ContactRepository].
func (r *contactRepository) MarkFailed(ctx context.Context, publicID, reason string) error {
	return r.updateStatus(ctx, publicID, sq.Eq{
		"status":         string(models.SubmissionFailed),
		"failure_reason": reason,
	})
}

func (r *contactRepository) updateStatus(ctx context.Context, publicID string, set sq.Eq) error {
	log := logger.FromContext(ctx)

	set["updated_at"] = r.now()
	query, args, err := r.db.builder.
		Update(contactSubmissionsTable).
		SetMap(set).
		Where(sq.Eq{"public_id": publicID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var res sql.Result
	err = r.db.withRetry(ctx, func() error {
		var execErr error
		res, execErr = r.db.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.updateStatus").Str("public_id", publicID).Msg("error updating submission")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrSubmissionNotFound
	}

	return nil
}
