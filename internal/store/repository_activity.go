package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

type activityRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewActivityRepository(db *DB, logger *logger.Logger) ActivityRepository {
	logger.Debug().Msg("creating activity repository")
	return &activityRepository{
		db:     db,
		logger: logger,
	}
}

func (r *activityRepository) InsertActivity(ctx context.Context, entry models.ActivityLog) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query, args, err := r.db.builder().
		Insert(activityTable).
		Columns("user_id", "action", "description", "ip_address", "user_agent", "created_at").
		Values(entry.UserID, string(entry.Action), entry.Description, entry.IPAddress, entry.UserAgent, createdAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return r.db.wrap(ErrExecutingStatement, err)
	}
	return nil
}

func (r *activityRepository) ListActivity(ctx context.Context, userID int64, limit int) ([]models.ActivityLog, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(activityColumns...).
		From(activityTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*activityRepository.ListActivity").Msg("error selecting activity")
		return nil, r.db.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.ActivityLog, 0, limit)
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, a)
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.wrap(ErrScanningRows, err)
	}

	return entries, nil
}

func (r *activityRepository) PurgeActivityBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := r.db.builder().
		Delete(activityTable).
		Where(sq.Lt{"created_at": cutoff.UTC()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, r.db.wrap(ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, r.db.wrap(ErrExecutingStatement, err)
	}
	return n, nil
}
