package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

type vaultRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		db:     db,
		logger: logger,
	}
}

func (r *vaultRepository) selectItems() sq.SelectBuilder {
	return r.db.builder().
		Select(vaultItemColumns...).
		From(vaultItemsTable + " v").
		LeftJoin(categoriesTable + " c ON c.id = v.category_id")
}

func (r *vaultRepository) ListItems(ctx context.Context, filter models.VaultFilter) ([]models.VaultItem, error) {
	log := logger.FromContext(ctx)

	qb := r.selectItems().Where(sq.Eq{"v.user_id": filter.UserID})
	if filter.CategoryID != nil {
		qb = qb.Where(sq.Eq{"v.category_id": *filter.CategoryID})
	}
	if filter.FavoriteOnly {
		qb = qb.Where(sq.Eq{"v.is_favorite": true})
	}

	query, args, err := qb.OrderBy("v.updated_at DESC", "v.id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.ListItems").Msg("error selecting vault items")
		return nil, r.db.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.VaultItem, 0)
	for rows.Next() {
		item, err := scanVaultItem(rows)
		if err != nil {
			log.Err(err).Str("func", "*vaultRepository.ListItems").Msg("error scanning vault item")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.wrap(ErrScanningRows, err)
	}

	return items, nil
}

func (r *vaultRepository) GetItem(ctx context.Context, userID, itemID int64) (models.VaultItem, error) {
	return r.getItem(ctx, r.db, userID, itemID)
}

func (r *vaultRepository) getItem(ctx context.Context, q queryer, userID, itemID int64) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.selectItems().
		Where(sq.Eq{"v.id": itemID, "v.user_id": userID}).
		ToSql()
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	item, err := scanVaultItem(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultItem{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.GetItem").Msg("error selecting vault item")
		return models.VaultItem{}, r.db.wrap(ErrExecutingQuery, err)
	}

	return item, nil
}

// CreateItem inserts item and returns the stored row with Category loaded.
func (r *vaultRepository) CreateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	query, args, err := r.db.builder().
		Insert(vaultItemsTable).
		Columns("user_id", "title", "username", "encrypted_password", "password_fingerprint",
			"password_strength", "website", "notes", "category_id", "is_favorite", "created_at", "updated_at").
		Values(item.UserID, item.Title, item.Username, item.EncryptedPassword, item.PasswordFingerprint,
			nullableInt(item.PasswordStrength), item.Website, item.Notes, nullableInt64(item.CategoryID),
			item.IsFavorite, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.VaultItem
	err = r.db.withTx(ctx, func(tx *sql.Tx) error {
		var id int64
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return r.db.wrap(ErrExecutingQuery, err)
		}

		var err error
		created, err = r.getItem(ctx, tx, item.UserID, id)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.CreateItem").Msg("error inserting vault item")
		return models.VaultItem{}, err
	}

	return created, nil
}

// UpdateItem overwrites every mutable column of item and bumps updated_at.
func (r *vaultRepository) UpdateItem(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Update(vaultItemsTable).
		Set("title", item.Title).
		Set("username", item.Username).
		Set("encrypted_password", item.EncryptedPassword).
		Set("password_fingerprint", item.PasswordFingerprint).
		Set("password_strength", nullableInt(item.PasswordStrength)).
		Set("website", item.Website).
		Set("notes", item.Notes).
		Set("category_id", nullableInt64(item.CategoryID)).
		Set("is_favorite", item.IsFavorite).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": item.ID, "user_id": item.UserID}).
		ToSql()
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.VaultItem
	err = r.db.withTx(ctx, func(tx *sql.Tx) error {
		if err := execOne(ctx, r.db, tx, query, args); err != nil {
			return err
		}

		var err error
		updated, err = r.getItem(ctx, tx, item.UserID, item.ID)
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*vaultRepository.UpdateItem").Msg("error updating vault item")
		return models.VaultItem{}, err
	}

	return updated, nil
}

func (r *vaultRepository) DeleteItem(ctx context.Context, userID, itemID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Delete(vaultItemsTable).
		Where(sq.Eq{"id": itemID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = execOne(ctx, r.db, r.db, query, args); err != nil {
		log.Err(err).Str("func", "*vaultRepository.DeleteItem").Msg("error deleting vault item")
		return err
	}

	return nil
}
