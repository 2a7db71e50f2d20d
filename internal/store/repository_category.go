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

type categoryRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *categoryRepository) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	cols := make([]string, 0, len(categoryColumns)+1)
	for _, c := range categoryColumns {
		cols = append(cols, "c."+c)
	}

	query, args, err := r.db.builder().
		Select(append(cols, "COUNT(v.id)")...).
		From(categoriesTable + " c").
		LeftJoin(vaultItemsTable + " v ON v.category_id = c.id").
		Where(sq.Eq{"c.user_id": userID}).
		GroupBy(cols...).
		OrderBy("c.name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.ListCategories").Msg("error selecting categories")
		return nil, r.db.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	categories := make([]models.Category, 0)
	for rows.Next() {
		c, err := scanCategory(rows, true)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		categories = append(categories, c)
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.wrap(ErrScanningRows, err)
	}

	return categories, nil
}

func (r *categoryRepository) GetCategory(ctx context.Context, userID, categoryID int64) (models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(categoryColumns...).
		From(categoriesTable).
		Where(sq.Eq{"id": categoryID, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	c, err := scanCategory(r.db.QueryRowContext(ctx, query, args...), false)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Category{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.GetCategory").Msg("error selecting category")
		return models.Category{}, r.db.wrap(ErrExecutingQuery, err)
	}

	return c, nil
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	query, args, err := r.db.builder().
		Insert(categoriesTable).
		Columns("user_id", "name", "color", "created_at", "updated_at").
		Values(category.UserID, category.Name, category.Color, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&category.ID); err != nil {
		log.Err(err).Str("func", "*categoryRepository.CreateCategory").Msg("error inserting category")
		return models.Category{}, r.db.wrap(ErrExecutingQuery, err)
	}

	category.CreatedAt, category.UpdatedAt = now, now
	return category, nil
}

// CreateCategories inserts all categories for userID in one statement.
func (r *categoryRepository) CreateCategories(ctx context.Context, userID int64, categories []models.Category) error {
	if len(categories) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	qb := r.db.builder().
		Insert(categoriesTable).
		Columns("user_id", "name", "color", "created_at", "updated_at")
	for _, c := range categories {
		qb = qb.Values(userID, c.Name, c.Color, now, now)
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*categoryRepository.CreateCategories").Msg("error inserting categories")
		return r.db.wrap(ErrExecutingStatement, err)
	}

	return nil
}

// DeleteCategory detaches the category's items and deletes it in one
// transaction.
func (r *categoryRepository) DeleteCategory(ctx context.Context, userID, categoryID int64) error {
	log := logger.FromContext(ctx)

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := r.db.builder().
			Update(vaultItemsTable).
			Set("category_id", nil).
			Where(sq.Eq{"category_id": categoryID, "user_id": userID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return r.db.wrap(ErrExecutingStatement, err)
		}

		query, args, err = r.db.builder().
			Delete(categoriesTable).
			Where(sq.Eq{"id": categoryID, "user_id": userID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		return execOne(ctx, r.db, tx, query, args)
	})
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.DeleteCategory").Msg("error deleting category")
	}
	return err
}
