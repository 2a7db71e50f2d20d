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

// userRepository implements [UserRepository] on top of [DB].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns it with ID and timestamps set.
// A duplicate email yields [ErrAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	now := time.Now().UTC()
	query, args, err := r.db.builder().
		Insert(usersTable).
		Columns("name", "email", "password_hash", "image", "created_at", "updated_at").
		Values(user.Name, user.Email, user.PasswordHash, user.Image, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		if r.db.isUniqueViolation(err) {
			return models.User{}, ErrAlreadyExists
		}
		return models.User{}, r.db.wrap(ErrExecutingQuery, err)
	}

	user.CreatedAt, user.UpdatedAt = now, now
	return user, nil
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", sq.Eq{"email": email})
}

func (r *userRepository) FindUserByID(ctx context.Context, id int64) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", sq.Eq{"id": id})
}

func (r *userRepository) findOne(ctx context.Context, fn string, where sq.Eq) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", fn).Msg("error selecting user")
		return models.User{}, r.db.wrap(ErrExecutingQuery, err)
	}

	return user, nil
}

func (r *userRepository) UpdateAvatar(ctx context.Context, userID int64, image string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder().
		Update(usersTable).
		Set("image", image).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = execOne(ctx, r.db, r.db, query, args); err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateAvatar").Msg("error updating avatar")
		return models.User{}, err
	}

	return r.FindUserByID(ctx, userID)
}

// ChangePassword updates the hash and the re-encrypted secrets atomically.
// secrets must cover exactly the user's vault items; anything else aborts
// the change with [ErrVaultChanged] so no item is left sealed under the old
// password. updated_at of vault items is left alone so password age keeps
// reflecting the last real change.
func (r *userRepository) ChangePassword(ctx context.Context, userID int64, passwordHash string, secrets []models.ReencryptedSecret) error {
	log := logger.FromContext(ctx)

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		query, args, err := r.db.builder().
			Update(usersTable).
			Set("password_hash", passwordHash).
			Set("updated_at", time.Now().UTC()).
			Where(sq.Eq{"id": userID}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if err = execOne(ctx, r.db, tx, query, args); err != nil {
			return err
		}

		stored, err := r.vaultItemIDs(ctx, tx, userID)
		if err != nil {
			return err
		}
		if !sameItemIDs(stored, secrets) {
			return ErrVaultChanged
		}

		for _, s := range secrets {
			query, args, err = r.db.builder().
				Update(vaultItemsTable).
				Set("encrypted_password", s.EncryptedPassword).
				Set("password_fingerprint", s.PasswordFingerprint).
				Where(sq.Eq{"id": s.ID, "user_id": userID}).
				ToSql()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if err = execOne(ctx, r.db, tx, query, args); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ChangePassword").Msg("error changing password")
	}
	return err
}

// vaultItemIDs reads the ids of every item owned by userID inside tx.
func (r *userRepository) vaultItemIDs(ctx context.Context, tx *sql.Tx, userID int64) (map[int64]struct{}, error) {
	query, args, err := r.db.builder().
		Select("id").
		From(vaultItemsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, r.db.wrap(ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids[id] = struct{}{}
	}
	if err = rows.Err(); err != nil {
		return nil, r.db.wrap(ErrScanningRows, err)
	}
	return ids, nil
}

// sameItemIDs reports whether the distinct ids of secrets equal stored.
func sameItemIDs(stored map[int64]struct{}, secrets []models.ReencryptedSecret) bool {
	seen := make(map[int64]struct{}, len(secrets))
	for _, s := range secrets {
		if _, ok := stored[s.ID]; !ok {
			return false
		}
		seen[s.ID] = struct{}{}
	}
	return len(seen) == len(stored)
}

// DeleteUserCascade deletes, in order, the user's vault items, categories,
// activity, settings and finally the user row.
func (r *userRepository) DeleteUserCascade(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	err := r.db.withTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{vaultItemsTable, categoriesTable, activityTable, settingsTable} {
			query, args, err := r.db.builder().Delete(table).Where(sq.Eq{"user_id": userID}).ToSql()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return r.db.wrap(ErrExecutingStatement, err)
			}
		}

		query, args, err := r.db.builder().Delete(usersTable).Where(sq.Eq{"id": userID}).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		return execOne(ctx, r.db, tx, query, args)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUserCascade").Msg("error deleting account")
	}
	return err
}

// execOne runs a statement that must affect exactly one row; zero rows
// yields [ErrNotFound].
func execOne(ctx context.Context, db *DB, q queryer, query string, args []any) error {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return db.wrap(ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return db.wrap(ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
