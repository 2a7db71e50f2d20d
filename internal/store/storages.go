package store

import "github.com/MKhiriev/go-pass-vault/internal/logger"

// Storages bundles every repository backed by a single *DB.
type Storages struct {
	UserRepository     UserRepository
	VaultRepository    VaultRepository
	CategoryRepository CategoryRepository
	ActivityRepository ActivityRepository
	SettingsRepository SettingsRepository
	Pinger             Pinger
}

func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		VaultRepository:    NewVaultRepository(db, log),
		CategoryRepository: NewCategoryRepository(db, log),
		ActivityRepository: NewActivityRepository(db, log),
		SettingsRepository: NewSettingsRepository(db, log),
		Pinger:             db,
	}
}
