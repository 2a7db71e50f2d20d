// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the vault server over its REST API.
//
// [ServerAdapter] hides the transport from the client services. Non-2xx
// responses are mapped by mapHTTPError to the sentinel errors in errors.go,
// so callers branch with [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client's view of the vault server. Every call except
// Register, Login, Generate, Strength and Version needs a session token set
// with SetToken; Register and Login store it themselves.
type ServerAdapter interface {
	SetToken(token string)
	Token() string

	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error

	ListItems(ctx context.Context, filter models.VaultFilter) ([]models.VaultItem, error)
	GetItem(ctx context.Context, itemID int64) (models.VaultItem, error)
	CreateItem(ctx context.Context, req models.VaultItemRequest) (models.VaultItem, error)
	UpdateItem(ctx context.Context, itemID int64, req models.VaultItemRequest) (models.VaultItem, error)
	DeleteItem(ctx context.Context, itemID int64) error

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, req models.CategoryRequest) (models.Category, error)
	DeleteCategory(ctx context.Context, categoryID int64) error

	ListActivity(ctx context.Context, limit int) ([]models.ActivityLog, error)
	SecurityReport(ctx context.Context) (models.SecurityReport, error)

	Generate(ctx context.Context, policy models.PasswordPolicy) (models.GeneratedPassword, error)
	Strength(ctx context.Context, password string) (models.StrengthAssessment, error)
	Version(ctx context.Context) (models.VersionInfo, error)
}
