package http

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

type fakeAuthSvc struct {
	registerFn       func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn          func(ctx context.Context, req models.LoginRequest) (models.User, error)
	getUserFn        func(ctx context.Context, userID int64) (models.User, error)
	changePasswordFn func(ctx context.Context, userID int64, req models.ChangePasswordRequest) error
	deleteAccountFn  func(ctx context.Context, userID int64, req models.DeleteAccountRequest) error
	updateAvatarFn   func(ctx context.Context, userID int64, req models.AvatarRequest) (models.User, error)
	parseTokenFn     func(ctx context.Context, token string) (models.Token, error)
}

func (f *fakeAuthSvc) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if f.registerFn != nil {
		return f.registerFn(ctx, req)
	}
	return models.User{ID: 1}, nil
}

func (f *fakeAuthSvc) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if f.loginFn != nil {
		return f.loginFn(ctx, req)
	}
	return models.User{ID: 1}, nil
}

func (f *fakeAuthSvc) GetUser(ctx context.Context, userID int64) (models.User, error) {
	if f.getUserFn != nil {
		return f.getUserFn(ctx, userID)
	}
	return models.User{ID: userID}, nil
}

func (f *fakeAuthSvc) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	if f.changePasswordFn != nil {
		return f.changePasswordFn(ctx, userID, req)
	}
	return nil
}

func (f *fakeAuthSvc) DeleteAccount(ctx context.Context, userID int64, req models.DeleteAccountRequest) error {
	if f.deleteAccountFn != nil {
		return f.deleteAccountFn(ctx, userID, req)
	}
	return nil
}

func (f *fakeAuthSvc) UpdateAvatar(ctx context.Context, userID int64, req models.AvatarRequest) (models.User, error) {
	if f.updateAvatarFn != nil {
		return f.updateAvatarFn(ctx, userID, req)
	}
	return models.User{ID: userID, Image: req.Image}, nil
}

func (f *fakeAuthSvc) CreateToken(_ context.Context, user models.User) (models.Token, error) {
	return models.Token{SignedString: "signed-token", UserID: user.ID}, nil
}

// ParseToken accepts "valid-token" as user 42 unless parseTokenFn is set.
func (f *fakeAuthSvc) ParseToken(ctx context.Context, token string) (models.Token, error) {
	if f.parseTokenFn != nil {
		return f.parseTokenFn(ctx, token)
	}
	if token != "valid-token" {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{UserID: 42}, nil
}

type fakeVaultSvc struct {
	listFn   func(ctx context.Context, filter models.VaultFilter) ([]models.VaultItem, error)
	getFn    func(ctx context.Context, userID, itemID int64) (models.VaultItem, error)
	createFn func(ctx context.Context, userID int64, req models.VaultItemRequest) (models.VaultItem, error)
	updateFn func(ctx context.Context, userID, itemID int64, req models.VaultItemRequest) (models.VaultItem, error)
	deleteFn func(ctx context.Context, userID, itemID int64) error
}

func (f *fakeVaultSvc) List(ctx context.Context, filter models.VaultFilter) ([]models.VaultItem, error) {
	if f.listFn != nil {
		return f.listFn(ctx, filter)
	}
	return []models.VaultItem{}, nil
}

func (f *fakeVaultSvc) Get(ctx context.Context, userID, itemID int64) (models.VaultItem, error) {
	if f.getFn != nil {
		return f.getFn(ctx, userID, itemID)
	}
	return models.VaultItem{ID: itemID, UserID: userID}, nil
}

func (f *fakeVaultSvc) Create(ctx context.Context, userID int64, req models.VaultItemRequest) (models.VaultItem, error) {
	if f.createFn != nil {
		return f.createFn(ctx, userID, req)
	}
	return req.ToVaultItem(userID), nil
}

func (f *fakeVaultSvc) Update(ctx context.Context, userID, itemID int64, req models.VaultItemRequest) (models.VaultItem, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, userID, itemID, req)
	}
	item := req.ToVaultItem(userID)
	item.ID = itemID
	return item, nil
}

func (f *fakeVaultSvc) Delete(ctx context.Context, userID, itemID int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, userID, itemID)
	}
	return nil
}

type fakeCategorySvc struct {
	listFn   func(ctx context.Context, userID int64) ([]models.Category, error)
	createFn func(ctx context.Context, userID int64, req models.CategoryRequest) (models.Category, error)
	deleteFn func(ctx context.Context, userID, categoryID int64) error
}

func (f *fakeCategorySvc) List(ctx context.Context, userID int64) ([]models.Category, error) {
	if f.listFn != nil {
		return f.listFn(ctx, userID)
	}
	return nil, nil
}

func (f *fakeCategorySvc) Create(ctx context.Context, userID int64, req models.CategoryRequest) (models.Category, error) {
	if f.createFn != nil {
		return f.createFn(ctx, userID, req)
	}
	return models.Category{ID: 1, UserID: userID, Name: req.Name, Color: req.Color}, nil
}

func (f *fakeCategorySvc) Delete(ctx context.Context, userID, categoryID int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, userID, categoryID)
	}
	return nil
}

type fakeActivitySvc struct {
	listFn func(ctx context.Context, userID int64, limit int) ([]models.ActivityLog, error)
}

func (f *fakeActivitySvc) Log(context.Context, int64, models.ActivityAction, string) {}

func (f *fakeActivitySvc) List(ctx context.Context, userID int64, limit int) ([]models.ActivityLog, error) {
	if f.listFn != nil {
		return f.listFn(ctx, userID, limit)
	}
	return nil, nil
}

type fakeSettingsSvc struct {
	getFn    func(ctx context.Context, userID int64) (models.UserSettings, error)
	updateFn func(ctx context.Context, userID int64, update models.SettingsUpdate) (models.UserSettings, error)
}

func (f *fakeSettingsSvc) Get(ctx context.Context, userID int64) (models.UserSettings, error) {
	if f.getFn != nil {
		return f.getFn(ctx, userID)
	}
	return models.DefaultUserSettings(userID), nil
}

func (f *fakeSettingsSvc) Update(ctx context.Context, userID int64, update models.SettingsUpdate) (models.UserSettings, error) {
	if f.updateFn != nil {
		return f.updateFn(ctx, userID, update)
	}
	settings := models.DefaultUserSettings(userID)
	update.Apply(&settings)
	return settings, nil
}

type fakeSecuritySvc struct {
	reportFn func(ctx context.Context, userID int64) (models.SecurityReport, error)
}

func (f *fakeSecuritySvc) Report(ctx context.Context, userID int64) (models.SecurityReport, error) {
	if f.reportFn != nil {
		return f.reportFn(ctx, userID)
	}
	return models.SecurityReport{Score: 100, Label: "Excellent"}, nil
}

type fakeGeneratorSvc struct {
	generateFn func(ctx context.Context, policy models.PasswordPolicy) (models.GeneratedPassword, error)
}

func (f *fakeGeneratorSvc) Generate(ctx context.Context, policy models.PasswordPolicy) (models.GeneratedPassword, error) {
	if f.generateFn != nil {
		return f.generateFn(ctx, policy)
	}
	return models.GeneratedPassword{Password: "generated"}, nil
}

func (f *fakeGeneratorSvc) Strength(_ context.Context, password string) models.StrengthAssessment {
	return models.StrengthAssessment{Score: len(password) % 5}
}

type fakeAppInfoSvc struct{}

func (fakeAppInfoSvc) GetAppVersion(context.Context) string { return "v1.2.3" }

func (fakeAppInfoSvc) GetVersionInfo(context.Context) models.VersionInfo {
	return models.VersionInfo{Version: "v1.2.3", Date: "N/A", Commit: "N/A"}
}

// newFakeServices returns services where every fake uses its defaults.
func newFakeServices() *service.Services {
	return &service.Services{
		AuthService:      &fakeAuthSvc{},
		VaultService:     &fakeVaultSvc{},
		CategoryService:  &fakeCategorySvc{},
		ActivityService:  &fakeActivitySvc{},
		SettingsService:  &fakeSettingsSvc{},
		SecurityService:  &fakeSecuritySvc{},
		GeneratorService: &fakeGeneratorSvc{},
		AppInfoService:   fakeAppInfoSvc{},
	}
}

func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	return NewHandler(services, logger.Nop())
}
