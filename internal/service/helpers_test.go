package service

import (
	"context"
	"sync"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/models"
)

type storeMocks struct {
	users      *mock.MockUserRepository
	vault      *mock.MockVaultRepository
	categories *mock.MockCategoryRepository
	activity   *mock.MockActivityRepository
	settings   *mock.MockSettingsRepository
}

func newStoreMocks(t *testing.T) (*store.Storages, storeMocks) {
	ctrl := gomock.NewController(t)
	m := storeMocks{
		users:      mock.NewMockUserRepository(ctrl),
		vault:      mock.NewMockVaultRepository(ctrl),
		categories: mock.NewMockCategoryRepository(ctrl),
		activity:   mock.NewMockActivityRepository(ctrl),
		settings:   mock.NewMockSettingsRepository(ctrl),
	}
	return &store.Storages{
		UserRepository:     m.users,
		VaultRepository:    m.vault,
		CategoryRepository: m.categories,
		ActivityRepository: m.activity,
		SettingsRepository: m.settings,
		Pinger:             mock.NewMockPinger(ctrl),
	}, m
}

type loggedActivity struct {
	UserID      int64
	Action      models.ActivityAction
	Description string
}

// recordingActivity is an ActivityService fake that remembers Log calls.
type recordingActivity struct {
	mu      sync.Mutex
	entries []loggedActivity
}

func (r *recordingActivity) Log(_ context.Context, userID int64, action models.ActivityAction, description string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, loggedActivity{UserID: userID, Action: action, Description: description})
}

func (r *recordingActivity) List(context.Context, int64, int) ([]models.ActivityLog, error) {
	return nil, nil
}

func (r *recordingActivity) actions() []models.ActivityAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.ActivityAction, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

func ptr[T any](v T) *T { return &v }
