package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestActivityService_LogAttachesRequestMeta(t *testing.T) {
	_, m := newStoreMocks(t)
	svc := NewActivityService(m.activity, logger.Nop())
	ctx := utils.WithRequestMeta(context.Background(), utils.RequestMeta{IPAddress: "203.0.113.7", UserAgent: "vault-cli"})

	m.activity.EXPECT().InsertActivity(ctx, models.ActivityLog{
		UserID:      1,
		Action:      models.ActionLogin,
		Description: "User logged in",
		IPAddress:   "203.0.113.7",
		UserAgent:   "vault-cli",
	}).Return(nil)

	svc.Log(ctx, 1, models.ActionLogin, "User logged in")
}

func TestActivityService_LogSwallowsErrors(t *testing.T) {
	_, m := newStoreMocks(t)
	svc := NewActivityService(m.activity, logger.Nop())

	m.activity.EXPECT().InsertActivity(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	assert.NotPanics(t, func() {
		svc.Log(context.Background(), 1, models.ActionLogin, "User logged in")
	})
}

func TestActivityService_ListLimits(t *testing.T) {
	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{"default", 0, DefaultActivityLimit},
		{"negative", -4, DefaultActivityLimit},
		{"explicit", 10, 10},
		{"capped", 10000, MaxActivityLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, m := newStoreMocks(t)
			svc := NewActivityService(m.activity, logger.Nop())
			m.activity.EXPECT().ListActivity(gomock.Any(), int64(1), tt.want).Return([]models.ActivityLog{}, nil)

			entries, err := svc.List(context.Background(), 1, tt.requested)
			require.NoError(t, err)
			assert.NotNil(t, entries)
		})
	}
}
