package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoot(auth *fakeAuth) RootModel {
	ctx := context.Background()
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageLogin:    NewLoginModel(ctx, auth),
		pageRegister: NewRegisterModel(ctx, auth),
	}
	return NewRootModel(pages, pageMenu, models.NewAppBuildInfo("v1.2.3", "2026-10-01", "abc123"))
}

func TestRootModel_MenuNavigatesToLogin(t *testing.T) {
	root := newRoot(&fakeAuth{})

	m, cmd := root.Update(keyType(tea.KeyEnter))
	nav, ok := run(t, cmd).(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageLogin, nav.Page)

	m, _ = m.Update(nav)
	_, isLogin := m.(RootModel).current.(*LoginModel)
	assert.True(t, isLogin)
}

func TestRootModel_MenuNavigatesToRegister(t *testing.T) {
	root := newRoot(&fakeAuth{})

	m, _ := root.Update(keyType(tea.KeyDown))
	_, cmd := m.Update(keyType(tea.KeyEnter))

	nav := run(t, cmd).(NavigateTo)
	assert.Equal(t, pageRegister, nav.Page)
}

func TestRootModel_BuildInfoToggle(t *testing.T) {
	root := newRoot(&fakeAuth{})

	m, _ := root.Update(keyRunes("v"))
	view := m.View()
	assert.Contains(t, view, "v1.2.3")
	assert.Contains(t, view, "abc123")

	m, _ = m.Update(keyType(tea.KeyEsc))
	assert.NotContains(t, m.View(), "abc123")
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	m, cmd := newRoot(&fakeAuth{}).Update(keyType(tea.KeyCtrlC))

	assert.True(t, m.(RootModel).quitByUser)
	assert.IsType(t, tea.QuitMsg{}, run(t, cmd))
}

func TestRootModel_SuccessfulLoginQuits(t *testing.T) {
	user := models.User{ID: 7, Name: "Ann", Email: "ann@example.com"}

	m, cmd := newRoot(&fakeAuth{}).Update(LoginResult{User: user})

	assert.Equal(t, user, m.(RootModel).user)
	assert.False(t, m.(RootModel).quitByUser)
	assert.IsType(t, tea.QuitMsg{}, run(t, cmd))
}

func TestLoginModel(t *testing.T) {
	tests := []struct {
		name      string
		email     string
		password  string
		loginErr  error
		wantCall  bool
		wantError string
	}{
		{
			name:     "submits credentials",
			email:    "ann@example.com",
			password: "secret-pass",
			wantCall: true,
		},
		{
			name:      "requires both fields",
			email:     "ann@example.com",
			wantError: "Email and master password are required",
		},
		{
			name:      "shows rejected credentials",
			email:     "ann@example.com",
			password:  "wrong",
			loginErr:  service.ErrInvalidCredentials,
			wantCall:  true,
			wantError: "Invalid email or password",
		},
		{
			name:      "shows unavailable server",
			email:     "ann@example.com",
			password:  "secret-pass",
			loginErr:  adapter.ErrServerUnavailable,
			wantCall:  true,
			wantError: "No network or the server is unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got models.LoginRequest
			auth := &fakeAuth{
				LoginFunc: func(_ context.Context, req models.LoginRequest) (models.User, error) {
					got = req
					return models.User{ID: 1}, tt.loginErr
				},
			}

			var m tea.Model = NewLoginModel(context.Background(), auth)
			m = typeText(t, m, tt.email)
			m, _ = m.Update(keyType(tea.KeyTab))
			m = typeText(t, m, tt.password)

			m, cmd := m.Update(keyType(tea.KeyEnter))
			if tt.wantCall {
				result := run(t, cmd).(LoginResult)
				assert.Equal(t, tt.email, got.Email)
				assert.Equal(t, tt.password, got.Password)
				if tt.loginErr != nil {
					assert.ErrorIs(t, result.Err, tt.loginErr)
				} else {
					assert.NoError(t, result.Err)
				}
				m, _ = m.Update(result)
			} else {
				assert.Nil(t, cmd)
			}

			if tt.wantError != "" {
				assert.Contains(t, m.View(), tt.wantError)
			}
		})
	}
}

func TestRegisterModel(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		confirm   string
		wantCall  bool
		wantError string
	}{
		{name: "matching passwords", password: "long-password", confirm: "long-password", wantCall: true},
		{name: "mismatched passwords", password: "long-password", confirm: "other", wantError: "Passwords do not match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			auth := &fakeAuth{
				RegisterFunc: func(_ context.Context, req models.RegisterRequest) (models.User, error) {
					called = true
					assert.Equal(t, "Ann", req.Name)
					assert.Equal(t, "ann@example.com", req.Email)
					return models.User{ID: 3, Name: req.Name}, nil
				},
			}

			var m tea.Model = NewRegisterModel(context.Background(), auth)
			m = typeText(t, m, "Ann")
			m, _ = m.Update(keyType(tea.KeyTab))
			m = typeText(t, m, "ann@example.com")
			m, _ = m.Update(keyType(tea.KeyTab))
			m = typeText(t, m, tt.password)
			m, _ = m.Update(keyType(tea.KeyTab))
			m = typeText(t, m, tt.confirm)

			m, cmd := m.Update(keyType(tea.KeyEnter))
			if tt.wantCall {
				result := run(t, cmd).(LoginResult)
				require.NoError(t, result.Err)
				assert.Equal(t, int64(3), result.User.ID)
				assert.True(t, called)
				return
			}
			assert.Nil(t, cmd)
			assert.False(t, called)
			assert.Contains(t, m.View(), tt.wantError)
		})
	}
}
