// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.ClientConfig{ServerAddress: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in, want string
		wantErr  bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://vault.example.com/", want: "https://vault.example.com"},
		{in: "  ", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		got, err := normalizeBaseURL(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice@example.com", req.Email)

		writeJSON(t, w, http.StatusOK, models.AuthResponse{Token: "tok-123", User: models.User{ID: 1, Email: req.Email}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	out, err := a.Login(context.Background(), models.LoginRequest{Email: "alice@example.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), out.User.ID)
	assert.Equal(t, "tok-123", a.Token())
}

func TestRegister_HeaderTokenWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "Bearer from-header")
		writeJSON(t, w, http.StatusCreated, models.AuthResponse{Token: "from-body"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.RegisterRequest{Name: "Al", Email: "a@b.co", Password: "12345678"})

	require.NoError(t, err)
	assert.Equal(t, "from-header", a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, models.ErrorResponse{Error: "CONFLICT", Message: "User already exists"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.RegisterRequest{})

	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "User already exists")
	assert.Empty(t, a.Token())
}

func TestListItems_SendsBearerAndFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "4", r.URL.Query().Get("categoryId"))
		assert.Equal(t, "true", r.URL.Query().Get("isFavorite"))

		writeJSON(t, w, http.StatusOK, models.VaultListResponse{Items: []models.VaultItem{{ID: 1, Title: "GitHub"}}, Total: 1})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken(" tok ")
	catID := int64(4)

	items, err := a.ListItems(context.Background(), models.VaultFilter{CategoryID: &catID, FavoriteOnly: true})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "GitHub", items[0].Title)
}

func TestDeleteItem_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/vault/9", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, models.ErrorResponse{Error: "NOT_FOUND", Message: "The requested resource was not found"})
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteItem(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGenerate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generator", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, models.GeneratedPassword{Password: "x", Strength: models.StrengthAssessment{Score: 4}})
	}))
	defer srv.Close()

	out, err := newTestAdapter(t, srv.URL).Generate(context.Background(), models.DefaultPasswordPolicy())
	require.NoError(t, err)
	assert.Equal(t, 4, out.Strength.Score)
}

func TestMapHTTPError_StatusCodes(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusInternalServerError, ErrInternalServerError},
		{http.StatusServiceUnavailable, ErrServerUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).SecurityReport(context.Background())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
