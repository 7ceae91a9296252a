// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-customer-portal/internal/logger"
	"github.com/MKhiriev/go-customer-portal/internal/utils"
	"github.com/MKhiriev/go-customer-portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpPortalAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL, hashKey string) *httpPortalAdapter {
	t.Helper()
	a, err := NewHTTPPortalAdapter(serverURL, 5*time.Second, hashKey, logger.Nop())
	require.NoError(t, err)
	return a.(*httpPortalAdapter)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.MessageResponse{Message: message})
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	creds := models.Credentials{Email: "john@example.com", Password: "secret"}
	profile := models.CustomerProfile{Name: "John", Surname: "Doe", Code: "ABC123", Email: creds.Email}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/customer/login", r.URL.Path)
		assert.Empty(t, r.Header.Get(hashHeader))

		var got models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, creds, got)

		writeJSON(w, http.StatusOK, models.LoginResponse{Message: "User logged successfully", Token: "jwt-token", Customer: profile})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.Login(context.Background(), creds)

	require.NoError(t, err)
	assert.Equal(t, profile, got)
	assert.Equal(t, "jwt-token", a.Token())
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		message string
		wantErr error
	}{
		{name: "missing fields", status: http.StatusBadRequest, message: "The password and email are required", wantErr: ErrBadRequest},
		{name: "unknown email", status: http.StatusNotFound, message: "Email not registered", wantErr: ErrNotFound},
		{name: "server failure", status: http.StatusInternalServerError, message: "Internal Server Error", wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeMessage(w, tt.status, tt.message)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, "")
			_, err := a.Login(context.Background(), models.Credentials{Email: "a@b.c", Password: "p"})

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), tt.message)
			assert.Empty(t, a.Token())
		})
	}
}

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	req := models.RegisterRequest{Name: "John", Surname: "Doe", Email: "john@example.com", Password: "secret"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customer/register", r.URL.Path)
		writeJSON(w, http.StatusCreated, models.RegisterResponse{
			Message:  "Customer registered successfully",
			Customer: models.Customer{ID: "c1", Name: req.Name, Surname: req.Surname, Email: req.Email, Code: "ABC123"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.Register(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "c1", got.ID)
	assert.Equal(t, "ABC123", got.Code)
	assert.Empty(t, a.Token(), "register does not log in")
}

func TestRegister_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "missing fields answer 402", status: http.StatusPaymentRequired, wantErr: ErrBadRequest},
		{name: "email exists answers 401", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeMessage(w, tt.status, "nope")
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, "")
			_, err := a.Register(context.Background(), models.RegisterRequest{})

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── Integrity header ────────────────────────────────────────────────────────

func TestJSONRequest_SignsBody(t *testing.T) {
	const hashKey = "integrity-key"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Equal(t, utils.HashString(string(body), hashKey), r.Header.Get(hashHeader))
		writeJSON(w, http.StatusCreated, models.RegisterResponse{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, hashKey)
	_, err := a.Register(context.Background(), models.RegisterRequest{Name: "J", Surname: "D", Email: "j@d.c", Password: "p"})

	require.NoError(t, err)
}

// ── Protected calls ─────────────────────────────────────────────────────────

func TestProtectedCalls_RequireToken(t *testing.T) {
	a := newTestAdapter(t, "http://127.0.0.1:1", "")
	ctx := context.Background()

	_, err := a.GetProfile(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	_, err = a.ListPackages(ctx)
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.ErrorIs(t, a.UpdatePassword(ctx, models.PasswordChange{}), ErrNotAuthenticated)
	_, err = a.UpdateProfile(ctx, models.ProfileUpdate{})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.ErrorIs(t, a.DeleteAccount(ctx), ErrNotAuthenticated)
}

func TestGetProfile(t *testing.T) {
	profile := models.CustomerProfile{Name: "John", Email: "john@example.com"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/customer/getInfo", r.URL.Path)
		assert.Equal(t, "Bearer jwt-token", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, profile)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	a.SetToken("  jwt-token ")

	got, err := a.GetProfile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestListPackages(t *testing.T) {
	packages := []models.Package{
		{Tracking: "TRK1", Weight: "1kg", StatusID: 3, Status: models.Status{ID: 3, Name: "in_transit"}},
		{Tracking: "TRK2", Weight: "2kg", StatusID: 5, Status: models.Status{ID: 5, Name: "delivered"}},
	}

	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    []models.Package
		wantErr error
	}{
		{
			name: "packages",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusOK, packages)
			},
			want: packages,
		},
		{
			name: "no packages",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeMessage(w, http.StatusAccepted, "You don't have packages")
			},
			want: []models.Package{},
		},
		{
			name: "expired token",
			handler: func(w http.ResponseWriter, r *http.Request) {
				writeMessage(w, http.StatusUnauthorized, "token is expired or invalid")
			},
			wantErr: ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, "")
			a.SetToken("jwt-token")

			got, err := a.ListPackages(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUpdatePassword(t *testing.T) {
	change := models.PasswordChange{Before: "old", After: "new"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/customer/updatePassword", r.URL.Path)

		var got models.PasswordChange
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		if got.Before != change.Before {
			writeMessage(w, http.StatusUnauthorized, "Incorrect Password")
			return
		}
		writeMessage(w, http.StatusCreated, "Password was updated")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	a.SetToken("jwt-token")

	require.NoError(t, a.UpdatePassword(context.Background(), change))

	err := a.UpdatePassword(context.Background(), models.PasswordChange{Before: "wrong", After: "new"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Incorrect Password")
}

func TestUpdateProfile(t *testing.T) {
	email := "new@example.com"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)

		var got map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, map[string]any{"email": email}, got, "absent fields are not sent")

		writeJSON(w, http.StatusOK, models.UpdateProfileResponse{
			Message:  "Account updated",
			Customer: models.CustomerProfile{Name: "John", Email: email},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	a.SetToken("jwt-token")

	got, err := a.UpdateProfile(context.Background(), models.ProfileUpdate{Email: &email})

	require.NoError(t, err)
	assert.Equal(t, email, got.Email)
}

func TestDeleteAccount(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantErr   error
		wantToken string
	}{
		{name: "deleted", status: http.StatusOK, wantToken: ""},
		{name: "pending packages", status: http.StatusBadRequest, wantErr: ErrBadRequest, wantToken: "jwt-token"},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound, wantToken: "jwt-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/customer/deleteProfile", r.URL.Path)
				writeMessage(w, tt.status, "msg")
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL, "")
			a.SetToken("jwt-token")

			err := a.DeleteAccount(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantToken, a.Token())
		})
	}
}

func TestServerVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		io.WriteString(w, "v1.2.3")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	got, err := a.ServerVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", got)
}

func TestMapHTTPError_PlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL, "")
	_, err := a.ServerVersion(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
	assert.Contains(t, err.Error(), http.StatusText(http.StatusTeapot))
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewHTTPPortalAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPPortalAdapter("", time.Second, "", logger.Nop())

	require.Error(t, err)
	assert.Nil(t, a)
}
