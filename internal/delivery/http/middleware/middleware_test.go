package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-admin/config"
	"clinic-admin/internal/domain/entity"
	"clinic-admin/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var ok = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name   string
		role   entity.UserRole
		inject bool
		want   int
	}{
		{"admin passes", entity.RoleAdmin, true, http.StatusNoContent},
		{"user is forbidden", entity.RoleUser, true, http.StatusForbidden},
		{"missing viewer", "", false, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
			if tt.inject {
				req = req.WithContext(WithViewer(req.Context(), uuid.New(), "x@clinic.test", tt.role))
			}
			rec := httptest.NewRecorder()

			RequireAdmin(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestAuthenticateRejectsBadHeaders(t *testing.T) {
	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "s", AccessExpiry: time.Minute, RefreshExpiry: time.Hour})
	refresh, _, err := jwtService.GenerateRefreshToken(uuid.New(), "a@b.c", "user")
	assert.NoError(t, err)

	m := NewAuthMiddleware(jwtService, nil)

	for name, header := range map[string]string{
		"missing":       "",
		"not bearer":    "Token abc",
		"garbage token": "Bearer abc",
		"refresh token": "Bearer " + refresh,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()

			m.Authenticate(ok).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/views/employees/session", nil)
	rec := httptest.NewRecorder()

	NewCORSMiddleware().Handle(ok).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
}

func TestContextAccessors(t *testing.T) {
	id := uuid.New()
	ctx := WithViewer(httptest.NewRequest(http.MethodGet, "/", nil).Context(), id, "v@clinic.test", entity.RoleUser)

	gotID, found := GetUserIDFromContext(ctx)
	assert.True(t, found)
	assert.Equal(t, id, gotID)

	role, found := GetRoleFromContext(ctx)
	assert.True(t, found)
	assert.Equal(t, entity.RoleUser, role)

	_, found = GetTokenIDFromContext(ctx)
	assert.False(t, found)
}
