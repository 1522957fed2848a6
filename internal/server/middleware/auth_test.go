package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClaims struct {
	userID uuid.UUID
}

func (c stubClaims) GetUserID() uuid.UUID { return c.userID }

type stubValidator struct {
	userID uuid.UUID
	err    error
}

func (v stubValidator) ValidateToken(token string) (UserIDGetter, error) {
	if v.err != nil {
		return nil, v.err
	}
	return stubClaims{userID: v.userID}, nil
}

func authProtected(t *testing.T, validator TokenValidator) (http.Handler, *uuid.UUID) {
	t.Helper()
	var seen uuid.UUID
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := GetUserID(r)
		require.NoError(t, err)
		seen = id
		w.WriteHeader(http.StatusOK)
	})
	return AuthMiddleware(validator)(inner), &seen
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	handler, seen := authProtected(t, stubValidator{userID: userID})

	req := httptest.NewRequest(http.MethodGet, "/resumes", nil)
	req.Header.Set("Authorization", "Bearer some.jwt.token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, userID, *seen)
}

func TestAuthMiddleware_HeaderFormats(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   int
	}{
		{name: "missing header", header: "", want: http.StatusUnauthorized},
		{name: "no scheme", header: "some.jwt.token", want: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic some.jwt.token", want: http.StatusUnauthorized},
		{name: "scheme only", header: "Bearer", want: http.StatusUnauthorized},
		{name: "trailing space only", header: "Bearer ", want: http.StatusUnauthorized},
		{name: "extra parts", header: "Bearer a b", want: http.StatusUnauthorized},
		{name: "lowercase scheme", header: "bearer some.jwt.token", want: http.StatusOK},
		{name: "uppercase scheme", header: "BEARER some.jwt.token", want: http.StatusOK},
	}

	handler, _ := authProtected(t, stubValidator{userID: uuid.New()})
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/resumes", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)
			assert.Equal(t, tc.want, rr.Code)
		})
	}
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	handler, _ := authProtected(t, stubValidator{err: errors.New("token expired")})

	req := httptest.NewRequest(http.MethodGet, "/resumes", nil)
	req.Header.Set("Authorization", "Bearer some.jwt.token")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetUserID_Unauthenticated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/resumes", nil)

	_, err := GetUserID(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "user ID not found")
}
