package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/gigledger/internal/domain"
)

func TestMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jwtService := NewJWTService(testSecret)
	profiles := NewMockProfileResolver(ctrl)
	token, _ := jwtService.GenerateJWT(1, time.Now().Add(time.Hour))
	client := &domain.Profile{ID: 1, FirstName: "Harry", LastName: "Potter", Type: domain.ProfileTypeClient}

	tests := []struct {
		name         string
		header       string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:   "Profile resolved",
			header: "Bearer " + token,
			prepareMock: func() {
				profiles.EXPECT().GetProfile(gomock.Any(), 1).Return(client, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Missing header",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Not a bearer token",
			header:       "Basic dXNlcjpwYXNz",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "Invalid token",
			header:       "Bearer invalid.token.string",
			prepareMock:  func() {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Profile no longer exists",
			header: "Bearer " + token,
			prepareMock: func() {
				profiles.EXPECT().GetProfile(gomock.Any(), 1).Return(nil, nil)
			},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:   "Profile lookup fails",
			header: "Bearer " + token,
			prepareMock: func() {
				profiles.EXPECT().GetProfile(gomock.Any(), 1).Return(nil, errors.New("db error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			var seen *domain.Profile
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = ProfileFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/contracts", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			Middleware(jwtService, profiles)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Equal(t, client, seen)
			} else {
				assert.Nil(t, seen)
			}
		})
	}
}

func TestProfileFromContext(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := ProfileFromContext(r.Context())
	assert.False(t, ok)

	profile := &domain.Profile{ID: 3}
	got, ok := ProfileFromContext(WithProfile(r.Context(), profile))
	assert.True(t, ok)
	assert.Equal(t, profile, got)
}
