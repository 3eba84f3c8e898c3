package auth

import (
	"context"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/GlebRadaev/gigledger/internal/domain"
	"github.com/GlebRadaev/gigledger/pkg/utils"
)

//go:generate mockgen -source=middleware.go -destination=mock_middleware.go -package=auth

type ContextKey string

const ProfileKey ContextKey = "profile"

// ProfileResolver loads the profile a token was issued for.
type ProfileResolver interface {
	GetProfile(ctx context.Context, id int) (*domain.Profile, error)
}

// Middleware authenticates the bearer token and stores the caller's profile
// in the request context.
func Middleware(tokens JWTServiceInterface, profiles ProfileResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := tokens.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			profile, err := profiles.GetProfile(r.Context(), claims.ProfileID)
			if err != nil {
				zap.L().Error("can't resolve caller profile", zap.Int("profileID", claims.ProfileID), zap.Error(err))
				utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if profile == nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithProfile(r.Context(), profile)))
		})
	}
}

func WithProfile(ctx context.Context, profile *domain.Profile) context.Context {
	return context.WithValue(ctx, ProfileKey, profile)
}

func ProfileFromContext(ctx context.Context) (*domain.Profile, bool) {
	profile, ok := ctx.Value(ProfileKey).(*domain.Profile)
	return profile, ok && profile != nil
}
