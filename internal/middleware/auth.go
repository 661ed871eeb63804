package middleware

import (
	"context"
	"errors"

	"github.com/chirp-lab/backend/internal/repository"
	"github.com/chirp-lab/backend/pkg/errorx"
	"github.com/chirp-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type APIKeyVerifier struct {
	userRepo repository.UserRepository
}

func NewAPIKeyVerifier(userRepo repository.UserRepository) *APIKeyVerifier {
	return &APIKeyVerifier{userRepo: userRepo}
}

// Middleware resolves the Api-Key header to a user and puts the user id and
// api key into the context for downstream handlers.
func (v *APIKeyVerifier) Middleware() func(ctx context.Context) (context.Context, error) {
	return func(ctx context.Context) (context.Context, error) {
		apiKey := xcontext.HTTPRequest(ctx).Header.Get("Api-Key")
		if apiKey == "" {
			return ctx, errorx.New(errorx.Validation, "Missing Api-Key header")
		}

		user, err := v.userRepo.GetByAPIKey(ctx, apiKey)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ctx, errorx.New(errorx.NotFound, "User not found")
			}

			xcontext.Logger(ctx).Errorf("Cannot get user by api key: %v", err)
			return ctx, errorx.Unknown
		}

		ctx = xcontext.WithRequestAPIKey(ctx, apiKey)
		ctx = xcontext.WithRequestUserID(ctx, user.ID)
		return ctx, nil
	}
}
