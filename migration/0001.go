package migration

import (
	"context"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/pkg/crypto"
	"github.com/chirp-lab/backend/pkg/xcontext"
)

// migrate0001 seeds demo users on an empty database. The first one keeps the
// well known "test" api key used by the bundled frontend.
func migrate0001(ctx context.Context) error {
	var count int64
	if err := xcontext.DB(ctx).Model(&entity.User{}).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return nil
	}

	users := []entity.User{
		{Name: "test", APIKey: "test"},
		{Name: "Alice", APIKey: crypto.GenerateRandomString()},
		{Name: "Bob", APIKey: crypto.GenerateRandomString()},
	}

	return xcontext.DB(ctx).Create(&users).Error
}
