package entity

import (
	"context"

	"github.com/chirp-lab/backend/pkg/xcontext"
)

func MigrateTable(ctx context.Context) error {
	return xcontext.DB(ctx).AutoMigrate(
		&User{},
		&Follow{},
		&Tweet{},
		&Like{},
		&TweetMedia{},
		&Migration{},
	)
}
