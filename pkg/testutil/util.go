package testutil

import (
	"context"
	"fmt"

	"github.com/chirp-lab/backend/config"
	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/pkg/logger"
	"github.com/chirp-lab/backend/pkg/xcontext"
	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func MockContext() context.Context {
	// A unique shared-cache name keeps every connection of the pool on the
	// same in-memory database. Foreign keys are enforced so constraint
	// behavior matches mysql.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		Env:      "test",
		LogLevel: "error",
		File: config.FileConfigs{
			MaxSize: 10 << 20,
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(cfg.LogLevel))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}

func MockContextWithUserID(userID int64) context.Context {
	return xcontext.WithRequestUserID(MockContext(), userID)
}
