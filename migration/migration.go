package migration

import (
	"context"
	"errors"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

// migrations run in order. Append only, never reorder.
var migrations = []func(context.Context) error{
	migrate0000,
	migrate0001,
}

func Migrate(ctx context.Context) error {
	if err := xcontext.DB(ctx).AutoMigrate(&entity.Migration{}); err != nil {
		return err
	}

	current := -1
	var record entity.Migration
	err := xcontext.DB(ctx).Order("version desc").Take(&record).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err == nil {
		current = record.Version
	}

	for version := current + 1; version < len(migrations); version++ {
		xcontext.Logger(ctx).Infof("Applying migration %04d", version)
		if err := migrations[version](ctx); err != nil {
			return err
		}

		if err := xcontext.DB(ctx).Create(&entity.Migration{Version: version}).Error; err != nil {
			return err
		}
	}

	return nil
}
