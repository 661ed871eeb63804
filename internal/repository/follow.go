package repository

import (
	"context"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type FollowRepository interface {
	Create(ctx context.Context, data *entity.Follow) error
	Delete(ctx context.Context, followingUserID, followedUserID int64) error
}

type followRepository struct{}

func NewFollowRepository() *followRepository {
	return &followRepository{}
}

func (r *followRepository) Create(ctx context.Context, data *entity.Follow) error {
	return xcontext.DB(ctx).Create(data).Error
}

// Delete removes a follow edge. It returns gorm.ErrRecordNotFound when there
// was nothing to remove.
func (r *followRepository) Delete(ctx context.Context, followingUserID, followedUserID int64) error {
	tx := xcontext.DB(ctx).
		Where("following_user_id=? AND followed_user_id=?", followingUserID, followedUserID).
		Delete(&entity.Follow{})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
