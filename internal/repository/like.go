package repository

import (
	"context"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type LikeRepository interface {
	Create(ctx context.Context, data *entity.Like) error
	Delete(ctx context.Context, userID, tweetID int64) error
}

type likeRepository struct{}

func NewLikeRepository() *likeRepository {
	return &likeRepository{}
}

func (r *likeRepository) Create(ctx context.Context, data *entity.Like) error {
	return xcontext.DB(ctx).Create(data).Error
}

// Delete removes a like. It returns gorm.ErrRecordNotFound when the user had
// not liked the tweet.
func (r *likeRepository) Delete(ctx context.Context, userID, tweetID int64) error {
	tx := xcontext.DB(ctx).
		Where("user_id=? AND tweet_id=?", userID, tweetID).
		Delete(&entity.Like{})

	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
