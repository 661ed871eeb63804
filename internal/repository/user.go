package repository

import (
	"context"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/pkg/xcontext"
)

type UserRepository interface {
	Create(ctx context.Context, data *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByAPIKey(ctx context.Context, apiKey string) (*entity.User, error)
	GetFollowers(ctx context.Context, userID int64) ([]entity.User, error)
	GetFollowing(ctx context.Context, userID int64) ([]entity.User, error)
	Count(ctx context.Context) (int64, error)
}

type userRepository struct{}

func NewUserRepository() *userRepository {
	return &userRepository{}
}

func (r *userRepository) Create(ctx context.Context, data *entity.User) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

func (r *userRepository) GetByAPIKey(ctx context.Context, apiKey string) (*entity.User, error) {
	var record entity.User
	if err := xcontext.DB(ctx).Where("api_key=?", apiKey).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// GetFollowers returns the users following userID.
func (r *userRepository) GetFollowers(ctx context.Context, userID int64) ([]entity.User, error) {
	var result []entity.User
	err := xcontext.DB(ctx).
		Joins("join follows on follows.followed_user_id=users.id").
		Where("follows.following_user_id=?", userID).
		Order("users.id").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

// GetFollowing returns the users userID follows.
func (r *userRepository) GetFollowing(ctx context.Context, userID int64) ([]entity.User, error) {
	var result []entity.User
	err := xcontext.DB(ctx).
		Joins("join follows on follows.following_user_id=users.id").
		Where("follows.followed_user_id=?", userID).
		Order("users.id").
		Find(&result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := xcontext.DB(ctx).Model(&entity.User{}).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
