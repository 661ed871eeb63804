package domain

import (
	"context"
	"errors"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/internal/model"
	"github.com/chirp-lab/backend/internal/repository"
	"github.com/chirp-lab/backend/pkg/errorx"
	"github.com/chirp-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type UserDomain interface {
	GetMe(context.Context, *model.GetMeRequest) (*model.GetMeResponse, error)
	GetByID(context.Context, *model.GetUserRequest) (*model.GetUserResponse, error)
	Follow(context.Context, *model.FollowUserRequest) (*model.FollowUserResponse, error)
	Unfollow(context.Context, *model.UnfollowUserRequest) (*model.UnfollowUserResponse, error)
}

type userDomain struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
}

func NewUserDomain(
	userRepo repository.UserRepository,
	followRepo repository.FollowRepository,
) *userDomain {
	return &userDomain{userRepo: userRepo, followRepo: followRepo}
}

func (d *userDomain) GetMe(
	ctx context.Context, req *model.GetMeRequest,
) (*model.GetMeResponse, error) {
	user, err := d.loadProfile(ctx, xcontext.RequestUserID(ctx))
	if err != nil {
		return nil, err
	}

	return &model.GetMeResponse{User: *user}, nil
}

func (d *userDomain) GetByID(
	ctx context.Context, req *model.GetUserRequest,
) (*model.GetUserResponse, error) {
	if req.ID <= 0 {
		return nil, errorx.New(errorx.Validation, "User ID must be greater than 0")
	}

	user, err := d.loadProfile(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	return &model.GetUserResponse{User: *user}, nil
}

func (d *userDomain) loadProfile(ctx context.Context, userID int64) (*model.User, error) {
	user, err := d.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "User with ID: %d not found", userID)
		}

		xcontext.Logger(ctx).Errorf("Cannot get user: %v", err)
		return nil, errorx.Unknown
	}

	followers, err := d.userRepo.GetFollowers(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get followers: %v", err)
		return nil, errorx.Unknown
	}

	following, err := d.userRepo.GetFollowing(ctx, userID)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get following: %v", err)
		return nil, errorx.Unknown
	}

	profile := model.ConvertUser(user, followers, following)
	return &profile, nil
}

func (d *userDomain) Follow(
	ctx context.Context, req *model.FollowUserRequest,
) (*model.FollowUserResponse, error) {
	if req.ID <= 0 {
		return nil, errorx.New(errorx.Validation, "User ID must be greater than 0")
	}

	userID := xcontext.RequestUserID(ctx)
	if req.ID == userID {
		xcontext.Logger(ctx).Warnf("User with ID: %d try to following self", userID)
		return nil, errorx.New(errorx.ValueError, "You can't follow yourself")
	}

	err := d.followRepo.Create(ctx, &entity.Follow{
		FollowingUserID: req.ID,
		FollowedUserID:  userID,
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, errorx.New(errorx.Conflict, "%v", err)
		}

		xcontext.Logger(ctx).Errorf("Cannot create follow: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.Logger(ctx).Infof("User with ID: %d following user with ID: %d", userID, req.ID)
	return &model.FollowUserResponse{}, nil
}

func (d *userDomain) Unfollow(
	ctx context.Context, req *model.UnfollowUserRequest,
) (*model.UnfollowUserResponse, error) {
	if req.ID <= 0 {
		return nil, errorx.New(errorx.Validation, "User ID must be greater than 0")
	}

	userID := xcontext.RequestUserID(ctx)
	if err := d.followRepo.Delete(ctx, req.ID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Warnf(
				"User with ID: %d wasn't followed by user with ID: %d", req.ID, userID)
			return nil, errorx.New(errorx.NotFound, "Follow not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot delete follow: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.Logger(ctx).Infof("User with ID: %d stop following user with ID: %d", userID, req.ID)
	return &model.UnfollowUserResponse{}, nil
}
