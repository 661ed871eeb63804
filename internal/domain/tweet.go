package domain

import (
	"context"
	"errors"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/internal/model"
	"github.com/chirp-lab/backend/internal/repository"
	"github.com/chirp-lab/backend/pkg/errorx"
	"github.com/chirp-lab/backend/pkg/storage"
	"github.com/chirp-lab/backend/pkg/xcontext"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type TweetDomain interface {
	Create(context.Context, *model.CreateTweetRequest) (*model.CreateTweetResponse, error)
	Delete(context.Context, *model.DeleteTweetRequest) (*model.DeleteTweetResponse, error)
	Like(context.Context, *model.LikeTweetRequest) (*model.LikeTweetResponse, error)
	Unlike(context.Context, *model.UnlikeTweetRequest) (*model.UnlikeTweetResponse, error)
	GetFeed(context.Context, *model.GetTweetsRequest) (*model.GetTweetsResponse, error)
}

type tweetDomain struct {
	tweetRepo   repository.TweetRepository
	likeRepo    repository.LikeRepository
	mediaRepo   repository.TweetMediaRepository
	fileStorage storage.Storage
}

func NewTweetDomain(
	tweetRepo repository.TweetRepository,
	likeRepo repository.LikeRepository,
	mediaRepo repository.TweetMediaRepository,
	fileStorage storage.Storage,
) *tweetDomain {
	return &tweetDomain{
		tweetRepo:   tweetRepo,
		likeRepo:    likeRepo,
		mediaRepo:   mediaRepo,
		fileStorage: fileStorage,
	}
}

// Create inserts the tweet and links the referenced medias in one
// transaction. If fewer rows were linked than requested, some media id does
// not exist and everything is rolled back.
func (d *tweetDomain) Create(
	ctx context.Context, req *model.CreateTweetRequest,
) (*model.CreateTweetResponse, error) {
	for _, id := range req.TweetMediaIDs {
		if id <= 0 {
			return nil, errorx.New(errorx.Validation, "Media ID must be greater than 0")
		}
	}

	userID := xcontext.RequestUserID(ctx)
	tweet := &entity.Tweet{Content: req.TweetData, AuthorID: userID}

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	if err := d.tweetRepo.Create(ctx, tweet); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create tweet: %v", err)
		return nil, errorx.Unknown
	}

	if len(req.TweetMediaIDs) > 0 {
		linked, err := d.mediaRepo.LinkToTweet(ctx, req.TweetMediaIDs, tweet.ID)
		if err != nil {
			xcontext.Logger(ctx).Errorf("Cannot link tweet medias: %v", err)
			return nil, errorx.Unknown
		}

		if linked != int64(len(req.TweetMediaIDs)) {
			return nil, errorx.New(errorx.MediaNotFound,
				"Some of tweet media with ID: %v doesn't exist", req.TweetMediaIDs)
		}
	}

	xcontext.WithCommitDBTransaction(ctx)

	xcontext.Logger(ctx).Infof(
		"New tweet with ID: %d was added by user with ID: %d", tweet.ID, userID)
	return &model.CreateTweetResponse{TweetID: tweet.ID}, nil
}

// Delete removes an own tweet together with its likes, media rows, and media
// files. The file removals run concurrently and are all attempted, the first
// error fails the request and rolls the row deletion back.
func (d *tweetDomain) Delete(
	ctx context.Context, req *model.DeleteTweetRequest,
) (*model.DeleteTweetResponse, error) {
	if req.ID <= 0 {
		return nil, errorx.New(errorx.Validation, "Tweet ID must be greater than 0")
	}

	userID := xcontext.RequestUserID(ctx)

	ctx = xcontext.WithDBTransaction(ctx)
	defer xcontext.WithRollbackDBTransaction(ctx)

	tweet, err := d.tweetRepo.GetByIDAndAuthor(ctx, req.ID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.NotFound, "Tweet with ID: %d not found", req.ID)
		}

		xcontext.Logger(ctx).Errorf("Cannot get tweet: %v", err)
		return nil, errorx.Unknown
	}

	if len(tweet.Medias) > 0 {
		var eg errgroup.Group
		for _, media := range tweet.Medias {
			image := media.Image
			eg.Go(func() error {
				return d.fileStorage.Delete(ctx, image)
			})
		}

		if err := eg.Wait(); err != nil {
			xcontext.Logger(ctx).Errorf("Cannot delete tweet media files: %v", err)
			return nil, errorx.Unknown
		}
	}

	if err := d.tweetRepo.Delete(ctx, req.ID); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot delete tweet: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.WithCommitDBTransaction(ctx)

	xcontext.Logger(ctx).Infof(
		"Tweet with ID: %d was deleted by user with ID: %d", req.ID, userID)
	return &model.DeleteTweetResponse{}, nil
}

func (d *tweetDomain) Like(
	ctx context.Context, req *model.LikeTweetRequest,
) (*model.LikeTweetResponse, error) {
	if req.ID <= 0 {
		return nil, errorx.New(errorx.Validation, "Tweet ID must be greater than 0")
	}

	userID := xcontext.RequestUserID(ctx)

	tweet, err := d.tweetRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorx.New(errorx.LikeTargetNotFound,
				"Tweet with ID: %d not found", req.ID)
		}

		xcontext.Logger(ctx).Errorf("Cannot get tweet: %v", err)
		return nil, errorx.Unknown
	}

	if tweet.AuthorID == userID {
		xcontext.Logger(ctx).Warnf(
			"User with ID: %d try to like own tweet with ID: %d", userID, req.ID)
		return nil, errorx.New(errorx.ValueError, "You can't like own tweet")
	}

	if err := d.likeRepo.Create(ctx, &entity.Like{UserID: userID, TweetID: req.ID}); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorx.New(errorx.Conflict, "%v", err)
		}

		xcontext.Logger(ctx).Errorf("Cannot create like: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.Logger(ctx).Infof(
		"Tweet with ID: %d was liked by user with ID: %d", req.ID, userID)
	return &model.LikeTweetResponse{}, nil
}

func (d *tweetDomain) Unlike(
	ctx context.Context, req *model.UnlikeTweetRequest,
) (*model.UnlikeTweetResponse, error) {
	if req.ID <= 0 {
		return nil, errorx.New(errorx.Validation, "Tweet ID must be greater than 0")
	}

	userID := xcontext.RequestUserID(ctx)
	if err := d.likeRepo.Delete(ctx, userID, req.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			xcontext.Logger(ctx).Warnf(
				"Tweet with ID: %d wasn't liked by user with ID: %d", req.ID, userID)
			return nil, errorx.New(errorx.NotFound, "Like not found")
		}

		xcontext.Logger(ctx).Errorf("Cannot delete like: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.Logger(ctx).Infof(
		"Tweet with ID: %d was disliked by user with ID: %d", req.ID, userID)
	return &model.UnlikeTweetResponse{}, nil
}

// GetFeed returns the global ranked feed. The offset parameter is a 1-based
// page number, the effective row offset is (offset-1)*limit. Pagination only
// applies when both limit and offset are non-zero, a lone value returns the
// full feed.
func (d *tweetDomain) GetFeed(
	ctx context.Context, req *model.GetTweetsRequest,
) (*model.GetTweetsResponse, error) {
	if req.Limit < 0 || req.Offset < 0 {
		return nil, errorx.New(errorx.Validation, "Limit and offset must not be negative")
	}

	var filter repository.FeedFilter
	if req.Limit > 0 && req.Offset > 0 {
		filter.Limit = req.Limit
		filter.Offset = (req.Offset - 1) * req.Limit
	}

	tweets, err := d.tweetRepo.GetFeed(ctx, filter)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get feed: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.GetTweetsResponse{Tweets: []model.Tweet{}}
	for i := range tweets {
		resp.Tweets = append(resp.Tweets, model.ConvertTweet(&tweets[i]))
	}

	return resp, nil
}
