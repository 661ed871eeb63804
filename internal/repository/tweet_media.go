package repository

import (
	"context"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/pkg/xcontext"
)

type TweetMediaRepository interface {
	Create(ctx context.Context, data *entity.TweetMedia) error
	GetByID(ctx context.Context, id int64) (*entity.TweetMedia, error)
	LinkToTweet(ctx context.Context, mediaIDs []int64, tweetID int64) (int64, error)
}

type tweetMediaRepository struct{}

func NewTweetMediaRepository() *tweetMediaRepository {
	return &tweetMediaRepository{}
}

func (r *tweetMediaRepository) Create(ctx context.Context, data *entity.TweetMedia) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *tweetMediaRepository) GetByID(ctx context.Context, id int64) (*entity.TweetMedia, error) {
	var record entity.TweetMedia
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// LinkToTweet points the given unattached media rows at a tweet and returns
// the number of rows actually updated. Missing ids and medias already linked
// to another tweet are not rejected here, they just do not count; the caller
// must compare the count against the requested ids.
func (r *tweetMediaRepository) LinkToTweet(ctx context.Context, mediaIDs []int64, tweetID int64) (int64, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.TweetMedia{}).
		Where("id IN (?) AND tweet_id IS NULL", mediaIDs).
		Update("tweet_id", tweetID)

	return tx.RowsAffected, tx.Error
}
