package repository

import (
	"context"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type FeedFilter struct {
	// Offset and Limit are row-based. Non-positive values apply no window.
	Offset int
	Limit  int
}

type TweetRepository interface {
	Create(ctx context.Context, data *entity.Tweet) error
	GetByID(ctx context.Context, id int64) (*entity.Tweet, error)
	GetByIDAndAuthor(ctx context.Context, id, authorID int64) (*entity.Tweet, error)
	GetFeed(ctx context.Context, filter FeedFilter) ([]entity.Tweet, error)
	Delete(ctx context.Context, id int64) error
}

type tweetRepository struct{}

func NewTweetRepository() *tweetRepository {
	return &tweetRepository{}
}

func (r *tweetRepository) Create(ctx context.Context, data *entity.Tweet) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *tweetRepository) GetByID(ctx context.Context, id int64) (*entity.Tweet, error) {
	var record entity.Tweet
	if err := xcontext.DB(ctx).Where("id=?", id).Take(&record).Error; err != nil {
		return nil, err
	}

	return &record, nil
}

// GetByIDAndAuthor loads a tweet with its medias, filtered by owner. The
// media paths must be captured in the same read that establishes ownership,
// deleting the tweet row removes the only pointer to them.
func (r *tweetRepository) GetByIDAndAuthor(ctx context.Context, id, authorID int64) (*entity.Tweet, error) {
	var record entity.Tweet
	err := xcontext.DB(ctx).
		Preload("Medias").
		Where("id=? AND author_id=?", id, authorID).
		Take(&record).Error
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// GetFeed returns tweets ordered by like count descending, then by tweet id
// ascending as a deterministic tie-break. Tweets without likes still appear,
// the join is an outer one.
func (r *tweetRepository) GetFeed(ctx context.Context, filter FeedFilter) ([]entity.Tweet, error) {
	tx := xcontext.DB(ctx).
		Model(&entity.Tweet{}).
		Select("tweets.*").
		Preload("Medias").
		Preload("Author").
		Preload("Likes.User").
		Joins("left join likes on likes.tweet_id=tweets.id").
		Group("tweets.id").
		Order("count(likes.tweet_id) desc, tweets.id asc")

	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	if filter.Offset > 0 {
		tx = tx.Offset(filter.Offset)
	}

	var result []entity.Tweet
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

// Delete removes a tweet and its dependent rows as explicit statements,
// children first, so the behavior does not depend on engine-level cascade
// support.
func (r *tweetRepository) Delete(ctx context.Context, id int64) error {
	db := xcontext.DB(ctx)

	if err := db.Where("tweet_id=?", id).Delete(&entity.Like{}).Error; err != nil {
		return err
	}

	if err := db.Where("tweet_id=?", id).Delete(&entity.TweetMedia{}).Error; err != nil {
		return err
	}

	tx := db.Where("id=?", id).Delete(&entity.Tweet{})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}
