package repository_test

import (
	"testing"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/internal/repository"
	"github.com/chirp-lab/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func Test_tweetRepository_GetFeed(t *testing.T) {
	ctx := testutil.MockContext()
	tweetRepo := repository.NewTweetRepository()
	likeRepo := repository.NewLikeRepository()

	user1, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	user2, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	tweet1, err := testutil.SampleTweet(ctx, &entity.Tweet{AuthorID: user1.ID})
	require.NoError(t, err)
	tweet2, err := testutil.SampleTweet(ctx, &entity.Tweet{AuthorID: user1.ID})
	require.NoError(t, err)
	tweet3, err := testutil.SampleTweet(ctx, &entity.Tweet{AuthorID: user2.ID})
	require.NoError(t, err)

	// tweet2 gets two likes, tweet3 one, tweet1 none.
	require.NoError(t, likeRepo.Create(ctx, &entity.Like{UserID: user1.ID, TweetID: tweet2.ID}))
	require.NoError(t, likeRepo.Create(ctx, &entity.Like{UserID: user2.ID, TweetID: tweet2.ID}))
	require.NoError(t, likeRepo.Create(ctx, &entity.Like{UserID: user1.ID, TweetID: tweet3.ID}))

	feed, err := tweetRepo.GetFeed(ctx, repository.FeedFilter{})
	require.NoError(t, err)
	require.Len(t, feed, 3)
	require.Equal(t, tweet2.ID, feed[0].ID)
	require.Equal(t, tweet3.ID, feed[1].ID)
	require.Equal(t, tweet1.ID, feed[2].ID)

	// Author and likers are loaded alongside the tweets.
	require.Equal(t, user1.ID, feed[0].Author.ID)
	require.Len(t, feed[0].Likes, 2)
	require.NotEmpty(t, feed[0].Likes[0].User.Name)

	// A window cuts the ranked feed.
	feed, err = tweetRepo.GetFeed(ctx, repository.FeedFilter{Limit: 2, Offset: 1})
	require.NoError(t, err)
	require.Len(t, feed, 2)
	require.Equal(t, tweet3.ID, feed[0].ID)
	require.Equal(t, tweet1.ID, feed[1].ID)

	feed, err = tweetRepo.GetFeed(ctx, repository.FeedFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, feed, 1)
	require.Equal(t, tweet1.ID, feed[0].ID)
}

func Test_tweetMediaRepository_LinkToTweet(t *testing.T) {
	ctx := testutil.MockContext()
	mediaRepo := repository.NewTweetMediaRepository()

	tweet, err := testutil.SampleTweet(ctx, nil)
	require.NoError(t, err)
	media1, err := testutil.SampleMedia(ctx, nil)
	require.NoError(t, err)
	media2, err := testutil.SampleMedia(ctx, nil)
	require.NoError(t, err)

	linked, err := mediaRepo.LinkToTweet(ctx, []int64{media1.ID, media2.ID}, tweet.ID)
	require.NoError(t, err)
	require.EqualValues(t, 2, linked)

	got, err := mediaRepo.GetByID(ctx, media1.ID)
	require.NoError(t, err)
	require.True(t, got.TweetID.Valid)
	require.Equal(t, tweet.ID, got.TweetID.Int64)

	// Missing ids and medias already owned by another tweet do not count.
	otherTweet, err := testutil.SampleTweet(ctx, nil)
	require.NoError(t, err)
	linked, err = mediaRepo.LinkToTweet(ctx, []int64{media1.ID, 9999}, otherTweet.ID)
	require.NoError(t, err)
	require.EqualValues(t, 0, linked)

	got, err = mediaRepo.GetByID(ctx, media1.ID)
	require.NoError(t, err)
	require.Equal(t, tweet.ID, got.TweetID.Int64)

	media3, err := testutil.SampleMedia(ctx, nil)
	require.NoError(t, err)
	linked, err = mediaRepo.LinkToTweet(ctx, []int64{media3.ID, 9999}, otherTweet.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, linked)
}

func Test_tweetRepository_Delete(t *testing.T) {
	ctx := testutil.MockContext()
	tweetRepo := repository.NewTweetRepository()
	likeRepo := repository.NewLikeRepository()
	mediaRepo := repository.NewTweetMediaRepository()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	tweet, err := testutil.SampleTweet(ctx, nil)
	require.NoError(t, err)
	media, err := testutil.SampleMedia(ctx, nil)
	require.NoError(t, err)

	_, err = mediaRepo.LinkToTweet(ctx, []int64{media.ID}, tweet.ID)
	require.NoError(t, err)
	require.NoError(t, likeRepo.Create(ctx, &entity.Like{UserID: user.ID, TweetID: tweet.ID}))

	require.NoError(t, tweetRepo.Delete(ctx, tweet.ID))

	_, err = tweetRepo.GetByID(ctx, tweet.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	_, err = mediaRepo.GetByID(ctx, media.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = tweetRepo.Delete(ctx, tweet.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func Test_tweetRepository_GetByIDAndAuthor(t *testing.T) {
	ctx := testutil.MockContext()
	tweetRepo := repository.NewTweetRepository()
	mediaRepo := repository.NewTweetMediaRepository()

	owner, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	stranger, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	tweet, err := testutil.SampleTweet(ctx, &entity.Tweet{AuthorID: owner.ID})
	require.NoError(t, err)
	media, err := testutil.SampleMedia(ctx, nil)
	require.NoError(t, err)
	_, err = mediaRepo.LinkToTweet(ctx, []int64{media.ID}, tweet.ID)
	require.NoError(t, err)

	got, err := tweetRepo.GetByIDAndAuthor(ctx, tweet.ID, owner.ID)
	require.NoError(t, err)
	require.Len(t, got.Medias, 1)
	require.Equal(t, media.Image, got.Medias[0].Image)

	_, err = tweetRepo.GetByIDAndAuthor(ctx, tweet.ID, stranger.ID)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
