package domain

import (
	"context"
	"testing"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/internal/model"
	"github.com/chirp-lab/backend/internal/repository"
	"github.com/chirp-lab/backend/pkg/errorx"
	"github.com/chirp-lab/backend/pkg/storage"
	"github.com/chirp-lab/backend/pkg/testutil"
	"github.com/chirp-lab/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func newTweetDomain(fileStorage storage.Storage) *tweetDomain {
	return &tweetDomain{
		tweetRepo:   repository.NewTweetRepository(),
		likeRepo:    repository.NewLikeRepository(),
		mediaRepo:   repository.NewTweetMediaRepository(),
		fileStorage: fileStorage,
	}
}

func Test_tweetDomain_Create(t *testing.T) {
	ctx := testutil.MockContext()
	tweetDomain := newTweetDomain(&testutil.MockStorage{})
	mediaRepo := repository.NewTweetMediaRepository()

	user, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	ctx = xcontext.WithRequestUserID(ctx, user.ID)

	media1, err := testutil.SampleMedia(ctx, nil)
	require.NoError(t, err)
	media2, err := testutil.SampleMedia(ctx, nil)
	require.NoError(t, err)

	// Create with two medias successfully.
	resp, err := tweetDomain.Create(ctx, &model.CreateTweetRequest{
		TweetData:     "hello",
		TweetMediaIDs: []int64{media1.ID, media2.ID},
	})
	require.NoError(t, err)
	require.NotZero(t, resp.TweetID)

	got, err := mediaRepo.GetByID(ctx, media1.ID)
	require.NoError(t, err)
	require.Equal(t, resp.TweetID, got.TweetID.Int64)

	// A missing media id rolls the whole tweet back.
	_, err = tweetDomain.Create(ctx, &model.CreateTweetRequest{
		TweetData:     "broken",
		TweetMediaIDs: []int64{9999},
	})
	require.Error(t, err)

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.MediaNotFound, errx.Code)

	var count int64
	require.NoError(t, xcontext.DB(ctx).Model(&entity.Tweet{}).Count(&count).Error)
	require.EqualValues(t, 1, count)

	// A media already attached to another tweet cannot be claimed again.
	_, err = tweetDomain.Create(ctx, &model.CreateTweetRequest{
		TweetData:     "stolen media",
		TweetMediaIDs: []int64{media1.ID},
	})
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.MediaNotFound, errx.Code)

	require.NoError(t, xcontext.DB(ctx).Model(&entity.Tweet{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func Test_tweetDomain_Delete(t *testing.T) {
	ctx := testutil.MockContext()

	var deleted []string
	tweetDomain := newTweetDomain(&testutil.MockStorage{
		DeleteFunc: func(_ context.Context, path string) error {
			deleted = append(deleted, path)
			return nil
		},
	})

	owner, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	stranger, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	media, err := testutil.SampleMedia(ctx, nil)
	require.NoError(t, err)

	ownerCtx := xcontext.WithRequestUserID(ctx, owner.ID)
	resp, err := tweetDomain.Create(ownerCtx, &model.CreateTweetRequest{
		TweetData:     "to be deleted",
		TweetMediaIDs: []int64{media.ID},
	})
	require.NoError(t, err)

	// A stranger cannot delete the tweet.
	strangerCtx := xcontext.WithRequestUserID(ctx, stranger.ID)
	_, err = tweetDomain.Delete(strangerCtx, &model.DeleteTweetRequest{ID: resp.TweetID})
	require.Error(t, err)

	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.NotFound, errx.Code)

	// The owner can, and the media file goes with it.
	_, err = tweetDomain.Delete(ownerCtx, &model.DeleteTweetRequest{ID: resp.TweetID})
	require.NoError(t, err)
	require.Equal(t, []string{media.Image}, deleted)

	var count int64
	require.NoError(t, xcontext.DB(ctx).Model(&entity.Tweet{}).Count(&count).Error)
	require.Zero(t, count)
}

func Test_tweetDomain_Delete_storageFailure(t *testing.T) {
	ctx := testutil.MockContext()
	tweetDomain := newTweetDomain(&testutil.MockStorage{})

	owner, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	media, err := testutil.SampleMedia(ctx, nil)
	require.NoError(t, err)

	ownerCtx := xcontext.WithRequestUserID(ctx, owner.ID)
	resp, err := tweetDomain.Create(ownerCtx, &model.CreateTweetRequest{
		TweetData:     "keep me",
		TweetMediaIDs: []int64{media.ID},
	})
	require.NoError(t, err)

	// The default mock storage fails every delete, the tweet must survive.
	_, err = tweetDomain.Delete(ownerCtx, &model.DeleteTweetRequest{ID: resp.TweetID})
	require.Error(t, err)

	var count int64
	require.NoError(t, xcontext.DB(ctx).Model(&entity.Tweet{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func Test_tweetDomain_LikeAndUnlike(t *testing.T) {
	ctx := testutil.MockContext()
	tweetDomain := newTweetDomain(&testutil.MockStorage{})

	author, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	reader, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	tweet, err := testutil.SampleTweet(ctx, &entity.Tweet{AuthorID: author.ID})
	require.NoError(t, err)

	readerCtx := xcontext.WithRequestUserID(ctx, reader.ID)
	authorCtx := xcontext.WithRequestUserID(ctx, author.ID)

	// Like successfully.
	_, err = tweetDomain.Like(readerCtx, &model.LikeTweetRequest{ID: tweet.ID})
	require.NoError(t, err)

	// Cannot like twice.
	_, err = tweetDomain.Like(readerCtx, &model.LikeTweetRequest{ID: tweet.ID})
	require.Error(t, err)
	var errx errorx.Error
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.Conflict, errx.Code)

	// Cannot like own tweet.
	_, err = tweetDomain.Like(authorCtx, &model.LikeTweetRequest{ID: tweet.ID})
	require.EqualError(t, err, "You can't like own tweet")

	// Liking a missing tweet is a 404 that keeps the ValueError wire string.
	_, err = tweetDomain.Like(readerCtx, &model.LikeTweetRequest{ID: 9999})
	require.EqualError(t, err, "Tweet with ID: 9999 not found")
	require.ErrorAs(t, err, &errx)
	require.Equal(t, errorx.LikeTargetNotFound, errx.Code)
	require.Equal(t, "ValueError", errx.Code.ErrorType())
	require.Equal(t, 404, errx.Code.HTTPStatus())

	// Unlike successfully, then the like is gone.
	_, err = tweetDomain.Unlike(readerCtx, &model.UnlikeTweetRequest{ID: tweet.ID})
	require.NoError(t, err)
	_, err = tweetDomain.Unlike(readerCtx, &model.UnlikeTweetRequest{ID: tweet.ID})
	require.EqualError(t, err, "Like not found")
}

func Test_tweetDomain_GetFeed(t *testing.T) {
	ctx := testutil.MockContext()
	tweetDomain := newTweetDomain(&testutil.MockStorage{})

	user1, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)
	user2, err := testutil.SampleUser(ctx, nil)
	require.NoError(t, err)

	tweet1, err := testutil.SampleTweet(ctx, &entity.Tweet{AuthorID: user1.ID})
	require.NoError(t, err)
	tweet2, err := testutil.SampleTweet(ctx, &entity.Tweet{AuthorID: user2.ID})
	require.NoError(t, err)

	user1Ctx := xcontext.WithRequestUserID(ctx, user1.ID)
	_, err = tweetDomain.Like(user1Ctx, &model.LikeTweetRequest{ID: tweet2.ID})
	require.NoError(t, err)

	resp, err := tweetDomain.GetFeed(ctx, &model.GetTweetsRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Tweets, 2)
	require.Equal(t, tweet2.ID, resp.Tweets[0].ID)
	require.Equal(t, tweet1.ID, resp.Tweets[1].ID)
	require.Equal(t, user2.ID, resp.Tweets[0].Author.ID)
	require.Equal(t, []model.Liker{{UserID: user1.ID, Name: user1.Name}}, resp.Tweets[0].Likes)
	require.NotNil(t, resp.Tweets[0].Attachments)

	// Offset is a 1-based page number.
	resp, err = tweetDomain.GetFeed(ctx, &model.GetTweetsRequest{Limit: 1, Offset: 2})
	require.NoError(t, err)
	require.Len(t, resp.Tweets, 1)
	require.Equal(t, tweet1.ID, resp.Tweets[0].ID)

	// A lone limit or offset applies no window at all.
	resp, err = tweetDomain.GetFeed(ctx, &model.GetTweetsRequest{Limit: 1})
	require.NoError(t, err)
	require.Len(t, resp.Tweets, 2)

	resp, err = tweetDomain.GetFeed(ctx, &model.GetTweetsRequest{Offset: 2})
	require.NoError(t, err)
	require.Len(t, resp.Tweets, 2)

	_, err = tweetDomain.GetFeed(ctx, &model.GetTweetsRequest{Limit: -1})
	require.EqualError(t, err, "Limit and offset must not be negative")
}
