package testutil

import (
	"context"
	"reflect"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/internal/repository"
	"github.com/chirp-lab/backend/pkg/crypto"
	"github.com/google/uuid"
)

// SampleUser creates a new user in database with many fields randomized. The
// sample user can be overwritten by non-zero fields of init.
func SampleUser(ctx context.Context, init *entity.User) (entity.User, error) {
	userRepo := repository.NewUserRepository()

	sample := &entity.User{
		Name:   uuid.NewString(),
		APIKey: crypto.GenerateRandomString(),
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := userRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

// SampleTweet creates a new tweet in database. When init carries no author, a
// sample user is created as the author.
func SampleTweet(ctx context.Context, init *entity.Tweet) (entity.Tweet, error) {
	tweetRepo := repository.NewTweetRepository()

	sample := &entity.Tweet{
		Content: uuid.NewString(),
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if sample.AuthorID == 0 {
		author, err := SampleUser(ctx, nil)
		if err != nil {
			return *sample, err
		}
		sample.AuthorID = author.ID
	}

	if err := tweetRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

// SampleMedia creates a new unattached tweet media in database.
func SampleMedia(ctx context.Context, init *entity.TweetMedia) (entity.TweetMedia, error) {
	mediaRepo := repository.NewTweetMediaRepository()

	sample := &entity.TweetMedia{
		Image: "images/sample/" + uuid.NewString() + ".png",
	}

	if init != nil {
		overwriteFields(sample, *init)
	}

	if err := mediaRepo.Create(ctx, sample); err != nil {
		return *sample, err
	}
	return *sample, nil
}

func overwriteFields[T any](origin *T, overwrite T) {
	originValue := reflect.ValueOf(origin).Elem()
	overwriteValue := reflect.ValueOf(overwrite)

	for i := 0; i < overwriteValue.NumField(); i++ {
		// IsZero instead of an interface comparison, some entities carry
		// slice fields which are not comparable.
		overwriteField := overwriteValue.Field(i)
		if !overwriteField.IsZero() {
			originValue.Field(i).Set(overwriteField)
		}
	}
}
