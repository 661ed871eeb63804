package model

import "github.com/chirp-lab/backend/internal/entity"

func ConvertShortUser(user *entity.User) ShortUser {
	if user == nil {
		return ShortUser{}
	}

	return ShortUser{ID: user.ID, Name: user.Name}
}

func ConvertShortUsers(users []entity.User) []ShortUser {
	result := []ShortUser{}
	for i := range users {
		result = append(result, ConvertShortUser(&users[i]))
	}

	return result
}

func ConvertUser(user *entity.User, followers, following []entity.User) User {
	if user == nil {
		return User{}
	}

	return User{
		ID:        user.ID,
		Name:      user.Name,
		Followers: ConvertShortUsers(followers),
		Following: ConvertShortUsers(following),
	}
}

// ConvertTweet projects a tweet with its eagerly loaded medias, author, and
// likes into the feed view. Slices are never nil, clients receive [] for
// tweets without attachments or likes.
func ConvertTweet(tweet *entity.Tweet) Tweet {
	if tweet == nil {
		return Tweet{}
	}

	attachments := []string{}
	for _, media := range tweet.Medias {
		attachments = append(attachments, media.Image)
	}

	likes := []Liker{}
	for i := range tweet.Likes {
		likes = append(likes, Liker{
			UserID: tweet.Likes[i].User.ID,
			Name:   tweet.Likes[i].User.Name,
		})
	}

	return Tweet{
		ID:          tweet.ID,
		Content:     tweet.Content,
		Attachments: attachments,
		Author:      ConvertShortUser(&tweet.Author),
		Likes:       likes,
	}
}
