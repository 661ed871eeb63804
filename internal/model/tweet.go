package model

// Liker is serialized into the likes list of a tweet. The id field is aliased
// to user_id on the wire.
type Liker struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

type Tweet struct {
	ID          int64       `json:"id"`
	Content     string      `json:"content"`
	Attachments []string    `json:"attachments"`
	Author      ShortUser   `json:"author"`
	Likes       []Liker     `json:"likes"`
}

type CreateTweetRequest struct {
	TweetData     string  `json:"tweet_data"`
	TweetMediaIDs []int64 `json:"tweet_media_ids"`
}

type CreateTweetResponse struct {
	TweetID int64 `json:"tweet_id"`
}

type DeleteTweetRequest struct {
	ID int64 `path:"id"`
}

type DeleteTweetResponse struct{}

type LikeTweetRequest struct {
	ID int64 `path:"id"`
}

type LikeTweetResponse struct{}

type UnlikeTweetRequest struct {
	ID int64 `path:"id"`
}

type UnlikeTweetResponse struct{}

type GetTweetsRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

type GetTweetsResponse struct {
	Tweets []Tweet `json:"tweets"`
}
