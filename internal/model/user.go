package model

type ShortUser struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type User struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Followers []ShortUser `json:"followers"`
	Following []ShortUser `json:"following"`
}

type GetMeRequest struct{}

type GetMeResponse struct {
	User User `json:"user"`
}

type GetUserRequest struct {
	ID int64 `path:"id"`
}

type GetUserResponse struct {
	User User `json:"user"`
}

type FollowUserRequest struct {
	ID int64 `path:"id"`
}

type FollowUserResponse struct{}

type UnfollowUserRequest struct {
	ID int64 `path:"id"`
}

type UnfollowUserResponse struct{}
