package model

type UploadMediaRequest struct{}

type UploadMediaResponse struct {
	MediaID int64 `json:"media_id"`
}
