package domain

import (
	"context"
	"io"

	"github.com/chirp-lab/backend/internal/entity"
	"github.com/chirp-lab/backend/internal/model"
	"github.com/chirp-lab/backend/internal/repository"
	"github.com/chirp-lab/backend/pkg/errorx"
	"github.com/chirp-lab/backend/pkg/storage"
	"github.com/chirp-lab/backend/pkg/xcontext"
	"github.com/h2non/filetype"
)

type MediaDomain interface {
	Upload(context.Context, *model.UploadMediaRequest) (*model.UploadMediaResponse, error)
}

type mediaDomain struct {
	mediaRepo   repository.TweetMediaRepository
	fileStorage storage.Storage
}

func NewMediaDomain(
	mediaRepo repository.TweetMediaRepository,
	fileStorage storage.Storage,
) *mediaDomain {
	return &mediaDomain{mediaRepo: mediaRepo, fileStorage: fileStorage}
}

// Upload stores the posted file and creates an unattached media row. The
// row is linked to a tweet later, at tweet creation.
func (d *mediaDomain) Upload(
	ctx context.Context, req *model.UploadMediaRequest,
) (*model.UploadMediaResponse, error) {
	httpReq := xcontext.HTTPRequest(ctx)
	if err := httpReq.ParseMultipartForm(xcontext.Configs(ctx).File.MaxSize); err != nil {
		return nil, errorx.New(errorx.Validation, "Request must be multipart form")
	}

	file, header, err := httpReq.FormFile("file")
	if err != nil {
		return nil, errorx.New(errorx.Validation, "Error retrieving the file")
	}
	defer file.Close()

	img, err := io.ReadAll(file)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot read uploaded file: %v", err)
		return nil, errorx.Unknown
	}

	if !filetype.IsImage(img) {
		xcontext.Logger(ctx).Warnf(
			"User with api key: %s try to add non image file with filename: %s",
			xcontext.RequestAPIKey(ctx), header.Filename)
		return nil, errorx.New(errorx.UnsupportedMedia,
			"In tweet media possible upload only images")
	}

	uploaded, err := d.fileStorage.Upload(ctx, &storage.UploadObject{
		APIKey:   xcontext.RequestAPIKey(ctx),
		FileName: header.Filename,
		Data:     img,
	})
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot save image: %v", err)
		return nil, errorx.Unknown
	}

	media := &entity.TweetMedia{Image: uploaded.Path}
	if err := d.mediaRepo.Create(ctx, media); err != nil {
		xcontext.Logger(ctx).Errorf("Cannot create tweet media: %v", err)
		return nil, errorx.Unknown
	}

	xcontext.Logger(ctx).Infof("New media with ID: %d was added", media.ID)
	return &model.UploadMediaResponse{MediaID: media.ID}, nil
}
