package dto

import (
	"mime/multipart"
	"minihotel/internal/domains/photo/model"
	"minihotel/shared"
	gDto "minihotel/shared/dto"
	gModel "minihotel/shared/model"
	"minihotel/shared/timezone"

	"github.com/google/uuid"
)

type UploadPhotoRequest struct {
	RoomID    int                   `json:"room_id" validate:"required,min=1"`
	Caption   string                `json:"caption" validate:"omitempty,max=220"`
	Photo     *multipart.FileHeader `json:"photo"   validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	PhotoFile multipart.File        `json:"-"`
}

func (c *UploadPhotoRequest) ToModel(url, user string) model.Photo {
	return model.Photo{
		ID:      uuid.NewString(),
		RoomID:  c.RoomID,
		URL:     url,
		Caption: c.Caption,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePhotoRequest struct {
	Caption string `db:"caption" json:"caption" validate:"required,max=220"`
}

type PhotoResponse struct {
	ID      string `json:"photo_id"`
	RoomID  int    `json:"room_id"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
	gDto.Metadata
}

func (r *PhotoResponse) FromModel(model model.Photo) {
	r.ID = model.ID
	r.RoomID = model.RoomID
	r.URL = model.URL
	r.Caption = model.Caption
	r.Metadata.FromModel(model.Metadata)
}

type GetPhotosResponse struct {
	Photos    []PhotoResponse `json:"photos"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetPhotosResponse) FromModels(models []model.Photo, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Photos = make([]PhotoResponse, len(models))
	for i, mod := range models {
		r.Photos[i].FromModel(mod)
	}
}
