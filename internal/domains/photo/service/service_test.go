package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"minihotel/config"
	"minihotel/infras/otel/mocks"
	s3Mocks "minihotel/infras/s3/mocks"
	photoMocks "minihotel/internal/domains/photo/mocks"
	"minihotel/internal/domains/photo/model"
	"minihotel/internal/domains/photo/model/dto"
	"minihotel/internal/domains/photo/service"
	roomMocks "minihotel/internal/domains/room/mocks"
	cacheMocks "minihotel/shared/cache/mocks"
	"minihotel/shared/constant"
)

func TestPhotoService_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := photoMocks.NewMockPhoto(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "test-bucket"

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockS3)

	req := dto.UploadPhotoRequest{
		RoomID:  1,
		Caption: "Sea view",
		Photo:   &multipart.FileHeader{Filename: "room.jpg"},
	}

	tests := []struct {
		name      string
		req       dto.UploadPhotoRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful upload",
			req:  req,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockS3.EXPECT().
					UploadFile(gomock.Any(), "test-bucket", model.EntityName, gomock.Any(), gomock.Any(), "room.jpg").
					Return("https://test-bucket.s3.amazonaws.com/photo/room.jpg", nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, photo model.Photo) error {
						assert.NotEmpty(t, photo.ID)
						assert.Equal(t, 1, photo.RoomID)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "room does not exist",
			req:  req,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "upload error",
			req:  req,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockS3.EXPECT().
					UploadFile(gomock.Any(), "test-bucket", model.EntityName, gomock.Any(), gomock.Any(), "room.jpg").
					Return("", errors.New("upload failed"))
			},
			wantErr: true,
		},
		{
			name: "insert error",
			req:  req,
			setupMock: func() {
				mockRoomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockS3.EXPECT().
					UploadFile(gomock.Any(), "test-bucket", model.EntityName, gomock.Any(), gomock.Any(), "room.jpg").
					Return("https://test-bucket.s3.amazonaws.com/photo/room.jpg", nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			res, err := svc.Upload(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
			}
		})
	}
}

func TestPhotoService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := photoMocks.NewMockPhoto(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockS3)

	photo := model.Photo{
		ID:     "photo-id",
		RoomID: 1,
		URL:    "https://test-bucket.s3.amazonaws.com/photo/room.jpg",
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			id:   "photo-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   "photo-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(photo, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "photo-id",
		},
		{
			name: "photo not found",
			id:   "missing-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Photo{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}

func TestPhotoService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := photoMocks.NewMockPhoto(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "test-bucket"

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	// S3 cleanup happens off the request path.
	mockS3.EXPECT().
		GetObjectNameFromURL("test-bucket", gomock.Any()).
		Return("photo/room.jpg").
		AnyTimes()
	mockS3.EXPECT().
		DeleteFile(gomock.Any(), "test-bucket", gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockS3)

	photo := model.Photo{
		ID:     "photo-id",
		RoomID: 1,
		URL:    "https://test-bucket.s3.amazonaws.com/photo/room.jpg",
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful delete",
			id:   "photo-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(photo, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "photo not found",
			id:   "missing-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Photo{}, nil)
			},
			wantErr: true,
		},
		{
			name: "delete error keeps the object in S3",
			id:   "photo-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(photo, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Delete(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
