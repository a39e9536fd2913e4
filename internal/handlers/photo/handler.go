package photo

import (
	"minihotel/infras/otel"
	"minihotel/internal/domains/photo/model"
	"minihotel/internal/domains/photo/model/dto"
	"minihotel/internal/domains/photo/service"
	"minihotel/shared/constant"
	gDto "minihotel/shared/dto"
	"minihotel/shared/failure"
	"minihotel/shared/validator"
	"minihotel/transport/http/response"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Photo
	otel    otel.Otel
}

func New(service service.Photo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/photos", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.UploadPhoto)
		routerGroup.Get("/", handler.GetPhotos)
		routerGroup.Get("/{id}", handler.GetPhotoByID)
		routerGroup.Patch("/{id}", handler.UpdatePhoto)
		routerGroup.Delete("/{id}", handler.DeletePhoto)
	})
}

// UploadPhoto handles room photo upload to S3.
// @Summary Upload a room photo
// @Description Upload a photo for a room to S3 and store its record.
// @Tags Photo
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Photo file to upload"
// @Param room_id formData int true "Room ID the photo belongs to"
// @Param caption formData string false "Photo caption"
// @Success 201 {object} response.Data[dto.PhotoResponse] "Photo uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/photos [post]
// @Security BearerAuth
func (handler *Handler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPhoto")
	defer scope.End()

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, err)

		return
	}

	file, fileHeader, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get file from form")

		response.WithError(w, err)

		return
	}
	defer file.Close()

	roomID, err := strconv.Atoi(r.FormValue(model.FieldRoomID))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("invalid room ID")

		response.WithError(w, failure.BadRequestFromString("room_id must be a number"))

		return
	}

	req := dto.UploadPhotoRequest{
		RoomID:    roomID,
		Caption:   r.FormValue(model.FieldCaption),
		Photo:     fileHeader,
		PhotoFile: file,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate upload request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Upload(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload photo")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Photo uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetPhotos retrieves all room photos based on query parameters.
// @Summary Get all room photos
// @Description Retrieve all room photos with optional filtering and pagination.
// @Tags Photo
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_id query string false "Filter by room ID"
// @Success 200 {object} response.Data[dto.GetPhotosResponse] "List of room photos"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/photos [get]
func (handler *Handler) GetPhotos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPhotos")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if roomID := r.URL.Query().Get(model.FieldRoomID); roomID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomID,
			Operator: gDto.FilterOperatorEq,
			Value:    roomID,
			Table:    model.TableName,
		})
	}

	photos, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get photos")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Photos retrieved successfully")

	response.WithJSON(w, http.StatusOK, photos)
}

// GetPhotoByID retrieves a room photo by its ID.
// @Summary Get a room photo by ID
// @Description Retrieve a room photo by its unique identifier.
// @Tags Photo
// @Accept json
// @Produce json
// @Param id path string true "Photo ID"
// @Success 200 {object} response.Data[dto.PhotoResponse] "Photo details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/photos/{id} [get]
func (handler *Handler) GetPhotoByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPhotoByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	photo, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get photo by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Photo retrieved successfully")

	response.WithJSON(w, http.StatusOK, photo)
}

// UpdatePhoto updates a room photo's caption by its ID.
// @Summary Update a room photo by ID
// @Description Update the caption of an existing room photo.
// @Tags Photo
// @Accept json
// @Produce json
// @Param id path string true "Photo ID"
// @Param request body dto.UpdatePhotoRequest true "Update Photo Request"
// @Success 200 {object} response.Message "Photo updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/photos/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePhoto")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdatePhotoRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update photo")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Photo updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Photo updated successfully")
}

// DeletePhoto deletes a room photo by its ID.
// @Summary Delete a room photo by ID
// @Description Delete a room photo record and remove the file from S3.
// @Tags Photo
// @Accept json
// @Produce json
// @Param id path string true "Photo ID"
// @Success 200 {object} response.Message "Photo deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/photos/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePhoto")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete photo")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Photo deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Photo deleted successfully")
}
