package artists

import (
	"net/http"
	"time"

	"fyyur/internal/shared/apperr"
	"fyyur/internal/shared/utils/request"
	"fyyur/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Controller serves the artist JSON API
type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// List godoc
// @Summary  All artists ordered by name
// @Tags     artists
// @Produce  json
// @Success  200 {object} response.StandardApiResponse{data=[]ArtistRef}
// @Router   /artists [get]
func (ctrl *Controller) List(c *gin.Context) {
	artists, err := ctrl.service.List(c.Request.Context())
	if err != nil {
		response.RespondError(c, err, "Failed to get artists")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Artists retrieved successfully", artists, nil)
}

// Search godoc
// @Summary  Case-insensitive partial name search
// @Tags     artists
// @Produce  json
// @Param    q query string false "search term"
// @Success  200 {object} response.StandardApiResponse{data=SearchResult}
// @Router   /artists/search [get]
func (ctrl *Controller) Search(c *gin.Context) {
	result, err := ctrl.service.Search(c.Request.Context(), c.Query("q"), time.Now())
	if err != nil {
		response.RespondError(c, err, "Failed to search artists")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Artists retrieved successfully", result, nil)
}

// Get godoc
// @Summary  Artist with past and upcoming shows
// @Tags     artists
// @Produce  json
// @Param    id path int true "artist id"
// @Success  200 {object} response.StandardApiResponse{data=ArtistDetail}
// @Failure  404 {object} response.StandardApiResponse
// @Router   /artists/{id} [get]
func (ctrl *Controller) Get(c *gin.Context) {
	id, ok := request.ParseID(c, "id")
	if !ok {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Artist ID must be a positive integer", nil, nil)
		return
	}

	detail, err := ctrl.service.Detail(c.Request.Context(), id, time.Now())
	if err != nil {
		response.RespondError(c, err, "Failed to get artist")
		return
	}
	if detail == nil {
		response.RespondError(c, apperr.NotFound("Artist", id), "")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Artist retrieved successfully", detail, nil)
}

// Create godoc
// @Summary  List a new artist
// @Tags     artists
// @Accept   json
// @Produce  json
// @Param    artist body ArtistForm true "artist"
// @Success  201 {object} response.StandardApiResponse{data=ArtistResponse}
// @Failure  400 {object} response.StandardApiResponse
// @Router   /artists [post]
func (ctrl *Controller) Create(c *gin.Context) {
	var form ArtistForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	artist, err := ctrl.service.Create(c.Request.Context(), form)
	if err != nil {
		response.RespondError(c, err, "Failed to create artist")
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Artist "+artist.Name+" was successfully listed!", artist, nil)
}

// Update godoc
// @Summary  Overwrite an artist
// @Tags     artists
// @Accept   json
// @Produce  json
// @Param    id     path int        true "artist id"
// @Param    artist body ArtistForm true "artist"
// @Success  200 {object} response.StandardApiResponse{data=ArtistResponse}
// @Failure  400 {object} response.StandardApiResponse
// @Failure  404 {object} response.StandardApiResponse
// @Router   /artists/{id} [put]
func (ctrl *Controller) Update(c *gin.Context) {
	id, ok := request.ParseID(c, "id")
	if !ok {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Artist ID must be a positive integer", nil, nil)
		return
	}

	var form ArtistForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	artist, err := ctrl.service.Update(c.Request.Context(), id, form)
	if err != nil {
		response.RespondError(c, err, "Failed to update artist")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Artist "+artist.Name+" has been updated.", artist, nil)
}
