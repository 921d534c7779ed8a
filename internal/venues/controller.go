package venues

import (
	"net/http"
	"time"

	"fyyur/internal/shared/apperr"
	"fyyur/internal/shared/utils/request"
	"fyyur/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

// Controller serves the venue JSON API
type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// List godoc
// @Summary  Venues grouped by city and state
// @Tags     venues
// @Produce  json
// @Success  200 {object} response.StandardApiResponse{data=[]Area}
// @Router   /venues [get]
func (ctrl *Controller) List(c *gin.Context) {
	areas, err := ctrl.service.ListByArea(c.Request.Context(), time.Now())
	if err != nil {
		response.RespondError(c, err, "Failed to get venues")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Venues retrieved successfully", areas, nil)
}

// Search godoc
// @Summary  Case-insensitive partial name search
// @Tags     venues
// @Produce  json
// @Param    q query string false "search term"
// @Success  200 {object} response.StandardApiResponse{data=SearchResult}
// @Router   /venues/search [get]
func (ctrl *Controller) Search(c *gin.Context) {
	result, err := ctrl.service.Search(c.Request.Context(), c.Query("q"), time.Now())
	if err != nil {
		response.RespondError(c, err, "Failed to search venues")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Venues retrieved successfully", result, nil)
}

// Get godoc
// @Summary  Venue with past and upcoming shows
// @Tags     venues
// @Produce  json
// @Param    id path int true "venue id"
// @Success  200 {object} response.StandardApiResponse{data=VenueDetail}
// @Failure  404 {object} response.StandardApiResponse
// @Router   /venues/{id} [get]
func (ctrl *Controller) Get(c *gin.Context) {
	id, ok := request.ParseID(c, "id")
	if !ok {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Venue ID must be a positive integer", nil, nil)
		return
	}

	detail, err := ctrl.service.Detail(c.Request.Context(), id, time.Now())
	if err != nil {
		response.RespondError(c, err, "Failed to get venue")
		return
	}
	if detail == nil {
		response.RespondError(c, apperr.NotFound("Venue", id), "")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Venue retrieved successfully", detail, nil)
}

// Create godoc
// @Summary  List a new venue
// @Tags     venues
// @Accept   json
// @Produce  json
// @Param    venue body VenueForm true "venue"
// @Success  201 {object} response.StandardApiResponse{data=VenueResponse}
// @Failure  400 {object} response.StandardApiResponse
// @Router   /venues [post]
func (ctrl *Controller) Create(c *gin.Context) {
	var form VenueForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	venue, err := ctrl.service.Create(c.Request.Context(), form)
	if err != nil {
		response.RespondError(c, err, "Failed to create venue")
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Venue "+venue.Name+" was successfully listed!", venue, nil)
}

// Update godoc
// @Summary  Overwrite a venue
// @Tags     venues
// @Accept   json
// @Produce  json
// @Param    id    path int       true "venue id"
// @Param    venue body VenueForm true "venue"
// @Success  200 {object} response.StandardApiResponse{data=VenueResponse}
// @Failure  400 {object} response.StandardApiResponse
// @Failure  404 {object} response.StandardApiResponse
// @Router   /venues/{id} [put]
func (ctrl *Controller) Update(c *gin.Context) {
	id, ok := request.ParseID(c, "id")
	if !ok {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Venue ID must be a positive integer", nil, nil)
		return
	}

	var form VenueForm
	if err := c.ShouldBindJSON(&form); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	venue, err := ctrl.service.Update(c.Request.Context(), id, form)
	if err != nil {
		response.RespondError(c, err, "Failed to update venue")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Venue "+venue.Name+" has been updated.", venue, nil)
}

// Delete godoc
// @Summary  Delete a venue and its shows
// @Tags     venues
// @Produce  json
// @Param    id path int true "venue id"
// @Success  200 {object} response.StandardApiResponse{data=response.DeleteResult}
// @Failure  404 {object} response.StandardApiResponse
// @Router   /venues/{id} [delete]
func (ctrl *Controller) Delete(c *gin.Context) {
	id, ok := request.ParseID(c, "id")
	if !ok {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Venue ID must be a positive integer", nil, nil)
		return
	}

	venue, err := ctrl.service.Delete(c.Request.Context(), id)
	if err != nil {
		response.RespondError(c, err, "Failed to delete venue")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Venue "+venue.Name+" was successfully deleted.", response.DeleteResult{Success: true}, nil)
}
