package shows

import (
	"net/http"

	"fyyur/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	List(c *gin.Context)
	Create(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// List godoc
// @Summary  Every show with its venue and artist
// @Tags     shows
// @Produce  json
// @Success  200 {object} response.StandardApiResponse{data=[]Entry}
// @Router   /shows [get]
func (ctrl *controller) List(c *gin.Context) {
	entries, err := ctrl.service.List(c.Request.Context())
	if err != nil {
		response.RespondError(c, err, "Failed to get shows")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Shows retrieved successfully", entries, nil)
}

// Create godoc
// @Summary  List a new show
// @Tags     shows
// @Accept   json
// @Produce  json
// @Param    show body CreateShowRequest true "show"
// @Success  201 {object} response.StandardApiResponse{data=Show}
// @Failure  400 {object} response.StandardApiResponse
// @Router   /shows [post]
func (ctrl *controller) Create(c *gin.Context) {
	var req CreateShowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(c, "error", http.StatusBadRequest, "Invalid request data", nil, err.Error())
		return
	}

	show, err := ctrl.service.Create(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err, "Failed to create show")
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Show was successfully listed!", show, nil)
}
