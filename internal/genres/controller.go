package genres

import (
	"net/http"

	"fyyur/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller interface {
	List(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

// List godoc
// @Summary  List the genre enumeration
// @Tags     genres
// @Produce  json
// @Success  200 {object} response.StandardApiResponse{data=[]string}
// @Router   /genres [get]
func (ctrl *controller) List(c *gin.Context) {
	names, err := ctrl.service.List(c.Request.Context())
	if err != nil {
		response.RespondError(c, err, "Failed to get genres")
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Genres retrieved successfully", names, nil)
}
