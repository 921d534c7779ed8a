package genres

import "github.com/gin-gonic/gin"

func SetupGenreRoutes(rg *gin.RouterGroup, controller Controller) {
	rg.GET("/genres", controller.List) // GET /api/v1/genres
}
