package shows

import (
	"github.com/gin-gonic/gin"
)

// SetupShowRoutes registers the JSON API under rg (/api/v1)
func SetupShowRoutes(rg *gin.RouterGroup, controller Controller) {
	shows := rg.Group("/shows")
	{
		shows.GET("", controller.List)    // GET /api/v1/shows
		shows.POST("", controller.Create) // POST /api/v1/shows
	}
}

// SetupShowPages registers the HTML pages
func SetupShowPages(r gin.IRouter, pages *Pages) {
	shows := r.Group("/shows")
	{
		shows.GET("", pages.Index)
		shows.GET("/create", pages.CreateForm)
		shows.POST("/create", pages.CreateSubmit)
	}
}
