package venues

import (
	"github.com/gin-gonic/gin"
)

// SetupVenueRoutes registers the JSON API under rg (/api/v1)
func SetupVenueRoutes(rg *gin.RouterGroup, controller *Controller) {
	venues := rg.Group("/venues")
	{
		venues.GET("", controller.List)          // GET /api/v1/venues
		venues.GET("/search", controller.Search) // GET /api/v1/venues/search?q=
		venues.GET("/:id", controller.Get)       // GET /api/v1/venues/:id
		venues.POST("", controller.Create)       // POST /api/v1/venues
		venues.PUT("/:id", controller.Update)    // PUT /api/v1/venues/:id
		venues.DELETE("/:id", controller.Delete) // DELETE /api/v1/venues/:id
	}
}

// SetupVenuePages registers the HTML pages
func SetupVenuePages(r gin.IRouter, pages *Pages) {
	venues := r.Group("/venues")
	{
		venues.GET("", pages.Index)
		venues.POST("/search", pages.Search)
		venues.GET("/create", pages.CreateForm)
		venues.POST("/create", pages.CreateSubmit)
		venues.GET("/:id", pages.Show)
		venues.GET("/:id/edit", pages.EditForm)
		venues.POST("/:id/edit", pages.EditSubmit)
		venues.DELETE("/:id", pages.Delete)
	}
}
