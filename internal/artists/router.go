package artists

import (
	"github.com/gin-gonic/gin"
)

// SetupArtistRoutes registers the JSON API under rg (/api/v1)
func SetupArtistRoutes(rg *gin.RouterGroup, controller *Controller) {
	artists := rg.Group("/artists")
	{
		artists.GET("", controller.List)          // GET /api/v1/artists
		artists.GET("/search", controller.Search) // GET /api/v1/artists/search?q=
		artists.GET("/:id", controller.Get)       // GET /api/v1/artists/:id
		artists.POST("", controller.Create)       // POST /api/v1/artists
		artists.PUT("/:id", controller.Update)    // PUT /api/v1/artists/:id
	}
}

// SetupArtistPages registers the HTML pages
func SetupArtistPages(r gin.IRouter, pages *Pages) {
	artists := r.Group("/artists")
	{
		artists.GET("", pages.Index)
		artists.POST("/search", pages.Search)
		artists.GET("/create", pages.CreateForm)
		artists.POST("/create", pages.CreateSubmit)
		artists.GET("/:id", pages.Show)
		artists.GET("/:id/edit", pages.EditForm)
		artists.POST("/:id/edit", pages.EditSubmit)
	}
}
