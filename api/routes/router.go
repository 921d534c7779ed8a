// api/routes/router.go
package routes

import (
	"io/fs"
	"net/http"
	"time"

	_ "fyyur/docs"
	"fyyur/internal/activity"
	"fyyur/internal/artists"
	"fyyur/internal/genres"
	"fyyur/internal/shared/config"
	"fyyur/internal/shared/database"
	"fyyur/internal/shared/render"
	"fyyur/internal/shows"
	"fyyur/internal/venues"
	"fyyur/pkg/logger"
	"fyyur/web"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	publisher activity.Publisher
	pages     *render.Pages

	showService shows.Service // shared by the venue and artist services
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, publisher activity.Publisher, pages *render.Pages) *Router {
	if publisher == nil {
		publisher = activity.NopPublisher{}
	}
	return &Router{
		config:    cfg,
		db:        db,
		publisher: publisher,
		pages:     pages,
	}
}

// SetupRoutes configures all application routes. engine.HTMLRender must be
// set before any page is served.
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)
	r.setupStatic(engine)

	sql := r.db.GetSQL()
	r.showService = shows.NewService(shows.NewRepository(sql), r.publisher)
	venueService := venues.NewService(venues.NewRepository(sql), r.showService, r.publisher)
	artistService := artists.NewService(artists.NewRepository(sql), r.showService, r.publisher)
	genreService := genres.NewService(genres.NewRepository(sql))

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		genres.SetupGenreRoutes(api, genres.NewController(genreService))
		venues.SetupVenueRoutes(api, venues.NewController(venueService))
		artists.SetupArtistRoutes(api, artists.NewController(artistService))
		shows.SetupShowRoutes(api, shows.NewController(r.showService))
	}

	// Server-rendered pages
	engine.GET("/", r.home)
	venues.SetupVenuePages(engine, venues.NewPages(venueService, r.pages))
	artists.SetupArtistPages(engine, artists.NewPages(artistService, r.pages))
	shows.SetupShowPages(engine, shows.NewPages(r.showService, r.pages))

	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(r.pages.NotFound)
}

func (r *Router) home(c *gin.Context) {
	r.pages.HTML(c, http.StatusOK, render.PageHome, nil)
}

func (r *Router) setupStatic(engine *gin.Engine) {
	static, err := fs.Sub(web.FS, "static")
	if err != nil {
		logger.GetDefault().Error("static assets unavailable", "error", err)
		return
	}
	engine.StaticFS("/static", http.FS(static))
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "fyyur",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "fyyur",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":        "operational",
			"api_version":   r.config.APIVersion,
			"redis":         r.db.Redis != nil,
			"activity_feed": r.config.Kafka.Enabled,
			"timestamp":     time.Now(),
		})
	})
}
