package render

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Page names, one per file under templates/pages
const (
	PageHome        = "home"
	PageVenues      = "venues"
	PageVenue       = "show_venue"
	PageVenueForm   = "venue_form"
	PageArtists     = "artists"
	PageArtist      = "show_artist"
	PageArtistForm  = "artist_form"
	PageShows       = "shows"
	PageShowForm    = "show_form"
	PageSearch      = "search"
	PageNotFound    = "404"
	PageServerError = "500"
)

// Pages renders HTML pages with the pending flash messages attached
type Pages struct {
	flasher *Flasher
}

func NewPages(flasher *Flasher) *Pages {
	return &Pages{flasher: flasher}
}

// HTML renders page with data; flashes are exposed to the layout as .Flashes
func (p *Pages) HTML(c *gin.Context, status int, page string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Flashes"] = p.flasher.Pop(c)
	c.HTML(status, page, data)
}

// Redirect queues flashes and answers 303 See Other
func (p *Pages) Redirect(c *gin.Context, location string, flashes ...Flash) {
	p.flasher.Add(c, flashes...)
	c.Redirect(http.StatusSeeOther, location)
}

// Flash queues flashes for the next rendered page
func (p *Pages) Flash(c *gin.Context, flashes ...Flash) {
	p.flasher.Add(c, flashes...)
}

func (p *Pages) Success(c *gin.Context, location, message string) {
	p.Redirect(c, location, Flash{Message: message, Type: FlashSuccess})
}

func (p *Pages) Failure(c *gin.Context, location, message string) {
	p.Redirect(c, location, Flash{Message: message, Type: FlashError})
}

func (p *Pages) NotFound(c *gin.Context) {
	p.HTML(c, http.StatusNotFound, PageNotFound, nil)
}

func (p *Pages) ServerError(c *gin.Context) {
	p.HTML(c, http.StatusInternalServerError, PageServerError, nil)
}
