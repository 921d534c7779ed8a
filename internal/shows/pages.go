package shows

import (
	"net/http"

	"fyyur/internal/shared/apperr"
	"fyyur/internal/shared/render"
	"fyyur/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Pages serves the all-shows page and the new show form
type Pages struct {
	service Service
	pages   *render.Pages
}

func NewPages(service Service, pages *render.Pages) *Pages {
	return &Pages{service: service, pages: pages}
}

func (p *Pages) Index(c *gin.Context) {
	entries, err := p.service.List(c.Request.Context())
	if err != nil {
		logger.GetDefault().LogHTTPError(c, err, http.StatusInternalServerError)
		p.pages.ServerError(c)
		return
	}
	p.pages.HTML(c, http.StatusOK, render.PageShows, gin.H{"Shows": entries})
}

func (p *Pages) CreateForm(c *gin.Context) {
	p.form(c, http.StatusOK, CreateShowRequest{}, nil)
}

func (p *Pages) CreateSubmit(c *gin.Context) {
	var req CreateShowRequest
	if err := c.ShouldBind(&req); err != nil {
		p.form(c, http.StatusBadRequest, req, map[string]string{"": "The form could not be read."})
		return
	}

	if _, err := p.service.Create(c.Request.Context(), req); err != nil {
		if apperr.IsValidation(err) {
			p.form(c, http.StatusBadRequest, req, apperr.As(err).FieldMap())
			return
		}
		logger.GetDefault().LogHTTPError(c, err, apperr.StatusOf(err))
		p.pages.Failure(c, "/", "An error occurred. Show could not be listed.")
		return
	}

	p.pages.Success(c, "/", "Show was successfully listed!")
}

func (p *Pages) form(c *gin.Context, status int, req CreateShowRequest, errs map[string]string) {
	if errs == nil {
		errs = map[string]string{}
	}
	p.pages.HTML(c, status, render.PageShowForm, gin.H{
		"Form":   req,
		"Errors": errs,
	})
}
