package artists

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"fyyur/internal/shared/apperr"
	"fyyur/internal/shared/render"
	"fyyur/internal/shared/utils/request"
	"fyyur/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Pages serves the server-rendered artist pages and forms
type Pages struct {
	service Service
	pages   *render.Pages
}

func NewPages(service Service, pages *render.Pages) *Pages {
	return &Pages{service: service, pages: pages}
}

func (p *Pages) Index(c *gin.Context) {
	artists, err := p.service.List(c.Request.Context())
	if err != nil {
		p.fail(c, err)
		return
	}
	p.pages.HTML(c, http.StatusOK, render.PageArtists, gin.H{"Artists": artists})
}

func (p *Pages) Search(c *gin.Context) {
	term := strings.TrimSpace(c.PostForm("search_term"))
	result, err := p.service.Search(c.Request.Context(), term, time.Now())
	if err != nil {
		p.fail(c, err)
		return
	}
	p.pages.HTML(c, http.StatusOK, render.PageSearch, gin.H{
		"Kind":       "artists",
		"SearchTerm": term,
		"Results":    result,
	})
}

func (p *Pages) Show(c *gin.Context) {
	id, ok := request.ParseID(c, "id")
	if !ok {
		p.pages.NotFound(c)
		return
	}

	detail, err := p.service.Detail(c.Request.Context(), id, time.Now())
	if err != nil {
		p.fail(c, err)
		return
	}
	if detail == nil {
		p.pages.NotFound(c)
		return
	}
	p.pages.HTML(c, http.StatusOK, render.PageArtist, gin.H{"Artist": detail})
}

func (p *Pages) CreateForm(c *gin.Context) {
	p.form(c, http.StatusOK, ArtistForm{}, nil, "/artists/create", "List a new artist")
}

func (p *Pages) CreateSubmit(c *gin.Context) {
	var form ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		p.form(c, http.StatusBadRequest, form, map[string]string{"": "The form could not be read."}, "/artists/create", "List a new artist")
		return
	}

	artist, err := p.service.Create(c.Request.Context(), form)
	if err != nil {
		if apperr.IsValidation(err) {
			p.form(c, http.StatusBadRequest, form, apperr.As(err).FieldMap(), "/artists/create", "List a new artist")
			return
		}
		logger.GetDefault().LogHTTPError(c, err, apperr.StatusOf(err))
		p.pages.Failure(c, "/", fmt.Sprintf("An error occurred. Artist %s could not be listed.", form.Name))
		return
	}

	p.pages.Success(c, "/", fmt.Sprintf("Artist %s was successfully listed!", artist.Name))
}

func (p *Pages) EditForm(c *gin.Context) {
	id, ok := request.ParseID(c, "id")
	if !ok {
		p.pages.NotFound(c)
		return
	}

	artist, err := p.service.GetByID(c.Request.Context(), id)
	if err != nil {
		p.fail(c, err)
		return
	}
	if artist == nil {
		p.pages.NotFound(c)
		return
	}
	p.form(c, http.StatusOK, FormFromArtist(artist), nil, editPath(id), "Edit artist "+artist.Name)
}

func (p *Pages) EditSubmit(c *gin.Context) {
	id, ok := request.ParseID(c, "id")
	if !ok {
		p.pages.NotFound(c)
		return
	}

	var form ArtistForm
	if err := c.ShouldBind(&form); err != nil {
		p.form(c, http.StatusBadRequest, form, map[string]string{"": "The form could not be read."}, editPath(id), "Edit artist")
		return
	}

	artist, err := p.service.Update(c.Request.Context(), id, form)
	if err != nil {
		switch {
		case apperr.IsNotFound(err):
			p.pages.NotFound(c)
		case apperr.IsValidation(err):
			p.form(c, http.StatusBadRequest, form, apperr.As(err).FieldMap(), editPath(id), "Edit artist")
		default:
			logger.GetDefault().LogHTTPError(c, err, apperr.StatusOf(err))
			p.pages.Failure(c, showPath(id), fmt.Sprintf("An error occurred. Artist %s could not be updated.", form.Name))
		}
		return
	}

	p.pages.Success(c, showPath(id), fmt.Sprintf("Artist %s has been updated.", artist.Name))
}

func (p *Pages) form(c *gin.Context, status int, form ArtistForm, errs map[string]string, action, title string) {
	if errs == nil {
		errs = map[string]string{}
	}
	p.pages.HTML(c, status, render.PageArtistForm, gin.H{
		"Form":   form,
		"Errors": errs,
		"Action": action,
		"Title":  title,
	})
}

func (p *Pages) fail(c *gin.Context, err error) {
	logger.GetDefault().LogHTTPError(c, err, http.StatusInternalServerError)
	p.pages.ServerError(c)
}

func showPath(id uint) string { return fmt.Sprintf("/artists/%d", id) }
func editPath(id uint) string { return fmt.Sprintf("/artists/%d/edit", id) }
