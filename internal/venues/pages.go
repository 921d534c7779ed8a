package venues

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"fyyur/internal/shared/apperr"
	"fyyur/internal/shared/render"
	"fyyur/internal/shared/utils/request"
	"fyyur/internal/shared/utils/response"
	"fyyur/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Pages serves the server-rendered venue pages and forms
type Pages struct {
	service Service
	pages   *render.Pages
}

func NewPages(service Service, pages *render.Pages) *Pages {
	return &Pages{service: service, pages: pages}
}

func (p *Pages) Index(c *gin.Context) {
	areas, err := p.service.ListByArea(c.Request.Context(), time.Now())
	if err != nil {
		p.fail(c, err)
		return
	}
	p.pages.HTML(c, http.StatusOK, render.PageVenues, gin.H{"Areas": areas})
}

func (p *Pages) Search(c *gin.Context) {
	term := strings.TrimSpace(c.PostForm("search_term"))
	result, err := p.service.Search(c.Request.Context(), term, time.Now())
	if err != nil {
		p.fail(c, err)
		return
	}
	p.pages.HTML(c, http.StatusOK, render.PageSearch, gin.H{
		"Kind":       "venues",
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
	p.pages.HTML(c, http.StatusOK, render.PageVenue, gin.H{"Venue": detail})
}

func (p *Pages) CreateForm(c *gin.Context) {
	p.form(c, http.StatusOK, VenueForm{}, nil, "/venues/create", "List a new venue")
}

func (p *Pages) CreateSubmit(c *gin.Context) {
	var form VenueForm
	if err := c.ShouldBind(&form); err != nil {
		p.form(c, http.StatusBadRequest, form, map[string]string{"": "The form could not be read."}, "/venues/create", "List a new venue")
		return
	}

	venue, err := p.service.Create(c.Request.Context(), form)
	if err != nil {
		if apperr.IsValidation(err) {
			p.form(c, http.StatusBadRequest, form, apperr.As(err).FieldMap(), "/venues/create", "List a new venue")
			return
		}
		logger.GetDefault().LogHTTPError(c, err, apperr.StatusOf(err))
		p.pages.Failure(c, "/", fmt.Sprintf("An error occurred. Venue %s could not be listed.", form.Name))
		return
	}

	p.pages.Success(c, "/", fmt.Sprintf("Venue %s was successfully listed!", venue.Name))
}

func (p *Pages) EditForm(c *gin.Context) {
	id, ok := request.ParseID(c, "id")
	if !ok {
		p.pages.NotFound(c)
		return
	}

	venue, err := p.service.GetByID(c.Request.Context(), id)
	if err != nil {
		p.fail(c, err)
		return
	}
	if venue == nil {
		p.pages.NotFound(c)
		return
	}
	p.form(c, http.StatusOK, FormFromVenue(venue), nil, editPath(id), "Edit venue "+venue.Name)
}

func (p *Pages) EditSubmit(c *gin.Context) {
	id, ok := request.ParseID(c, "id")
	if !ok {
		p.pages.NotFound(c)
		return
	}

	var form VenueForm
	if err := c.ShouldBind(&form); err != nil {
		p.form(c, http.StatusBadRequest, form, map[string]string{"": "The form could not be read."}, editPath(id), "Edit venue")
		return
	}

	venue, err := p.service.Update(c.Request.Context(), id, form)
	if err != nil {
		switch {
		case apperr.IsNotFound(err):
			p.pages.NotFound(c)
		case apperr.IsValidation(err):
			p.form(c, http.StatusBadRequest, form, apperr.As(err).FieldMap(), editPath(id), "Edit venue")
		default:
			logger.GetDefault().LogHTTPError(c, err, apperr.StatusOf(err))
			p.pages.Failure(c, showPath(id), fmt.Sprintf("An error occurred. Venue %s could not be updated.", form.Name))
		}
		return
	}

	p.pages.Success(c, showPath(id), fmt.Sprintf("Venue %s has been updated.", venue.Name))
}

// Delete answers {"success": bool}; the page script then navigates home,
// where the queued flash is shown.
func (p *Pages) Delete(c *gin.Context) {
	id, ok := request.ParseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, response.DeleteResult{Success: false})
		return
	}

	venue, err := p.service.Delete(c.Request.Context(), id)
	if err != nil {
		status := apperr.StatusOf(err)
		if !apperr.IsNotFound(err) {
			logger.GetDefault().LogHTTPError(c, err, status)
		}
		p.pages.Flash(c, render.Flash{
			Message: fmt.Sprintf("An error occurred. Venue %d could not be found or there was a problem with deleting it.", id),
			Type:    render.FlashError,
		})
		c.JSON(status, response.DeleteResult{Success: false})
		return
	}

	p.pages.Flash(c, render.Flash{
		Message: fmt.Sprintf("Venue %s was successfully deleted.", venue.Name),
		Type:    render.FlashSuccess,
	})
	c.JSON(http.StatusOK, response.DeleteResult{Success: true})
}

func (p *Pages) form(c *gin.Context, status int, form VenueForm, errs map[string]string, action, title string) {
	if errs == nil {
		errs = map[string]string{}
	}
	p.pages.HTML(c, status, render.PageVenueForm, gin.H{
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

func showPath(id uint) string { return fmt.Sprintf("/venues/%d", id) }
func editPath(id uint) string { return fmt.Sprintf("/venues/%d/edit", id) }
