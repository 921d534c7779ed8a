// Package render builds the HTML page set from the embedded templates and
// plugs it into gin.
package render

import (
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"fyyur/internal/genres"
	"fyyur/internal/shared/constants"
	"fyyur/internal/shared/validate"

	"github.com/Masterminds/sprig"
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin/render"
)

const (
	dirLayouts  = "templates/layouts"
	dirPartials = "templates/partials"
	dirPages    = "templates/pages"

	// every page executes from the layout
	entryTemplate = "layout"
)

// Date formats for the datetime template func
const (
	FormatMedium = "Mon 01, 02, 2006 3:04PM"
	FormatFull   = "Monday January, 2, 2006 at 3:04PM"
)

// Renderer is a gin HTMLRender holding one template per page, each a clone
// of the shared layouts and partials.
type Renderer struct {
	pages map[string]*template.Template
}

var _ render.HTMLRender = (*Renderer)(nil)

// New parses every layout and partial under fsys into a base template, then
// clones it once per page so pages can redefine the same blocks.
func New(fsys fs.FS) (*Renderer, error) {
	base := template.New(entryTemplate).
		Funcs(sprig.FuncMap()).
		Funcs(FuncMap())

	for _, dir := range []string{dirPartials, dirLayouts} {
		var err error
		if base, err = extend(base, fsys, dir); err != nil {
			return nil, err
		}
	}

	entries, err := fs.ReadDir(fsys, dirPages)
	if err != nil {
		return nil, fmt.Errorf("failed to read pages: %w", err)
	}

	pages := make(map[string]*template.Template, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".html") {
			continue
		}
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone base template: %w", err)
		}
		src, err := fs.ReadFile(fsys, path.Join(dirPages, e.Name()))
		if err != nil {
			return nil, err
		}
		if _, err := clone.Parse(string(src)); err != nil {
			return nil, fmt.Errorf("failed to parse page %s: %w", e.Name(), err)
		}
		pages[strings.TrimSuffix(e.Name(), ".html")] = clone
	}

	return &Renderer{pages: pages}, nil
}

func extend(t *template.Template, fsys fs.FS, dir string) (*template.Template, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		src, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		if t, err = t.Parse(string(src)); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", e.Name(), err)
		}
	}
	return t, nil
}

// Instance implements render.HTMLRender
func (r *Renderer) Instance(name string, data any) render.Render {
	return render.HTML{
		Template: r.pages[name],
		Name:     entryTemplate,
		Data:     data,
	}
}

// Has reports whether a page of that name was parsed
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// FuncMap holds the helpers the templates use on top of sprig
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"datetime":  Datetime,
		"humanTime": HumanTime,
		"states":    func() []string { return validate.States },
		"genreList": func() []string { return genres.All },
		"hasString": func(list []string, s string) bool {
			for _, v := range list {
				if v == s {
					return true
				}
			}
			return false
		},
	}
}

// Datetime formats a start time (a time.Time or a string in the show start
// time layout) as "medium" or "full". Unparsable input is returned as is.
func Datetime(value any, format string) string {
	t, ok := toTime(value)
	if !ok {
		return fmt.Sprint(value)
	}
	switch format {
	case "full":
		return t.Format(FormatFull)
	default:
		return t.Format(FormatMedium)
	}
}

// HumanTime renders value relative to now ("3 days ago", "2 years from now")
func HumanTime(value any) string {
	t, ok := toTime(value)
	if !ok {
		return ""
	}
	return humanize.Time(t)
}

func toTime(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		return v.UTC(), true
	case string:
		t, err := time.Parse(constants.StartTimeLayout, v)
		return t, err == nil
	}
	return time.Time{}, false
}
