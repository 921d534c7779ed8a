package render_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/internal/shared/render"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"templates/layouts/layout.html": {Data: []byte(
			`{{ define "layout" }}<title>{{ block "title" . }}Fyyur{{ end }}</title>` +
				`{{ range .Flashes }}<p class="{{ .Type }}">{{ .Message }}</p>{{ end }}` +
				`{{ template "content" . }}{{ end }}`)},
		"templates/partials/bold.html": {Data: []byte(`{{ define "bold" }}<b>{{ . }}</b>{{ end }}`)},
		"templates/pages/home.html": {Data: []byte(
			`{{ define "title" }}Home{{ end }}{{ define "content" }}{{ template "bold" upper .Name }}{{ end }}`)},
		"templates/pages/shows.html": {Data: []byte(
			`{{ define "content" }}{{ datetime .Start "full" }}{{ end }}`)},
	}
}

func TestNew(t *testing.T) {
	r, err := render.New(testFS())
	require.NoError(t, err)

	assert.True(t, r.Has("home"))
	assert.True(t, r.Has("shows"))
	assert.False(t, r.Has("bold"), "partials are not pages")
}

func TestNew_MissingPages(t *testing.T) {
	fsys := testFS()
	delete(fsys, "templates/pages/home.html")
	delete(fsys, "templates/pages/shows.html")

	_, err := render.New(fsys)
	assert.Error(t, err)
}

func TestRenderer_PagesKeepTheirOwnBlocks(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, err := render.New(testFS())
	require.NoError(t, err)

	engine := gin.New()
	engine.HTMLRender = r
	engine.GET("/home", func(c *gin.Context) { c.HTML(http.StatusOK, "home", gin.H{"Name": "fyyur"}) })
	engine.GET("/shows", func(c *gin.Context) { c.HTML(http.StatusOK, "shows", gin.H{"Start": "2019-05-21 21:30:00"}) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/home", nil))
	assert.Equal(t, "<title>Home</title><b>FYYUR</b>", w.Body.String())

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shows", nil))
	assert.Equal(t, "<title>Fyyur</title>Tuesday May, 21, 2019 at 9:30PM", w.Body.String())
}

func TestDatetime(t *testing.T) {
	start := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		value  any
		format string
		want   string
	}{
		{"full_time", start, "full", "Tuesday May, 21, 2019 at 9:30PM"},
		{"medium_time", start, "medium", "Tue 05, 21, 2019 9:30PM"},
		{"full_string", "2019-05-21 21:30:00", "full", "Tuesday May, 21, 2019 at 9:30PM"},
		{"unknown_format", "2019-05-21 21:30:00", "", "Tue 05, 21, 2019 9:30PM"},
		{"unparsable", "next friday", "full", "next friday"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render.Datetime(tt.value, tt.format))
		})
	}
}

func TestHumanTime(t *testing.T) {
	assert.Equal(t, "3 days ago", render.HumanTime(time.Now().Add(-72*time.Hour-time.Minute)))
	assert.Equal(t, "", render.HumanTime(42))
}

func TestFlasher_RoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	flasher := render.NewFlasherWithStore(sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef")), "fyyur_test")
	pages := render.NewPages(flasher)

	r, err := render.New(testFS())
	require.NoError(t, err)

	engine := gin.New()
	engine.HTMLRender = r
	engine.POST("/submit", func(c *gin.Context) {
		pages.Success(c, "/home", "Venue The Musical Hop was successfully listed!")
	})
	engine.GET("/home", func(c *gin.Context) {
		pages.HTML(c, http.StatusOK, render.PageHome, gin.H{"Name": "fyyur"})
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/submit", nil))
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/home", w.Header().Get("Location"))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/home", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Contains(t, w.Body.String(), `<p class="success">Venue The Musical Hop was successfully listed!</p>`)

	// the flash is consumed by the first page that shows it
	req = httptest.NewRequest(http.MethodGet, "/home", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.NotContains(t, w.Body.String(), "successfully listed")
}
