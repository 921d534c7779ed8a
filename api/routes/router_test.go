package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fyyur/api/routes"
	"fyyur/internal/shared/config"
	"fyyur/internal/shared/database"
	"fyyur/internal/shared/render"
	"fyyur/internal/shared/utils/response"
	"fyyur/web"
)

type app struct {
	engine  *gin.Engine
	cookies []*http.Cookie
}

func newApp(t *testing.T) *app {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.NewMock()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	renderer, err := render.New(web.FS)
	require.NoError(t, err)

	store := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	pages := render.NewPages(render.NewFlasherWithStore(store, "fyyur_test"))

	engine := gin.New()
	engine.HTMLRender = renderer
	cfg := &config.Config{APIPrefix: "/api", APIVersion: "v1"}
	routes.NewRouter(cfg, db, nil, pages).SetupRoutes(engine)

	return &app{engine: engine}
}

// do sends req with the cookies collected so far, like a browser would
func (a *app) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range a.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	if cs := w.Result().Cookies(); len(cs) > 0 {
		a.cookies = cs
	}
	return w
}

func (a *app) get(path string) *httptest.ResponseRecorder {
	return a.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (a *app) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return a.do(req)
}

func (a *app) postJSON(path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return a.do(req)
}

func hopForm() url.Values {
	return url.Values{
		"name":                {"The Musical Hop"},
		"city":                {"San Francisco"},
		"state":               {"CA"},
		"address":             {"1015 Folsom Street"},
		"phone":               {"123-123-1234"},
		"genres":              {"Jazz", "Reggae"},
		"image_link":          {"https://images.unsplash.com/photo-1543900694-133f37abaaa5"},
		"website":             {"https://www.themusicalhop.com"},
		"seeking_talent":      {"y"},
		"seeking_description": {"We are on the lookout for a local artist."},
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.StandardApiResponse {
	t.Helper()
	var body response.StandardApiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestHealthRoutes(t *testing.T) {
	a := newApp(t)

	for _, path := range []string{"/health", "/ping", "/status"} {
		t.Run(path, func(t *testing.T) {
			w := a.get(path)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestStaticAndDocs(t *testing.T) {
	a := newApp(t)

	w := a.get("/static/css/main.css")
	assert.Equal(t, http.StatusOK, w.Code)

	w = a.get("/swagger/doc.json")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Fyyur API")
}

func TestPages_Render(t *testing.T) {
	a := newApp(t)

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{"/", http.StatusOK, "Find a venue"},
		{"/venues", http.StatusOK, "No venues listed yet."},
		{"/artists", http.StatusOK, "No artists listed yet."},
		{"/shows", http.StatusOK, "No shows listed yet."},
		{"/venues/create", http.StatusOK, "List a new venue"},
		{"/artists/create", http.StatusOK, "List a new artist"},
		{"/shows/create", http.StatusOK, "List a new show"},
		{"/venues/42", http.StatusNotFound, "Not Found"},
		{"/artists/abc", http.StatusNotFound, "Not Found"},
		{"/nowhere", http.StatusNotFound, "Not Found"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := a.get(tt.path)
			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.contains)
		})
	}
}

func TestVenueLifecycle(t *testing.T) {
	a := newApp(t)

	w := a.postForm("/venues/create", hopForm())
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = a.get("/")
	assert.Contains(t, w.Body.String(), "Venue The Musical Hop was successfully listed!")

	w = a.get("/venues")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "San Francisco, CA")
	assert.Contains(t, w.Body.String(), `<a href="/venues/1">The Musical Hop</a>`)

	w = a.get("/venues/1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Currently seeking talent")
	assert.Contains(t, w.Body.String(), "Jazz")

	w = a.get("/venues/1/edit")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `value="1015 Folsom Street"`)
	assert.Contains(t, w.Body.String(), `<option value="Jazz" selected>`)

	w = a.postForm("/venues/search", url.Values{"search_term": {"hop"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `Number of search results for "hop": 1`)

	req := httptest.NewRequest(http.MethodDelete, "/venues/1", nil)
	w = a.do(req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())

	w = a.get("/")
	assert.Contains(t, w.Body.String(), "Venue The Musical Hop was successfully deleted.")

	w = a.do(httptest.NewRequest(http.MethodDelete, "/venues/1", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success": false}`, w.Body.String())
}

func TestVenueForm_ValidationErrorsRerender(t *testing.T) {
	a := newApp(t)

	form := hopForm()
	form.Set("name", "")
	form.Set("phone", "555")
	form["genres"] = []string{"Polka"}

	w := a.postForm("/venues/create", form)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "This field is required.")
	assert.Contains(t, body, "Please provide a valid phone number.")
	assert.Contains(t, body, "Not a valid choice: Polka")
	assert.Contains(t, body, `value="1015 Folsom Street"`, "submitted values are kept")

	w = a.get("/api/v1/venues")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{}, decode(t, w).Data)
}

func TestShowAPI(t *testing.T) {
	a := newApp(t)

	w := a.postJSON("/api/v1/venues", `{"name":"The Musical Hop","city":"San Francisco","state":"CA","address":"1015 Folsom Street","phone":"123-123-1234","genres":["Jazz"]}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = a.postJSON("/api/v1/artists", `{"name":"Guns N Petals","city":"San Francisco","state":"CA","phone":"326-123-5000","seeking_venue":"y"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = a.postJSON("/api/v1/shows", `{"venue_id":1,"artist_id":9,"start_time":"2035-04-01 20:00:00"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	assert.Equal(t, "error", body.Status)
	assert.Contains(t, w.Body.String(), "Artist 9 does not exist.")

	w = a.postJSON("/api/v1/shows", `{"venue_id":1,"artist_id":1,"start_time":"2035-04-01 20:00:00"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "Show was successfully listed!", decode(t, w).Message)

	w = a.get("/api/v1/venues/1")
	require.Equal(t, http.StatusOK, w.Code)
	var detail struct {
		Data struct {
			UpcomingShowsCount int `json:"upcoming_shows_count"`
			PastShowsCount     int `json:"past_shows_count"`
			UpcomingShows      []struct {
				ArtistName string `json:"artist_name"`
				StartTime  string `json:"start_time"`
			} `json:"upcoming_shows"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &detail))
	assert.Equal(t, 1, detail.Data.UpcomingShowsCount)
	assert.Zero(t, detail.Data.PastShowsCount)
	require.Len(t, detail.Data.UpcomingShows, 1)
	assert.Equal(t, "Guns N Petals", detail.Data.UpcomingShows[0].ArtistName)
	assert.Equal(t, "2035-04-01 20:00:00", detail.Data.UpcomingShows[0].StartTime)

	w = a.get("/shows")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sunday April, 1, 2035 at 8:00PM")

	w = a.get("/artists/1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "1 Upcoming Show")
}
