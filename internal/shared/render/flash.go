package render

import (
	"encoding/gob"
	"net/http"

	"fyyur/internal/shared/config"
	"fyyur/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

type FlashType string

const (
	FlashSuccess = FlashType("success")
	FlashError   = FlashType("error")
)

type Flash struct {
	Message string
	Type    FlashType
}

func init() {
	gob.Register(&Flash{})
}

// maxFlashes caps what one redirect can queue
const maxFlashes = 6

// Flasher keeps flash messages in a signed cookie session between a form
// post and the page it redirects to.
type Flasher struct {
	store sessions.Store
	name  string
}

func NewFlasher(cfg config.SessionConfig) *Flasher {
	key := []byte(cfg.Secret)
	if len(key) == 0 {
		// sessions then only survive until restart
		key = securecookie.GenerateRandomKey(32)
		logger.GetDefault().Warn("SESSION_SECRET not set, using a random session key")
	}

	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cfg.MaxAge,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Flasher{store: store, name: cfg.Name}
}

// NewFlasherWithStore is used by tests with a store of their own
func NewFlasherWithStore(store sessions.Store, name string) *Flasher {
	return &Flasher{store: store, name: name}
}

func (f *Flasher) Add(c *gin.Context, flashes ...Flash) {
	if len(flashes) == 0 {
		return
	}
	session, err := f.store.Get(c.Request, f.name)
	if err != nil {
		// a cookie signed with an old key decodes to a fresh session
		logger.GetDefault().Debug("discarding unreadable session", "error", err)
	}
	for i, flash := range flashes {
		if i >= maxFlashes {
			break
		}
		flash := flash
		session.AddFlash(&flash)
	}
	f.save(c, session)
}

// Pop returns and clears the pending flashes
func (f *Flasher) Pop(c *gin.Context) []Flash {
	session, err := f.store.Get(c.Request, f.name)
	if err != nil {
		return nil
	}
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	f.save(c, session)

	out := make([]Flash, 0, len(raw))
	for _, v := range raw {
		if flash, ok := v.(*Flash); ok {
			out = append(out, *flash)
		}
	}
	return out
}

func (f *Flasher) save(c *gin.Context, s *sessions.Session) {
	if err := s.Save(c.Request, c.Writer); err != nil {
		logger.GetDefault().LogHTTPError(c, err, http.StatusInternalServerError)
	}
}
