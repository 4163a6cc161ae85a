// internal/interfaces/http/handlers/registry.go
package handlers

import (
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/backend"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/config"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/domain/cart"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/domain/wishlist"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/interfaces/http/middleware"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/notify"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/pkg/faults"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/session"
	"github.com/Shaik-Nazidulla/sweetyIntimates-sub000/internal/store"
)

// Deps bundles everything handler construction needs
type Deps struct {
	Config   *config.Config
	Backend  *backend.Client
	Sessions session.Store
	Log      *logrus.Logger
}

// SessionContext is the explicitly constructed per-session object graph:
// one cart controller, one wishlist controller, and one shared notification
// emitter. Controllers and their stores live here, not in hidden package
// globals, so each browser session (and each test) gets its own isolated
// state.
type SessionContext struct {
	Cart     *cart.Controller
	Wishlist *wishlist.Controller
	Notifier *notify.Emitter
}

// Registry hands out SessionContexts keyed by the authenticated user id or,
// for guests, the browser session cookie
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*SessionContext
	deps     Deps
}

// NewRegistry creates a session registry
func NewRegistry(deps Deps) *Registry {
	return &Registry{
		sessions: make(map[string]*SessionContext),
		deps:     deps,
	}
}

// Session returns the SessionContext for the key, constructing it on first
// use. The store outlives any single request, which is what makes late
// response handling safe.
func (r *Registry) Session(key, clientKey string) *SessionContext {
	r.mu.Lock()
	defer r.mu.Unlock()

	if sc, ok := r.sessions[key]; ok {
		return sc
	}

	notifier := notify.NewEmitter(r.deps.Log)
	sc := &SessionContext{
		Cart:     cart.NewController(r.deps.Backend, store.NewCart(), r.deps.Sessions, clientKey, notifier, r.deps.Log),
		Wishlist: wishlist.NewController(r.deps.Backend, store.NewWishlist(), notifier, r.deps.Log),
		Notifier: notifier,
	}
	r.sessions[key] = sc
	return sc
}

// Resolve identifies the calling session and returns its context plus the
// credentials for backend calls. Guests get a session cookie and a guest
// tag on first contact.
func (r *Registry) Resolve(c *gin.Context) (*SessionContext, session.Credentials) {
	clientKey := r.ensureClientKey(c)

	creds := session.Credentials{}
	if token, ok := middleware.GetAccessTokenFromContext(c); ok {
		creds.Token = token
		if userID, ok := middleware.GetUserIDFromContext(c); ok {
			creds.UserID = userID
		}
	}

	var key string
	if creds.Authenticated() {
		key = fmt.Sprintf("user:%d", creds.UserID)
	} else {
		key = "guest:" + clientKey
		guestID, err := r.deps.Sessions.EnsureGuestID(c.Request.Context(), clientKey)
		if err != nil {
			r.deps.Log.WithError(err).Error("failed to establish guest session")
		}
		creds.GuestID = guestID
	}

	return r.Session(key, clientKey), creds
}

// ensureClientKey reads the browser session cookie, creating it when absent
func (r *Registry) ensureClientKey(c *gin.Context) string {
	cfg := r.deps.Config
	if key, err := c.Cookie(cfg.Session.CookieName); err == nil && key != "" {
		return key
	}

	key := uuid.NewString()
	c.SetCookie(cfg.Session.CookieName, key, int(cfg.Session.GuestTagTTL.Seconds()), "/", "", cfg.Session.CookieSecure, true)
	return key
}

// statusFor maps a classified synchronization error onto an HTTP status
func statusFor(err error) int {
	switch faults.KindOf(err) {
	case faults.Validation:
		return http.StatusBadRequest
	case faults.NotFound:
		return http.StatusNotFound
	case faults.AuthRequired:
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}
