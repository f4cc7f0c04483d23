package middlewares

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jubleh/storefront-core/cart"
	"github.com/jubleh/storefront-core/checkout"
)

const (
	sessionCookie = "jubleh_session"
	sessionKey    = "session"

	cookieMaxAge = 60 * 60 * 24 * 30
)

// Session binds one cart store and one checkout orchestrator to a
// storefront visitor. One instance lives for the whole session; cart
// state survives across requests through the profile-local storage.
type Session struct {
	ID       string
	Cart     *cart.Store
	Checkout *checkout.Orchestrator
}

type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	factory  func(sessionID string) *Session
}

func NewSessionManager(factory func(sessionID string) *Session) *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
		factory:  factory,
	}
}

func (m *SessionManager) Get(sessionID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	if session, ok := m.sessions[sessionID]; ok {
		return session
	}
	session := m.factory(sessionID)
	m.sessions[sessionID] = session
	return session
}

// BindSession attaches the visitor's session to the request context,
// minting a new session cookie on first visit.
func (m *SessionManager) BindSession() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		sessionID, err := ctx.Cookie(sessionCookie)
		if err != nil || sessionID == "" {
			sessionID = uuid.NewString()
			ctx.SetCookie(sessionCookie, sessionID, cookieMaxAge, "/", "", false, true)
		}
		ctx.Set(sessionKey, m.Get(sessionID))
		ctx.Next()
	}
}

func SessionFrom(ctx *gin.Context) *Session {
	return ctx.MustGet(sessionKey).(*Session)
}
