package http

import (
	"net/http"
	"sync"

	"foodrun/internal/core/domain/model/account"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionTokenHeader carries the opaque session token an authenticated
// client must send on every protected route.
const SessionTokenHeader = "X-Session-Token"

const sessionContextKey = "session"

// Session identifies an authenticated user for the lifetime of a token.
type Session struct {
	Name string
	Role account.Role
}

// SessionRegistry keeps live sessions in memory, keyed by opaque token.
// Tokens survive as long as the process; restarting the service logs
// everyone out.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewSessionRegistry creates an empty registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]Session),
	}
}

// Issue creates a session for the user and returns its token.
func (r *SessionRegistry) Issue(name string, role account.Role) string {
	token := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[token] = Session{Name: name, Role: role}

	return token
}

// Resolve returns the session for a token, if one exists.
func (r *SessionRegistry) Resolve(token string) (Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[token]
	return session, ok
}

// Revoke removes a token. Revoking an unknown token is a no-op.
func (r *SessionRegistry) Revoke(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, token)
}

// RequireSession is echo middleware that resolves the session token header
// and stores the session on the request context. Requests without a valid
// token are rejected with 401.
func RequireSession(registry *SessionRegistry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token := ctx.Request().Header.Get(SessionTokenHeader)
			if token == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "missing session token",
				})
			}

			session, ok := registry.Resolve(token)
			if !ok {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "invalid session token",
				})
			}

			ctx.Set(sessionContextKey, session)
			return next(ctx)
		}
	}
}

// RequireRole is echo middleware restricting a route group to one role.
// It must run after RequireSession.
func RequireRole(role account.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if sessionFrom(ctx).Role != role {
				return ctx.JSON(http.StatusForbidden, Error{
					Code:    http.StatusForbidden,
					Message: "role not permitted",
				})
			}
			return next(ctx)
		}
	}
}

func sessionFrom(ctx echo.Context) Session {
	session, _ := ctx.Get(sessionContextKey).(Session)
	return session
}
