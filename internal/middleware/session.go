package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/quiz-night/backend/internal/session"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionFromContext returns the session attached by the Sessions
// middleware.
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*session.Session)
	return s, ok
}

// Sessions resolves the signed session cookie and attaches the matching
// server-side session to the request context. A missing, expired, or
// tampered cookie silently starts a fresh session rather than failing the
// request — a returning client with a dead cookie just begins a new
// playthrough.
func Sessions(store *session.Store, secret []byte, ttl time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *session.Session

			if cookie, err := r.Cookie(session.CookieName); err == nil {
				if sid, err := session.ParseToken(secret, cookie.Value); err == nil {
					sess, _ = store.Get(sid)
				}
			}

			if sess == nil {
				sess = store.Create()
				token, err := session.MintToken(secret, sess.ID, ttl)
				if err != nil {
					log.Printf("[middleware] mint session token: %v", err)
					http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     session.CookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
					MaxAge:   int(ttl.Seconds()),
				})
			}

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey, sess)))
		})
	}
}
