package middleware

import (
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"github.com/dtroode/storefront/internal/access"
	"github.com/dtroode/storefront/internal/logger"
	"github.com/dtroode/storefront/internal/model"
)

const (
	loginPath = "/auth/login"
	homePath  = "/"
)

// SessionVerifier decodes a session token into its claim.
type SessionVerifier interface {
	Verify(token string) (model.SessionClaim, error)
}

// Gate classifies every request path and lets it through, redirects it to
// the login page or sends it home. It never renders an error page.
type Gate struct {
	sessions       SessionVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewGate creates a new Gate middleware instance.
func NewGate(sessions SessionVerifier, contextManager model.ContextManager, logger *logger.Logger) *Gate {
	return &Gate{
		sessions:       sessions,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Handle wraps next with the access check. A valid claim is stored in the
// request context for every class, open ones included.
func (g *Gate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		class := access.Classify(r.URL.Path)
		claim := g.claimFromRequest(r)

		switch access.Decide(class, claim) {
		case access.DecisionRedirectLogin:
			g.logger.Debug("Gate: no session, redirecting to login",
				"path", r.URL.Path,
				"class", class.String())
			http.Redirect(w, r, loginURL(r), http.StatusTemporaryRedirect)
			return
		case access.DecisionRedirectHome:
			g.logger.Info("Gate: role not allowed, redirecting home",
				"path", r.URL.Path,
				"user_id", claim.UserID,
				"role", claim.Role.String())
			http.Redirect(w, r, homePath, http.StatusTemporaryRedirect)
			return
		}

		if claim != nil {
			r = r.WithContext(g.contextManager.SetSessionToContext(r.Context(), *claim))
		}
		next.ServeHTTP(w, r)
	})
}

// claimFromRequest returns nil for a missing, malformed, expired or forged token.
func (g *Gate) claimFromRequest(r *http.Request) *model.SessionClaim {
	cookie, err := r.Cookie(model.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	claim, err := g.sessions.Verify(cookie.Value)
	if err != nil {
		g.logger.Debug("Gate: rejected session token",
			"path", r.URL.Path,
			"error", err.Error())
		return nil
	}
	if claim.UserID == uuid.Nil || !claim.Role.IsValid() {
		return nil
	}

	return &claim
}

func loginURL(r *http.Request) string {
	return loginPath + "?callbackUrl=" + url.QueryEscape(r.URL.RequestURI())
}
