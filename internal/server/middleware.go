package server

import (
	"fmt"
	"net/http"
	"time"

	"auction-house/internal/auctionerrors"
	"auction-house/internal/models"
	"auction-house/internal/session"
	"auction-house/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	}
	if user, ok := session.UserFrom(c); ok {
		fields["user_id"] = user.ID
	}
	utils.Info("HTTP Request", fields)
}

// TokenVerifier validates a bearer token and returns who it was issued to
type TokenVerifier interface {
	Verify(token string) (models.User, error)
}

// CurrentIdentity reports who is signed in right now
type CurrentIdentity interface {
	Current() (models.User, bool)
}

// RequireIdentity admits a request only when it carries a valid session token
// issued to the identity that is currently signed in. A token outlives logout,
// so it is checked against the live identity on every request.
func RequireIdentity(tokens TokenVerifier, identity CurrentIdentity) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := session.BearerToken(c)
		if !ok {
			reject(c, fmt.Errorf("%w - missing bearer token", auctionerrors.ErrUnauthenticated))
			return
		}

		claimed, err := tokens.Verify(token)
		if err != nil {
			reject(c, fmt.Errorf("%w - %v", auctionerrors.ErrUnauthenticated, err))
			return
		}

		current, ok := identity.Current()
		// every login shares one id, so the email tells the sessions apart
		if !ok || current.ID != claimed.ID || current.Email != claimed.Email {
			reject(c, fmt.Errorf("%w - session does not match the signed-in identity", auctionerrors.ErrUnauthenticated))
			return
		}

		session.SetUser(c, current)
		c.Next()
	}
}

func reject(c *gin.Context, err error) {
	utils.JSONAbort(c, http.StatusUnauthorized, err, "authentication required")
	utils.Warn("RequireIdentity: request rejected", map[string]any{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	})
}
