package session

import (
	"auction-house/internal/models"
	"strings"

	"github.com/gin-gonic/gin"
)

const userContextKey = "session_user"

// BearerToken extracts the token from an "Authorization: Bearer <token>" header
func BearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// SetUser stores the authenticated user on the request context
func SetUser(c *gin.Context, user models.User) {
	c.Set(userContextKey, user)
}

// UserFrom returns the user a guarded route was admitted with
func UserFrom(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return models.User{}, false
	}
	user, ok := v.(models.User)
	return user, ok
}
