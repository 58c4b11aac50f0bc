package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rockrev/auth"
	"rockrev/entity"
	"rockrev/service"
)

const userKey = "current_user"

// Authenticate resolves the bearer token to a user when one is present.
// Requests without a token pass through unauthenticated.
func Authenticate(secret string, users *service.Users) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			RespondError(c, http.StatusUnauthorized, "unauthenticated", errors.New("malformed authorization header"))
			c.Abort()
			return
		}
		userID, err := auth.ParseToken(secret, tokenString)
		if err != nil {
			RespondError(c, http.StatusUnauthorized, "unauthenticated", errors.New("invalid or expired token"))
			c.Abort()
			return
		}
		user, err := users.Get(userID)
		if err != nil {
			RespondError(c, http.StatusUnauthorized, "unauthenticated", errors.New("unknown user"))
			c.Abort()
			return
		}
		c.Set(userKey, *user)
		c.Next()
	}
}

// RequireAuth rejects unauthenticated requests
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(userKey); !ok {
			RespondError(c, http.StatusUnauthorized, "unauthenticated", errors.New("authentication required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireStaff rejects requests from non-staff users
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			RespondError(c, http.StatusUnauthorized, "unauthenticated", errors.New("authentication required"))
			c.Abort()
			return
		}
		if !user.IsStaff {
			RespondError(c, http.StatusForbidden, "permission", errors.New("staff only"))
			c.Abort()
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) (entity.User, bool) {
	value, ok := c.Get(userKey)
	if !ok {
		return entity.User{}, false
	}
	user, ok := value.(entity.User)
	return user, ok
}
