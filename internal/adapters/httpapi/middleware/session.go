package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gin-gonic/gin"

	"inkwell/internal/core/errs"
)

// sessionCookie is the cookie the identity provider sets on the app domain.
const sessionCookie = "__session"

const userIDKey = "userID"

// RequireSession guards JSON endpoints. Unauthenticated requests are
// answered with the uniform failure envelope.
func RequireSession(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := resolveSession(c, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// RequirePageSession guards HTML pages. Unauthenticated visitors are
// redirected to the sign-in URL before the handler runs.
func RequirePageSession(secret []byte, signInURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := resolveSession(c, secret)
		if err != nil {
			c.Redirect(http.StatusSeeOther, signInURL)
			c.Abort()
			return
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// OptionalSession resolves the caller when a valid session is present but
// never blocks the request. Handlers that must report failures in the
// response body rather than the status code sit behind this variant.
func OptionalSession(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, err := resolveSession(c, secret); err == nil {
			c.Set(userIDKey, userID)
		}
		c.Next()
	}
}

// UserID returns the caller resolved by one of the session middlewares, or
// the empty string for anonymous requests.
func UserID(c *gin.Context) string {
	v, ok := c.Get(userIDKey)
	if !ok {
		return ""
	}
	id, _ := v.(string)
	return id
}

func resolveSession(c *gin.Context, secret []byte) (string, error) {
	raw := ""
	if cookie, err := c.Cookie(sessionCookie); err == nil {
		raw = cookie
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		raw = strings.TrimPrefix(h, "Bearer ")
	}
	if raw == "" {
		return "", errs.ErrUnauthorized
	}

	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", errs.ErrUnauthorized
	}

	return claims.Subject, nil
}
