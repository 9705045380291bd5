package middleware

import (
	"strings"

	"devconnect/config"
	"devconnect/helper"
	"devconnect/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

const (
	// SessionCookieName is the HTTP-only cookie the session token rides in.
	SessionCookieName = "token"

	ContextUserIDKey   = "user_id"
	ContextNicknameKey = "nickname"
	ContextRoleKey     = "role"
)

var httpHelper = helper.NewHTTPHelper()

type Claims struct {
	UserID   uint            `json:"id"`
	Nickname string          `json:"nickname"`
	Role     models.UserRole `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware authenticates a request from the session cookie, with
// an Authorization: Bearer fallback for non-browser clients. The token
// is the whole session: nothing is looked up server-side, so a token
// stays valid until its embedded expiry even after logout.
func AuthMiddleware(cfg config.JWTConfig) gin.HandlerFunc {
	secret := []byte(cfg.Secret)

	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			httpHelper.SendUnauthorizedError(c, "Authentication required")
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})

		if err != nil || !token.Valid {
			httpHelper.SendUnauthorizedError(c, "Session expired")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextNicknameKey, claims.Nickname)
		c.Set(ContextRoleKey, claims.Role)

		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if tokenString := strings.TrimPrefix(authHeader, "Bearer "); tokenString != authHeader {
		return tokenString
	}

	return ""
}

// CurrentUserID returns the authenticated user's id from the context.
func CurrentUserID(c *gin.Context) uint {
	if userID, exists := c.Get(ContextUserIDKey); exists {
		if id, ok := userID.(uint); ok {
			return id
		}
	}
	return 0
}
