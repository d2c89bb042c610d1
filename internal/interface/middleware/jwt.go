package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Younes-Yassine/CSC3916-Assignment4/pkg/helpers"
)

const (
	CtxUserIDKey   = "userID"
	CtxUsernameKey = "username"
)

// JWTAuth gates mutating endpoints. It reads the Authorization header,
// verifies the token's signature and expiry, and injects the verified
// identity into the context. On failure the handler never runs.
// Legacy clients send "Authorization: JWT <token>"; "Bearer" works too.
func JWTAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "msg": "Authentication failed."})
			return
		}
		claims, err := jwt.ParseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "msg": "Authentication failed."})
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Set(CtxUsernameKey, claims.Username)
		c.Next()
	}
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 {
		return ""
	}
	switch strings.ToLower(parts[0]) {
	case "jwt", "bearer":
		return strings.TrimSpace(parts[1])
	}
	return ""
}
