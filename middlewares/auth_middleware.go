package middlewares

import (
	"net/http"
	"strings"

	"github.com/germannapsix/Json-translate-app/config"
	"github.com/germannapsix/Json-translate-app/global"
	"github.com/germannapsix/Json-translate-app/models"
	"github.com/germannapsix/Json-translate-app/utils"

	"github.com/gin-gonic/gin"
)

func tokenFromRequest(c *gin.Context) string {
	token := strings.TrimSpace(c.GetHeader("Authorization"))
	if token == "" {
		if ck, err := c.Cookie(utils.CookieName); err == nil {
			token = ck
		}
	}
	if len(token) > 7 && token[:7] == "Bearer " {
		token = token[7:]
	}
	return token
}

func lookupUser(username string) (models.Users, bool) {
	if u, ok := config.LocalUserCache.Get(username); ok {
		return u, true
	}
	var u models.Users
	if err := global.DB.Select("id", "username").
		Where("username = ?", username).
		First(&u).Error; err != nil {
		return models.Users{}, false
	}
	config.LocalUserCache.Add(username, u)
	return u, true
}

// AuthMiddleWare requires a valid token and rejects the request otherwise.
func AuthMiddleWare() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}
		username, _, err := utils.ParseJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		u, ok := lookupUser(username)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			c.Abort()
			return
		}
		c.Set("user_id", u.ID)
		c.Set("username", username)
		c.Next()
	}
}

// OptionalAuth attaches the user identity when a valid token is present
// and lets the request continue anonymously otherwise. The translate API
// is public, but runs are attributed when a login exists.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			c.Next()
			return
		}
		username, _, err := utils.ParseJWT(token)
		if err != nil {
			c.Next()
			return
		}
		if u, ok := lookupUser(username); ok {
			c.Set("user_id", u.ID)
			c.Set("username", username)
		}
		c.Next()
	}
}
