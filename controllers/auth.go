package controllers

import (
	"net/http"
	"time"

	"github.com/germannapsix/Json-translate-app/config"
	"github.com/germannapsix/Json-translate-app/global"
	"github.com/germannapsix/Json-translate-app/log"
	"github.com/germannapsix/Json-translate-app/models"
	"github.com/germannapsix/Json-translate-app/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary     Create an account
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       request  body      credentials  true  "username and password"
// @Success     200      {object}  map[string]string
// @Failure     400      {object}  map[string]string
// @Router      /auth/register [post]
func Register(c *gin.Context) {
	if !config.LoginLimiter(c.ClientIP()).Allow() {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many attempts, try later"})
		return
	}
	var input credentials
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	hashedPwd, err := utils.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	user := models.Users{Username: input.Username, Password: hashedPwd}
	if err := global.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username already taken"})
		return
	}
	token, err := utils.GenerateJWT(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	utils.SetAuthCookie(c, token, utils.Expire_hours*time.Hour)
	log.L().Info("user registered", zap.String("username", user.Username))
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Login godoc
// @Summary     Log in
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       request  body      credentials  true  "username and password"
// @Success     200      {object}  map[string]string
// @Failure     401      {object}  map[string]string
// @Router      /auth/login [post]
func Login(c *gin.Context) {
	if !config.LoginLimiter(c.ClientIP()).Allow() {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many attempts, try later"})
		return
	}
	var input credentials
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var user models.Users
	if err := global.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}
	if !utils.CheckPassword(user.Password, input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}
	token, err := utils.GenerateJWT(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	utils.SetAuthCookie(c, token, utils.Expire_hours*time.Hour)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout godoc
// @Summary     Log out
// @Tags        Auth
// @Produce     json
// @Success     200  {object}  map[string]string
// @Router      /auth/logout [post]
func Logout(c *gin.Context) {
	if username := c.GetString("username"); username != "" {
		config.ClearUserCache(username)
	}
	utils.ClearAuthCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
