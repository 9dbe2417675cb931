package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/germannapsix/Json-translate-app/config"
	"github.com/germannapsix/Json-translate-app/global"
	"github.com/germannapsix/Json-translate-app/log"
	"github.com/germannapsix/Json-translate-app/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GetTranslations godoc
// @Summary     List recent translation runs
// @Description Returns the 50 most recent run summaries, newest first
// @Tags        Translation
// @Produce     json
// @Success     200  {object}  map[string]interface{}
// @Failure     500  {object}  map[string]string
// @Router      /translations [get]
func GetTranslations(c *gin.Context) {
	ctx := c.Request.Context()

	if cached, err := getCache[[]store.Summary](ctx, config.CacheKeyRecentRuns); err == nil {
		c.JSON(http.StatusOK, gin.H{"translations": cached, "cached": true})
		return
	}

	// Cold cache: collapse concurrent reads into one database query.
	v, err, _ := global.FetchGroup.Do(config.CacheKeyRecentRuns, func() (interface{}, error) {
		history := store.NewHistory(global.DB)
		summaries, err := history.Recent(ctx, historyLimit)
		if err != nil {
			return nil, err
		}
		if cerr := setCache(ctx, config.CacheKeyRecentRuns, summaries, config.RecentRunsTTL); cerr != nil {
			log.L().Warn("cache recent runs error:", zap.Error(cerr))
		}
		return summaries, nil
	})
	if err != nil {
		log.L().Error("query translation runs error:", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to query translation history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"translations": v.([]store.Summary)})
}

// GetTranslationStats godoc
// @Summary     One run with its per-key details
// @Tags        Translation
// @Produce     json
// @Param       id   path      int  true  "translation run id"
// @Success     200  {object}  map[string]interface{}
// @Failure     400  {object}  map[string]string
// @Failure     404  {object}  map[string]string
// @Failure     500  {object}  map[string]string
// @Router      /translations/{id}/stats [get]
func GetTranslationStats(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid translation id"})
		return
	}

	history := store.NewHistory(global.DB)
	run, details, err := history.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Translation not found"})
			return
		}
		log.L().Error("query translation run error:", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to query translation"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"translation": run,
		"details":     details,
	})
}
