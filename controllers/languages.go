package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Language is one entry of the supported-language list.
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// supportedLanguages is static; the first entry is the auto-detect
// sentinel passed through to the backend as "no source language".
var supportedLanguages = []Language{
	{Code: "auto", Name: "Auto Detect"},
	{Code: "en", Name: "English"},
	{Code: "zh", Name: "Chinese (Simplified)"},
	{Code: "ja", Name: "Japanese"},
	{Code: "ko", Name: "Korean"},
	{Code: "es", Name: "Spanish"},
	{Code: "fr", Name: "French"},
	{Code: "de", Name: "German"},
	{Code: "ru", Name: "Russian"},
	{Code: "ar", Name: "Arabic"},
	{Code: "pt", Name: "Portuguese"},
	{Code: "it", Name: "Italian"},
	{Code: "nl", Name: "Dutch"},
	{Code: "hi", Name: "Hindi"},
	{Code: "th", Name: "Thai"},
}

// GetSupportedLanguages godoc
// @Summary     List supported languages
// @Description Returns the language codes and display names the translator accepts
// @Tags        Translation
// @Produce     json
// @Success     200  {array}  controllers.Language
// @Router      /languages [get]
func GetSupportedLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, supportedLanguages)
}
