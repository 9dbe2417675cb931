package main

import (
	"github.com/germannapsix/Json-translate-app/config"
	"github.com/germannapsix/Json-translate-app/log"
	"github.com/germannapsix/Json-translate-app/router"

	_ "github.com/germannapsix/Json-translate-app/docs" // generated by swag init
)

// @title       JSON Translate API
// @version     0.0.1
// @description Key-by-key JSON document translation service
// @BasePath    /api
func main() {
	if err := log.Init(false); err != nil { // false selects development mode
		panic(err)
	}
	defer log.Sync()
	log.L().Info("The translate app has started!")

	config.InitConfig()
	r := router.SetupRouter()
	port := config.GetPort()
	r.Run(port)
}
