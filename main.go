// @title Snake Scholars Progress API
// @version 1.0
// @description Progress, rewards and insights backend for the Snake Scholars learning game.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /

package main

import (
	"flag"
	"log"

	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/app"
	"github.com/ankitjawla/snake-scholars-quest-sub000/internal/config"
	"github.com/ankitjawla/snake-scholars-quest-sub000/pkg/configwatcher"
	"github.com/ankitjawla/snake-scholars-quest-sub000/pkg/logger"
)

func main() {
	configDir := flag.String("config", "configs", "config directory")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.SetMode(newCfg.Server.Mode)
	})

	go configwatcher.WatchConfig(*configDir+"/config.yaml", application.ApplyConfig)

	application.Run()
}
