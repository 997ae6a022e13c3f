package main

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"talentflow-backend/config"
	"talentflow-backend/db"
	"talentflow-backend/initializers"
	"talentflow-backend/lib/faults"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}
	logCfg := initializers.InitLogger()

	gormDB, err := db.Connect(cfg.Database.Path, cfg.Database.DebugMode != nil && *cfg.Database.DebugMode)
	if err != nil {
		log.WithError(err).Fatal("failed to open database")
	}

	policy := faults.New(cfg.LatencyMin(), cfg.LatencyMax(), cfg.Api.ErrorRate)
	app, store, err := initializers.BuildApp(cfg, gormDB, policy, logCfg)
	if err != nil {
		log.WithError(err).Fatal("failed to build application")
	}

	if cfg.Database.SeedData == nil || *cfg.Database.SeedData {
		if err := db.Seed(store); err != nil {
			log.WithError(err).Fatal("failed to seed store")
		}
	}

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	wg := sync.WaitGroup{}
	go func() {
		<-c
		wg.Add(1)
		defer wg.Done()
		log.Info("Gracefully shutting down...")
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", cfg.App.ListenAddr, cfg.App.Port)); err != nil {
		log.Fatal(err)
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
}
