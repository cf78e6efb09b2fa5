package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/json"
	"github.com/apex/log/handlers/text"
	"github.com/lucabarbosa/chocoflix/internal/api"
	"github.com/lucabarbosa/chocoflix/internal/config"
	"github.com/lucabarbosa/chocoflix/internal/db"
	"github.com/lucabarbosa/chocoflix/internal/migration"
	"github.com/urfave/cli/v2"
)

var Version = "v0.0.0"

const serviceName = "chocoflix"

func main() {
	app := &cli.App{
		Name:    serviceName,
		Usage:   "media catalog service",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"debug"},
				Usage:   "debug log level",
			},
			&cli.UintFlag{
				Name:  "port",
				Usage: "override the listen port",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("%s", err)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration failed: %w", err)
	}
	if c.IsSet("port") {
		cfg.Port = uint16(c.Uint("port"))
	}

	if cfg.Production() {
		log.SetHandler(json.New(os.Stdout))
	} else {
		log.SetHandler(text.New(os.Stdout))
	}
	if c.Bool("verbose") {
		log.SetLevel(log.DebugLevel)
	}

	log.Infof("%s %s", serviceName, Version)

	database, err := db.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database failed: %w", err)
	}
	log.Info("Connected to database")

	m := migration.Migrator{
		CurrentVersion: Version,
		Database:       database,
	}
	if err := m.Run(context.Background()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Port),
		Handler:        api.NewRouter(database, cfg),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	log.Infof("Listening on :%d", cfg.Port)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve failed: %w", err)
	case sig := <-stop:
		log.Infof("Received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Warnf("Shutdown failed: %s", err)
	}
	if err := database.Disconnect(ctx); err != nil {
		log.Warnf("Disconnect from database failed: %s", err)
	}

	log.Info("DONE.")
	return nil
}
