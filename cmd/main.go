package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/cloudops/infra-monitor/cmd/api"
	"github.com/cloudops/infra-monitor/config"
	"github.com/cloudops/infra-monitor/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	app := &cli.App{
		Name:  "infra-monitor",
		Usage: "EC2 usage and billing report bot",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to the YAML settings file",
				Value:   "settings.yaml",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP trigger endpoint",
				Action: func(c *cli.Context) error {
					return serve(c.String("config"))
				},
			},
		},
		DefaultCommand: "serve",
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}

func serve(configPath string) error {
	settings, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	a := api.NewAPI(shutdown, logger.FromContext, settings)
	a.Build()

	server := http.Server{
		Addr:    settings.Addr,
		Handler: a.App,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("listening on %s", settings.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Printf("shutdown started: %v", sig)

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}
