// Copyright 2026 OPD Navigator Contributors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/opdnav/opdnav"
	"github.com/opdnav/opdnav/server"
	"github.com/urfave/cli/v2"
)

func main() {
	_ = godotenv.Load(".env")

	app := &cli.App{
		Name:  "opdnav",
		Usage: "Hospital campus directory lookup service",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
				EnvVars: []string{"OPDNAV_LOG_LEVEL"},
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Load the campus CSV files and serve the directory over HTTP",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "addr",
						Usage:   "Listen address",
						Value:   ":8080",
						EnvVars: []string{"OPDNAV_ADDR"},
					},
					&cli.StringFlag{
						Name:    "aec-csv",
						Usage:   "Path to the AEC campus CSV file",
						Value:   "aec_data.csv",
						EnvVars: []string{"OPDNAV_AEC_CSV"},
					},
					&cli.StringFlag{
						Name:    "pgi-csv",
						Usage:   "Path to the PGI campus CSV file",
						Value:   "pgi_departments.csv",
						EnvVars: []string{"OPDNAV_PGI_CSV"},
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand(c *cli.Context) error {
	logger := slog.Default()

	dir, err := opdnav.Open(opdnav.Config{
		AECPath: c.String("aec-csv"),
		PGIPath: c.String("pgi-csv"),
	}, opdnav.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to open directory: %w", err)
	}
	logger.Info("directory loaded",
		"aec_records", dir.AECStore().Len(),
		"pgi_records", dir.PGIStore().Len(),
	)

	srv, err := server.New(dir, server.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()
	return srv.ListenAndServe(ctx, c.String("addr"))
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
