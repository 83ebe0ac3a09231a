package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/sinscrit/train-tracking-tool/pkg/periods"
	"github.com/sinscrit/train-tracking-tool/pkg/reports"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("TRAINTRACK_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("TRAINTRACK_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "traintrack",
		Description: "Tracks scheduled train runs across the reference planning system and the two downstream systems",

		Commands: []*cli.Command{
			periods.RegisterCLI(),
			reports.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
