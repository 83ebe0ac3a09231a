package periods

import (
	"os"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "period",
		Usage: "Assemble operating periods from timetable feeds",
		Subcommands: []*cli.Command{
			{
				Name:  "assemble",
				Usage: "Build a period from a definition file and a timetable feed",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "definition",
						Usage:    "Path of the period definition YAML",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "feed",
						Usage:    "Path of the timetable feed",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "dump",
						Usage: "Dump the assembled period",
					},
				},
				Action: func(c *cli.Context) error {
					definition, err := LoadDefinition(c.String("definition"))
					if err != nil {
						return err
					}

					feed, err := os.ReadFile(c.String("feed"))
					if err != nil {
						return err
					}

					period, err := Assemble(*definition, string(feed))
					if err != nil {
						return err
					}

					if c.Bool("dump") {
						pretty.Println(period)
					}

					log.Info().Str("period", period.Name).Msg("Period assembled")

					return nil
				},
			},
		},
	}
}
