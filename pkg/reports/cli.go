package reports

import (
	"os"

	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"

	"github.com/sinscrit/train-tracking-tool/pkg/periods"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "report",
		Usage: "Reconciliation reports across the three systems",
		Subcommands: []*cli.Command{
			{
				Name:  "summary",
				Usage: "Assemble a period and summarise its discrepancies",
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
				},
				Action: func(c *cli.Context) error {
					definition, err := periods.LoadDefinition(c.String("definition"))
					if err != nil {
						return err
					}

					feed, err := os.ReadFile(c.String("feed"))
					if err != nil {
						return err
					}

					period, err := periods.Assemble(*definition, string(feed))
					if err != nil {
						return err
					}

					pretty.Println(Summarize(period))

					return nil
				},
			},
		},
	}
}
