package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/peterhpo/Parse-Pro-Systemer-PDF/internal/extract"
	"github.com/peterhpo/Parse-Pro-Systemer-PDF/internal/runs"
)

func main() {
	app := &cli.App{
		Name:           "prosys-extract",
		Usage:          "extract section tables from Pro Systemer order-confirmation PDFs",
		DefaultCommand: "extract",
		Commands: []*cli.Command{
			{
				Name:      "extract",
				Usage:     "extract per-section CSVs plus combined_data.csv from a PDF",
				ArgsUsage: "<file.pdf>",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "start_page",
						Usage: "first page to process (1-based, inclusive)",
						Value: 1,
					},
					&cli.IntFlag{
						Name:  "end_page",
						Usage: "last page to process (inclusive); -1 means last page minus the trailing boilerplate pages",
						Value: -1,
					},
					&cli.StringFlag{
						Name:  "output-dir",
						Usage: "directory for the CSV outputs",
						Value: ".",
					},
					&cli.StringFlag{
						Name:  "config",
						Usage: "yaml file overriding the template heuristics",
					},
					&cli.StringFlag{
						Name:  "history-db",
						Usage: "path to the run-history database (default: next to the binary)",
					},
					&cli.BoolFlag{
						Name:  "no-history",
						Usage: "do not record this run in the history database",
					},
					&cli.BoolFlag{
						Name:  "quiet",
						Usage: "only log errors",
					},
				},
				Action: extract.ExtractAction,
			},
			{
				Name:  "runs",
				Usage: "inspect the extraction run history",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "history-db",
						Usage: "path to the run-history database (default: next to the binary)",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "maximum number of runs to list",
						Value: 20,
					},
				},
				Action: runs.ListAction,
				Subcommands: []*cli.Command{
					{
						Name:      "show",
						Usage:     "show one run and its sections (latest when id is omitted)",
						ArgsUsage: "[run-id]",
						Action:    runs.ShowAction,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
