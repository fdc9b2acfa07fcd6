// Package runs exposes the extraction run history on the command line.
package runs

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	dbpkg "github.com/peterhpo/Parse-Pro-Systemer-PDF/pkg/db"
)

func openDB(c *cli.Context) (*dbpkg.DB, error) {
	if c.IsSet("history-db") {
		return dbpkg.OpenAt(c.String("history-db"))
	}
	return dbpkg.Open()
}

// ListAction prints the most recent extraction runs.
func ListAction(c *cli.Context) error {
	database, err := openDB(c)
	if err != nil {
		return fmt.Errorf("failed to open run history: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return nil
	}

	fmt.Printf("%-6s %-20s %-40s %-9s %-9s %-6s %-6s %-12s\n",
		"ID", "Created", "Document", "Pages", "Sections", "Rows", "Warn", "Status")
	fmt.Println(strings.Repeat("-", 112))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-40s %-9s %-9d %-6d %-6d %-12s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			truncate(r.Document, 40),
			fmt.Sprintf("%d-%d", r.StartPage, r.EndPage),
			r.SectionCount,
			r.RowCount,
			r.WarningCount,
			r.Status,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))
	fmt.Printf("\nTip: Use 'prosys-extract runs show <id>' to see a run's sections\n")
	return nil
}

// ShowAction prints one run with its sections. With no argument it shows
// the latest run.
func ShowAction(c *cli.Context) error {
	database, err := openDB(c)
	if err != nil {
		return fmt.Errorf("failed to open run history: %w", err)
	}
	defer database.Close()

	runID, err := runIDOrLatest(c, database)
	if err != nil {
		return err
	}

	run, err := database.GetRun(runID)
	if err != nil {
		return err
	}
	sections, err := database.GetRunSections(runID)
	if err != nil {
		return err
	}

	fmt.Printf("Run %d  %s\n", run.RunID, run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Document:   %s (pages %d-%d)\n", run.Document, run.StartPage, run.EndPage)
	fmt.Printf("Status:     %s\n", run.Status)
	fmt.Printf("Output dir: %s\n", run.OutputDir)
	fmt.Printf("Sections:   %d   Rows: %d   Warnings: %d\n", run.SectionCount, run.RowCount, run.WarningCount)

	if len(sections) > 0 {
		fmt.Println()
		fmt.Printf("%-4s %-40s %-8s %-30s\n", "#", "Title", "Rows", "File")
		fmt.Println(strings.Repeat("-", 86))
		for _, s := range sections {
			fmt.Printf("%-4d %-40s %-8d %-30s\n", s.Position+1, truncate(s.Title, 40), s.RowCount, s.Filename)
		}
	}
	return nil
}

// runIDOrLatest returns the run ID from args, or the latest run if omitted.
func runIDOrLatest(c *cli.Context, database *dbpkg.DB) (int64, error) {
	if c.NArg() == 0 {
		id, err := database.LatestRunID()
		if err != nil {
			return 0, fmt.Errorf("no runs found. Run 'prosys-extract extract <file.pdf>' first")
		}
		return id, nil
	}

	var runID int64
	if _, err := fmt.Sscanf(c.Args().First(), "%d", &runID); err != nil {
		return 0, fmt.Errorf("invalid run ID: %s", c.Args().First())
	}
	return runID, nil
}

// truncate shortens s to at most max characters. Counted in runes, not
// bytes: job titles are full of æ/ø/å and a byte slice could cut one in half.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
