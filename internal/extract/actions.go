// Package extract wires the pipeline together: open document, resolve the
// page range, reconstruct lines page by page, parse sections, write CSVs,
// then record the run.
package extract

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/peterhpo/Parse-Pro-Systemer-PDF/internal/common"
	"github.com/peterhpo/Parse-Pro-Systemer-PDF/models"
	"github.com/peterhpo/Parse-Pro-Systemer-PDF/pkg/csvout"
	"github.com/peterhpo/Parse-Pro-Systemer-PDF/pkg/db"
	"github.com/peterhpo/Parse-Pro-Systemer-PDF/pkg/lines"
	"github.com/peterhpo/Parse-Pro-Systemer-PDF/pkg/pdfwords"
	"github.com/peterhpo/Parse-Pro-Systemer-PDF/pkg/report"
	"github.com/peterhpo/Parse-Pro-Systemer-PDF/pkg/structure"
)

// SummaryFileName is the run manifest written next to the CSVs.
const SummaryFileName = "extraction_summary.json"

func ExtractAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	if c.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no input document")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  prosys-extract extract ordrebekreftelse.pdf")
		fmt.Fprintln(os.Stderr, "  prosys-extract extract ordrebekreftelse.pdf --start_page 2 --end_page 9")
		return cli.Exit("", 1)
	}
	docPath := c.Args().First()

	cfg := models.DefaultConfig()
	if c.IsSet("config") {
		var err error
		cfg, err = models.LoadConfig(c.String("config"))
		if err != nil {
			logger.Error("failed to load config", "error", err)
			return cli.Exit(err.Error(), 2)
		}
	}

	doc, err := pdfwords.Open(docPath)
	if err != nil {
		logger.Error("failed to open document", "error", err)
		return cli.Exit(err.Error(), 1)
	}
	defer doc.Close()
	logger.Info("document opened", "path", docPath, "pages", doc.NumPages())

	rng, err := pdfwords.ResolvePageRange(c.Int("start_page"), c.Int("end_page"), doc.NumPages(), cfg.TrailingBoilerplatePages)
	if err != nil {
		logger.Error("invalid page range", "error", err)
		return cli.Exit(err.Error(), 1)
	}

	parser, err := structure.New(cfg.Template)
	if err != nil {
		logger.Error("invalid template config", "error", err)
		return cli.Exit(err.Error(), 2)
	}

	crop := pdfwords.Crop{Header: cfg.HeaderCropPt, Footer: cfg.FooterCropPt}
	err = doc.EachPage(rng, crop, func(page models.PageWords) error {
		pageLines := lines.Reconstruct(page, cfg.LineTolerance)
		for _, line := range pageLines {
			parser.Feed(line)
		}
		logger.Debug("page processed", "page", page.PageNumber, "words", len(page.Words), "lines", len(pageLines))
		return nil
	})
	if err != nil {
		logger.Error("extraction failed", "error", err)
		return cli.Exit(err.Error(), 1)
	}

	result := parser.Finish()
	for _, w := range result.Warnings {
		logger.Warn("row dropped", "section", w.Section, "page", w.Page, "line", w.Line,
			"fields", w.Fields, "expected", w.Expected)
	}

	outDir := c.String("output-dir")
	status := db.StatusOK
	var outputs []string
	var stems []string

	if len(result.Sections) == 0 {
		logger.Warn("no sections found", "document", docPath, "pages", fmt.Sprintf("%d-%d", rng.Start, rng.End))
		status = db.StatusNoSections
	} else {
		titles := make([]string, len(result.Sections))
		for i, s := range result.Sections {
			titles[i] = s.Title
		}
		stems = common.UniqueStems(titles)

		var files []csvout.File
		for i, s := range result.Sections {
			rows := s.Rows()
			if len(rows) == 0 {
				continue
			}
			files = append(files, csvout.File{
				Name:    stems[i] + "_data.csv",
				Columns: s.Columns(),
				Rows:    rows,
			})
		}
		combined := result.Combined()
		files = append(files, csvout.File{
			Name:    "combined_data.csv",
			Columns: combined.Columns,
			Rows:    combined.Rows,
		})

		outputs, err = csvout.WriteAll(outDir, files)
		if err != nil {
			logger.Error("output write failed", "error", err, "committed", outputs)
			recordRun(c, logger, docPath, rng, result, stems, db.StatusFailed, outDir)
			return cli.Exit(err.Error(), 1)
		}
	}

	summary := report.Build(docPath, rng.Start, rng.End, result.Sections, stems, result.Warnings, outputs)
	summaryPath := filepath.Join(outDir, SummaryFileName)
	if err := report.Write(summaryPath, summary); err != nil {
		logger.Warn("failed to write run summary", "error", err)
	}

	recordRun(c, logger, docPath, rng, result, stems, status, outDir)

	fmt.Printf("Extracted %d sections (%d rows) from %s\n", len(result.Sections), summary.RowCount, docPath)
	for _, path := range outputs {
		fmt.Println(path)
	}
	return nil
}

// recordRun stores the run in the local history. History failures are
// warnings, never fatal: the CSVs are the product, the history is a
// convenience.
func recordRun(c *cli.Context, logger *slog.Logger, docPath string, rng pdfwords.PageRange, result structure.Result, stems []string, status, outDir string) {
	if c.Bool("no-history") {
		return
	}

	var database *db.DB
	var err error
	if c.IsSet("history-db") {
		database, err = db.OpenAt(c.String("history-db"))
	} else {
		database, err = db.Open()
	}
	if err != nil {
		logger.Warn("run history unavailable", "error", err)
		return
	}
	defer database.Close()

	run := db.Run{
		Document:     docPath,
		StartPage:    rng.Start,
		EndPage:      rng.End,
		SectionCount: len(result.Sections),
		WarningCount: len(result.Warnings),
		Status:       status,
		OutputDir:    outDir,
	}
	sections := make([]db.RunSection, len(result.Sections))
	for i, s := range result.Sections {
		rows := len(s.Rows())
		run.RowCount += rows
		sections[i] = db.RunSection{
			Position: i,
			Title:    s.Title,
			RowCount: rows,
		}
		if i < len(stems) && rows > 0 {
			sections[i].Filename = stems[i] + "_data.csv"
		}
	}

	if _, err := database.InsertRun(run, sections); err != nil {
		logger.Warn("failed to record run", "error", err)
	}
}
