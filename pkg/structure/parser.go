// Package structure segments reconstructed text lines into sections and
// tables. One stateful forward pass classifies every line against an ordered
// rule list; unrecognized lines are prose and never break row accumulation.
package structure

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/peterhpo/Parse-Pro-Systemer-PDF/models"
)

// Result is the outcome of a structural parse: the sections in document
// order plus every row-alignment warning raised along the way. A document
// with no recognized headings yields zero sections, not an error.
type Result struct {
	Sections []*models.Section
	Warnings []models.RowAlignmentWarning
}

// Combined returns the concatenation of all section tables with a leading
// provenance column.
func (r Result) Combined() *models.Table {
	return models.Combine(r.Sections)
}

// Parser consumes lines one at a time and accumulates sections. Feed lines
// in reading order across the whole page range, then call Finish.
type Parser struct {
	cfg        models.TemplateConfig
	rowPattern *regexp.Regexp
	rules      []rule

	sections []*models.Section
	current  *models.Section
	inTable  bool
	table    *models.Table
	warnings []models.RowAlignmentWarning
}

// New creates a parser for the given template. The row pattern must be a
// valid regular expression.
func New(cfg models.TemplateConfig) (*Parser, error) {
	pattern, err := regexp.Compile(cfg.RowPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid row pattern %q: %w", cfg.RowPattern, err)
	}
	p := &Parser{
		cfg:        cfg,
		rowPattern: pattern,
		table:      models.NewTable(cfg.Columns),
	}
	p.rules = p.buildRules()
	return p, nil
}

// Parse runs a full parse over an ordered line sequence.
func Parse(lines []models.Line, cfg models.TemplateConfig) (Result, error) {
	p, err := New(cfg)
	if err != nil {
		return Result{}, err
	}
	for _, line := range lines {
		p.Feed(line)
	}
	return p.Finish(), nil
}

// Feed classifies one line. The first matching rule wins; a line no rule
// claims is ignored.
func (p *Parser) Feed(line models.Line) {
	text := strings.TrimSpace(line.Text)
	if text == "" {
		return
	}
	ctx := lineCtx{text: text, page: line.PageNumber}
	for _, r := range p.rules {
		if r.match(p, text) {
			r.apply(p, ctx)
			return
		}
	}
}

// Finish flushes the open section and returns the accumulated result.
func (p *Parser) Finish() Result {
	p.endSection()
	return Result{Sections: p.sections, Warnings: p.warnings}
}

func (p *Parser) openSection(title string) {
	p.current = &models.Section{Title: title}
	p.inTable = false
	p.table = models.NewTable(p.cfg.Columns)
}

// flushTable moves accumulated rows into the current section's table list
// and resets the accumulator.
func (p *Parser) flushTable() {
	if p.current == nil {
		return
	}
	if len(p.table.Rows) > 0 {
		p.current.Tables = append(p.current.Tables, p.table)
	}
	p.table = models.NewTable(p.cfg.Columns)
}

func (p *Parser) endSection() {
	if p.current == nil {
		return
	}
	p.flushTable()
	p.sections = append(p.sections, p.current)
	p.current = nil
	p.inTable = false
}

func (p *Parser) appendRow(line lineCtx) {
	fields := splitFields(line.text, len(p.cfg.Columns))
	if len(fields) != len(p.cfg.Columns) {
		p.warnings = append(p.warnings, models.RowAlignmentWarning{
			Section:  p.current.Title,
			Page:     line.page,
			Line:     line.text,
			Fields:   len(fields),
			Expected: len(p.cfg.Columns),
		})
		return
	}
	// Field count was just checked against the schema.
	_ = p.table.Append(models.Row(fields))
}
