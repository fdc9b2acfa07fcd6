package structure

import "strings"

// rule is one classification step. Rules are evaluated in order for every
// line; the first rule whose match function returns true consumes the line.
// Keeping the precedence in one explicit list makes the heuristics auditable
// and testable in isolation.
type rule struct {
	name  string
	match func(p *Parser, text string) bool
	apply func(p *Parser, line lineCtx)
}

// lineCtx carries a trimmed line plus its page of origin for warnings.
type lineCtx struct {
	text string
	page int
}

func (p *Parser) buildRules() []rule {
	tpl := p.cfg
	return []rule{
		{
			name: "section-heading",
			match: func(p *Parser, text string) bool {
				return hasMarkerPrefix(text, tpl.SectionPrefix)
			},
			apply: func(p *Parser, line lineCtx) {
				p.endSection()
				p.openSection(strings.TrimSpace(strings.TrimPrefix(line.text, tpl.SectionPrefix)))
			},
		},
		{
			name: "start-date",
			match: func(p *Parser, text string) bool {
				return p.current != nil && hasMarkerPrefix(text, tpl.StartDatePrefix)
			},
			apply: func(p *Parser, line lineCtx) {
				p.current.StartDate = trimPrefix(line.text, tpl.StartDatePrefix)
			},
		},
		{
			name: "return-date",
			match: func(p *Parser, text string) bool {
				return p.current != nil && hasMarkerPrefix(text, tpl.ReturnDatePrefix)
			},
			apply: func(p *Parser, line lineCtx) {
				p.current.ReturnDate = trimPrefix(line.text, tpl.ReturnDatePrefix)
			},
		},
		{
			name: "user-days",
			match: func(p *Parser, text string) bool {
				return p.current != nil && hasMarkerPrefix(text, tpl.UserDaysPrefix)
			},
			apply: func(p *Parser, line lineCtx) {
				p.current.UserDays = trimPrefix(line.text, tpl.UserDaysPrefix)
			},
		},
		{
			name: "total",
			match: func(p *Parser, text string) bool {
				return p.current != nil && matchTotalPrefix(text, tpl.TotalPrefixes) != ""
			},
			apply: func(p *Parser, line lineCtx) {
				prefix := matchTotalPrefix(line.text, tpl.TotalPrefixes)
				if p.current.Totals == nil {
					p.current.Totals = make(map[string]string)
				}
				p.current.Totals[strings.TrimRight(prefix, ":")] = trimPrefix(line.text, prefix)
			},
		},
		{
			name: "table-header",
			match: func(p *Parser, text string) bool {
				return p.current != nil && isTableHeader(text, tpl.Columns)
			},
			apply: func(p *Parser, line lineCtx) {
				// A repeated header within a section starts a fresh table;
				// the rows accumulated so far are kept.
				p.flushTable()
				p.inTable = true
			},
		},
		{
			name: "table-row",
			match: func(p *Parser, text string) bool {
				if p.current == nil || !p.inTable {
					return false
				}
				first, _, _ := strings.Cut(text, " ")
				return p.rowPattern.MatchString(first)
			},
			apply: func(p *Parser, line lineCtx) {
				p.appendRow(line)
			},
		},
		{
			name: "continuation",
			match: func(p *Parser, text string) bool {
				return p.current != nil && p.inTable && len(p.table.Rows) > 0
			},
			apply: func(p *Parser, line lineCtx) {
				// Long equipment names wrap onto the next visual row; glue
				// the remainder onto the previous row's trailing field.
				last := p.table.Rows[len(p.table.Rows)-1]
				last[len(last)-1] += " " + line.text
			},
		},
	}
}

func trimPrefix(text, prefix string) string {
	return strings.TrimSpace(strings.TrimPrefix(text, prefix))
}

// hasMarkerPrefix is HasPrefix with unset markers never matching; an empty
// prefix would otherwise claim every line.
func hasMarkerPrefix(text, prefix string) bool {
	return prefix != "" && strings.HasPrefix(text, prefix)
}

func matchTotalPrefix(text string, prefixes []string) string {
	for _, prefix := range prefixes {
		if hasMarkerPrefix(text, prefix) {
			return prefix
		}
	}
	return ""
}

// isTableHeader reports whether a line is the template's column-header row:
// it starts with the first column label and mentions every other one.
func isTableHeader(text string, columns []string) bool {
	if len(columns) == 0 || !strings.HasPrefix(text, columns[0]) {
		return false
	}
	for _, col := range columns[1:] {
		if !strings.Contains(text, col) {
			return false
		}
	}
	return true
}

// splitFields splits a row line into at most n whitespace-separated fields;
// the final field keeps its internal spacing (Python's split(maxsplit=n-1)).
func splitFields(text string, n int) []string {
	var fields []string
	rest := strings.TrimSpace(text)
	for len(fields) < n-1 && rest != "" {
		first, tail, found := strings.Cut(rest, " ")
		fields = append(fields, first)
		if !found {
			rest = ""
			break
		}
		rest = strings.TrimSpace(tail)
	}
	if rest != "" {
		fields = append(fields, rest)
	}
	return fields
}
