// Package lines turns one page's positioned words into ordered text lines.
//
// Words on a visual row rarely share an exact baseline: mixed font sizes and
// superscripts jitter the top coordinate by a point or two. Clustering on
// vertical position within a tolerance absorbs that jitter; the tolerance
// must stay below the template's row spacing or adjacent rows merge.
package lines

import (
	"math"
	"sort"
	"strings"

	"github.com/peterhpo/Parse-Pro-Systemer-PDF/models"
)

// Reconstruct groups a page's words into text lines. Words are sorted by
// vertical position, then walked: a word within tolerance of the current
// line's opening position joins that line, anything further away closes the
// line and opens a new one. A closed line is sorted left to right by x0 and
// joined with single spaces.
//
// Output lines are in non-decreasing vertical order and together contain
// every input word exactly once. Pure function, no external effects.
func Reconstruct(page models.PageWords, tolerance float64) []models.Line {
	if len(page.Words) == 0 {
		return nil
	}

	words := make([]models.Word, len(page.Words))
	copy(words, page.Words)
	sort.SliceStable(words, func(i, j int) bool {
		return words[i].Top < words[j].Top
	})

	var out []models.Line
	var current []models.Word
	refTop := words[0].Top

	flush := func() {
		if len(current) == 0 {
			return
		}
		sort.SliceStable(current, func(i, j int) bool {
			return current[i].X0 < current[j].X0
		})
		texts := make([]string, len(current))
		for i, w := range current {
			texts[i] = w.Text
		}
		out = append(out, models.Line{
			PageNumber: page.PageNumber,
			Top:        refTop,
			Text:       strings.Join(texts, " "),
		})
		current = current[:0]
	}

	for _, w := range words {
		if len(current) > 0 && math.Abs(w.Top-refTop) > tolerance {
			flush()
			refTop = w.Top
		}
		if len(current) == 0 {
			refTop = w.Top
		}
		current = append(current, w)
	}
	flush()

	return out
}
