// Package pdfwords wraps the PDF primitive (github.com/ledongthuc/pdf) and
// exposes per-page word sets in top-origin coordinates, with the template's
// header and footer bands cropped away.
package pdfwords

import (
	"math"
	"sort"

	"github.com/ledongthuc/pdf"

	"github.com/peterhpo/Parse-Pro-Systemer-PDF/models"
)

// A4 portrait, the vendor's page size. Used only when a page carries no
// MediaBox of its own.
const (
	defaultPageWidth  = 595.28
	defaultPageHeight = 841.89
)

// EndPageAuto is the --end_page sentinel meaning "last page minus the
// trailing boilerplate pages".
const EndPageAuto = -1

// Document is a scoped handle on an open PDF. Close releases the underlying
// file; the orchestrator guarantees that on every exit path.
type Document struct {
	path   string
	file   closer
	reader *pdf.Reader
}

type closer interface{ Close() error }

// Open opens a PDF for word extraction.
func Open(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, &models.DocumentOpenError{Path: path, Err: err}
	}
	return &Document{path: path, file: f, reader: r}, nil
}

// Close releases the document's file handle.
func (d *Document) Close() error { return d.file.Close() }

// Path returns the path the document was opened from.
func (d *Document) Path() string { return d.path }

// NumPages returns the document's page count.
func (d *Document) NumPages() int { return d.reader.NumPage() }

// PageRange is a resolved, inclusive 1-based page range.
type PageRange struct {
	Start int
	End   int
}

// ResolvePageRange turns user-facing page options into a concrete range.
// Start defaults to 1. End defaults (or EndPageAuto) to pageCount minus the
// trailing boilerplate pages. Both ends are clamped to the document; a range
// that is still empty afterwards is a PageRangeError.
func ResolvePageRange(start, end, pageCount, trailingBoilerplate int) (PageRange, error) {
	if start <= 0 {
		start = 1
	}
	if end == EndPageAuto {
		end = pageCount - trailingBoilerplate
	}
	if end > pageCount {
		end = pageCount
	}
	if start > pageCount || end < start {
		return PageRange{}, &models.PageRangeError{Start: start, End: end, PageCount: pageCount}
	}
	return PageRange{Start: start, End: end}, nil
}

// Crop describes the header and footer band heights, in points, removed
// from every page before word extraction.
type Crop struct {
	Header float64
	Footer float64
}

// EachPage visits the pages of rng strictly in order, passing each page's
// cropped word set to fn. Extraction is lazy: a page is decoded only when
// its turn comes, and fn returning an error stops the walk.
func (d *Document) EachPage(rng PageRange, crop Crop, fn func(models.PageWords) error) error {
	for n := rng.Start; n <= rng.End; n++ {
		page := d.reader.Page(n)
		if page.V.IsNull() {
			continue
		}
		if err := fn(extractPage(page, n, crop)); err != nil {
			return err
		}
	}
	return nil
}

func extractPage(page pdf.Page, number int, crop Crop) models.PageWords {
	width, height := pageSize(page)
	pw := models.PageWords{PageNumber: number, Width: width, Height: height}

	for _, t := range assembleWords(page.Content().Text) {
		// PDF text coordinates are bottom-origin; the pipeline works in
		// top-origin reading order.
		top := height - t.Y
		if top < crop.Header || top > height-crop.Footer {
			continue
		}
		pw.Words = append(pw.Words, models.Word{
			Text: t.S,
			X0:   t.X,
			X1:   t.X + t.W,
			Top:  top,
		})
	}
	return pw
}

// pageSize reads the page's MediaBox, falling back to A4.
func pageSize(page pdf.Page) (width, height float64) {
	box := page.V.Key("MediaBox")
	if box.Len() == 4 {
		x0, y0 := box.Index(0).Float64(), box.Index(1).Float64()
		x1, y1 := box.Index(2).Float64(), box.Index(3).Float64()
		if x1 > x0 && y1 > y0 {
			return x1 - x0, y1 - y0
		}
	}
	return defaultPageWidth, defaultPageHeight
}

// assembleWords merges the content stream's text items into words. Items on
// the same baseline whose gap is below a fraction of the font size belong to
// one word; everything else stays separate. Baselines are first normalized
// so that sub-point jitter does not split a row.
func assembleWords(chars []pdf.Text) []pdf.Text {
	if len(chars) == 0 {
		return nil
	}

	items := make([]pdf.Text, len(chars))
	copy(items, chars)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Y != items[j].Y {
			return items[i].Y > items[j].Y
		}
		return items[i].X < items[j].X
	})

	// Snap near-identical baselines together.
	const nudge = 1.0
	prev := math.Inf(-1)
	for i := range items {
		if items[i].Y != prev && math.Abs(items[i].Y-prev) < nudge {
			items[i].Y = prev
		} else {
			prev = items[i].Y
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Y != items[j].Y {
			return items[i].Y > items[j].Y
		}
		return items[i].X < items[j].X
	})

	var words []pdf.Text
	for i := 0; i < len(items); {
		// Gather the baseline run.
		j := i + 1
		for j < len(items) && items[j].Y == items[i].Y {
			j++
		}
		// Merge adjacent items into words.
		for k := i; k < j; {
			word := items[k]
			end := word.X + word.W
			l := k + 1
			for l < j {
				next := items[l]
				gap := word.FontSize / 6
				if next.X > end+gap {
					break
				}
				word.S += next.S
				end = next.X + next.W
				l++
			}
			word.W = end - word.X
			words = append(words, word)
			k = l
		}
		i = j
	}
	return words
}
