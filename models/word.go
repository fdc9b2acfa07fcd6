// Package models defines the value types shared by the extraction pipeline:
// positioned words, reconstructed lines, section tables, typed errors, and
// the yaml configuration.
package models

// Word is a positioned token extracted from one PDF page. Coordinates are in
// PDF points with the origin at the top-left corner, so Top increases
// downward in reading order.
type Word struct {
	Text string
	X0   float64
	X1   float64
	Top  float64
}

// PageWords holds every word extracted from a single page after the
// header/footer bands have been cropped away. Words are in extraction order,
// not reading order; line reconstruction imposes the ordering.
type PageWords struct {
	PageNumber int
	Width      float64
	Height     float64
	Words      []Word
}

// Line is a reconstructed row of text: words judged to share a vertical
// position, joined left to right with single spaces.
type Line struct {
	PageNumber int
	Top        float64
	Text       string
}
