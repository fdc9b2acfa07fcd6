package common

import (
	"fmt"
	"strings"
)

// fallbackStem is used when a section title sanitizes to nothing.
const fallbackStem = "section"

// SanitizeFilename maps an arbitrary section title to a filesystem-safe
// filename stem: characters outside [A-Za-z0-9_-] become underscores, runs
// of underscores collapse to one, and leading/trailing underscores are
// trimmed. An empty result falls back to "section". Deterministic, no side
// effects.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastUnderscore := false
	for _, r := range name {
		safe := r == '-' ||
			(r >= '0' && r <= '9') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= 'a' && r <= 'z')
		if safe {
			b.WriteRune(r)
			lastUnderscore = false
			continue
		}
		if !lastUnderscore {
			b.WriteByte('_')
			lastUnderscore = true
		}
	}

	stem := strings.Trim(b.String(), "_")
	if stem == "" {
		return fallbackStem
	}
	return stem
}

// UniqueStems sanitizes every title and disambiguates collisions with a
// numeric suffix, preserving input order. Two sections titled "Rigg" and
// "Rigg!" come out as "Rigg" and "Rigg_2".
func UniqueStems(titles []string) []string {
	used := make(map[string]bool, len(titles))
	stems := make([]string, len(titles))
	for i, title := range titles {
		stem := SanitizeFilename(title)
		if used[stem] {
			for n := 2; ; n++ {
				candidate := fmt.Sprintf("%s_%d", stem, n)
				if !used[candidate] {
					stem = candidate
					break
				}
			}
		}
		used[stem] = true
		stems[i] = stem
	}
	return stems
}
