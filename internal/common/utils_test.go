package common

import (
	"reflect"
	"testing"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Scene", "Scene"},
		{"spaces and symbols", "Order & Delivery/Notes", "Order_Delivery_Notes"},
		{"norwegian letters", "Dagen@IFI rigg på scenen", "Dagen_IFI_rigg_p_scenen"},
		{"keeps digits and hyphens", "24-0254 v2", "24-0254_v2"},
		{"collapses underscore runs", "a___b", "a_b"},
		{"trims edges", "  ...rigg...  ", "rigg"},
		{"empty", "", "section"},
		{"only unsafe", "@@@///", "section"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SanitizeFilename(tt.in)
			if got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
			}
			for _, r := range got {
				safe := r == '_' || r == '-' ||
					(r >= '0' && r <= '9') ||
					(r >= 'A' && r <= 'Z') ||
					(r >= 'a' && r <= 'z')
				if !safe {
					t.Errorf("SanitizeFilename(%q) contains unsafe rune %q", tt.in, r)
				}
			}
		})
	}
}

func TestUniqueStems(t *testing.T) {
	got := UniqueStems([]string{"Rigg", "Rigg!", "Rigg?", "Scene"})
	want := []string{"Rigg", "Rigg_2", "Rigg_3", "Scene"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UniqueStems() = %v, want %v", got, want)
	}
}

func TestUniqueStems_SuffixAlreadyTaken(t *testing.T) {
	// A title that sanitizes to an occupied suffix must not collide.
	got := UniqueStems([]string{"Rigg", "Rigg_2", "Rigg#"})
	want := []string{"Rigg", "Rigg_2", "Rigg_3"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UniqueStems() = %v, want %v", got, want)
	}
}

func TestUniqueStems_EmptyTitles(t *testing.T) {
	got := UniqueStems([]string{"", "@@@"})
	want := []string{"section", "section_2"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UniqueStems() = %v, want %v", got, want)
	}
}
