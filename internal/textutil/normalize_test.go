package textutil_test

import (
	"testing"

	"ostforge/internal/textutil"
)

func TestNormalizeCollapsesPunctuationAndCase(t *testing.T) {
	cases := map[string]string{
		"Crush & Contort":           "crushcontort",
		"crush_contort":             "crushcontort",
		"  It's Time to Choose  ":   "itstimetochoose",
		"CA_Field01_2":              "cafield012",
		"Azar_Boss_Theme_Phase1":    "azarbossthemephase1",
		"Azar Boss Theme Phase 1":   "azarbossthemephase1",
		"Show Time (Boss Front)":    "showtimebossfront",
		"":                          "",
		"---":                       "",
		"Hope for Existence (Boss)": "hopeforexistenceboss",
	}
	for input, want := range cases {
		if got := textutil.Normalize(input); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestWords(t *testing.T) {
	got := textutil.Words("Theres No Way loop_Intro")
	want := []string{"theres", "no", "way", "loop", "intro"}
	if len(got) != len(want) {
		t.Fatalf("Words returned %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Words returned %v, want %v", got, want)
		}
	}
}

func TestSanitizeFileName(t *testing.T) {
	cases := map[string]string{
		"Show Time (The Joker's Theme)": "Show Time (The Joker's Theme)",
		"a/b:c*d":                       "a-b-c-d",
		"what?":                         "what",
		"  padded  ":                    "padded",
	}
	for input, want := range cases {
		if got := textutil.SanitizeFileName(input); got != want {
			t.Errorf("SanitizeFileName(%q) = %q, want %q", input, got, want)
		}
	}
}
