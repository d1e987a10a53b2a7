package reconcile

import (
	"path/filepath"
	"regexp"
	"strings"

	"ostforge/internal/textutil"
)

var (
	leadingIndexPattern  = regexp.MustCompile(`^\d+\s+`)
	trailingGroupPattern = regexp.MustCompile(`^(.*?)[ _]*\(([^()]*)\)\s*$`)
)

// cleanName strips the extension and any leading track-index prefix the
// asset pipeline attached ("03 The Phenomenon (Field Front).wav").
func cleanName(raw string) string {
	name := strings.TrimSuffix(raw, filepath.Ext(raw))
	name = leadingIndexPattern.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

// splitSegmentMarker detects a trailing intro/loop marker and returns
// the base name it qualifies. Markers are recognized as a parenthesized
// suffix group ("(Boss intro)", "(Field Loop)") or a bare trailing
// token ("bangjoo_intro", "Dystopia_loop"). Markers embedded without a
// separator ("InfinityLoop") are deliberately not split.
func splitSegmentMarker(name string) (string, Segment, bool) {
	if m := trailingGroupPattern.FindStringSubmatch(name); m != nil {
		if segment, ok := classifyMarker(m[2]); ok {
			return m[1], segment, true
		}
	}
	if idx := strings.LastIndexAny(name, "_ "); idx >= 0 {
		if segment, ok := classifyMarker(name[idx+1:]); ok {
			return name[:idx], segment, true
		}
	}
	return "", 0, false
}

func classifyMarker(marker string) (Segment, bool) {
	for _, word := range textutil.Words(marker) {
		switch word {
		case "intro", "front":
			return SegmentIntro, true
		}
	}
	for _, word := range textutil.Words(marker) {
		switch word {
		case "loop", "climax":
			return SegmentLoop, true
		}
	}
	return 0, false
}
