package services_test

import (
	"errors"
	"strings"
	"testing"

	"ostforge/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("exit status 1")
	err := services.Wrap(services.ErrEncode, "encoder", "run ffmpeg", "track 3", base)
	if !errors.Is(err, services.ErrEncode) {
		t.Fatal("expected wrapped error to match ErrEncode")
	}
	if !errors.Is(err, base) {
		t.Fatal("expected wrapped error to preserve the cause")
	}
	for _, fragment := range []string{"encoder", "run ffmpeg", "track 3"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Fatalf("error %q missing fragment %q", err, fragment)
		}
	}
}

func TestWrapDefaultsMarker(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrEncode) {
		t.Fatalf("nil marker should default to ErrEncode, got %v", err)
	}
}

func TestIsFatal(t *testing.T) {
	cases := []struct {
		err   error
		fatal bool
	}{
		{services.Wrap(services.ErrContainerRead, "scanner", "list", "", nil), true},
		{services.Wrap(services.ErrCatalogInvariant, "catalog", "load", "", nil), true},
		{services.Wrap(services.ErrAmbiguousMatch, "reconciler", "match", "", nil), false},
		{services.Wrap(services.ErrGraphBuild, "synthesizer", "build", "", nil), false},
		{services.Wrap(services.ErrEncode, "encoder", "run", "", nil), false},
	}
	for _, tc := range cases {
		if got := services.IsFatal(tc.err); got != tc.fatal {
			t.Errorf("IsFatal(%v) = %v, want %v", tc.err, got, tc.fatal)
		}
	}
}
