package services

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel markers for the pipeline failure classes. ErrContainerRead
// and ErrCatalogInvariant abort the whole run; the rest are recorded
// per track and processing continues.
var (
	ErrContainerRead    = errors.New("container read error")
	ErrCatalogInvariant = errors.New("catalog invariant violation")
	ErrAmbiguousMatch   = errors.New("ambiguous match")
	ErrGraphBuild       = errors.New("graph build error")
	ErrEncode           = errors.New("encode error")
)

// Wrap builds an error message that includes component context while
// tagging it with the provided marker for later classification. The
// marker should be one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrEncode
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsFatal reports whether an error must abort the run before any
// further track is processed.
func IsFatal(err error) bool {
	return errors.Is(err, ErrContainerRead) || errors.Is(err, ErrCatalogInvariant)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
