// Package ffprobe provides a typed wrapper around ffprobe JSON output
// for audio inspection.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - Stream: individual stream properties
//   - Format: container-level metadata
//
// Primary entry point:
//   - Inspect: executes ffprobe and returns a parsed Result
//
// The scanner uses this as the probe of last resort for asset formats
// it cannot decode natively.
package ffprobe
