// Package encoding runs the external ffmpeg process that renders
// filter graphs into finished audio files. The Encoder interface is
// the only surface the workflow depends on, so tests substitute fakes
// without touching a real binary.
package encoding
