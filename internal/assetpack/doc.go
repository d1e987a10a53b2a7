// Package assetpack reads raw audio resources out of an extracted game
// asset container.
//
// A Container exposes the resource index and byte streams; the
// directory implementation covers the common case of assets already
// unpacked to disk by a Unity asset extractor. The Scanner walks the
// index once, applies a resource-type filter, and probes each entry's
// duration and sample rate so downstream fade math never re-opens the
// clips. WAV clips are probed natively; anything else falls back to
// ffprobe.
package assetpack
