// Package filtergraph turns resolved catalog entries into abstract
// audio filter graphs: per-input trim/fade/volume chains concatenated
// into a single output stream, with optional trailing silence. The
// graphs carry no encoder flag syntax; rendering them belongs to the
// encoding package.
package filtergraph
