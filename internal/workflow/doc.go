// Package workflow orchestrates a full soundtrack extraction run:
// scanning the asset directory, reconciling raw clips against the
// track catalog, synthesizing filter graphs, and driving the encoder
// across a bounded worker pool. One track's failure never aborts the
// run; every outcome lands in the run summary.
package workflow
