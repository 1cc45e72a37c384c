// Package stream runs the either algebra over channels: many values, each
// wrapped in an Envelope that keeps its identity while stages transform it,
// with a bounded number of pump workers per stage. It contains the plumbing
// only; the per-value semantics stay exactly those of the either package,
// and one value's failure never touches its siblings.
//
// A pipeline is assembled from a source (Emit), any number of stages
// (Through/Run with a Stage built by Check, MapStage, FlatMapStage,
// TryStage or TeeStage) and a sink (Collect or Fold). Cancellation policy
// is carried on the context: with drain forwarding enabled, envelopes left
// in flight when the context dies arrive at the sink as cancellation
// failures under their original ids instead of vanishing.
package stream
