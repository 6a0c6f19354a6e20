// Package pipeline orchestrates the car-price analysis: dataset loading,
// price normalization, feature cleaning, categorical collapse and one-hot
// encoding, the OLS fit with diagnostics, and k-fold cross-validation.
//
// The run is single-threaded and batch: one pass over immutable table
// snapshots that either completes or fails with a stage-attributed error.
package pipeline
