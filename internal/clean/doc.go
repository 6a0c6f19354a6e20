// Package clean implements the two cleaning stages of the price analysis
// pipeline: price normalization (locale formatting removal plus column-mean
// imputation) and feature coercion (defensive numeric parsing, named
// sentinel fixes, row-wise deletion of incomplete rows).
//
// The two stages deliberately differ in their missing-data policy: the
// price column is imputed, the feature columns are dropped on missing.
package clean
