// Package encode turns cleaned columns into the regression design matrix:
// high-cardinality categorical columns are first collapsed to their top-N
// most frequent values plus a catch-all "Other" label, then one-hot encoded
// into binary indicator blocks alongside the numeric predictors.
//
// Collapse must run before encoding; otherwise the matrix width would be
// unbounded and dependent on the dataset snapshot.
package encode
