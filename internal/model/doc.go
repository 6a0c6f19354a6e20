// Package model fits ordinary-least-squares regressions on the encoded
// design matrix and reports the standard diagnostics: coefficient standard
// errors, t statistics, p-values, R², variance inflation factors, and
// seeded k-fold cross-validation error.
//
// Infeasible fits (too few rows, singular design) surface as named errors
// instead of propagating NaN coefficients.
package model
