// Package report persists pipeline outputs: the encoded matrix and
// coefficient table as CSV, the model summary as text, and the descriptive
// plots as PNG images.
package report
