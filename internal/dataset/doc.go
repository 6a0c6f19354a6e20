// Package dataset provides the raw tabular data model for the price
// analysis pipeline: loading CSV/XLSX files into immutable Table snapshots,
// and the Value type that represents a numeric cell as either a finite
// float or an explicit absence.
//
// Tables are never mutated in place. Every transforming operation (Select,
// Filter, WithColumn) returns a new snapshot, so each pipeline stage can be
// tested independently against its input and output tables.
package dataset
