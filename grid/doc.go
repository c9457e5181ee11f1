// Package grid provides the dense 2-D sample grid shared by the AEM
// image tools, together with its two text representations.
//
// A Grid is a rectangular rows x cols array of float64 values stored
// in row-major order. Two serializations exist:
//
//   - Raw format: whitespace-delimited values, one row per line, no
//     header. Dimensions are inferred at load time. Lines starting
//     with '#' are treated as comments.
//   - AEM image format: a "<rows> <cols> <depth>" header followed by
//     the cell values, as consumed by the inversion tools. The depth
//     value (depth to halfspace) is pass-through metadata.
//
// All loads read the grid entirely into memory; all writes replace
// the target file and remove it again if writing fails partway.
package grid
