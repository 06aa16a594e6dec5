// Package concordance builds an alphabetical concordance of an English
// text document: every distinct word with its occurrence count and the
// 1-based sentence numbers in which each occurrence appeared, rendered as
// a fixed-width listing with alphabetic list markers.
//
// All state is scoped to a single Generate call, so concurrent calls with
// distinct inputs and output sinks are independent.
package concordance
