// Package segment splits text into sentence and word units using the
// Unicode text segmentation rules (UAX #29), the same boundary algorithm
// an English-locale break iterator applies.
//
// Both iterators are lazy and make a single forward pass; the units they
// produce concatenate back to the input. Word units include punctuation
// and whitespace runs, so callers that only want words must filter.
package segment
