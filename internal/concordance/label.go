package concordance

const (
	// maxMarkerChars caps the marker length at three letters.
	maxMarkerChars = 3

	// maxMarkerRank is the highest rank that still gets an encoded
	// marker; everything above it saturates to overflowMarker.
	maxMarkerRank = 26 * maxMarkerChars

	// overflowMarker stands in for every rank past maxMarkerRank. It is
	// emitted as-is, without the trailing dot regular markers carry.
	overflowMarker = "zzz"
)

// encodeLabel renders a 1-based rank as an alphabetic list marker in
// bijective base-26 (a=1 .. z=26, no zero digit) followed by a dot.
// Multi-letter markers repeat their first digit instead of continuing
// the alphabet: 27 is "aa.", 28 is "bb.", 53 is "aaa.". The sequence is
// pinned by characterization tests; consult them before changing it.
func encodeLabel(rank int) string {
	if rank > maxMarkerRank {
		return overflowMarker
	}
	return string(appendMarkerDigits(nil, rank)) + "."
}

// appendMarkerDigits accumulates the marker digits for rank. Ranks above
// 26 reduce by 26 first; once the accumulator holds a digit, deeper
// levels append a copy of its first digit.
func appendMarkerDigits(digits []byte, rank int) []byte {
	if rank > 26 {
		digits = appendMarkerDigits(digits, rank-26)
	}
	if len(digits) == 0 {
		return append(digits, byte('a'+rank-1))
	}
	return append(digits, digits[0])
}
