package concordance

// Stats summarizes a scanned document.
type Stats struct {
	// Sentences is the number of sentence units the segmenter produced.
	Sentences int
	// Occurrences is the total number of accepted word occurrences.
	Occurrences int
	// DistinctWords is the number of distinct normalized words.
	DistinctWords int
	// LongestWord is the longest normalized word; the alphabetically
	// first one wins a length tie. Empty when no words were accepted.
	LongestWord string
}

// Summarize scans text and reports aggregate document statistics.
func Summarize(text string) Stats {
	idx, sentences := scanText(text)

	stats := Stats{
		Sentences:     sentences,
		DistinctWords: len(idx),
	}
	for word, stat := range idx {
		stats.Occurrences += stat.Count
		switch {
		case len(word) > len(stats.LongestWord):
			stats.LongestWord = word
		case len(word) == len(stats.LongestWord) && word < stats.LongestWord:
			stats.LongestWord = word
		}
	}
	return stats
}
