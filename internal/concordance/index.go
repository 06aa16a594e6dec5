package concordance

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"concord/internal/segment"
)

// WordStat holds the accumulated statistics for one normalized word.
type WordStat struct {
	// Count is the number of occurrences seen so far.
	Count int
	// SentenceNums lists the 1-based sentence number of every occurrence
	// in encounter order. A word appearing twice in one sentence records
	// that number twice. len(SentenceNums) always equals Count.
	SentenceNums []int
}

// Index maps a normalized (lower-cased) word to its accumulated
// statistics. An Index belongs to a single scan and is never shared.
type Index map[string]*WordStat

// recordOccurrence notes one occurrence of word in sentence sentenceNum.
func (idx Index) recordOccurrence(word string, sentenceNum int) {
	if stat, ok := idx[word]; ok {
		stat.Count++
		stat.SentenceNums = append(stat.SentenceNums, sentenceNum)
		return
	}
	idx[word] = &WordStat{Count: 1, SentenceNums: []int{sentenceNum}}
}

// ScanText segments text into sentences and words and accumulates word
// statistics into a fresh Index. Sentence numbers start at 1 in segmenter
// order. A candidate counts as a word only when its first rune is a
// letter; punctuation, whitespace, and number-leading units are dropped.
func ScanText(text string) Index {
	idx, _ := scanText(text)
	return idx
}

func scanText(text string) (Index, int) {
	idx := make(Index)
	lower := cases.Lower(language.English) // casers carry state, one per scan
	sentenceNum := 0
	for sentence := range segment.Sentences(text) {
		sentenceNum++
		for candidate := range segment.Words(sentence) {
			if !leadsWithLetter(candidate) {
				continue
			}
			idx.recordOccurrence(lower.String(candidate), sentenceNum)
		}
	}
	return idx, sentenceNum
}

// leadsWithLetter reports whether the candidate's first rune is a letter.
// Zero-length candidates are rejected without inspecting any rune.
func leadsWithLetter(candidate string) bool {
	if candidate == "" {
		return false
	}
	r, _ := utf8.DecodeRuneInString(candidate)
	return unicode.IsLetter(r)
}
