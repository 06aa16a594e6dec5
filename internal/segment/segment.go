package segment

import (
	"iter"

	"github.com/rivo/uniseg"
)

// Sentences returns a lazy iterator over the sentence units of text, in
// document order. Each unit is maximal per the Unicode sentence boundary
// rules; trailing whitespace after a terminator belongs to the preceding
// unit. Empty input yields no units, any other input yields at least one.
func Sentences(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		state := -1
		var sentence string
		for text != "" {
			sentence, text, state = uniseg.FirstSentenceInString(text, state)
			if !yield(sentence) {
				return
			}
		}
	}
}

// Words returns a lazy iterator over the word-boundary units of sentence,
// in order. Units cover the whole input: alphabetic words, numbers,
// punctuation, and whitespace runs all appear as separate candidates.
func Words(sentence string) iter.Seq[string] {
	return func(yield func(string) bool) {
		state := -1
		var word string
		for sentence != "" {
			word, sentence, state = uniseg.FirstWordInString(sentence, state)
			if !yield(word) {
				return
			}
		}
	}
}
