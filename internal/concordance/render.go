package concordance

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// minWordColumn is the minimum width of the word column; longer words
// widen the column to fit.
const minWordColumn = 30

// Render writes one line per distinct word in idx to w, sorted ascending
// by word. Each line carries the rank marker in a four-character field,
// the word left-justified in the word column, and the occurrence stats as
// {count:sentence,sentence,...}.
func Render(idx Index, w io.Writer) error {
	words := make([]string, 0, len(idx))
	for word := range idx {
		words = append(words, word)
	}
	slices.Sort(words)

	width := minWordColumn
	for _, word := range words {
		if len(word) > width {
			width = len(word)
		}
	}

	for i, word := range words {
		stat := idx[word]
		line := fmt.Sprintf("%-4s %-*s {%d:%s}", encodeLabel(i+1), width, word, stat.Count, joinSentenceNums(stat.SentenceNums))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write concordance line: %w", err)
		}
	}
	return nil
}

func joinSentenceNums(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
