package segment

import (
	"slices"
	"strings"
	"testing"
)

func collect(seq func(func(string) bool)) []string {
	var out []string
	seq(func(s string) bool {
		out = append(out, s)
		return true
	})
	return out
}

func TestSentencesEmptyInput(t *testing.T) {
	if got := collect(Sentences("")); len(got) != 0 {
		t.Fatalf("Sentences(\"\") = %q, want no units", got)
	}
}

func TestSentencesTwoSentences(t *testing.T) {
	got := collect(Sentences("Cat sat. Dog sat."))
	if len(got) != 2 {
		t.Fatalf("sentence count = %d (%q), want 2", len(got), got)
	}
	if strings.TrimSpace(got[0]) != "Cat sat." {
		t.Errorf("first sentence = %q, want %q (ignoring trailing space)", got[0], "Cat sat.")
	}
	if strings.TrimSpace(got[1]) != "Dog sat." {
		t.Errorf("second sentence = %q, want %q", got[1], "Dog sat.")
	}
}

func TestSentencesNoTerminator(t *testing.T) {
	got := collect(Sentences("no punctuation here"))
	if len(got) != 1 || got[0] != "no punctuation here" {
		t.Fatalf("Sentences = %q, want the whole input as one unit", got)
	}
}

func TestSentencesCoverInput(t *testing.T) {
	input := "One. Two! Three? Four"
	got := collect(Sentences(input))
	if joined := strings.Join(got, ""); joined != input {
		t.Errorf("units %q concatenate to %q, want original input", got, joined)
	}
	if len(got) != 4 {
		t.Errorf("sentence count = %d (%q), want 4", len(got), got)
	}
}

func TestWordsIncludeNonWordUnits(t *testing.T) {
	got := collect(Words("Cat sat."))
	want := []string{"Cat", " ", "sat", "."}
	if !slices.Equal(got, want) {
		t.Fatalf("Words = %q, want %q", got, want)
	}
}

func TestWordsKeepApostropheWordsWhole(t *testing.T) {
	got := collect(Words("don't stop"))
	want := []string{"don't", " ", "stop"}
	if !slices.Equal(got, want) {
		t.Fatalf("Words = %q, want %q", got, want)
	}
}

func TestWordsCoverInput(t *testing.T) {
	input := "Rates rose 4.5%, then fell."
	got := collect(Words(input))
	if joined := strings.Join(got, ""); joined != input {
		t.Errorf("units %q concatenate to %q, want original input", got, joined)
	}
}

func TestWordsEarlyStop(t *testing.T) {
	var seen []string
	Words("one two three")(func(s string) bool {
		seen = append(seen, s)
		return len(seen) < 2
	})
	want := []string{"one", " "}
	if !slices.Equal(seen, want) {
		t.Fatalf("stopped iteration saw %q, want %q", seen, want)
	}
}
