package textproc

import (
	"reflect"
	"strings"
	"testing"
)

func TestCleanHTMLStripsMarkup(t *testing.T) {
	got := CleanHTML("<p>China announced new <b>trade</b> measures.</p>")
	want := "China announced new trade measures."
	if got != want {
		t.Errorf("CleanHTML = %q, want %q", got, want)
	}
}

func TestCleanHTMLDecodesEntities(t *testing.T) {
	got := CleanHTML("<p>Trade &amp; security</p>")
	if got != "Trade & security" {
		t.Errorf("CleanHTML = %q, want entities decoded", got)
	}
}

func TestCleanHTMLSeparatesBlockElements(t *testing.T) {
	got := CleanHTML("<p>First paragraph.</p><p>Second paragraph.</p>")
	if got != "First paragraph. Second paragraph." {
		t.Errorf("CleanHTML = %q, want block elements space-separated", got)
	}
}

func TestCleanHTMLPlainTextPassthrough(t *testing.T) {
	got := CleanHTML("Just   plain\n text here.")
	if got != "Just plain text here." {
		t.Errorf("CleanHTML = %q, want whitespace collapsed", got)
	}
}

func TestCleanHTMLEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "<p></p>", "<div>\n</div>"} {
		if got := CleanHTML(input); got != NoContent {
			t.Errorf("CleanHTML(%q) = %q, want %q", input, got, NoContent)
		}
	}
}

func TestSplitSentences(t *testing.T) {
	got := SplitSentences("First sentence. Second one! Is this third? Trailing")
	want := []string{"First sentence.", "Second one!", "Is this third?", "Trailing"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitSentences = %v, want %v", got, want)
	}
}

func TestSplitSentencesKeepsAbbreviationsIntact(t *testing.T) {
	// A period not followed by whitespace is not a sentence boundary.
	got := SplitSentences("Version 2.5 shipped today. It works.")
	if len(got) != 2 {
		t.Fatalf("SplitSentences = %v, want 2 sentences", got)
	}
	if !strings.Contains(got[0], "2.5") {
		t.Errorf("first sentence %q split inside the version number", got[0])
	}
}

func TestSummarizeTruncates(t *testing.T) {
	text := "One. Two. Three. Four."
	got := Summarize(text, 2)
	if got != "One. Two." {
		t.Errorf("Summarize = %q, want first two sentences", got)
	}
}

func TestSummarizeShortTextReturnedWhole(t *testing.T) {
	text := "Only one sentence here."
	if got := Summarize(text, 3); got != text {
		t.Errorf("Summarize = %q, want input unchanged", got)
	}
}

func TestSummarizeNoContent(t *testing.T) {
	if got := Summarize(NoContent, 3); got != NoContent {
		t.Errorf("Summarize(NoContent) = %q, want sentinel passthrough", got)
	}
}

func TestTagsRanksByFrequency(t *testing.T) {
	text := "submarine submarine submarine patrol patrol fleet"
	got := Tags(text, 3, nil)
	want := []string{"submarine", "patrol", "fleet"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tags = %v, want %v", got, want)
	}
}

func TestTagsPromotesImportantKeywords(t *testing.T) {
	// "nuclear" is rarer than "submarine" but carries a curated weight, so it
	// must survive truncation ahead of pure frequency.
	text := "submarine submarine submarine nuclear pact"
	got := Tags(text, 2, map[string]int{"nuclear": 5})
	want := []string{"nuclear", "submarine"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tags = %v, want %v", got, want)
	}
}

func TestTagsFiltersStopWordsAndShortTokens(t *testing.T) {
	got := Tags("the and was sea war submarine", 5, nil)
	for _, tag := range got {
		if len(tag) < 4 {
			t.Errorf("short token %q survived filtering", tag)
		}
		if stopWords[tag] {
			t.Errorf("stop word %q survived filtering", tag)
		}
	}
}

func TestTagsEmptyInput(t *testing.T) {
	if got := Tags("", 5, nil); got != nil {
		t.Errorf("Tags(empty) = %v, want nil", got)
	}
	if got := Tags(NoContent, 5, nil); got != nil {
		t.Errorf("Tags(NoContent) = %v, want nil", got)
	}
}
