package covergen

import (
	"reflect"
	"testing"
)

func TestAnalyze_LiteralCase(t *testing.T) {
	m := Analyze("Hello world. This is a test.")

	if m.WordCount != 6 {
		t.Errorf("WordCount = %d, want 6", m.WordCount)
	}
	if m.CharacterCount != 28 {
		t.Errorf("CharacterCount = %d, want 28", m.CharacterCount)
	}
	// mean(5,5,4,2,1,4) = 21/6 = 3.5
	if m.AvgWordLength != 3.5 {
		t.Errorf("AvgWordLength = %v, want 3.5", m.AvgWordLength)
	}
	if m.ReadingTimeMinutes != 1 {
		t.Errorf("ReadingTimeMinutes = %d, want 1", m.ReadingTimeMinutes)
	}
	if m.ParagraphCount != 1 {
		t.Errorf("ParagraphCount = %d, want 1", m.ParagraphCount)
	}
	if m.ContentHash != 92862707 {
		t.Errorf("ContentHash = %d, want 92862707", m.ContentHash)
	}
}

func TestAnalyze_Words(t *testing.T) {
	got := splitWords(cleanText("Hello world. This is a test."))
	want := []string{"hello", "world", "this", "is", "a", "test"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("words = %v, want %v", got, want)
	}
}

func TestAnalyze_StripsMarkup(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		cleaned string
	}{
		{"tags to spaces", "<h1>Title</h1><p>Body</p>", "Title Body"},
		{"entities decoded", "a&nbsp;b &amp; c &lt;d&gt; &quot;e&quot; &#39;f&#39;", `a b & c <d> "e" 'f'`},
		{"whitespace collapsed", "a\t\t b\n\n   c", "a b c"},
		{"trimmed", "   padded   ", "padded"},
		{"unclosed tag dropped", "before <a href=x>link", "before link"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanText(tt.raw); got != tt.cleaned {
				t.Errorf("cleanText(%q) = %q, want %q", tt.raw, got, tt.cleaned)
			}
		})
	}
}

func TestAnalyze_ParagraphCount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{"p tags counted", "<p>one</p><p>two</p><p class=x>three</p>", 3},
		{"blank line split", "one\n\ntwo\n\n\nthree", 3},
		{"crlf blank lines", "one\r\n\r\ntwo", 2},
		{"single block floors at 1", "just one paragraph", 1},
		{"whitespace only segments ignored", "one\n\n   \n\ntwo", 2},
		{"empty input is zero", "", 0},
		{"whitespace-only input is zero", "  \n\n  ", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Analyze(tt.raw).ParagraphCount; got != tt.want {
				t.Errorf("ParagraphCount = %d, want %d", got, tt.want)
			}
		})
	}
}

// Empty input policy: every metric is zero, ParagraphCount included.
func TestAnalyze_EmptyInput(t *testing.T) {
	want := ContentMetrics{}
	if got := Analyze(""); got != want {
		t.Errorf("Analyze(\"\") = %+v, want all zero", got)
	}
}

func TestAnalyze_ReadingTime(t *testing.T) {
	tests := []struct {
		words int
		want  int
	}{
		{0, 0},
		{1, 1},
		{200, 1},
		{201, 2},
		{1000, 5},
	}
	for _, tt := range tests {
		text := ""
		for i := 0; i < tt.words; i++ {
			text += "word "
		}
		if got := Analyze(text).ReadingTimeMinutes; got != tt.want {
			t.Errorf("%d words: ReadingTimeMinutes = %d, want %d", tt.words, got, tt.want)
		}
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	text := "<p>Some article text, with &amp; entities and <b>markup</b>.</p>\n\nSecond paragraph."
	if a, b := Analyze(text), Analyze(text); a != b {
		t.Errorf("Analyze not deterministic: %+v vs %+v", a, b)
	}
}

func TestContentHash_Rolling(t *testing.T) {
	// h("ab") = ('a'*31 + 'b') with h("a") = 'a'
	if got, want := contentHash("a"), uint32('a'); got != want {
		t.Errorf("contentHash(\"a\") = %d, want %d", got, want)
	}
	if got, want := contentHash("ab"), uint32('a')*31+uint32('b'); got != want {
		t.Errorf("contentHash(\"ab\") = %d, want %d", got, want)
	}
	if got := contentHash("abc"); got != 96354 {
		t.Errorf("contentHash(\"abc\") = %d, want 96354", got)
	}
}
