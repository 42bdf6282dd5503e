package covergen

import (
	"math"
	"regexp"
	"strings"
)

// ContentMetrics holds the shallow lexical metrics derived from one input
// text. It is a pure function of the text: identical input always produces
// identical metrics.
type ContentMetrics struct {
	WordCount          int
	CharacterCount     int     // rune length of the cleaned text
	AvgWordLength      float64 // rounded to 1 decimal, 0 if no words
	ReadingTimeMinutes int     // ceil(WordCount / 200)
	ParagraphCount     int     // at least 1 for non-empty content, 0 for empty
	ContentHash        uint32  // rolling hash of the cleaned text
}

var (
	tagPattern       = regexp.MustCompile(`<[^>]*>`)
	wsPattern        = regexp.MustCompile(`\s+`)
	nonWordPattern   = regexp.MustCompile(`\W`)
	paraTagPattern   = regexp.MustCompile(`(?i)<p[^>]*>`)
	blankLinePattern = regexp.MustCompile(`\r?\n\s*\n`)
)

var entityReplacer = strings.NewReplacer(
	"&nbsp;", " ",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
)

// Analyze derives ContentMetrics from raw text. Markup is stripped
// shallowly: tags are replaced by spaces, the six common HTML entities are
// decoded, and whitespace runs are collapsed. Analyze never fails; empty
// input yields all-zero metrics (including ParagraphCount 0).
func Analyze(rawText string) ContentMetrics {
	cleaned := cleanText(rawText)
	words := splitWords(cleaned)

	var avg float64
	if len(words) > 0 {
		total := 0
		for _, w := range words {
			total += len([]rune(w))
		}
		avg = math.Round(float64(total)/float64(len(words))*10) / 10
	}

	return ContentMetrics{
		WordCount:          len(words),
		CharacterCount:     len([]rune(cleaned)),
		AvgWordLength:      avg,
		ReadingTimeMinutes: (len(words) + 199) / 200,
		ParagraphCount:     countParagraphs(rawText, cleaned),
		ContentHash:        contentHash(cleaned),
	}
}

// cleanText strips tags, decodes entities and normalizes whitespace.
func cleanText(raw string) string {
	s := tagPattern.ReplaceAllString(raw, " ")
	s = entityReplacer.Replace(s)
	s = wsPattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// splitWords lower-cases the cleaned text, splits on whitespace and strips
// non-word characters from each token, dropping tokens that become empty.
func splitWords(cleaned string) []string {
	fields := strings.Fields(strings.ToLower(cleaned))
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		w := nonWordPattern.ReplaceAllString(f, "")
		if w != "" {
			words = append(words, w)
		}
	}
	return words
}

// countParagraphs counts <p> opening tags in the raw text when present,
// otherwise splits on blank lines. Non-empty content always counts as at
// least one paragraph; fully empty input counts as zero.
func countParagraphs(raw, cleaned string) int {
	if cleaned == "" {
		return 0
	}
	if n := len(paraTagPattern.FindAllStringIndex(raw, -1)); n > 0 {
		return n
	}
	count := 0
	for _, seg := range blankLinePattern.Split(raw, -1) {
		if strings.TrimSpace(seg) != "" {
			count++
		}
	}
	if count < 1 {
		count = 1
	}
	return count
}

// contentHash is a non-cryptographic rolling hash over the cleaned text,
// accumulated left to right with unsigned 32-bit wraparound.
func contentHash(cleaned string) uint32 {
	var h uint32
	for _, r := range cleaned {
		h = h*31 + uint32(r)
	}
	return h
}
