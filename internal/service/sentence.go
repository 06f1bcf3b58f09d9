package service

import (
	"regexp"
	"strconv"
	"time"
)

// sentencePattern finds "<n> year" or "<n> years" anywhere in the free text
var sentencePattern = regexp.MustCompile(`(?i)(\d+)\s*years?`)

// Sentence is the structured reading of a free-text sentence length
type Sentence struct {
	Amount int
	Unit   string
}

// ParseSentence is a best-effort parser over the free-text sentence field.
// Anything that does not contain a whole number of years reports ok=false;
// callers exclude those entries rather than failing.
func ParseSentence(text string) (Sentence, bool) {
	m := sentencePattern.FindStringSubmatch(text)
	if m == nil {
		return Sentence{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return Sentence{}, false
	}
	return Sentence{Amount: n, Unit: "years"}, true
}

// ReleaseFrom estimates the release date by adding the sentence to the admission date
func (s Sentence) ReleaseFrom(admission time.Time) time.Time {
	return admission.AddDate(s.Amount, 0, 0)
}
