package service

import (
	"sort"
	"strings"
	"unicode"

	"ProjectRoameo/internal/entity"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeText lowercases and strips diacritics so matching treats
// "Jalan-jalan ke Médan" and "medan" the same way.
func normalizeText(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

const (
	scoreQuestionMatch = 10
	scoreAnswerMatch   = 5
	scoreTagMatch      = 3
	scorePageTarget    = 8
	scorePageKeyword   = 2

	maxSearchResults = 3
)

type scoredEntry struct {
	entry entity.FAQEntry
	score int
}

// scoreEntries ranks the corpus against a free-text query and the page the
// user is on. Entries that accumulate no score are dropped; ties keep corpus
// order; at most three entries are returned.
func scoreEntries(query, currentPath string, corpus []entity.FAQEntry) []entity.FAQEntry {
	q := normalizeText(strings.TrimSpace(query))
	if q == "" || len(corpus) == 0 {
		return nil
	}

	keywords := PageKeywords(currentPath)

	scored := make([]scoredEntry, 0, len(corpus))
	for _, e := range corpus {
		question := normalizeText(e.Question)
		answer := normalizeText(e.Answer)

		score := 0
		if strings.Contains(question, q) {
			score += scoreQuestionMatch
		}
		if strings.Contains(answer, q) {
			score += scoreAnswerMatch
		}
		for _, tag := range e.Tags {
			if t := normalizeText(tag); t != "" && strings.Contains(q, t) {
				score += scoreTagMatch
			}
		}
		if e.TargetsPage(currentPath) {
			score += scorePageTarget
		}
		for _, keyword := range keywords {
			k := normalizeText(keyword)
			if strings.Contains(q, k) || strings.Contains(question, k) || strings.Contains(answer, k) {
				score += scorePageKeyword
			}
		}

		if score > 0 {
			scored = append(scored, scoredEntry{entry: e, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	if len(scored) > maxSearchResults {
		scored = scored[:maxSearchResults]
	}

	results := make([]entity.FAQEntry, len(scored))
	for i, s := range scored {
		results[i] = s.entry
	}
	return results
}
