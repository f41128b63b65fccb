package helpdesk

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultFuzzyDistance is the number of single-letter edits a query word
// may differ from a topic word and still match.
const DefaultFuzzyDistance = 1

// Search filters topics by query. A topic matches when its name contains
// the query (case-insensitive) or when every query word is within maxDist
// edits of some word of the name. An empty query returns every topic.
func Search(topics []Topic, query string, maxDist int) []Topic {
	q := strings.ToUpper(strings.TrimSpace(query))
	if q == "" {
		return append([]Topic(nil), topics...)
	}
	var out []Topic
	for _, t := range topics {
		if topicMatches(t, q, maxDist) {
			out = append(out, t)
		}
	}
	return out
}

func topicMatches(t Topic, q string, maxDist int) bool {
	name := strings.ToUpper(t.Name)
	if strings.Contains(name, q) {
		return true
	}
	if maxDist <= 0 {
		return false
	}
	words := strings.Fields(name)
	for _, qw := range strings.Fields(q) {
		if !anyWordNear(words, qw, maxDist) {
			return false
		}
	}
	return true
}

func anyWordNear(words []string, qw string, maxDist int) bool {
	// Short words would match almost anything at distance 1.
	if len(qw) < 3 {
		for _, w := range words {
			if strings.HasPrefix(w, qw) {
				return true
			}
		}
		return false
	}
	for _, w := range words {
		if levenshtein.ComputeDistance(w, qw) <= maxDist {
			return true
		}
		if len(w) > len(qw) && levenshtein.ComputeDistance(w[:len(qw)], qw) <= maxDist {
			return true
		}
	}
	return false
}
