package matching

import (
	"strings"

	"skillpath/internal/domain/career"
)

type scoredRecord struct {
	skills    map[string]struct{}
	interests map[string]struct{}
}

func newScoredRecord(r career.Record) scoredRecord {
	return scoredRecord{
		skills:    lowerSet(r.Skills),
		interests: lowerSet(r.Interests),
	}
}

func (s scoredRecord) score(q career.Query) int {
	return countHits(q.Skills, s.skills) + countHits(q.Interests, s.interests)
}

// Match scans records in order and returns the first record reaching the
// highest total score. A record needs at least one hit to win; when none
// does, the result carries a nil Career.
func Match(records []career.Record, q career.Query) (career.MatchResult, error) {
	bestIdx := -1
	bestScore := 0

	for i, r := range records {
		if err := r.Validate(); err != nil {
			return career.MatchResult{}, career.AtIndex(err, i)
		}

		total := newScoredRecord(r).score(q)
		if total > bestScore {
			bestScore = total
			bestIdx = i
		}
	}

	if bestIdx < 0 {
		return career.MatchResult{}, nil
	}

	winner := records[bestIdx].Clone()
	return career.MatchResult{Career: &winner, Score: bestScore}, nil
}

// Score returns the total overlap score of a single record.
func Score(r career.Record, q career.Query) int {
	return newScoredRecord(r).score(q)
}

func countHits(terms []string, set map[string]struct{}) int {
	if len(set) == 0 {
		return 0
	}
	n := 0
	for _, t := range terms {
		if _, ok := set[strings.ToLower(t)]; ok {
			n++
		}
	}
	return n
}

func lowerSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, it := range items {
		out[strings.ToLower(it)] = struct{}{}
	}
	return out
}
