package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"
	"strings"

	"skillpath/internal/domain/career"
)

const RecommendationKeyPrefix = "recommend:"

type recommendationCacheKeyInput struct {
	Skills    []string `json:"skills"`
	Interests []string `json:"interests"`
}

// normalizeTerms lower-cases and sorts terms. Duplicates are kept because
// each occurrence scores.
func normalizeTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		out = append(out, strings.ToLower(t))
	}
	sort.Strings(out)
	return out
}

func RecommendationCacheKey(catalogVersion string, q career.Query) string {
	in := recommendationCacheKeyInput{
		Skills:    normalizeTerms(q.Skills),
		Interests: normalizeTerms(q.Interests),
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return RecommendationKeyPrefix + catalogVersion + ":" + hex.EncodeToString(sum[:])
}
