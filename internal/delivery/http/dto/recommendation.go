package dto

import (
	"encoding/json"

	"skillpath/internal/domain/career"
)

const NoMatchMessage = "No matching career found. Try different skills or interests."

// RecommendRequest keeps elements as pointers so a JSON null inside either
// list is rejected instead of decoding to "".
type RecommendRequest struct {
	Skills    []*string `json:"skills" validate:"required,dive,required"`
	Interests []*string `json:"interests" validate:"required,dive,required"`
}

func (r RecommendRequest) Query() career.Query {
	return career.Query{Skills: derefTerms(r.Skills), Interests: derefTerms(r.Interests)}
}

func derefTerms(in []*string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, 0, len(in))
	for _, t := range in {
		if t != nil {
			out = append(out, *t)
		}
	}
	return out
}

type RecommendationResponse struct {
	Career      string          `json:"career"`
	Description string          `json:"description"`
	Roadmap     json.RawMessage `json:"roadmap"`
	Resources   json.RawMessage `json:"resources"`
}

func NewRecommendationResponse(r career.Record) RecommendationResponse {
	return RecommendationResponse{
		Career:      r.Name,
		Description: r.Description,
		Roadmap:     r.Roadmap,
		Resources:   r.Resources,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}
