package main

import (
	"encoding/json"

	"skillpath/internal/catalog"
	"skillpath/internal/delivery/http/dto"
	"skillpath/internal/domain/career"
	"skillpath/internal/usecase"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Run one recommendation against the careers file",
	Long:  "Scores the careers file against the given skills and interests and prints the response body the HTTP service would return.",
	RunE:  runMatch,
}

var (
	matchSkills    []string
	matchInterests []string
)

func init() {
	matchCmd.Flags().StringSliceVarP(&matchSkills, "skills", "s", nil, "Comma separated skills")
	matchCmd.Flags().StringSliceVarP(&matchInterests, "interests", "i", nil, "Comma separated interests")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	env, err := loadToolEnv()
	if err != nil {
		return err
	}

	src, err := catalog.NewFileSource(env.cfg.Catalog.Path)
	if err != nil {
		return err
	}

	q := career.Query{Skills: nonNil(matchSkills), Interests: nonNil(matchInterests)}
	uc := usecase.NewRecommendationUsecase(src, nil, 0, env.logger)
	res, err := uc.Recommend(cmd.Context(), q)
	if err != nil {
		return err
	}

	var body any = dto.MessageResponse{Message: dto.NoMatchMessage}
	if res.Matched() {
		body = dto.NewRecommendationResponse(*res.Career)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(body)
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
