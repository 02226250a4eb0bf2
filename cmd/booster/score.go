package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-booster/internal/strength"
	"github.com/jonathan/resume-booster/internal/types"
)

var scoreJSON bool

var scoreCmd = &cobra.Command{
	Use:   "score <resume.json>",
	Short: "Evaluate resume strength",
	Long:  "Score a resume JSON file against the strength checks and print the score, level and improvement tips.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the assessment as JSON")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	data, err := readResume(args[0])
	if err != nil {
		return err
	}

	assessment := strength.Evaluate(data)

	if scoreJSON {
		out, err := json.MarshalIndent(assessment, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(out))
		return nil
	}

	cmd.Printf("Score: %d/100 (%s)\n", assessment.Score, assessment.Level)
	if len(assessment.Tips) > 0 {
		cmd.Println("Tips:")
		for _, tip := range assessment.Tips {
			cmd.Printf("  - %s\n", tip)
		}
	}
	return nil
}

func readResume(path string) (types.ResumeData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return types.ResumeData{}, fmt.Errorf("failed to read resume file: %w", err)
	}
	data := types.DefaultResume()
	if err := json.Unmarshal(raw, &data); err != nil {
		return types.ResumeData{}, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return data, nil
}

func readPortfolio(path string) (types.PortfolioState, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return types.PortfolioState{}, fmt.Errorf("failed to read portfolio file: %w", err)
	}
	state := types.DefaultPortfolio()
	if err := json.Unmarshal(raw, &state); err != nil {
		return types.PortfolioState{}, fmt.Errorf("failed to parse portfolio JSON: %w", err)
	}
	state.Template = state.Template.OrDefault()
	return state, nil
}
