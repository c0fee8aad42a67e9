package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/medixpert/medixpert-cli/internal/client/models"
)

// History lists the signed-in user's prior predictions, newest first
// (server ordering is preserved).
func (a *App) History(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please log in first.")
		return nil
	}

	records, err := a.api.ListPredictions(ctx)
	if err != nil {
		fmt.Println("Could not fetch prediction history:", err)
		return nil
	}
	if len(records) == 0 {
		fmt.Println("No predictions yet. Run 'diagnose' to get one.")
		return nil
	}

	for _, r := range records {
		printPredictionRecord(r)
	}
	return nil
}

func printPredictionRecord(r models.PredictionRecord) {
	fmt.Printf("[%s] %s (severity: %s, confidence: %g%%)\n",
		r.Timestamp, r.PredictedDisease.Name, r.PredictedDisease.Severity, r.ConfidenceScore)

	if len(r.Symptoms) > 0 {
		names := make([]string, 0, len(r.Symptoms))
		for _, s := range r.Symptoms {
			names = append(names, s.Name)
		}
		fmt.Printf("  symptoms: %s\n", strings.Join(names, ", "))
	}
	if r.AdditionalSymptoms != "" {
		fmt.Printf("  additional: %s\n", r.AdditionalSymptoms)
	}
	if r.Notes != "" {
		fmt.Printf("  notes: %s\n", r.Notes)
	}
}
