package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/medixpert/medixpert-cli/internal/client/models"
)

// Diagnose runs the multi-step diagnosis form: symptom selection from the
// catalog, optional free-text symptoms, optional notes, then confirmation.
// A step only advances when its required input is present; only step 1
// (symptom selection) is required.
func (a *App) Diagnose(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please log in first.")
		return nil
	}

	symptoms, err := a.api.ListSymptoms(ctx)
	if err != nil {
		fmt.Println("Could not fetch the symptom catalog:", err)
		return nil
	}
	if len(symptoms) == 0 {
		fmt.Println("The symptom catalog is empty, try again later.")
		return nil
	}

	printSymptomCatalog(symptoms)

	// Step 1/3: required selection. Re-prompt until at least one valid
	// symptom is chosen.
	var selected []string
	for len(selected) == 0 {
		line, err := getSimpleText(a.reader, "Step 1/3: enter symptom numbers, separated by commas", os.Stdout)
		if err != nil {
			return err
		}
		selected, err = parseSelection(line, symptoms)
		if err != nil {
			fmt.Println(err)
		}
	}

	additional, err := getSimpleText(a.reader, "Step 2/3: other symptoms not in the list (optional)", os.Stdout)
	if err != nil {
		return err
	}

	notes, err := GetMultiline(a.reader, "Step 3/3: notes for the record (optional)", os.Stdout)
	if err != nil {
		return err
	}

	fmt.Printf("Selected symptoms: %s\n", strings.Join(selected, ", "))
	confirm, err := getSimpleText(a.reader, "Submit for diagnosis? (y/n)", os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(confirm, "y") {
		fmt.Println("Cancelled.")
		return nil
	}

	result, err := a.api.SubmitPrediction(ctx, selected, additional, notes)
	if err != nil {
		fmt.Println("Prediction failed:", err)
		return nil
	}

	printPrediction(result)
	return nil
}

func printSymptomCatalog(symptoms []models.Symptom) {
	fmt.Println("Known symptoms:")
	for i, s := range symptoms {
		fmt.Printf("%3d. %s\n", i+1, s.Name)
	}
}

// parseSelection maps a comma-separated list of 1-based catalog indexes to
// symptom names. Duplicates collapse; anything out of range or non-numeric
// rejects the whole line so the user can retry.
func parseSelection(line string, symptoms []models.Symptom) ([]string, error) {
	seen := make(map[int]struct{})
	var names []string

	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 || n > len(symptoms) {
			return nil, fmt.Errorf("invalid selection %q: enter numbers between 1 and %d", part, len(symptoms))
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		names = append(names, symptoms[n-1].Name)
	}

	if len(names) == 0 {
		return nil, fmt.Errorf("select at least one symptom")
	}
	return names, nil
}

func printPrediction(result *models.PredictionResult) {
	fmt.Printf("Predicted condition: %s (severity: %s)\n", result.PredictedDisease.Name, result.PredictedDisease.Severity)
	fmt.Printf("Confidence: %g%%\n", result.ConfidenceScore)
	if result.PredictedDisease.Description != "" {
		fmt.Println(result.PredictedDisease.Description)
	}
	if result.Notes != "" {
		fmt.Println(result.Notes)
	}
	fmt.Println("This is an AI-generated suggestion, not a medical diagnosis. Consult a doctor.")
}
