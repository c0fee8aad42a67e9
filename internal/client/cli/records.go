package cli

import (
	"context"
	"fmt"
)

// Records lists the user's health records with doctor follow-ups.
func (a *App) Records(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please log in first.")
		return nil
	}

	records, err := a.api.ListHealthRecords(ctx)
	if err != nil {
		fmt.Println("Could not fetch health records:", err)
		return nil
	}
	if len(records) == 0 {
		fmt.Println("No health records yet.")
		return nil
	}

	for _, r := range records {
		fmt.Printf("#%d %s, status: %s\n", r.ID, r.Prediction.PredictedDisease.Name, r.Status)
		if r.DoctorNotes != "" {
			fmt.Printf("  doctor notes: %s\n", r.DoctorNotes)
		}
		if r.Prescription != "" {
			fmt.Printf("  prescription: %s\n", r.Prescription)
		}
		if r.FollowUpDate != "" {
			fmt.Printf("  follow-up: %s\n", r.FollowUpDate)
		}
	}
	return nil
}
