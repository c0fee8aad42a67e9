package cli

import (
	"context"
	"fmt"
)

// Dashboard shows the user's activity summary and recent predictions.
func (a *App) Dashboard(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Println("Please log in first.")
		return nil
	}

	summary, err := a.api.GetDashboard(ctx)
	if err != nil {
		fmt.Println("Could not fetch the dashboard:", err)
		return nil
	}

	fmt.Printf("Total predictions:    %d\n", summary.TotalPredictions)
	fmt.Printf("Total health records: %d\n", summary.TotalHealthRecords)

	if len(summary.RecentPredictions) > 0 {
		fmt.Println("Recent predictions:")
		for _, r := range summary.RecentPredictions {
			printPredictionRecord(r)
		}
	}
	return nil
}
