package cli

import (
	"context"
	"fmt"
)

// Symptoms lists the public symptom catalog.
func (a *App) Symptoms(ctx context.Context) error {
	symptoms, err := a.api.ListSymptoms(ctx)
	if err != nil {
		fmt.Println("Could not fetch symptoms:", err)
		return nil
	}

	for _, s := range symptoms {
		if s.Description != "" {
			fmt.Printf("- %s: %s\n", s.Name, s.Description)
		} else {
			fmt.Printf("- %s\n", s.Name)
		}
	}
	return nil
}

// Diseases lists the known conditions with their severity.
func (a *App) Diseases(ctx context.Context) error {
	diseases, err := a.api.ListDiseases(ctx)
	if err != nil {
		fmt.Println("Could not fetch diseases:", err)
		return nil
	}

	for _, d := range diseases {
		fmt.Printf("- %s [%s]: %s\n", d.Name, d.Severity, d.Description)
	}
	return nil
}

// Ping checks backend liveness on demand.
func (a *App) Ping(ctx context.Context) error {
	if err := a.api.HealthCheck(ctx); err != nil {
		fmt.Println("Backend is not reachable:", err)
		return nil
	}
	fmt.Println("Backend is up.")
	return nil
}
