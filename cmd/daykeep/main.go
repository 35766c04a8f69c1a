package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"daykeep/internal/apiclient"
	"daykeep/internal/ui"
)

func main() {
	baseURL := os.Getenv("DAYKEEP_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := apiclient.New(baseURL)
	program := tea.NewProgram(ui.NewModel(client), tea.WithAltScreen())

	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running daykeep: %v\n", err)
		os.Exit(1)
	}
}
