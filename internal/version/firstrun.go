package version

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dhabedank/daybyday/internal/tui"
)

// IsFirstRun returns true if this appears to be the first run.
// Checks for existence of config file or first-run marker.
func IsFirstRun() bool {
	home, err := os.UserHomeDir()
	if err != nil {
		return false
	}

	configPath := filepath.Join(home, ".daybyday.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return false // Config exists, not first run
	}

	markerPath := filepath.Join(home, ".daybyday", ".initialized")
	if _, err := os.Stat(markerPath); err == nil {
		return false // Already initialized
	}

	return true
}

// MarkInitialized creates the first-run marker.
func MarkInitialized() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	dir := filepath.Join(home, ".daybyday")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return
	}

	markerPath := filepath.Join(dir, ".initialized")
	_ = os.WriteFile(markerPath, []byte{}, 0644)
}

// PrintFirstRunNotice prints a welcome message for first-time users.
func PrintFirstRunNotice() {
	fmt.Println()
	fmt.Printf("%s Welcome to DayByDay!\n", tui.TitleStyle.Render("*"))
	fmt.Println()
	fmt.Println("  Quick start:")
	fmt.Printf("    1. Run %s to pick a provider and model\n", tui.ModelStyle.Render("daybyday setup"))
	fmt.Printf("    2. Generate a plan: %s\n", tui.ModelStyle.Render("daybyday plan new \"Learn Go basics\""))
	fmt.Printf("    3. Track it: %s\n", tui.ModelStyle.Render("daybyday task done 1 0"))
	fmt.Println()
	fmt.Printf("  %s\n", tui.HelpStyle.Render("Run 'daybyday --help' for all commands"))
	fmt.Println()

	// Mark as initialized so we don't show this again
	MarkInitialized()
}
