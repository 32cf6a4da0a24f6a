package version

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/dhabedank/daybyday/internal/tui"
)

// githubRepo is where daybyday releases are published.
const githubRepo = "dhabedank/daybyday"

// checkInterval spaces out release lookups so startup stays fast.
const checkInterval = 24 * time.Hour

type githubRelease struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// CheckResult describes an available update.
type CheckResult struct {
	CurrentVersion string
	LatestVersion  string
	ReleaseURL     string
}

// CheckForUpdate returns a result only when a newer release exists. Dev
// builds, recently checked installs, and lookup failures all yield nil;
// the update check must never block or break normal use.
func CheckForUpdate(currentVersion string) *CheckResult {
	if currentVersion == "dev" || currentVersion == "" {
		return nil
	}
	if checkedRecently() {
		return nil
	}
	touchMarker()

	release, err := latestRelease()
	if err != nil {
		return nil
	}

	latest := strings.TrimPrefix(release.TagName, "v")
	current := strings.TrimPrefix(currentVersion, "v")
	if !isNewerVersion(latest, current) {
		return nil
	}
	return &CheckResult{
		CurrentVersion: currentVersion,
		LatestVersion:  release.TagName,
		ReleaseURL:     release.HTMLURL,
	}
}

// PrintUpdateNotice prints the update banner for a non-nil result.
func PrintUpdateNotice(result *CheckResult) {
	if result == nil {
		return
	}

	fmt.Println()
	fmt.Printf("%s A new version of daybyday is available: %s (you have %s)\n",
		tui.WarningStyle.Render("!"),
		tui.SuccessStyle.Render(result.LatestVersion),
		result.CurrentVersion,
	)
	fmt.Printf("  Update: %s\n", tui.HelpStyle.Render("go install github.com/dhabedank/daybyday@latest"))
	if result.ReleaseURL != "" {
		fmt.Printf("  Notes:  %s\n", tui.HelpStyle.Render(result.ReleaseURL))
	}
	fmt.Println()
}

func latestRelease() (*githubRelease, error) {
	url := fmt.Sprintf("https://api.github.com/repos/%s/releases/latest", githubRepo)

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github api returned %d", resp.StatusCode)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, err
	}
	return &release, nil
}

func markerPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".daybyday", ".last-update-check")
}

func checkedRecently() bool {
	info, err := os.Stat(markerPath())
	if err != nil {
		return false
	}
	return time.Since(info.ModTime()) < checkInterval
}

func touchMarker() {
	path := markerPath()
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return
	}
	now := time.Now()
	if err := os.Chtimes(path, now, now); err != nil {
		_ = os.WriteFile(path, nil, 0644)
	}
}

// isNewerVersion compares dotted version strings part by part. Equal
// prefixes defer to length, so "0.1.0.1" beats "0.1.0".
func isNewerVersion(latest, current string) bool {
	lp := strings.Split(latest, ".")
	cp := strings.Split(current, ".")

	for i := 0; i < len(lp) && i < len(cp); i++ {
		l, c := versionPart(lp[i]), versionPart(cp[i])
		if l != c {
			return l > c
		}
	}
	return len(lp) > len(cp)
}

// versionPart reads the leading number of a part like "1-beta".
func versionPart(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	n, _ := strconv.Atoi(s[:i])
	return n
}
