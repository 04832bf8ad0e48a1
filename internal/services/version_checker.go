package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/Tomas-vilte/MatePick/internal/i18n"
	"github.com/fatih/color"
	"github.com/google/go-github/v68/github"
	"golang.org/x/mod/semver"
)

const (
	releaseOwner = "Tomas-vilte"
	releaseRepo  = "MatePick"
)

type VersionUpdater struct {
	currentVersion string
	trans          *i18n.Translations
}

type UpdateCache struct {
	LastCheck   time.Time `json:"last_check"`
	LatestKnown string    `json:"latest_known"`
}

func NewVersionUpdater(version string, trans *i18n.Translations) *VersionUpdater {
	return &VersionUpdater{
		currentVersion: version,
		trans:          trans,
	}
}

// CheckForUpdates consulta el último release publicado y avisa si hay una
// versión más nueva. El resultado se cachea 24 horas para no pegarle a la API
// en cada invocación.
func (v *VersionUpdater) CheckForUpdates(ctx context.Context) {
	if os.Getenv("MATEPICK_DISABLE_UPDATE_CHECK") != "" {
		return
	}

	cache, err := v.loadCache()
	if err == nil && time.Since(cache.LastCheck) < 24*time.Hour {
		if cache.LatestKnown != "" && v.isUpdateAvailable(cache.LatestKnown) {
			v.printUpdateNotification(cache.LatestKnown)
		}
		return
	}

	client := github.NewClient(nil)
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	release, _, err := client.Repositories.GetLatestRelease(ctx, releaseOwner, releaseRepo)
	if err != nil {
		return
	}

	latestVersion := release.GetTagName()

	_ = v.saveCache(UpdateCache{
		LastCheck:   time.Now(),
		LatestKnown: latestVersion,
	})

	if v.isUpdateAvailable(latestVersion) {
		v.printUpdateNotification(latestVersion)
	}
}

// UpdateCLI actualiza el binario según cómo fue instalado. Para instalaciones
// binarias no nos reemplazamos a nosotros mismos: apuntamos a la página de
// releases.
func (v *VersionUpdater) UpdateCLI(ctx context.Context) error {
	switch v.detectInstallMethod() {
	case "go":
		return v.updateViaGo(ctx)
	case "brew":
		return v.updateViaBrew(ctx)
	default:
		release, _, err := github.NewClient(nil).Repositories.GetLatestRelease(ctx, releaseOwner, releaseRepo)
		if err != nil {
			return fmt.Errorf("%s: %w", v.trans.GetMessage("update_failed", 0, nil), err)
		}
		fmt.Println(v.trans.GetMessage("update_manual", 0, map[string]interface{}{
			"URL": release.GetHTMLURL(),
		}))
		return nil
	}
}

func (v *VersionUpdater) detectInstallMethod() string {
	execPath, err := os.Executable()
	if err != nil {
		return "unknown"
	}

	if strings.Contains(execPath, "/Cellar/") || strings.Contains(execPath, "homebrew") || strings.Contains(execPath, "/opt/homebrew") {
		return "brew"
	}

	if gopath := os.Getenv("GOPATH"); gopath != "" && strings.HasPrefix(execPath, gopath) {
		return "go"
	}
	if gobin := os.Getenv("GOBIN"); gobin != "" && strings.HasPrefix(execPath, gobin) {
		return "go"
	}

	return "binary"
}

func (v *VersionUpdater) updateViaGo(ctx context.Context) error {
	if _, err := exec.LookPath("go"); err != nil {
		return fmt.Errorf("%s", v.trans.GetMessage("update_go_not_found", 0, nil))
	}

	cmd := exec.CommandContext(ctx, "go", "install", "github.com/Tomas-vilte/MatePick@latest")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %s", v.trans.GetMessage("update_failed", 0, nil), string(output))
	}
	return nil
}

func (v *VersionUpdater) updateViaBrew(ctx context.Context) error {
	if _, err := exec.LookPath("brew"); err != nil {
		return fmt.Errorf("%s", v.trans.GetMessage("update_brew_not_found", 0, nil))
	}

	cmd := exec.CommandContext(ctx, "brew", "upgrade", "mate-pick")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s: %s", v.trans.GetMessage("update_failed", 0, nil), string(output))
	}
	return nil
}

func (v *VersionUpdater) isUpdateAvailable(latest string) bool {
	current := v.currentVersion
	if !strings.HasPrefix(current, "v") {
		current = "v" + current
	}
	if !strings.HasPrefix(latest, "v") {
		latest = "v" + latest
	}

	if !semver.IsValid(current) || !semver.IsValid(latest) {
		return current != latest
	}

	return semver.Compare(latest, current) > 0
}

func (v *VersionUpdater) printUpdateNotification(latest string) {
	yellow := color.New(color.FgYellow, color.Bold).SprintFunc()
	green := color.New(color.FgGreen, color.Bold).SprintFunc()

	msgAvailable := v.trans.GetMessage("update_available", 0, map[string]interface{}{
		"Current": v.currentVersion,
		"Latest":  green(latest),
	})

	var updateCmd string
	switch v.detectInstallMethod() {
	case "brew":
		updateCmd = green("brew upgrade mate-pick")
	case "go":
		updateCmd = green("go install github.com/Tomas-vilte/MatePick@latest")
	default:
		updateCmd = green("mate-pick update")
	}

	msgCommand := v.trans.GetMessage("update_run_command", 0, map[string]interface{}{
		"Command": updateCmd,
	})

	fmt.Printf("\n%s %s\n%s %s\n\n", yellow("▸"), msgAvailable, yellow("▸"), msgCommand)
}

func (v *VersionUpdater) cacheDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(homeDir, ".mate-pick")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

func (v *VersionUpdater) loadCache() (UpdateCache, error) {
	dir, err := v.cacheDir()
	if err != nil {
		return UpdateCache{}, err
	}

	data, err := os.ReadFile(filepath.Join(dir, "last_update_check.json"))
	if err != nil {
		return UpdateCache{}, err
	}

	var cache UpdateCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return UpdateCache{}, err
	}

	return cache, nil
}

func (v *VersionUpdater) saveCache(cache UpdateCache) error {
	dir, err := v.cacheDir()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "last_update_check.json"), data, 0644)
}
