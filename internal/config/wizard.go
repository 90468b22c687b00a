package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// payloadCandidates are file names checked, in order, for an existing payload.
var payloadCandidates = []string{
	"data.json",
	"data.yaml",
	"data.yml",
	"data.js",
	"data/data.js",
	"js/data.js",
}

// detectPayload returns the first payload file found in dir.
func detectPayload(dir string) string {
	for _, name := range payloadCandidates {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(name))); err == nil {
			return name
		}
	}
	return ""
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your site.")
	fmt.Println()

	detected := detectPayload(".")
	if detected != "" {
		fmt.Printf("Detected content payload: %s\n\n", detected)
	}

	cfg := DefaultConfig()

	// 1. Content source.
	sourcePrompt := promptui.Select{
		Label: "Select content source",
		Items: []string{
			"file   - a data.json / data.yaml / data.js payload",
			"sqlite - content imported with `folio import`",
			"sample - the built-in sample site",
		},
	}
	sourceIdx, _, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("source selection: %w", err)
	}
	cfg.Content.Source = []SourceType{SourceFile, SourceSQLite, SourceSample}[sourceIdx]

	// 2. Source location.
	switch cfg.Content.Source {
	case SourceFile:
		pathPrompt := promptui.Prompt{
			Label:    "Payload file",
			Default:  detected,
			Validate: nonEmpty,
		}
		if cfg.Content.Path, err = pathPrompt.Run(); err != nil {
			return nil, fmt.Errorf("payload path: %w", err)
		}
		watchPrompt := promptui.Prompt{
			Label:     "Reload when the payload changes",
			IsConfirm: true,
		}
		_, err := watchPrompt.Run()
		cfg.Content.Watch = err == nil
	case SourceSQLite:
		dbPrompt := promptui.Prompt{
			Label:    "Database file",
			Default:  DefaultDatabase,
			Validate: nonEmpty,
		}
		if cfg.Content.Database, err = dbPrompt.Run(); err != nil {
			return nil, fmt.Errorf("database path: %w", err)
		}
	}

	// 3. Output directory.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the static export",
		Default: cfg.OutputDir,
	}
	if cfg.OutputDir, err = outputPrompt.Run(); err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	// 4. Port.
	portPrompt := promptui.Prompt{
		Label:    "Server port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validPort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func nonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("value is required")
	}
	return nil
}

func validPort(s string) error {
	p, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("port must be between 1 and 65535")
	}
	return nil
}
