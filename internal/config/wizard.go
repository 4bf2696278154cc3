package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .folio.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to folio! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Namespace — becomes the storage key prefix for this site instance.
	nsPrompt := promptui.Prompt{
		Label:   "Short site namespace (e.g. your initials)",
		Default: cfg.Namespace,
		Validate: func(s string) error {
			if s == "" {
				return fmt.Errorf("namespace is required")
			}
			if strings.ContainsAny(s, "_ \t") {
				return fmt.Errorf("no underscores or spaces")
			}
			return nil
		},
	}
	ns, err := nsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("namespace: %w", err)
	}
	cfg.Namespace = ns

	// 2. Site title.
	titlePrompt := promptui.Prompt{
		Label:   "Site title",
		Default: cfg.SiteTitle,
	}
	title, err := titlePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site title: %w", err)
	}
	cfg.SiteTitle = title

	// 3. Data directory holding site-config.json and projects.json.
	dataPrompt := promptui.Prompt{
		Label:   "Data directory",
		Default: cfg.DataDir,
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}
	cfg.DataDir = dataDir

	// 4. Output directory for generated pages.
	outputPrompt := promptui.Prompt{
		Label:   "Output directory for the generated site",
		Default: cfg.OutputDir,
	}
	outputDir, err := outputPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}
	cfg.OutputDir = outputDir

	// 5. Server port.
	portPrompt := promptui.Prompt{
		Label:   "Local server port",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, convErr := strconv.Atoi(s)
			if convErr != nil || n <= 0 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(".folio.yml"); err != nil {
		return nil, err
	}

	fmt.Println()
	fmt.Println("Configuration saved to .folio.yml")
	return cfg, nil
}
