package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ─── Config ──────────────────────────────────────────────────────────────────

type config struct {
	File          string `json:"file"`                     // default list file path
	ListsGlob     string `json:"lists_glob,omitempty"`     // glob matching alternate list files
	Autosave      bool   `json:"autosave"`                 // write on every mutation vs on quit
	IndentUnit    int    `json:"indent"`                   // spaces per indent level
	SimpleBoxes   bool   `json:"simple_boxes,omitempty"`   // [x]/[ ] instead of checkbox glyphs
	Strikethrough bool   `json:"strikethrough,omitempty"`  // strike out completed items
	RelativeLines bool   `json:"relative_lines,omitempty"` // show line numbers relative to cursor
}

func defaultListFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "todo.txt"
	}
	return filepath.Join(home, "todo.txt")
}

// newDefaultConfig returns a fresh default config. Must be a function (not a
// var) so each caller gets its own value to mutate.
func newDefaultConfig() config {
	return config{
		File:       defaultListFile(),
		Autosave:   true,
		IndentUnit: 2,
	}
}

func configPath() (string, error) {
	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(cfgDir, "ndo", "config.json"), nil
}

// expandHome expands a leading "~/" to the user's home directory.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// contractHome replaces the user's home directory prefix with "~/" for display.
func contractHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if rel, ok := strings.CutPrefix(path, home+string(filepath.Separator)); ok {
		return "~/" + rel
	}
	return path
}

// loadConfig reads the config file, falling back to defaults when it is
// missing or unreadable. A corrupt file warns and uses defaults rather than
// aborting the session.
func loadConfig() config {
	path, err := configPath()
	if err != nil {
		return newDefaultConfig()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return newDefaultConfig()
	}
	cfg := newDefaultConfig()
	if err := json.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: corrupt config (%v), using defaults. Run `ndo --setup` to fix.\n", err)
		return newDefaultConfig()
	}
	cfg.File = expandHome(cfg.File)
	if cfg.IndentUnit <= 0 {
		cfg.IndentUnit = newDefaultConfig().IndentUnit
	}
	return cfg
}

func saveConfig(path string, cfg config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	// Atomic write: write to temp file then rename, so a crash mid-write
	// can't leave a truncated config file that gets silently replaced with defaults.
	tmp, err := os.CreateTemp(dir, ".config-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return os.Rename(tmpPath, path)
}

// runSetup walks through the config values on stdin and saves the result.
func runSetup(path string, current config, scanner *bufio.Scanner) config {
	promptStyle := lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	dimStyle := lipgloss.NewStyle().Foreground(colorDim)
	if scanner == nil {
		scanner = bufio.NewScanner(os.Stdin)
	}

	fmt.Println(promptStyle.Render("  ndo setup"))
	fmt.Println(dimStyle.Render("  Press enter to keep the current value."))
	fmt.Println()

	prompt := func(label, defVal string) string {
		fmt.Printf("%s %s: ", promptStyle.Render(label), dimStyle.Render("["+defVal+"]"))
		if scanner.Scan() {
			if line := strings.TrimSpace(scanner.Text()); line != "" {
				return line
			}
		}
		return defVal
	}
	promptBool := func(label string, defVal bool) bool {
		def := "n"
		if defVal {
			def = "y"
		}
		ans := strings.ToLower(prompt(label, def))
		return strings.HasPrefix(ans, "y")
	}

	cfg := current

	fmt.Println(dimStyle.Render("  List file opened when no filename argument is given."))
	cfg.File = expandHome(prompt("Default list file   ", contractHome(current.File)))
	fmt.Println()

	fmt.Println(dimStyle.Render("  Optional glob matching other list files for the file picker,"))
	fmt.Println(dimStyle.Render("  e.g. ~/lists/**/*.txt. Leave empty to disable."))
	fmt.Printf("%s %s: ", promptStyle.Render("Lists glob          "), dimStyle.Render("["+current.ListsGlob+"]"))
	if scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			// keep
		case strings.EqualFold(line, "none"):
			cfg.ListsGlob = ""
		default:
			cfg.ListsGlob = line
		}
	}
	fmt.Println()

	cfg.Autosave = promptBool("Autosave on change  ", current.Autosave)
	if unit, err := strconv.Atoi(prompt("Indent width        ", strconv.Itoa(current.IndentUnit))); err == nil && unit > 0 {
		cfg.IndentUnit = unit
	}
	cfg.SimpleBoxes = promptBool("Simple [x] boxes    ", current.SimpleBoxes)
	cfg.Strikethrough = promptBool("Strike out done     ", current.Strikethrough)
	fmt.Println()

	if err := saveConfig(path, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save config: %v\n", err)
	} else {
		fmt.Printf("%s %s\n\n", dimStyle.Render("Saved to"), path)
	}
	return cfg
}
