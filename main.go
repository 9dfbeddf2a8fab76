package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

var version = ""

func getVersion() string {
	if version != "" {
		return version
	}
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--help" || os.Args[1] == "-h") {
		fmt.Println("ndo — a TUI for editing line-based todo lists")
		fmt.Println()
		fmt.Println("Usage: ndo [flags] [file]")
		fmt.Println()
		fmt.Println("Flags:")
		fmt.Println("  --help, -h    Show this help")
		fmt.Println("  --version     Print version")
		fmt.Println("  --setup       Re-run configuration")
		fmt.Println("  --demo        Launch with an in-memory demo list")
		return
	}

	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Println("ndo " + getVersion())
		return
	}

	if len(os.Args) > 1 && strings.HasPrefix(os.Args[1], "-") &&
		os.Args[1] != "--setup" && os.Args[1] != "--demo" {
		fmt.Fprintf(os.Stderr, "unknown flag: %s\nRun ndo --help for usage.\n", os.Args[1])
		os.Exit(1)
	}

	if len(os.Args) > 1 && os.Args[1] == "--setup" {
		path, err := configPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		runSetup(path, loadConfig(), nil)
		return
	}

	cfg := loadConfig()

	if len(os.Args) > 1 && os.Args[1] == "--demo" {
		m := newModel(demoList(), nil, cfg, nil)
		if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	path := cfg.File
	if len(os.Args) > 1 {
		path = expandHome(os.Args[1])
	}

	store := &diskList{path: path}
	items, err := store.read()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", path, err)
		os.Exit(1)
	}

	var watcher *fsnotify.Watcher
	if w, err := fsnotify.NewWatcher(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not start file watcher: %v\n", err)
	} else if err := w.Add(filepath.Dir(path)); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not watch %s: %v\n", filepath.Dir(path), err)
		w.Close()
	} else {
		watcher = w
		defer w.Close()
	}

	m := newModel(items, store, cfg, watcher)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
