package main

import (
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// ─── Commands ────────────────────────────────────────────────────────────────

// watchFile watches the list file for external modification. Sends a
// fileChangedMsg when a write/create/remove of the file is detected, with a
// small debounce to coalesce rapid writes. Events landing shortly after our
// own writes are skipped; the content comparison in the model is the final
// arbiter either way.
func watchFile(watcher *fsnotify.Watcher, path string) tea.Cmd {
	return func() tea.Msg {
		base := filepath.Base(path)
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Base(ev.Name) != base {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Remove) {
					time.Sleep(100 * time.Millisecond)
				drain:
					for {
						select {
						case _, ok := <-watcher.Events:
							if !ok {
								break drain
							}
						default:
							break drain
						}
					}
					if time.Since(time.UnixMilli(lastSelfWrite.Load())) < 500*time.Millisecond {
						continue
					}
					return fileChangedMsg{}
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
			}
		}
	}
}
