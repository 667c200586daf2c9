package shell

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// DefaultHistoryFile is where submitted prompts are remembered between
// sessions.
const DefaultHistoryFile = ".agent_cli_history"

// maxHistoryEntries caps the file so it cannot grow without bound.
const maxHistoryEntries = 200

// HistoryEntry is one remembered prompt.
type HistoryEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Prompt    string    `json:"prompt"`
}

// History keeps submitted prompts across sessions.
type History struct {
	Entries []HistoryEntry `json:"entries"`
	path    string
}

// LoadHistory reads the history file at path. A missing file yields an
// empty history; a corrupt file is discarded rather than crashing the shell.
func LoadHistory(path string) *History {
	h := &History{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		return h
	}
	if err := json.Unmarshal(data, h); err != nil {
		h.Entries = nil
	}
	return h
}

// Append remembers a prompt and persists the file.
func (h *History) Append(prompt string) error {
	h.Entries = append(h.Entries, HistoryEntry{
		Timestamp: time.Now().UTC(),
		Prompt:    prompt,
	})
	if len(h.Entries) > maxHistoryEntries {
		h.Entries = h.Entries[len(h.Entries)-maxHistoryEntries:]
	}
	return h.save()
}

// Recent returns up to n entries, newest first.
func (h *History) Recent(n int) []HistoryEntry {
	if n > len(h.Entries) {
		n = len(h.Entries)
	}
	out := make([]HistoryEntry, 0, n)
	for i := len(h.Entries) - 1; i >= len(h.Entries)-n; i-- {
		out = append(out, h.Entries[i])
	}
	return out
}

func (h *History) save() error {
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling history: %w", err)
	}

	tmp := h.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	if err := os.Rename(tmp, h.path); err != nil {
		return fmt.Errorf("replacing history: %w", err)
	}
	return nil
}
