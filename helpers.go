package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/LFroesch/spark/internal/logger"
)

// copyPath puts a project path on the system clipboard.
func (m *model) copyPath(path string) {
	if err := clipboard.WriteAll(path); err != nil {
		logger.Warn("clipboard write failed: %v", err)
		m.setStatus("Clipboard unavailable")
		return
	}
	m.setStatus("Copied " + path)
}

// captureQuickNotes asks for a one-line note before the editor opens and
// appends it to the project's NOTES.md. Empty input skips the note.
func captureQuickNotes(projectPath string) {
	fmt.Print("📝 Quick note (Enter to skip): ")

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return
	}
	note := strings.TrimSpace(line)
	if note == "" {
		return
	}

	if err := saveNote(projectPath, note); err != nil {
		logger.Warn("failed to save note: %v", err)
		fmt.Fprintf(os.Stderr, "Could not save note: %v\n", err)
		return
	}
	fmt.Println("Note saved to NOTES.md")
}

func saveNote(projectPath, note string) error {
	notesPath := filepath.Join(projectPath, "NOTES.md")

	f, err := os.OpenFile(notesPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open notes file: %w", err)
	}
	defer f.Close()

	entry := fmt.Sprintf("- %s: %s\n", time.Now().Format("2006-01-02 15:04"), note)
	if _, err := f.WriteString(entry); err != nil {
		return fmt.Errorf("failed to write note: %w", err)
	}
	return nil
}
