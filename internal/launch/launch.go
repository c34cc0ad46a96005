// Package launch opens a selected project in the user's editor.
package launch

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/skratchdot/open-golang/open"

	"github.com/LFroesch/spark/internal/logger"
)

// fallbackEditors are tried, in order, when the configured editor is not
// installed.
var fallbackEditors = []string{"code", "vim", "nano", "vi"}

// Editor opens projectPath in the configured editor and blocks until it
// exits. Missing editors fall through the fallback list, then the system
// opener; as a last resort the path is printed. The run never fails just
// because no editor was found.
func Editor(projectPath, configuredEditor string) error {
	candidates := []string{}
	if configuredEditor != "" {
		candidates = append(candidates, configuredEditor)
	}
	for _, e := range fallbackEditors {
		if e != configuredEditor {
			candidates = append(candidates, e)
		}
	}

	for _, editor := range candidates {
		// The configured value may carry flags, e.g. "code --wait".
		parts := strings.Fields(editor)
		if len(parts) == 0 {
			continue
		}
		if _, err := exec.LookPath(parts[0]); err != nil {
			continue
		}

		fmt.Printf("Opening %s in %s...\n", projectPath, parts[0])
		cmd := exec.Command(parts[0], append(parts[1:], ".")...)
		cmd.Dir = projectPath
		cmd.Stdin = os.Stdin
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			logger.Warn("Editor %s exited with error: %v", parts[0], err)
		}
		return nil
	}

	// No editor on PATH; hand the directory to the system opener.
	if err := open.Run(projectPath); err == nil {
		fmt.Printf("Opened %s with the system file manager\n", projectPath)
		return nil
	}

	fmt.Fprintf(os.Stderr, "Warning: could not find %s in PATH\n", configuredEditor)
	fmt.Printf("Project at: %s\n", projectPath)
	return nil
}
