package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/LFroesch/spark/internal/config"
	"github.com/LFroesch/spark/internal/fileops"
	"github.com/LFroesch/spark/internal/git"
	"github.com/LFroesch/spark/internal/launch"
	"github.com/LFroesch/spark/internal/logger"
	"github.com/LFroesch/spark/internal/scaffold"
)

var rootCmd = &cobra.Command{
	Use:   "spark",
	Short: "Fuzzy project picker for your projects directory",
	Long: `spark lists the projects under your projects directory, ranks them
as you type, and opens the one you pick in your editor. It can also
scaffold new projects from templates and clone GitHub repositories.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
		os.Exit(2)
	},
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Print shell integration for your profile",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		extra := ""
		if len(args) == 1 {
			extra = fmt.Sprintf(" --path %q", args[0])
		}
		fmt.Printf(`# Add this to your shell profile (.bashrc, .zshrc):
spark() {
    command spark run%s "$@"
}
`, extra)
	},
}

var runPath string

var runCmd = &cobra.Command{
	Use:   "run [query...]",
	Short: "Open the interactive picker",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "spark needs an interactive terminal")
			return nil
		}

		cfg := config.Load()
		base := runPath
		if base == "" {
			base = config.ProjectsPath(cfg)
		}
		base = config.ExpandPath(base)

		if err := fileops.EnsureDir(base); err != nil {
			return fmt.Errorf("failed to prepare projects directory: %w", err)
		}

		m := initialModel(strings.Join(args, " "), base, cfg)
		if _, err := tea.NewProgram(&m, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("failed to run picker: %w", err)
		}

		return dispatch(m.result, cfg)
	},
}

// Stubbed in tests.
var (
	launchEditor = launch.Editor
	promptNotes  = captureQuickNotes
)

// dispatch performs the side effect the picker selected, after the
// alternate screen has been released.
func dispatch(result *selectionResult, cfg *config.Config) error {
	if result == nil || result.action == actionCancel {
		fmt.Println("Cancelled.")
		return nil
	}

	switch result.action {
	case actionOpen:
		logger.Info("opening %s", result.path)

	case actionCreate:
		if err := scaffold.Create(result.path, result.template); err != nil {
			return fmt.Errorf("failed to create project: %w", err)
		}
		fmt.Printf("✨ Created %s\n", result.path)
		logger.Info("created %s (%s)", result.path, result.template.DisplayName())

	case actionClone:
		fmt.Printf("🚀 Cloning %s...\n", result.repoURL)
		if err := git.Clone(result.repoURL, result.path); err != nil {
			return err
		}
		fmt.Printf("✨ Cloned into %s\n", result.path)
		logger.Info("cloned %s into %s", result.repoURL, result.path)
	}

	if err := fileops.TouchAccess(result.path); err != nil {
		logger.Warn("failed to touch access marker: %v", err)
	}
	if err := launchEditor(result.path, cfg.DefaultEditor); err != nil {
		logger.Warn("editor launch: %v", err)
	}

	// The note is about the session that just ended, so it is asked for
	// only after the editor closes.
	promptNotes(result.path)
	return nil
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or change spark settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		fmt.Printf("projects_path = %s\n", cfg.ProjectsPath)
		fmt.Printf("default_editor = %s\n", cfg.DefaultEditor)
		if path, err := config.GetConfigPath(); err == nil {
			fmt.Printf("# config file: %s\n", path)
		}
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		switch args[0] {
		case "projects_path":
			fmt.Println(cfg.ProjectsPath)
		case "default_editor":
			fmt.Println(cfg.DefaultEditor)
		default:
			return fmt.Errorf("unknown key %q (projects_path, default_editor)", args[0])
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		switch args[0] {
		case "projects_path":
			cfg.ProjectsPath = args[1]
		case "default_editor":
			cfg.DefaultEditor = args[1]
		default:
			return fmt.Errorf("unknown key %q (projects_path, default_editor)", args[0])
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Printf("%s = %s\n", args[0], args[1])
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Save(config.Default()); err != nil {
			return err
		}
		fmt.Println("Configuration reset to defaults.")
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runPath, "path", "", "projects directory to use for this run")

	configCmd.AddCommand(configShowCmd, configGetCmd, configSetCmd, configResetCmd)
	rootCmd.AddCommand(initCmd, runCmd, configCmd)
}

func main() {
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	}
	defer logger.Close()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
