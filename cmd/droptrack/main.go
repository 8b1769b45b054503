// Package main provides the CLI entrypoint for droptrack.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/droptrack/internal/binding"
	"github.com/verte-zerg/droptrack/internal/config"
	"github.com/verte-zerg/droptrack/internal/dispatch"
	"github.com/verte-zerg/droptrack/internal/logging"
	"github.com/verte-zerg/droptrack/internal/model"
	"github.com/verte-zerg/droptrack/internal/store"
	"github.com/verte-zerg/droptrack/internal/tracker"
	"github.com/verte-zerg/droptrack/internal/tui"
)

const (
	defaultShowLog  = true
	defaultLogLevel = "info"
)

var (
	trackImageDir string
	trackShowLog  bool
	trackLogLevel string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "droptrack",
		Short:         "Terminal tracker for a ten-step item drop cycle",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTrackCmd,
	}

	rootCmd.Flags().StringVar(&trackImageDir, "image-dir", tracker.DefaultImageDir, "directory prefix for item images")
	rootCmd.Flags().BoolVar(&trackShowLog, "show-log", defaultShowLog, "show the event log on start")
	rootCmd.Flags().StringVar(&trackLogLevel, "log-level", defaultLogLevel, "log level: debug, info, warn, error")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newKeysCmd())
	rootCmd.AddCommand(newBindCmd())
	rootCmd.AddCommand(newUnbindCmd())

	return rootCmd
}

func runTrackCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "image-dir", &trackImageDir, fileCfg.Tracker.ImageDir)
	applyBoolConfig(cmd, "show-log", &trackShowLog, fileCfg.Tracker.ShowLog)
	applyStringConfig(cmd, "log-level", &trackLogLevel, fileCfg.Tracker.LogLevel)

	cfg := model.Config{
		ImageDir: trackImageDir,
		ShowLog:  trackShowLog,
		LogLevel: trackLogLevel,
	}
	level, err := validateConfig(cfg)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("droptrack needs an interactive terminal")
	}

	logger, logFile, err := logging.OpenFile(config.DefaultLogPath(), level)
	if err != nil {
		logErrf("logging disabled: %v\n", err)
		logger = slog.New(slog.DiscardHandler)
	} else {
		defer func() {
			if cerr := logFile.Close(); cerr != nil {
				logErrf("failed to close log file: %v\n", cerr)
			}
		}()
	}

	var backend binding.Backend
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		// Bindings fall back to defaults and edits are not saved.
		logger.Warn("bindings store unavailable", "err", err)
	} else {
		backend = st
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
	}

	bindings := binding.NewStore(backend, logger)
	log := tracker.NewLog()
	engine := tracker.NewEngine(log, cfg.ImageDir, logger)
	state := dispatch.NewState(bindings, engine, log)
	state.LogVisible = cfg.ShowLog

	logger.Info("tracker started", "image_dir", cfg.ImageDir)
	program := tea.NewProgram(tui.NewModel(state, bindings, logger), tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List key bindings",
		Args:  cobra.NoArgs,
		RunE:  runKeysCmd,
	}
}

func runKeysCmd(cmd *cobra.Command, _ []string) error {
	return withBindings(func(bindings *binding.Store) error {
		return writeBindings(cmd.OutOrStdout(), bindings.All())
	})
}

func newBindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bind <action> <key>",
		Short: "Set the key for an action",
		Long: "Set the key for an action. Actions: advance, regress, clear-log, reset-counter, toggle-log, highlight.\n" +
			"Keys use browser names, e.g. ArrowRight, F4, Enter, or a single character.",
		Args: cobra.ExactArgs(2),
		RunE: runBindCmd,
	}
}

func runBindCmd(cmd *cobra.Command, args []string) error {
	action, err := binding.ParseAction(args[0])
	if err != nil {
		return err
	}
	return withBindings(func(bindings *binding.Store) error {
		bindings.Set(action, args[1])
		return writeBindings(cmd.OutOrStdout(), bindings.All())
	})
}

func newUnbindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unbind <action>",
		Short: "Restore the default key for an action",
		Args:  cobra.ExactArgs(1),
		RunE:  runUnbindCmd,
	}
}

func runUnbindCmd(cmd *cobra.Command, args []string) error {
	action, err := binding.ParseAction(args[0])
	if err != nil {
		return err
	}
	return withBindings(func(bindings *binding.Store) error {
		bindings.Reset(action)
		return writeBindings(cmd.OutOrStdout(), bindings.All())
	})
}

func withBindings(fn func(*binding.Store) error) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	return fn(binding.NewStore(st, nil))
}

func writeBindings(w io.Writer, bindings []model.Binding) error {
	shadowed := binding.Shadowed(bindings)
	rows := make([][]string, 0, len(bindings))
	for _, b := range bindings {
		var notes []string
		if b.Trigger == binding.Defaults[b.Action] {
			notes = append(notes, "default")
		}
		if first, ok := shadowed[b.Action]; ok {
			notes = append(notes, "never fires: same key as "+binding.ShortName(first))
		}
		rows = append(rows, []string{binding.ShortName(b.Action), strconv.Quote(b.Trigger), strings.Join(notes, "; ")})
	}
	for _, line := range formatTable([]string{"ACTION", "KEY", "NOTE"}, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# droptrack configuration
# Uncomment a value to enable it. CLI flags override config values.
# Key bindings are managed with "droptrack bind" or in the app (ctrl+b).

[tracker]
# image-dir = %q         # Directory prefix for item images
# show-log = %t           # Show the event log on start
# log-level = %q        # debug, info, warn or error
`,
		tracker.DefaultImageDir,
		defaultShowLog,
		defaultLogLevel,
	)
}

func validateConfig(cfg model.Config) (slog.Level, error) {
	if strings.TrimSpace(cfg.ImageDir) == "" {
		return 0, fmt.Errorf("--image-dir must not be empty")
	}
	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("--log-level: %w", err)
	}
	return level, nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
