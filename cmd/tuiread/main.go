// Package main provides the CLI entrypoint for tuiread.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tuiread/internal/config"
	"github.com/verte-zerg/tuiread/internal/control"
	"github.com/verte-zerg/tuiread/internal/model"
	"github.com/verte-zerg/tuiread/internal/source"
	"github.com/verte-zerg/tuiread/internal/stats"
	"github.com/verte-zerg/tuiread/internal/store"
	"github.com/verte-zerg/tuiread/internal/tokenize"
	"github.com/verte-zerg/tuiread/internal/tui"
)

const (
	defaultWPM   = 500
	defaultStart = 0
	defaultStep  = 50
	defaultJump  = 10
)

var (
	readWPM       int
	readStart     int
	readStep      int
	readJump      int
	readZen       bool
	readNoHistory bool
	readText      string
	readFile      string

	historySince string
	historyLast  int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuiread",
		Short:         "Terminal speed reader (RSVP)",
		Long:          "Show text one word at a time at a fixed words-per-minute rate.\nText comes from --text, --file, or standard input.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runReadCmd,
	}

	rootCmd.Flags().IntVarP(&readWPM, "wpm", "w", defaultWPM, "words per minute")
	rootCmd.Flags().IntVarP(&readStart, "start", "s", defaultStart, "index of the first word to show")
	rootCmd.Flags().IntVar(&readStep, "step", defaultStep, "WPM change per +/- key press")
	rootCmd.Flags().IntVar(&readJump, "jump", defaultJump, "words skipped by page up/down")
	rootCmd.Flags().BoolVar(&readZen, "zen", false, "start with status and controls hidden")
	rootCmd.Flags().BoolVar(&readNoHistory, "no-history", false, "do not record this session")
	rootCmd.Flags().StringVarP(&readText, "text", "t", "", "text to read")
	rootCmd.Flags().StringVarP(&readFile, "file", "f", "", "file to read")
	rootCmd.MarkFlagsMutuallyExclusive("text", "file")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

func runReadCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := resolveConfig(cmd, fileCfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}

	doc, err := loadDocument(cmd, os.Stdin)
	if err != nil {
		return err
	}

	tokens := tokenize.Tokenize(doc.Text)
	ctrl := control.New(tokens, cfg)
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if doc.Kind == source.KindStdin {
		// Stdin carried the document; keys come from the terminal instead.
		opts = append(opts, tea.WithInputTTY())
	}

	startedAt := time.Now()
	program := tea.NewProgram(tui.NewModel(ctrl), opts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	if cfg.History {
		recordSession(ctrl.Summary(), doc.Label, startedAt, time.Now())
	}
	return nil
}

func resolveConfig(cmd *cobra.Command, fileCfg config.FileConfig) model.Config {
	history := true
	applyIntConfig(cmd, "wpm", &readWPM, fileCfg.Reader.WPM)
	applyIntConfig(cmd, "start", &readStart, fileCfg.Reader.Start)
	applyIntConfig(cmd, "step", &readStep, fileCfg.Reader.Step)
	applyIntConfig(cmd, "jump", &readJump, fileCfg.Reader.Jump)
	applyBoolConfig(cmd, "zen", &readZen, fileCfg.Reader.Zen)
	if fileCfg.Reader.History != nil {
		history = *fileCfg.Reader.History
	}
	if readNoHistory {
		history = false
	}
	return model.Config{
		WPM:     readWPM,
		Start:   readStart,
		Step:    readStep,
		Jump:    readJump,
		Zen:     readZen,
		History: history,
	}
}

func loadDocument(cmd *cobra.Command, stdin *os.File) (source.Document, error) {
	opts := source.Options{
		File:            readFile,
		StdinIsTerminal: term.IsTerminal(int(stdin.Fd())),
	}
	if cmd.Flags().Changed("text") {
		text := readText
		opts.Text = &text
	}
	doc, err := source.Load(opts, stdin)
	if err != nil {
		return source.Document{}, fmt.Errorf("failed to load text: %w", err)
	}
	return doc, nil
}

func recordSession(summary model.SessionStats, label string, startedAt, endedAt time.Time) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open db: %v\n", err)
		return
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()
	summary.Source = label
	summary.StartedAt = startedAt
	summary.EndedAt = endedAt
	summary.DurationMs = endedAt.Sub(startedAt).Milliseconds()
	if _, err := st.InsertSession(context.Background(), summary); err != nil {
		logErrf("failed to save session: %v\n", err)
	}
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

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past reading sessions",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N sessions")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	cfg := model.HistoryConfig{Last: historyLast}
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		cfg.Since = &parsed
	}
	if cfg.Last < 0 {
		return fmt.Errorf("--last must be >= 0")
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	sessions, err := st.ListSessions(cmd.Context(), cfg)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}
	if err := stats.RenderHistory(cmd.OutOrStdout(), sessions); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
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
	return fmt.Sprintf(`# tuiread configuration
# Uncomment a value to enable it. CLI flags override config values.

[reader]
# wpm = %d              # Words per minute
# start = %d              # Index of the first word to show
# step = %d              # WPM change per +/- key press
# jump = %d              # Words skipped by page up/down
# zen = false           # Start with status and controls hidden
# history = true        # Record sessions for 'tuiread history'
`,
		defaultWPM,
		defaultStart,
		defaultStep,
		defaultJump,
	)
}

// validateConfig rejects key-binding sizes that would make a key do nothing.
// WPM and start index are clamped by the reader instead.
func validateConfig(cfg model.Config) error {
	if cfg.Step <= 0 {
		return fmt.Errorf("--step must be > 0")
	}
	if cfg.Jump <= 0 {
		return fmt.Errorf("--jump must be > 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
