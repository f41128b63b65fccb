package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/fincept/fincept-shell/internal/auth"
	"github.com/fincept/fincept-shell/internal/config"
	"github.com/fincept/fincept-shell/internal/logger"
	"github.com/fincept/fincept-shell/internal/tui"
)

type rootFlags struct {
	configPath string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	cmd := &cobra.Command{
		Use:           "fincept",
		Short:         "FinceptTerminal sign-in shell",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd.Context(), flags)
		},
	}
	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/fincept/config.toml)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "override log.level (trace, debug, info, warn, error)")
	cmd.AddCommand(newCheckCmd(&flags))
	return cmd
}

// startup is everything the shell needs before the first frame.
type startup struct {
	cfg       config.Config
	keys      []tui.KeyBinding
	status    string
	statusErr bool
}

// loadStartup resolves config and keybindings. A broken keybindings file
// is not fatal: defaults are used and the problem is reported as status.
func loadStartup(flags rootFlags) (startup, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return startup{}, err
	}
	if lvl := strings.ToLower(strings.TrimSpace(flags.logLevel)); lvl != "" {
		cfg.Log.Level = lvl
		if err := cfg.Validate(); err != nil {
			return startup{}, err
		}
	}

	st := startup{cfg: cfg, keys: tui.DefaultKeyBindings()}
	overrides, err := config.LoadKeybindings(cfg.UI.Keybindings, tui.Actions())
	if err != nil {
		st.status = fmt.Sprintf("keybindings ignored: %v", err)
		st.statusErr = true
		return st, nil
	}
	if len(overrides) > 0 {
		st.keys = tui.ApplyActionKeybindings(st.keys, overrides)
	}
	return st, nil
}

func runShell(ctx context.Context, flags rootFlags) error {
	st, err := loadStartup(flags)
	if err != nil {
		return err
	}

	closer, err := logger.Init(logger.Options{File: st.cfg.Log.File, Level: st.cfg.Log.Level})
	if err != nil {
		return err
	}
	defer closer.Close()

	if st.statusErr {
		log.Warn().Str("path", st.cfg.UI.Keybindings).Msg(st.status)
	}
	log.Info().
		Str("auth_mode", st.cfg.Auth.Mode).
		Dur("auth_latency", st.cfg.Auth.Latency).
		Msg("shell starting")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := tui.New(ctx, tui.Options{
		Auth:          auth.NewSimulated(st.cfg.Auth.Latency),
		Keys:          tui.NewKeyRegistry(st.keys),
		FuzzyDistance: st.cfg.Help.FuzzyDistance,
		Status:        st.status,
		StatusErr:     st.statusErr,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run shell: %w", err)
	}
	log.Info().Msg("shell stopped")
	return nil
}
