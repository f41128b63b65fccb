package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fincept/fincept-shell/internal/logger"
	"github.com/fincept/fincept-shell/internal/tui"
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Print the resolved startup configuration and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStartupHarness(cmd.OutOrStdout(), cmd.ErrOrStderr(), *flags)
		},
	}
}

// runStartupHarness resolves startup state without opening a terminal
// and prints it as key=value lines. Problems are also logged to errOut.
func runStartupHarness(w, errOut io.Writer, flags rootFlags) error {
	l := logger.Console(errOut)
	st, err := loadStartup(flags)
	if err != nil {
		l.Error().Err(err).Msg("startup config invalid")
		fmt.Fprintf(w, "startup_config_err=%v\n", err)
		return err
	}
	if st.statusErr {
		l.Warn().Str("path", st.cfg.UI.Keybindings).Msg(st.status)
	}
	m := tui.New(context.Background(), tui.Options{
		Keys:          tui.NewKeyRegistry(st.keys),
		FuzzyDistance: st.cfg.Help.FuzzyDistance,
		Status:        st.status,
		StatusErr:     st.statusErr,
	})

	fmt.Fprintf(w, "auth_mode=%s\n", st.cfg.Auth.Mode)
	fmt.Fprintf(w, "auth_latency=%s\n", st.cfg.Auth.Latency)
	fmt.Fprintf(w, "log_level=%s\n", st.cfg.Log.Level)
	fmt.Fprintf(w, "log_file=%s\n", st.cfg.Log.File)
	fmt.Fprintf(w, "help_fuzzy_distance=%d\n", st.cfg.Help.FuzzyDistance)
	fmt.Fprintf(w, "keybindings=%s\n", st.cfg.UI.Keybindings)
	fmt.Fprintf(w, "initial_screen=%s\n", m.Current())
	fmt.Fprintf(w, "startup_status=%q\n", st.status)
	fmt.Fprintf(w, "startup_status_err=%t\n", st.statusErr)
	return nil
}
