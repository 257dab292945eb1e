package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/datatable/internal/table"
	"github.com/alexisbeaulieu97/datatable/internal/tui"
)

type rootFlags struct {
	seedPath string
	pageSize int
	dark     bool
	logFile  string
	logLevel string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "datatable",
		Short:         "Browse and edit a small table in the terminal",
		Long:          "Browse, search, page through and edit an in-memory table of people. Changes live only as long as the program runs.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVar(&flags.seedPath, "seed", "", "YAML file with the initial rows")
	cmd.PersistentFlags().IntVar(&flags.pageSize, "page-size", 0, "Rows per page (5, 10 or 20)")
	cmd.PersistentFlags().BoolVar(&flags.dark, "dark", false, "Start in dark mode")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Append structured logs to this file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newSchemaCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func runInteractive(cmd *cobra.Command, flags *rootFlags) error {
	log, closeLog, err := openLogger(flags)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := loadStore(flags, log)
	if err != nil {
		log.Error(err, "failed to prepare table")
		return err
	}

	out := cmd.OutOrStdout()
	if !isTerminal(out) {
		log.Info("stdout is not a terminal, rendering once")
		_, err := io.WriteString(out, tui.RenderStatic(store, true))
		return err
	}

	log.Info("launching table", "rows", store.Len())
	p := tea.NewProgram(tui.NewModel(store, log), tea.WithAltScreen(), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		log.Error(err, "table program failed")
		return fmt.Errorf("failed to run table: %w", err)
	}
	log.Info("table closed", "rows", store.Len())
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// applyPageSize overrides the seed page size when the flag is set.
func applyPageSize(store *table.Store, size int) error {
	if size == 0 {
		return nil
	}
	if !table.ValidPageSize(size) {
		return fmt.Errorf("page size %d is not one of %v", size, table.PageSizes)
	}
	store.SetPageSize(size)
	return nil
}
