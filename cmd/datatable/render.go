package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/datatable/internal/tui"
)

type renderOptions struct {
	search string
	page   int
	plain  bool
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one page of the table and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.OutOrStdout(), flags, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "Only show rows whose name or email contains this text")
	cmd.Flags().IntVarP(&opts.page, "page", "p", 1, "Page number to show (1-based)")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Disable colours and styling")

	return cmd
}

func runRender(out io.Writer, flags *rootFlags, opts *renderOptions) error {
	if opts.page < 1 {
		return fmt.Errorf("page must be 1 or greater, got %d", opts.page)
	}

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

	// Same order as the interactive table: the search never moves the page.
	store.SetSearch(opts.search)
	store.SetPage(opts.page - 1)

	view := store.View()
	log.Info("rendering table", "search", opts.search, "page", view.Page, "total", view.Total)

	_, err = io.WriteString(out, tui.RenderStatic(store, opts.plain || !isTerminal(out)))
	return err
}
