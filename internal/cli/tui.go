package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"selectorhub/internal/ui"
)

func newTUICmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the selector playground (default)",
		Args:  cobra.NoArgs,
		RunE:  a.runTUI,
	}
}

func (a *app) runTUI(cmd *cobra.Command, _ []string) error {
	// The console belongs to the playground; only the file sink stays.
	a.cfg.Logging.Console.Level = "none"

	s, err := a.openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	model := ui.NewModel(ui.Options{
		Editor:    s.ed,
		Manager:   s.mgr,
		Loop:      s.loop,
		Documents: s.docs,
		DocPath:   a.docPath,
		Config:    a.cfg,
		Logger:    s.log.Named("ui"),
	})

	opts := []tea.ProgramOption{tea.WithContext(cmd.Context())}
	if os.Getenv(ui.E2EEnv) != "1" {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	_, err = p.Run()
	return err
}
