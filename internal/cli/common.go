package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"selectorhub/internal/domain"
	"selectorhub/internal/eventbus"
	"selectorhub/internal/manager"
)

func newCommonCmd(a *app) *cobra.Command {
	var (
		names          []string
		state          string
		componentFirst bool
	)
	cmd := &cobra.Command{
		Use:   "common",
		Short: "Print the selectors shared by the named components",
		Example: `  selectorhub common --select header,footer
  selectorhub common -s card --state hover`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			ids := make([]string, 0, len(names))
			for _, name := range names {
				c := s.ed.Component(name)
				if c == nil {
					c = s.ed.FindByName(name)
				}
				if c == nil {
					return fmt.Errorf("unknown component %q", name)
				}
				ids = append(ids, c.ID)
			}

			var payload *manager.CustomPayload
			s.mgr.On(domain.EventSelectorCustom, func(e eventbus.DomainEvent) {
				if p, ok := e.(domain.CustomEvent).Payload.(manager.CustomPayload); ok {
					payload = &p
				}
			})

			s.ed.Selection().Only(ids...)
			s.mgr.SetComponentFirst(componentFirst)
			s.mgr.SetState(state)
			s.mgr.Select(s.ed.StyleTargets(componentFirst), manager.SelectOptions{State: state})
			s.loop.Drain(16)
			if payload == nil {
				return fmt.Errorf("selection did not settle")
			}

			out := cmd.OutOrStdout()
			for _, sel := range payload.Common {
				fmt.Fprintln(out, sel.FullName())
			}
			targets := make([]string, len(payload.Selected))
			for i, t := range payload.Selected {
				targets[i] = t.String()
			}
			fmt.Fprintf(out, "targets: %s\n", strings.Join(targets, ", "))
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&names, "select", "s", nil, "component names or ids to select")
	cmd.Flags().StringVar(&state, "state", "", "pseudo-state, e.g. hover")
	cmd.Flags().BoolVar(&componentFirst, "components-first", false, "target components instead of rules")
	_ = cmd.MarkFlagRequired("select")
	return cmd
}
