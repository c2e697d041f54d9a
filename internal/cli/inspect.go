package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"selectorhub/internal/domain"
)

func newInspectCmd(a *app) *cobra.Command {
	var showPrivate bool
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the selector registry and the components of the document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.openSession()
			if err != nil {
				return err
			}
			defer s.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Class prefix: %s\n\n", s.mgr.Config().ClassPrefix())
			fmt.Fprintf(out, "Selectors (%d):\n", s.mgr.Registry().Len())
			for _, sel := range s.mgr.Registry().All() {
				if sel.Private && !showPrivate {
					continue
				}
				writeSelector(out, sel)
			}

			components := s.ed.Components()
			fmt.Fprintf(out, "\nComponents (%d):\n", len(components))
			for _, c := range components {
				fmt.Fprintf(out, "  %s <%s> %s\n", c.Name, c.Tag, strings.Join(c.Selectors().Names(), ""))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&showPrivate, "private", false, "include private selectors")
	return cmd
}

func writeSelector(w io.Writer, sel *domain.Selector) {
	var flags []string
	if !sel.Active {
		flags = append(flags, "inactive")
	}
	if sel.Protected {
		flags = append(flags, "protected")
	}
	if sel.Private {
		flags = append(flags, "private")
	}
	line := "  " + sel.FullName()
	if sel.Label != "" {
		line += fmt.Sprintf(" %q", sel.Label)
	}
	if len(flags) > 0 {
		line += " [" + strings.Join(flags, ",") + "]"
	}
	fmt.Fprintln(w, line)
}
