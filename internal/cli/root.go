package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"selectorhub/internal/config"
)

// version is set at build time with -ldflags "-X selectorhub/internal/cli.version=..."
var version = "dev"

type app struct {
	configPath string
	docPath    string
	v          *viper.Viper
	cfg        *config.Config
}

// NewRootCmd builds the selectorhub command tree
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   config.AppName,
		Short: "Shared CSS selector registry and selection playground",
		Long: `selectorhub keeps one registry of CSS class and id selectors shared by
the components of a page document, and shows the selectors common to the
components you select.

Run without a subcommand to open the terminal playground.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.loadConfig,
		RunE:              a.runTUI,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "config file (default is ./"+config.FileName+" or "+config.Dir()+")")
	flags.StringVarP(&a.docPath, "doc", "d", config.DefaultDocument, "page document to load and save")
	flags.String("log-level", "", "console log level: none, normal or debug")

	root.AddCommand(
		newTUICmd(a),
		newInspectCmd(a),
		newCommonCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

func (a *app) loadConfig(cmd *cobra.Command, _ []string) error {
	a.v = config.NewViper(a.configPath)
	if err := a.v.BindPFlag("logging.console.level", cmd.Flags().Lookup("log-level")); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}
