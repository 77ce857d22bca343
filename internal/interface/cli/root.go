package cli

import (
	"github.com/YoshitsuguKoike/greet/internal/app/config"
	infraConfig "github.com/YoshitsuguKoike/greet/internal/infra/config"
	"github.com/YoshitsuguKoike/greet/internal/interface/cli/version"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewRoot builds the greet command tree on the OS filesystem.
func NewRoot() *cobra.Command {
	return NewRootWithFs(afero.NewOsFs())
}

// NewRootWithFs builds the greet command tree reading settings from and
// writing output to afs.
func NewRootWithFs(afs afero.Fs) *cobra.Command {
	var (
		cfg  config.Config
		opts GreetOptions
	)

	cmd := &cobra.Command{
		Use:   "greet [name...]",
		Short: "Print a greeting for each name",
		Long: `Print "Hello, <name>" for each name given on the command line.

With no names, the default_name from setting.yaml is greeted ("World" unless configured).
Settings are read from $GREET_HOME/setting.yaml (default .greet/setting.yaml);
flags override settings.`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			loaded, err := infraConfig.LoadSettings(afs, infraConfig.ResolveHome())
			if err != nil {
				return err
			}
			cfg = loaded
			return nil
		},
		RunE: func(c *cobra.Command, args []string) error {
			resolved := opts.withDefaults(c, cfg)
			return runGreet(c.OutOrStdout(), c.ErrOrStderr(), afs, cfg, resolved, args)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.Strict, "strict", false, "reject empty or malformed names")
	f.StringVar(&opts.Normalize, "normalize", "", "normalize names before greeting: none, nfc or nfkc")
	f.StringVar(&opts.Format, "format", "", "output format: text or json")
	f.StringVarP(&opts.Out, "out", "o", "", "write output to this file instead of stdout")
	f.StringVar(&opts.LogLevel, "log-level", "", "stderr log level: debug, info, warn or error")

	// "completion" stays a greetable name
	cmd.CompletionOptions.DisableDefaultCmd = true

	cmd.AddCommand(version.NewCommand())
	cmd.AddCommand(newInitCmd(afs))
	return cmd
}
