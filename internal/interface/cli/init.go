package cli

import (
	"fmt"
	"path/filepath"

	infraConfig "github.com/YoshitsuguKoike/greet/internal/infra/config"
	"github.com/YoshitsuguKoike/greet/internal/infra/output"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newInitCmd(afs afero.Fs) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default setting.yaml",
		Long:  "Create $GREET_HOME/setting.yaml populated with the default settings. Existing files are kept unless --force is given.",
		Args:  cobra.NoArgs,
		// setting.yaml may not exist or may be the file being replaced
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(c *cobra.Command, _ []string) error {
			path := filepath.Join(infraConfig.ResolveHome(), infraConfig.SettingFile)

			exists, err := afero.Exists(afs, path)
			if err != nil {
				return fmt.Errorf("failed to check %s: %w", path, err)
			}
			if exists && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			data, err := infraConfig.CreateDefaultSettings()
			if err != nil {
				return err
			}
			if err := output.WriteAtomic(afs, path, data); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing setting.yaml")
	return cmd
}
