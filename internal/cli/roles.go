package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/molekit/molekit/internal/config"
	"github.com/molekit/molekit/internal/discovery"
	"github.com/molekit/molekit/internal/tui"
)

// AddRolesCommand adds the roles command to the root command.
func AddRolesCommand(root *cobra.Command) {
	root.AddCommand(newRolesCmd())
}

func newRolesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List all roles with molecule tests and exit",
		Long: `Discover and list every Molecule-testable role without running
any stage. A role is testable when it carries a molecule/default scenario
directory, up to three levels under the roles tree (e.g. cloud/aws/s3).`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := GetLogger()
			ctx := logger.WithContext(cmd.Context())
			tui.CheckNoColor()

			cfg, err := config.Load(ctx)
			if err != nil {
				logger.Warn().Err(err).Msg("failed to load config, using defaults")
				cfg = config.DefaultConfig()
			}

			roles := discovery.Roles(cfg.Paths.RolesDir)
			tui.NewPrinter(os.Stdout, false).Roles(roles)
			return nil
		},
	}
}
