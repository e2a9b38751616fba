package command

import (
	commandHandler "hrms/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewSeedAdminHandler)

type Command struct {
	seedAdminHandler *commandHandler.SeedAdminHandler
}

// NewCommand .
func NewCommand(
	seedAdminHandler *commandHandler.SeedAdminHandler,
) *Command {
	return &Command{
		seedAdminHandler: seedAdminHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	var username, password string

	seedAdmin := &cobra.Command{
		Use:   "seed-admin",
		Short: "create the initial Admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			command, cleanup, err := newCmd()
			if err != nil {
				return err
			}
			defer cleanup()

			return command.seedAdminHandler.Seed(cmd, username, password)
		},
	}
	seedAdmin.Flags().StringVar(&username, "username", "admin", "admin username")
	seedAdmin.Flags().StringVar(&password, "password", "", "admin password (random when omitted)")

	rootCmd.AddCommand(seedAdmin)
}
