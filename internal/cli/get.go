package cli

import (
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <pet-id>",
	Short: "Show a pet profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newClient()
		if err != nil {
			return err
		}

		p, err := api.GetPet(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printPet(cmd.OutOrStdout(), p, output)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
