package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pet-registry/internal/client"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <pet-id>",
	Short: "Delete a pet",
	Long: `Delete a pet by id. The deletion is permanent.

The local list is only updated after the server confirms; on failure the
list stays as it was and the server's error message is reported.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		petID := args[0]

		api, err := newClient()
		if err != nil {
			return err
		}

		store := client.NewListStore(api)
		if err := store.Load(cmd.Context()); err != nil {
			return err
		}

		if err := <-store.Delete(cmd.Context(), petID); err != nil {
			return fmt.Errorf("delete pet %s: %s", petID, store.Err())
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Deleted pet: %s (%d remaining)\n", petID, len(store.Pets()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
