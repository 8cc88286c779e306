package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"pet-registry/internal/client"
)

var listSpecies string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your pets",
	Long: `List the pets owned by the authenticated user.

The --species flag filters the view locally; the full list stays cached
in the client store, so the filter costs no extra request.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newClient()
		if err != nil {
			return err
		}

		store := client.NewListStore(api)
		if err := store.Load(cmd.Context()); err != nil {
			return err
		}

		if sp := strings.TrimSpace(listSpecies); sp != "" {
			store.SetFilter(func(p client.Pet) bool {
				return strings.EqualFold(p.Species, sp)
			})
		}

		return printPets(cmd.OutOrStdout(), store.Pets(), output)
	},
}

func init() {
	listCmd.Flags().StringVar(&listSpecies, "species", "", "only show pets of this species (dog, cat, ...)")
	rootCmd.AddCommand(listCmd)
}
