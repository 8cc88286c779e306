package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pet-registry/internal/client"
)

var addInput client.CreatePetInput

var addCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a new pet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		api, err := newClient()
		if err != nil {
			return err
		}

		addInput.Name = args[0]
		p, err := api.CreatePet(cmd.Context(), addInput)
		if err != nil {
			return err
		}

		if output == "text" || output == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "Created pet: %s (%s)\n", p.Name, p.ID)
			return nil
		}
		return printPet(cmd.OutOrStdout(), p, output)
	},
}

func init() {
	addCmd.Flags().StringVar(&addInput.Species, "species", "", "species (dog, cat, other)")
	addCmd.Flags().StringVar(&addInput.Breed, "breed", "", "breed")
	addCmd.Flags().StringVar(&addInput.Sex, "sex", "", "sex (male, female, unknown)")
	addCmd.Flags().StringVar(&addInput.BirthDate, "birth-date", "", "birth date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addInput.Microchip, "microchip", "", "microchip id")
	addCmd.Flags().StringVar(&addInput.Notes, "notes", "", "free-form notes")
	rootCmd.AddCommand(addCmd)
}
