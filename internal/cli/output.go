package cli

import (
	"encoding/json"
	"fmt"
	"io"

	yamlv3 "gopkg.in/yaml.v3"

	"pet-registry/internal/client"
)

// printPets escribe mascotas en el formato pedido con -o.
func printPets(w io.Writer, pets []client.Pet, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(pets)
	case "yaml":
		return yamlv3.NewEncoder(w).Encode(pets)
	case "text", "":
		if len(pets) == 0 {
			fmt.Fprintln(w, "No pets found.")
			return nil
		}
		for _, p := range pets {
			line := fmt.Sprintf("%s  %s", p.ID, p.Name)
			if p.Species != "" {
				line += fmt.Sprintf(" (%s)", p.Species)
			}
			fmt.Fprintln(w, line)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

func printPet(w io.Writer, p client.Pet, format string) error {
	if format == "text" || format == "" {
		fmt.Fprintf(w, "ID:      %s\n", p.ID)
		fmt.Fprintf(w, "Name:    %s\n", p.Name)
		fmt.Fprintf(w, "Species: %s\n", p.Species)
		if p.Breed != "" {
			fmt.Fprintf(w, "Breed:   %s\n", p.Breed)
		}
		if p.Sex != "" {
			fmt.Fprintf(w, "Sex:     %s\n", p.Sex)
		}
		if p.BirthDate != nil {
			fmt.Fprintf(w, "Born:    %s\n", p.BirthDate.Format("2006-01-02"))
		}
		if p.Notes != "" {
			fmt.Fprintf(w, "Notes:   %s\n", p.Notes)
		}
		return nil
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	case "yaml":
		return yamlv3.NewEncoder(w).Encode(p)
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}
