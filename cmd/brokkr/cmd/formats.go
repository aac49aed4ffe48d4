package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/brokkr/pkg/schema"
)

// formatsCmd represents the formats command
var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the formats in a definition file",
	Long: `List every named format in the definition file together with its
field layout and arity.

Example:
  brokkr formats --definitions formats.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadRegistry(cmd)
		if err != nil {
			return err
		}

		for _, name := range registry.Names() {
			fields, _ := registry.Fields(name)
			f, _ := registry.Format(name)
			fmt.Printf("%s (%d values): %s\n", name, f.Arity(), schema.SpecString(fields))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
