package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/brokkr/pkg/schema"
)

// packCmd represents the pack command
var packCmd = &cobra.Command{
	Use:   "pack [values...]",
	Short: "Pack values into a hex byte string",
	Long: `Pack values into a byte string and print it as hex.

One argument is given per value-taking field, in field order.
Sequence fields take a comma-separated list.

Example:
  brokkr pack --spec "u16 s2:space cu v" 1 a 300 abc`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fields, err := resolveFields(cmd)
		if err != nil {
			return err
		}

		values, err := schema.CoerceStrings(fields, args)
		if err != nil {
			return err
		}

		f, err := schema.Build(fields)
		if err != nil {
			return err
		}

		packed, err := f.Pack(values...)
		if err != nil {
			return err
		}

		fmt.Printf("%x\n", packed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(packCmd)
	packCmd.Flags().String("spec", "", "Inline field spec, e.g. \"u16 s2:space cu v\"")
	packCmd.Flags().String("format", "", "Named format from the definition file")
}
