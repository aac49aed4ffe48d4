package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/brokkr/pkg/schema"
)

// unpackCmd represents the unpack command
var unpackCmd = &cobra.Command{
	Use:   "unpack <hex>",
	Short: "Unpack a hex byte string into values",
	Long: `Parse a hex byte string into one value per field and print them.

By default the whole buffer must be consumed; --prefix tolerates
trailing bytes and reports where parsing stopped.

Example:
  brokkr unpack --spec "u16 s2:space cu v" 00016120ac0203616263`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields, err := resolveFields(cmd)
		if err != nil {
			return err
		}

		data, err := hex.DecodeString(args[0])
		if err != nil {
			return fmt.Errorf("bad hex input: %w", err)
		}

		f, err := schema.Build(fields)
		if err != nil {
			return err
		}

		prefix, _ := cmd.Flags().GetBool("prefix")
		var values []any
		end := len(data)
		if prefix {
			values, end, err = f.UnpackPrefix(data)
		} else {
			values, err = f.Unpack(data)
		}
		if err != nil {
			return err
		}

		for i, v := range values {
			fmt.Printf("%d: %v\n", i, v)
		}
		if prefix {
			fmt.Printf("consumed %d of %d bytes\n", end, len(data))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unpackCmd)
	unpackCmd.Flags().String("spec", "", "Inline field spec, e.g. \"u16 s2:space cu v\"")
	unpackCmd.Flags().String("format", "", "Named format from the definition file")
	unpackCmd.Flags().Bool("prefix", false, "Allow trailing bytes and report the end position")
}
