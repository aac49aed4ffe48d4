/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/brokkr/pkg/schema"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "brokkr",
	Short: "brokkr - binary packing toolkit",
	Long: `brokkr packs heterogeneous value tuples into compact byte strings
and parses such byte strings back into typed values.

Formats are described either inline with a compact field spec
(for example "u16 s2:space cu v") or by name from a YAML
definition file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("definitions", "f", "", "Path to a YAML format definition file")
}

// resolveFields turns the command's --spec or --format flags into a field
// list. Exactly one of the two must be given.
func resolveFields(cmd *cobra.Command) ([]schema.Field, error) {
	spec, _ := cmd.Flags().GetString("spec")
	name, _ := cmd.Flags().GetString("format")

	switch {
	case spec != "" && name != "":
		return nil, fmt.Errorf("--spec and --format are mutually exclusive")
	case spec != "":
		return schema.ParseSpec(spec)
	case name != "":
		registry, err := loadRegistry(cmd)
		if err != nil {
			return nil, err
		}
		fields, ok := registry.Fields(name)
		if !ok {
			return nil, fmt.Errorf("unknown format %q", name)
		}
		return fields, nil
	}
	return nil, fmt.Errorf("either --spec or --format is required")
}

func loadRegistry(cmd *cobra.Command) (*schema.Registry, error) {
	path, _ := cmd.Flags().GetString("definitions")
	if path == "" {
		return nil, fmt.Errorf("--definitions is required to use named formats")
	}
	return schema.Load(path)
}
