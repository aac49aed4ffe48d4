/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/brokkr/pkg/api"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the codec REST API server",
	Long: `Start the HTTP server exposing named-format pack and unpack
operations. Formats are loaded once at startup from the definition
file; prometheus metrics are served on /metrics.

Examples:
  brokkr serve --api-key=mysecretkey --definitions formats.yaml --port=8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")
		apiKey, _ := cmd.Flags().GetString("api-key")

		if apiKey == "" {
			cmd.Println("Error: --api-key is required")
			return nil
		}

		registry, err := loadRegistry(cmd)
		if err != nil {
			return err
		}

		return api.StartServer(registry, api.ServerConfig{
			Port:   port,
			APIKey: apiKey,
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().Int("port", 8080, "Port for the HTTP server")
	serveCmd.Flags().String("api-key", "", "API key protecting the /api/v1 routes")
}
