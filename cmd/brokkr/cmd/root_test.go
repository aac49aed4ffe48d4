package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlaggedCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("spec", "", "")
	cmd.Flags().String("format", "", "")
	cmd.Flags().String("definitions", "", "")
	return cmd
}

func writeDefinitions(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "formats.yaml")
	content := `formats:
  event:
    - type: uint
      bits: 16
    - type: varchar
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestResolveFields(t *testing.T) {
	t.Run("inline spec", func(t *testing.T) {
		cmd := newFlaggedCommand()
		require.NoError(t, cmd.Flags().Set("spec", "u16 v"))

		fields, err := resolveFields(cmd)
		require.NoError(t, err)
		require.Len(t, fields, 2)
		assert.Equal(t, "uint", fields[0].Type)
		assert.Equal(t, "varchar", fields[1].Type)
	})

	t.Run("named format", func(t *testing.T) {
		cmd := newFlaggedCommand()
		require.NoError(t, cmd.Flags().Set("format", "event"))
		require.NoError(t, cmd.Flags().Set("definitions", writeDefinitions(t)))

		fields, err := resolveFields(cmd)
		require.NoError(t, err)
		require.Len(t, fields, 2)
		assert.Equal(t, 16, fields[0].Bits)
	})

	t.Run("unknown named format", func(t *testing.T) {
		cmd := newFlaggedCommand()
		require.NoError(t, cmd.Flags().Set("format", "absent"))
		require.NoError(t, cmd.Flags().Set("definitions", writeDefinitions(t)))

		_, err := resolveFields(cmd)
		assert.Error(t, err)
	})

	t.Run("both flags rejected", func(t *testing.T) {
		cmd := newFlaggedCommand()
		require.NoError(t, cmd.Flags().Set("spec", "u16"))
		require.NoError(t, cmd.Flags().Set("format", "event"))

		_, err := resolveFields(cmd)
		assert.Error(t, err)
	})

	t.Run("neither flag rejected", func(t *testing.T) {
		cmd := newFlaggedCommand()

		_, err := resolveFields(cmd)
		assert.Error(t, err)
	})

	t.Run("named format without definitions file", func(t *testing.T) {
		cmd := newFlaggedCommand()
		require.NoError(t, cmd.Flags().Set("format", "event"))

		_, err := resolveFields(cmd)
		assert.Error(t, err)
	})
}
