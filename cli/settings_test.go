package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"uintvar/config"
	"uintvar/testutil/testfs"
	"uintvar/uintvar"
)

func newTestCommand(home string) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String(FlagHome, home, "")
	cmd.Flags().String(FlagFormat, config.FormatText, "")
	cmd.Flags().String(FlagLogLevel, "warn", "")
	cmd.Flags().String(FlagMax, "", "")
	cmd.Flags().Bool(Flag32, false, "")
	return cmd
}

func TestLoadSettings(t *testing.T) {
	dir, done := testfs.NewTempDir(t)
	defer done()

	cmd := newTestCommand(dir)
	s, err := LoadSettings(cmd)
	require.NoError(t, err)
	require.Equal(t, uintvar.Unbounded, s.Bound)
	require.Equal(t, config.FormatText, s.Format)

	require.NoError(t, cmd.Flags().Set(FlagMax, "3"))
	require.NoError(t, cmd.Flags().Set(FlagFormat, config.FormatJSON))
	s, err = LoadSettings(cmd)
	require.NoError(t, err)
	require.Equal(t, uintvar.MaxBytes(3), s.Bound)
	require.Equal(t, config.FormatJSON, s.Format)

	require.NoError(t, cmd.Flags().Set(Flag32, "true"))
	s, err = LoadSettings(cmd)
	require.NoError(t, err)
	require.Equal(t, uintvar.MaxBytes(uintvar.MaxLen32), s.Bound)
}

func TestLoadSettings_Invalid(t *testing.T) {
	dir, done := testfs.NewTempDir(t)
	defer done()

	cmd := newTestCommand(dir)
	require.NoError(t, cmd.Flags().Set(FlagMax, "-2"))
	_, err := LoadSettings(cmd)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid --max")

	cmd = newTestCommand(dir)
	require.NoError(t, cmd.Flags().Set(FlagMax, "0"))
	_, err = LoadSettings(cmd)
	require.Error(t, err)
	require.True(t, uintvar.IsBadArgument(err))

	cmd = newTestCommand(dir)
	require.NoError(t, cmd.Flags().Set(FlagFormat, "yaml"))
	_, err = LoadSettings(cmd)
	require.Error(t, err)

	cmd = newTestCommand(dir)
	require.NoError(t, cmd.Flags().Set(FlagLogLevel, "loud"))
	_, err = LoadSettings(cmd)
	require.Error(t, err)
}
