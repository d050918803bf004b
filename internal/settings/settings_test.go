package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	nexuserrors "github.com/alexisbeaulieu97/nexus/pkg/errors"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load("", nil)
	require.NoError(t, err)
	require.Equal(t, ":8080", s.Addr)
	require.Equal(t, "info", s.LogLevel)
	require.Equal(t, 5*time.Second, s.ShutdownTimeout)
	require.Equal(t, ".", s.RepoDir)
	require.False(t, s.Watch)
}

func TestEnvOverridesDefaults(t *testing.T) {
	t.Setenv("NEXUS_ADDR", ":9090")
	t.Setenv("NEXUS_LOG_LEVEL", "debug")
	t.Setenv("NEXUS_SHUTDOWN_TIMEOUT", "2s")

	s, err := Load("", nil)
	require.NoError(t, err)
	require.Equal(t, ":9090", s.Addr)
	require.Equal(t, "debug", s.LogLevel)
	require.Equal(t, 2*time.Second, s.ShutdownTimeout)
}

func TestFlagsOverrideEnvAndFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nexus.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":7000\"\nlog_level: warn\nwatch: true\n"), 0o644))
	t.Setenv("NEXUS_LOG_LEVEL", "error")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("addr", ":8080", "")
	flags.String("log-level", "info", "")
	flags.String("unrelated", "", "")
	require.NoError(t, flags.Parse([]string{"--addr", ":6000"}))

	s, err := Load(path, flags)
	require.NoError(t, err)
	require.Equal(t, ":6000", s.Addr, "changed flag beats file")
	require.Equal(t, "error", s.LogLevel, "env beats file when flag is unchanged")
	require.True(t, s.Watch, "file beats defaults")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("NEXUS_LOG_LEVEL", "chatty")

	_, err := Load("", nil)
	var validationErr *nexuserrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "loglevel", validationErr.Field)
}

func TestLoadMissingConfigFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	var parseErr *nexuserrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestHumanLogs(t *testing.T) {
	s := &Settings{LogFormat: "auto"}
	require.True(t, s.HumanLogs(true))
	require.False(t, s.HumanLogs(false))

	s.LogFormat = "json"
	require.False(t, s.HumanLogs(true))
	s.LogFormat = "console"
	require.True(t, s.HumanLogs(false))
}
