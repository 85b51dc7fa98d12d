package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courseplanner.log")

	log, closer, err := New(Config{Level: "info", File: path})
	require.NoError(t, err)
	log.Debug().Msg("hidden")
	log.Info().Str("source", "courselist.csv").Msg("Course data loaded.")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"Course data loaded."`)
	assert.Contains(t, string(data), `"source":"courselist.csv"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_AppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courseplanner.log")
	require.NoError(t, os.WriteFile(path, []byte("earlier run\n"), 0o644))

	log, closer, err := New(Config{File: path})
	require.NoError(t, err)
	log.Info().Msg("later run")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "earlier run\n")
	assert.Contains(t, string(data), "later run")
}

func TestNew_Disabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "courseplanner.log")

	_, closer, err := New(Config{Level: "disabled", File: path})
	require.NoError(t, err)
	require.NoError(t, closer.Close())
	assert.NoFileExists(t, path)

	_, closer, err = New(Config{Level: "debug"})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}

func TestNew_InvalidLevel(t *testing.T) {
	_, _, err := New(Config{Level: "verbose", File: filepath.Join(t.TempDir(), "x.log")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")
}

func TestNewLogger_Pretty(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(&buf, zerolog.DebugLevel, true)
	log.Debug().Str("course_id", "CS201").Msg("Course lookup.")

	assert.Contains(t, buf.String(), "Course lookup.")
	assert.Contains(t, buf.String(), "course_id=CS201")
	assert.NotContains(t, buf.String(), "{")
}
