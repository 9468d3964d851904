package conf

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse(strings.NewReader(`
debug = true

[engine]
difficulty = 5

[tournament]
agents = ["random", "mm2"]
rounds = 2
plies = 9
timeout = 250

[database]
enabled = true
file = "/tmp/standings.db"
`))
	require.NoError(t, err)

	require.True(t, c.Debug)
	require.Equal(t, 5, c.Engine.Difficulty)
	require.Equal(t, []string{"random", "mm2"}, c.Tournament.Agents)
	require.Equal(t, uint(2), c.Tournament.Rounds)
	require.Equal(t, uint(9), c.Tournament.Plies)
	require.Equal(t, 250*time.Millisecond, c.MoveTimeout())
	require.True(t, c.Database.Enabled)
	require.Equal(t, "/tmp/standings.db", c.Database.File)

	// Unset values keep their defaults
	require.Equal(t, defaultConfig.Tournament.Workers, c.Tournament.Workers)
	require.Equal(t, defaultConfig.Tournament.Seed, c.Tournament.Seed)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse(strings.NewReader(`[engine]
difficulty = "hard"`))
	require.Error(t, err)
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Default().Dump(&buf))

	c, err := Parse(&buf)
	require.NoError(t, err)
	require.Equal(t, Default(), c)
}

func TestDefault(t *testing.T) {
	c := Default()
	c.Tournament.Agents[0] = "mm5"
	require.Equal(t, "random", defaultConfig.Tournament.Agents[0],
		"Default must return an independent copy")
}
