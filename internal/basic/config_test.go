package basic

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	testCases := []struct {
		src    string
		config Config
	}{
		{"", DefaultConfig()},
		{
			"prompt: \"] \"\n",
			Config{"] ", DefaultConfig().Banner, " ? ", "INVALID NUMBER"},
		},
		{
			"prompt: \"READY \"\nbanner: \"\"\ninput_prompt: \"? \"\ninvalid_number: REDO\n",
			Config{"READY ", "", "? ", "REDO"},
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		config, err := ParseConfig([]byte(tc.src))
		assert.NoError(err, tc.src)
		assert.Equal(tc.config, config, tc.src)
	}
}

func TestParseConfigErrors(t *testing.T) {
	assert := assert.New(t)
	for _, src := range []string{
		"colour: green\n",
		"prompt: [1, 2]\n",
		"- prompt\n",
	} {
		_, err := ParseConfig([]byte(src))
		assert.Error(err, src)
	}
}

func TestLoadConfig(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "basic.yaml")
	require.NoError(t, os.WriteFile(path, []byte("invalid_number: \"NUMBER PLEASE\"\n"), 0o644))
	config, err := LoadConfig(path)
	assert.NoError(err)
	assert.Equal("NUMBER PLEASE", config.InvalidNumber)
	assert.Equal(DefaultConfig().Prompt, config.Prompt)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("colour: green\n"), 0o644))
	_, err = LoadConfig(bad)
	assert.ErrorContains(err, bad)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(err, os.ErrNotExist)
}
