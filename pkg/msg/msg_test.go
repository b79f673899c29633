package msg

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMessage(t *testing.T) {
	tests := []struct {
		name string
		key  string
		args []interface{}
		want string
	}{
		{"positional args", "rating.invalid.score", []interface{}{"security", 1, 10}, "security must be between 1 and 10"},
		{"error arg", "queue.publish.error", []interface{}{"abc", errors.New("timeout")}, "Failed to publish rating event abc: timeout"},
		{"struct arg", "rating.invalid.body", []interface{}{struct{ A int }{1}}, `Invalid request body: {"A":1}`},
		{"missing arg keeps placeholder", "location.unresolved", []interface{}{"Gràcia"}, "No location matches Gràcia in {1}"},
		{"unknown key", "does.not.exist", nil, "Message not found: does.not.exist"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetMessage(tt.key, tt.args...))
		})
	}
}

func TestLoadOverridesKeys(t *testing.T) {
	before := GetMessage("rating.internal-error")
	t.Cleanup(func() {
		require.NoError(t, Load(strings.NewReader("rating:\n  internal-error: \""+before+"\"\n")))
	})

	path := filepath.Join(t.TempDir(), "messages.yml")
	require.NoError(t, os.WriteFile(path, []byte("rating:\n  internal-error: Error inesperado\n"), 0o600))
	require.NoError(t, Init(path))

	assert.Equal(t, "Error inesperado", GetMessage("rating.internal-error"))
	assert.Equal(t, "Unknown city Lisboa", GetMessage("rating.invalid.city", "Lisboa"), "other keys survive")
}

func TestInitMissingFile(t *testing.T) {
	assert.Error(t, Init(filepath.Join(t.TempDir(), "missing.yml")))
}
