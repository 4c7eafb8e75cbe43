package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewfather-mcp/internal/recipe"
	"brewfather-mcp/internal/report"
	"brewfather-mcp/internal/tools"
)

func offlineHandler() *tools.Handler {
	logger, _ := test.NewNullLogger()
	return tools.NewHandler(nil, report.New(time.UTC), recipe.NewBuilder(logger), logger)
}

func TestToolArgs(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "args.jsonc")
	require.NoError(t, os.WriteFile(file, []byte("{\n  // batch to update\n  \"batch_id\": \"B1\",\n}\n"), 0o600))

	testCases := []struct {
		name     string
		inline   string
		path     string
		expected map[string]any
		wantErr  bool
	}{
		{name: "no arguments", expected: map[string]any{}},
		{name: "inline with trailing comma", inline: `{"limit": 5,}`, expected: map[string]any{"limit": 5.0}},
		{name: "file with comments", path: file, expected: map[string]any{"batch_id": "B1"}},
		{name: "both sources", inline: `{}`, path: file, wantErr: true},
		{name: "not an object", inline: `[1, 2]`, wantErr: true},
		{name: "missing file", path: filepath.Join(dir, "nope.json"), wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			args, err := toolArgs(tc.inline, tc.path)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, args)
		})
	}
}

func TestListTools(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, listTools(&out, offlineHandler()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 24)
	assert.True(t, strings.HasPrefix(lines[0], tools.ToolInventoryCategories))
}

func TestRunTool(t *testing.T) {
	h := offlineHandler()

	var out bytes.Buffer
	require.NoError(t, runTool(context.Background(), &out, h, tools.ToolRecipeEnums, nil))
	assert.Contains(t, out.String(), "All Grain")

	out.Reset()
	err := runTool(context.Background(), &out, h, tools.ToolCreateRecipe, map[string]any{"name": "Mild", "boil_time": 75.0})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Boil Time: 75 minutes")

	err = runTool(context.Background(), &out, h, "brew_beer", nil)
	assert.ErrorContains(t, err, `unknown tool "brew_beer"`)
}
