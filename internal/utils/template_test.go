package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseExerciseFlag(t *testing.T) {
	tests := []struct {
		name    string
		spec    string
		wantErr bool
		sets    int
	}{
		{name: "single set", spec: "Supino:10@50", sets: 1},
		{name: "several sets", spec: "Supino: 10@50, 8@55 ,6@60", sets: 3},
		{name: "missing name", spec: ":10@50", wantErr: true},
		{name: "missing sets", spec: "Supino:", wantErr: true},
		{name: "no separator", spec: "Supino", wantErr: true},
		{name: "bad set", spec: "Supino:10x50", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex, err := ParseExerciseFlag(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Supino", ex.Name)
			assert.Len(t, ex.Sets, tt.sets)
		})
	}

	ex, err := ParseExerciseFlag("Supino:10@50,8@55")
	require.NoError(t, err)
	assert.Equal(t, "10", ex.Sets[0].Reps)
	assert.Equal(t, "50", ex.Sets[0].Weight)
	assert.Equal(t, "8", ex.Sets[1].Reps)
	assert.Equal(t, "55", ex.Sets[1].Weight)
}

func TestParseTemplateFromTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "peito.toml")
	content := `
name = "Peito"

[[exercise]]
name = "Supino"

[[exercise.set]]
reps = "10"
weight = "50"

[[exercise.set]]
reps = "8"
weight = "55"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	template, err := ParseTemplateFromTOML(path)
	require.NoError(t, err)
	assert.Equal(t, "Peito", template.Name)
	require.Len(t, template.Exercises, 1)
	assert.Equal(t, "Supino", template.Exercises[0].Name)
	require.Len(t, template.Exercises[0].Sets, 2)
	assert.Equal(t, "55", template.Exercises[0].Sets[1].Weight)

	_, err = ParseTemplateFromTOML(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00:00", FormatClock(0))
	assert.Equal(t, "00:00:59", FormatClock(59))
	assert.Equal(t, "00:01:40", FormatClock(100))
	assert.Equal(t, "01:01:05", FormatClock(3665))
	assert.Equal(t, "00:00:00", FormatClock(-3))
}
