package periods

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefinition(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "period.yaml")
	data := `name: 2025-X1
start_date: "2025-06-01"
end_date: "2025-07-25"
auto_rollout: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	definition, err := LoadDefinition(path)
	require.NoError(t, err)

	assert.Equal(t, "2025-X1", definition.Name)
	assert.Equal(t, "2025-06-01", definition.StartDate)
	assert.Equal(t, "2025-07-25", definition.EndDate)
	assert.True(t, definition.AutoRollout)
}

func TestLoadDefinitionRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "period.yaml")
	data := `name: 2025-X1
start_date: "2025-07-25"
end_date: "2025-06-01"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	_, err := LoadDefinition(path)
	assert.Error(t, err)

	_, err = LoadDefinition(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestDefinitionValidate(t *testing.T) {
	valid := Definition{Name: "2025-X1", StartDate: "2025-06-01", EndDate: "2025-07-25"}
	assert.NoError(t, valid.Validate())

	missingName := valid
	missingName.Name = ""
	assert.Error(t, missingName.Validate())

	reversed := valid
	reversed.StartDate, reversed.EndDate = reversed.EndDate, reversed.StartDate
	assert.Error(t, reversed.Validate())
}
