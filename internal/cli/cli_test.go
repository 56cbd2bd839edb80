package cli

import (
	"bytes"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func golden(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestOrder_Text(t *testing.T) {
	out, err := execute(t, "order", "--dir", filepath.Join("testdata", "valid"))
	require.NoError(t, err)

	golden(t).Assert(t, "order_valid", []byte(out))
}

func TestOrder_JSON(t *testing.T) {
	out, err := execute(t, "order", "--dir", filepath.Join("testdata", "valid"), "--format", "json")
	require.NoError(t, err)

	var entries []OrderEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 3)

	assert.Equal(t, "brutal", entries[0].Name)
	assert.Equal(t, 1, entries[0].Position)
	assert.Equal(t, []string{"hard", "deadly"}, entries[0].Difficulties)
	assert.Equal(t, []string{"glass_cannon"}, entries[0].Before)
	assert.Equal(t, "glass_cannon", entries[1].Name)
	assert.Equal(t, "pacifist", entries[2].Name)
	assert.Equal(t, []string{"brutal"}, entries[2].Incompatible)
}

func TestOrder_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "order", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "No mutators defined in")

	out, err = execute(t, "order", "--dir", dir, "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestCheck_Valid(t *testing.T) {
	out, err := execute(t, "check", "--dir", filepath.Join("testdata", "valid"))
	require.NoError(t, err)

	golden(t).Assert(t, "check_valid", []byte(out))
}

func TestCheck_ReportsCycles(t *testing.T) {
	out, err := execute(t, "check", "--dir", "testdata/broken")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	golden(t).Assert(t, "check_broken", []byte(out))
}

func TestCheck_JSON(t *testing.T) {
	out, err := execute(t, "check", "--dir", filepath.Join("testdata", "broken"), "--format", "json")
	require.Error(t, err)

	var result CheckResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.False(t, result.Valid)
	assert.Equal(t, 5, result.Mutators)
	require.Len(t, result.Problems, 2)
	for _, problem := range result.Problems {
		assert.Equal(t, "cyclic_constraint", problem.Code)
	}
}

func TestCheck_UnparseableFile(t *testing.T) {
	out, err := execute(t, "check", "--dir", filepath.Join("testdata", "unparseable"))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	assert.Contains(t, out, "✗ 1 problems in")
	assert.Contains(t, out, "00_typo.yaml")
	assert.Contains(t, out, "dicee")
}

func TestCheck_MissingDirectory(t *testing.T) {
	_, err := execute(t, "check", "--dir", "/nonexistent/mutators")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), "not found")
}

func TestCompat(t *testing.T) {
	dir := filepath.Join("testdata", "valid")

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "incompatible pair",
			args:     []string{"brutal", "pacifist"},
			expected: "brutal and pacifist are incompatible\n",
		},
		{
			name:     "compatible pair",
			args:     []string{"brutal", "glass_cannon"},
			expected: "brutal and glass_cannon are compatible\n",
		},
		{
			name:     "conflicts of one mutator",
			args:     []string{"pacifist"},
			expected: "pacifist conflicts with: brutal\n",
		},
		{
			name:     "no conflicts",
			args:     []string{"glass_cannon"},
			expected: "glass_cannon is compatible with every other mutator\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"compat", "--dir", dir}, tt.args...)
			out, err := execute(t, args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestCompat_JSON(t *testing.T) {
	out, err := execute(t, "compat", "--dir", filepath.Join("testdata", "valid"), "--format", "json", "brutal")
	require.NoError(t, err)

	var result CompatResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "brutal", result.Mutator)
	assert.False(t, result.Compatible)
	assert.Equal(t, []string{"pacifist"}, result.Incompatible)
}

func TestCompat_UnknownMutator(t *testing.T) {
	_, err := execute(t, "compat", "--dir", filepath.Join("testdata", "valid"), "vampire")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `unknown mutator "vampire"`)
}

func TestRoot_InvalidFormat(t *testing.T) {
	_, err := execute(t, "order", "--dir", filepath.Join("testdata", "valid"), "--format", "xml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, GetExitCode(nil))
	assert.Equal(t, ExitFailure, GetExitCode(assert.AnError))
	assert.Equal(t, ExitCommandError, GetExitCode(WrapExitError(ExitCommandError, "bad", assert.AnError)))
}
