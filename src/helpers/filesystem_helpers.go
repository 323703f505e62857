package helpers_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// CreateTempFile creates a temporary file in the test's temporary directory,
// and automatically removes it when the test is done.
func CreateTempFile(t *testing.T, fileName string) *os.File {
	t.Helper()

	tmpFile, err := os.CreateTemp(t.TempDir(), fileName)
	require.NoError(t, err)

	t.Cleanup(func() {
		tmpFile.Close()
		os.Remove(tmpFile.Name())
	})

	return tmpFile
}

// CreateTempFileWithContents creates a temporary file in the test's temporary
// directory, writes the given content to it, and automatically removes it when
// the test is done.
func CreateTempFileWithContents(t *testing.T, content string) string {
	t.Helper()

	tmpFile := CreateTempFile(t, "rpn-logic-test-*")

	_, err := tmpFile.Write([]byte(content))
	require.NoError(t, err)

	err = tmpFile.Close()
	require.NoError(t, err)

	return tmpFile.Name()
}

// NonExistingPath returns a path in the test's temporary directory that
// nothing has been written to.
func NonExistingPath(t *testing.T, fileName string) string {
	t.Helper()

	return t.TempDir() + string(os.PathSeparator) + fileName
}

// AssertYamlFileExists checks that path holds a yaml document equal to
// expected once both are decoded.
func AssertYamlFileExists(t *testing.T, path string, expected any) {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var actual, want any
	require.NoError(t, yaml.Unmarshal(content, &actual))

	// round trip expected through yaml so both sides use the same types
	expectedYaml, err := yaml.Marshal(expected)
	require.NoError(t, err)
	require.NoError(t, yaml.Unmarshal(expectedYaml, &want))

	assert.Equal(t, want, actual)
}
