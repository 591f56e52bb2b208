// SPDX-License-Identifier: MIT
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// invoke runs the CLI over stdin and returns exit code, stdout and stderr.
func invoke(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestRunTwoTier(t *testing.T) {
	code, out, _ := invoke(t, "2\n1 5\n3 5\n", "--quiet")
	require.Equal(t, 0, code)
	assert.Equal(t, "Matrix A:\n1.00 5.00\n3.00 5.00\n\nMatrix B (result):\n1.00 5.00\n3.00 3.00\n", out)
}

func TestRunTriangle(t *testing.T) {
	code, out, _ := invoke(t, "2 1 2 3 4", "-q", "-p", "local-triangle")
	require.Equal(t, 0, code)
	assert.Equal(t, "Matrix A:\n1 2\n3 4\n\nMatrix B (result):\n4 2\n4 4\n", out)
}

func TestRunInteractivePrompts(t *testing.T) {
	code, out, _ := invoke(t, "1 7", "--lang", "ru")
	require.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "Введите размер квадратной матрицы (не более 20): "))
	assert.Contains(t, out, "Матрица B (результат):\n7.00\n")
}

func TestRunInvalidDimension(t *testing.T) {
	code, out, errOut := invoke(t, "25", "-q")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "input error")
	assert.NotContains(t, out, "Matrix")
	assert.Contains(t, errOut, "rejected matrix size")
}

func TestRunInvalidElement(t *testing.T) {
	code, out, _ := invoke(t, "2 1 x 3 4", "-q")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, `row 1, column 2: "x" is not a number`)
	assert.NotContains(t, out, "Matrix")
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matsweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("policy: b\ninteractive: false\nfailure_exit_code: 0\nprecision: 1\n"), 0o600))

	code, out, _ := invoke(t, "1 2.25", "-c", path)
	require.Equal(t, 0, code)
	assert.Equal(t, "Matrix A:\n2.2\n\nMatrix B (result):\n2.2\n", out)

	// failure_exit_code: 0 reproduces the variant that exits cleanly on bad input
	code, out, _ = invoke(t, "abc", "-c", path)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "input error")

	// flags override the file
	code, out, _ = invoke(t, "3 1 1 1 1 1 1 1 1 1", "-c", path, "--max-dimension", "2")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, `matrix size "3" is not an integer from 1 to 2`)
}

func TestRunUsageErrors(t *testing.T) {
	code, _, errOut := invoke(t, "", "--policy", "median")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "Error:")

	code, _, _ = invoke(t, "", "--max-dimension", "30")
	assert.Equal(t, 1, code)

	code, _, _ = invoke(t, "", "unexpected-arg")
	assert.Equal(t, 1, code)
}

func TestRunDebugLogging(t *testing.T) {
	code, _, errOut := invoke(t, "2 1 5 3 5", "-q", "-l", "debug")
	require.Equal(t, 0, code)
	assert.Contains(t, errOut, `"msg":"Global extrema"`)
	assert.Contains(t, errOut, `"run_id"`)
}
