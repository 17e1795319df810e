package main

import (
	"bytes"
	"testing"

	"github.com/Flaque/filet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	fixtureInput    = "../internal/fixture/testdata/input.txt"
	fixtureExpected = "../internal/fixture/testdata/expected.txt"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out

	err := app.Run(append([]string{"groundtruth"}, args...))

	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	t.Run("legacy fixture case", func(t *testing.T) {
		out, err := run(t, "convert", "--origin", "fixture", "--legacy", "N38-09-56.86", "W076-26-39.05", "6.7056")

		require.NoError(t, err)
		assert.Equal(t, "N: 1707.12\nE: -1688.18\nD: -0.56196\n", out)
	})

	t.Run("corrected default origin", func(t *testing.T) {
		out, err := run(t, "convert", "--origin", "default", "N41-51-5.778", "W111-54-34.854", "1410.102336")

		require.NoError(t, err)
		assert.Contains(t, out, "N: 1851.6\n")
		assert.Contains(t, out, "D: 6.45098\n")
	})

	t.Run("geodesic range", func(t *testing.T) {
		out, err := run(t, "convert", "--origin", "default", "--geodesic",
			"N41-51-5.778", "W111-54-34.854", "1410.102336")

		require.NoError(t, err)
		assert.Contains(t, out, "Range: ")
		assert.Contains(t, out, "Bearing: ")
	})

	t.Run("wrong number of arguments", func(t *testing.T) {
		_, err := run(t, "convert", "--origin", "fixture", "N38-09-56.86", "W076-26-39.05")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: groundtruth convert LAT LON ALT")
	})

	t.Run("invalid altitude", func(t *testing.T) {
		_, err := run(t, "convert", "--origin", "fixture", "N38-09-56.86", "W076-26-39.05", "high")

		require.Error(t, err)
		assert.Contains(t, err.Error(), `failed to parse altitude "high"`)
	})

	t.Run("malformed coordinate", func(t *testing.T) {
		_, err := run(t, "convert", "--origin", "fixture", "38.15", "W076-26-39.05", "0")

		require.Error(t, err)
		assert.Contains(t, err.Error(), `failed to parse latitude "38.15"`)
	})

	t.Run("unknown origin", func(t *testing.T) {
		_, err := run(t, "convert", "--origin", "moon", "N38-09-56.86", "W076-26-39.05", "0")

		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown origin "moon"`)
	})
}

func TestVerifyCommand(t *testing.T) {
	t.Run("historical fixture passes", func(t *testing.T) {
		out, err := run(t, "verify", "--input", fixtureInput, "--expected", fixtureExpected)

		require.NoError(t, err)
		assert.Equal(t, "All tests passed\n", out)
	})

	t.Run("historical fixture passes with corrected options", func(t *testing.T) {
		out, err := run(t, "verify", "--corrected", "--input", fixtureInput, "--expected", fixtureExpected)

		require.NoError(t, err)
		assert.Equal(t, "All tests passed\n", out)
	})

	t.Run("mismatches are listed once per case", func(t *testing.T) {
		defer filet.CleanUp(t)

		dir := filet.TmpDir(t, "")
		input := filet.TmpFile(t, dir, "N38-09-56.86 W076-26-39.05\nN38-07-49.27 W076-23-21.94\nN38-07-54.57 W076-24-02.25\n")
		expected := filet.TmpFile(t, dir, "1707.12 -1688.18\n0 0\n-2063.41 0\n")

		out, err := run(t, "verify", "--input", input.Name(), "--expected", expected.Name())

		require.ErrorIs(t, err, errVerificationFailed)
		assert.Equal(t, "Test 2 failed\nTest 3 failed\n", out)
	})

	t.Run("fail fast stops at the first failing case", func(t *testing.T) {
		defer filet.CleanUp(t)

		dir := filet.TmpDir(t, "")
		input := filet.TmpFile(t, dir, "N38-09-56.86 W076-26-39.05\nN38-07-49.27 W076-23-21.94\nN38-07-54.57 W076-24-02.25\n")
		expected := filet.TmpFile(t, dir, "0 -1688.18\n0 0\n-2063.41 2129.78\n")

		out, err := run(t, "verify", "--fail-fast", "--input", input.Name(), "--expected", expected.Name())

		require.ErrorIs(t, err, errVerificationFailed)
		assert.Equal(t, "Test 1 failed\n", out)
	})

	t.Run("missing input file", func(t *testing.T) {
		_, err := run(t, "verify", "--input", "does-not-exist.txt", "--expected", fixtureExpected)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open fixture input")
	})
}
