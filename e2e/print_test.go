//go:build e2e && unix

package main

import (
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintMode(t *testing.T) {
	t.Parallel()
	api := newFakeAPI(t, 3)
	tf := NewTUITest(t, api.URL())

	out, err := tf.RunPrint("--make", "Honda", "--model", "civic", "--year", "2019")
	require.NoError(t, err)

	assert.Contains(t, out, "Honda model00")
	assert.Contains(t, out, "Honda model02")
	assert.Contains(t, out, "Page 1")
	assert.NotContains(t, out, "more available")

	queries := api.Queries()
	require.Len(t, queries, 1)
	assert.Equal(t, "Honda", queries[0].Get("make"))
	assert.Equal(t, "civic", queries[0].Get("model"))
	assert.Equal(t, "2019", queries[0].Get("year"))
}

func TestPrintModeFailureStillExitsZero(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t, "http://127.0.0.1:1")

	out, err := tf.RunPrint()
	require.NoError(t, err)

	assert.Equal(t, "Oops, no results\n", out)
}

func TestHelpFlag(t *testing.T) {
	t.Parallel()

	out, _ := exec.Command(binPath, "--help").CombinedOutput()
	output := string(out)

	for _, flag := range []string{"-config", "-print", "-make", "-model", "-fuel", "-year", "-limit"} {
		assert.True(t, strings.Contains(output, flag), "help should mention %s", flag)
	}
}
