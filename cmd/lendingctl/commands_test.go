package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var catalogFile = filepath.Join("..", "..", "configs", "products.yaml")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := rootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestPreview_Eligible(t *testing.T) {
	out, err := run(t, "preview", "--file", catalogFile, "--product", "personal loan",
		"--amount", "12000", "--term", "12", "--schedule")
	require.NoError(t, err)

	var v previewView
	require.NoError(t, yaml.Unmarshal([]byte(out), &v))
	assert.Equal(t, "Personal Loan", v.Product)
	assert.Equal(t, "1066.19", v.MonthlyPayment)
	assert.True(t, v.Eligible)
	assert.Empty(t, v.DebtToIncome)
	require.Len(t, v.Schedule, 12)
	assert.Equal(t, "0.00", v.Schedule[11].Balance)
}

func TestPreview_IncomeTooLow(t *testing.T) {
	out, err := run(t, "preview", "-f", catalogFile, "-p", "Personal Loan",
		"--amount", "12000", "--term", "12", "--income", "1000")
	require.NoError(t, err)

	var v previewView
	require.NoError(t, yaml.Unmarshal([]byte(out), &v))
	assert.False(t, v.Eligible)
	assert.Equal(t, "106.62", v.DebtToIncome)
	assert.Contains(t, v.Message, "debt-to-income")
	assert.Empty(t, v.Schedule)
}

func TestPreview_Errors(t *testing.T) {
	_, err := run(t, "preview", "-f", catalogFile, "-p", "Mortgage", "--amount", "1000", "--term", "12")
	assert.ErrorContains(t, err, "not in")

	_, err = run(t, "preview", "-f", catalogFile, "-p", "Personal Loan", "--amount", "lots", "--term", "12")
	assert.ErrorContains(t, err, "--amount")

	_, err = run(t, "preview", "-f", catalogFile, "-p", "Personal Loan", "--amount", "1000")
	assert.Error(t, err)
}

func TestSeed_DryRun(t *testing.T) {
	out, err := run(t, "seed", "--file", catalogFile, "--dry-run")
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "\n"))
	assert.Contains(t, out, "Micro Business")
	assert.Contains(t, out, "Dry run - no changes made")
}

func TestSeed_MissingFile(t *testing.T) {
	_, err := run(t, "seed", "--file", filepath.Join(t.TempDir(), "none.yaml"), "--dry-run")
	assert.Error(t, err)
}
