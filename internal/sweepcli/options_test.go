// internal/sweepcli/options_test.go
package sweepcli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(NewFlagSet("test"), args)
	require.NoError(t, err)
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "-a", "AAGTCCAG", "-b", "AAGCCCCG")
	assert.Equal(t, DefaultFrom, o.From)
	assert.Equal(t, DefaultTo, o.To)
	assert.Equal(t, DefaultStep, o.Step)
	assert.Empty(t, o.Values)
	assert.Equal(t, 0, o.Threads)
}

func TestGridFlags(t *testing.T) {
	o := mustParse(t, "-a", "ACGT", "-b", "ACGA", "--from", "0.1", "--to", "0.5", "--step", "0.05", "-t", "4")
	assert.Equal(t, 0.1, o.From)
	assert.Equal(t, 0.5, o.To)
	assert.Equal(t, 0.05, o.Step)
	assert.Equal(t, 4, o.Threads)
}

func TestValues(t *testing.T) {
	o := mustParse(t, "-a", "ACGT", "-b", "ACGA", "--values", "0.1, 0.2877 ,0.5")
	assert.Equal(t, []float64{0.1, 0.2877, 0.5}, o.Values)
}

func TestValuesConflictsWithGrid(t *testing.T) {
	_, err := ParseArgs(NewFlagSet("test"),
		[]string{"-a", "ACGT", "-b", "ACGA", "--values", "0.1", "--step", "0.05"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflicts")
}

func TestGridValidation(t *testing.T) {
	cases := []struct {
		name    string
		extra   []string
		wantErr string
	}{
		{"zero step", []string{"--step", "0"}, "--step must be"},
		{"negative step", []string{"--step", "-0.01"}, "--step must be"},
		{"nan step", []string{"--step", "NaN"}, "--step must be"},
		{"reversed range", []string{"--from", "1", "--to", "0"}, "--to must be"},
		{"inf bound", []string{"--to", "Inf"}, "must be finite"},
		{"negative threads", []string{"--threads", "-1"}, "--threads must be"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			args := append([]string{"-a", "ACGT", "-b", "ACGA"}, c.extra...)
			_, err := ParseArgs(NewFlagSet("test"), args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), c.wantErr)
		})
	}
}

func TestBadValuesEntries(t *testing.T) {
	_, err := ParseArgs(NewFlagSet("test"), []string{"-a", "ACGT", "-b", "ACGA", "--values", "0.1,zebra"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `bad --values entry "zebra"`)

	_, err = ParseArgs(NewFlagSet("test"), []string{"-a", "ACGT", "-b", "ACGA", "--values", "Inf"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not finite")

	_, err = ParseArgs(NewFlagSet("test"), []string{"-a", "ACGT", "-b", "ACGA", "--values", " , ,"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--values is empty")
}

func TestNegativeValuesAllowed(t *testing.T) {
	// Negative t is a legal sweep input; it samples the zero-mass region.
	o := mustParse(t, "-a", "ACGT", "-b", "ACGA", "--values", "-0.1,0,0.1")
	assert.Equal(t, []float64{-0.1, 0, 0.1}, o.Values)
}
