package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleLog = `date,time,maxdepth [m],buddy,divemaster,divemode
2021-03-15,10:05,18.2,"Alice, Bob",,OC
2021-03-16,14:30,25.0,Alice,Carol,CCR
2022-01-02,09:00,7.5,,,Freedive
`

func writeLog(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "log.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleLog), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DIVESTAT_LENGTH_UNIT", "metric")
	t.Setenv("DIVESTAT_LOCALE", "en-US")

	var out, errOut bytes.Buffer
	root := newRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTypesCommand(t *testing.T) {
	out, err := run(t, "types")
	require.NoError(t, err)
	assert.Contains(t, out, "0  Date\n   0  Yearly\n   1  Quarterly\n   2  Monthly\n")
	assert.Contains(t, out, "3  Buddies\n")
}

func TestTypesCommandGerman(t *testing.T) {
	out, err := run(t, "types", "--locale", "de-DE")
	require.NoError(t, err)
	assert.Contains(t, out, "Tauchpartner")
	assert.Contains(t, out, "Jährlich")
}

func TestBinCommandCountsCSV(t *testing.T) {
	out, err := run(t, "bin", "--file", writeLog(t), "--type", "3", "--counts", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "Buddies,Count\nAlice,2\nBob,1\nCarol,1\n", out)
}

func TestBinCommandJSON(t *testing.T) {
	out, err := run(t, "bin", "--file", writeLog(t), "--type", "0", "--binner", "0", "--format", "json")
	require.NoError(t, err)

	var got cliOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "Date", got.Type)
	assert.Equal(t, "Yearly", got.Binner)
	assert.Equal(t, 3, got.Total)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, cliRow{Label: "2021", Count: 2, Dates: []string{"2021-03-15 10:05", "2021-03-16 14:30"}}, got.Rows[0])
	assert.Equal(t, "2022", got.Rows[1].Label)
}

func TestBinCommandText(t *testing.T) {
	out, err := run(t, "bin", "--file", writeLog(t), "--type", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Dive mode\n")
	assert.Contains(t, out, "Open circuit")
	assert.Contains(t, out, "Freedive")
}

func TestBinCommandErrors(t *testing.T) {
	_, err := run(t, "bin", "--type", "0")
	assert.Error(t, err, "missing --file")

	_, err = run(t, "bin", "--file", writeLog(t), "--type", "9")
	assert.Error(t, err)

	_, err = run(t, "bin", "--file", writeLog(t), "--format", "xml")
	assert.ErrorContains(t, err, "unknown output format")

	_, err = run(t, "bin", "--file", writeLog(t), "--units", "cubits")
	assert.Error(t, err)

	_, err = run(t, "bin", "--file", filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorContains(t, err, "failed to read dive log")
}

func TestBinCommandFilters(t *testing.T) {
	out, err := run(t, "bin", "--file", writeLog(t), "--type", "3", "--counts", "--format", "csv",
		"--mode", "ccr", "--since", "2021-01-01", "--until", "2022-01-01")
	require.NoError(t, err)
	assert.Equal(t, "Buddies,Count\nAlice,1\nCarol,1\n", out)

	out, err = run(t, "bin", "--file", writeLog(t), "--type", "0", "--counts", "--format", "csv", "--buddy", "bob")
	require.NoError(t, err)
	assert.Equal(t, "Date,Count\n2021,1\n", out)

	_, err = run(t, "bin", "--file", writeLog(t), "--since", "March")
	assert.ErrorContains(t, err, "invalid --since")
}

func TestBinCommandRejectsUnknownMode(t *testing.T) {
	_, err := run(t, "bin", "--file", writeLog(t), "--mode", "ccrr")
	assert.ErrorContains(t, err, `invalid --mode "ccrr"`)

	out, err := run(t, "bin", "--file", writeLog(t), "--type", "2", "--counts", "--format", "csv", "--mode", "OC,freedive")
	require.NoError(t, err)
	assert.Equal(t, "Dive mode,Count\nOpen circuit,1\nFreedive,1\n", out)
}
