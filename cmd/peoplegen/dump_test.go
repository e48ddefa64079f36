package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/muster/backend/internal/domain"
	"gopkg.in/yaml.v3"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newDumpCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestDump_Reproducible(t *testing.T) {
	args := []string{"--now", "2023-11-14T22:13:20Z"}

	a, err := execute(t, args...)
	require.NoError(t, err)
	b, err := execute(t, args...)
	require.NoError(t, err)
	require.Equal(t, a, b)

	var ds domain.Dataset
	require.NoError(t, json.Unmarshal([]byte(a), &ds))
	require.Len(t, ds.Arrived, 72)
	require.Len(t, ds.NotArrived, 8)
	require.Equal(t, int64(1699996536800), ds.NotArrived[0].LastTime.UnixMilli())
}

func TestDump_SubsetYAML(t *testing.T) {
	out, err := execute(t, "--subset", "not-arrived", "--format", "yaml", "--now", "2023-11-14T22:13:20Z")
	require.NoError(t, err)

	var people []domain.UnresolvedPerson
	require.NoError(t, yaml.Unmarshal([]byte(out), &people))
	require.Len(t, people, 8)
	require.Equal(t, 73, people[0].ID)
	require.Equal(t, "吴十", people[0].Name)
	require.Len(t, people[0].Track, 5)
}

func TestDump_DerivesNotArrived(t *testing.T) {
	out, err := execute(t, "--subset", "arrived", "--size", "10", "--arrived", "6")
	require.NoError(t, err)

	var people []domain.Person
	require.NoError(t, json.Unmarshal([]byte(out), &people))
	require.Len(t, people, 6)
}

func TestDump_Errors(t *testing.T) {
	_, err := execute(t, "--seed", "0")
	require.Error(t, err)

	_, err = execute(t, "--arrived", "70", "--not-arrived", "5")
	require.Error(t, err)

	_, err = execute(t, "--format", "xml")
	require.Error(t, err)

	_, err = execute(t, "--subset", "everyone")
	require.Error(t, err)

	_, err = execute(t, "--now", "yesterday")
	require.Error(t, err)
}
