package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/runepick/internal/core/domain"
	"github.com/custodia-labs/runepick/internal/index"
)

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "UnicodeData.txt")
	aliases := filepath.Join(dir, "NameAliases.txt")
	out := filepath.Join(dir, "names.fst")

	require.NoError(t, os.WriteFile(src, []byte("0061;LATIN SMALL LETTER A\n0041;LATIN CAPITAL LETTER A\n"), 0600))
	require.NoError(t, os.WriteFile(aliases, []byte("0041;LATIN SMALL LETTER A;figment\n0000;NULL;control\n"), 0600))

	cmd := newRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--out", out, src, aliases})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "wrote 3 names")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	ix, err := index.Load(data)
	require.NoError(t, err)

	cp, ok, err := ix.Get("LATIN SMALL LETTER A")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint32(0x61), cp, "earlier source wins")
}

func TestGenerate_Reproducible(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "UnicodeData.txt")
	require.NoError(t, os.WriteFile(src, []byte("0062;B\n0061;A\n0063;C\n"), 0600))

	var outputs [][]byte
	for _, name := range []string{"a.fst", "b.fst"} {
		out := filepath.Join(dir, name)
		cmd := newRootCmd()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetArgs([]string{"-o", out, src})
		require.NoError(t, cmd.Execute())

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		outputs = append(outputs, data)
	}
	assert.Equal(t, outputs[0], outputs[1])
}

func TestGenerate_RequiresSource(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{})

	assert.Error(t, cmd.Execute())
}

func TestGenerate_BadSourceLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "UnicodeData.txt")
	out := filepath.Join(dir, "names.fst")
	require.NoError(t, os.WriteFile(src, []byte("zz;BROKEN\n"), 0600))

	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{"--out", out, src})

	assert.Error(t, cmd.Execute())
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestVerify(t *testing.T) {
	table := []domain.Association{
		{Name: "A", CodePoint: 0x41},
		{Name: "B", CodePoint: 0x42},
	}
	data, err := index.BuildBytes(table)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "names.fst")
	require.NoError(t, os.WriteFile(path, data, 0600))

	assert.NoError(t, verify(path, table))

	err = verify(path, []domain.Association{{Name: "A", CodePoint: 0x41}, {Name: "B", CodePoint: 0x43}})
	assert.ErrorContains(t, err, "entry 1")

	err = verify(path, table[:1])
	assert.ErrorContains(t, err, "end of table")

	err = verify(path, append(table, domain.Association{Name: "C", CodePoint: 0x43}))
	assert.ErrorContains(t, err, "holds 2 names, want 3")
}
