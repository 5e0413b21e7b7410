package document

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "tableflip.dev/jed/pkg/errors"
	"tableflip.dev/jed/pkg/jsonvalue"
)

func newFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for name, body := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(body), 0o644))
	}
	return fs
}

func TestLoad(t *testing.T) {
	fs := newFS(t, map[string]string{"/d.json": `{"b":1,"a":[true]}`})
	d, err := Load(fs, "/d.json")
	require.NoError(t, err)
	assert.Equal(t, "/d.json", d.Path())
	assert.False(t, d.Dirty())
	assert.Equal(t, []string{"b", "a"}, d.Value().Object().Keys())
}

func TestLoadErrors(t *testing.T) {
	fs := newFS(t, map[string]string{
		"/bad.json":   "{\n  \"a\": ,\n}",
		"/array.json": `[1,2]`,
	})

	_, err := Load(fs, "/missing.json")
	assert.True(t, errs.Is(err, errs.ErrCodeFileNotFound))

	_, err = Load(fs, "/bad.json")
	var pe *errs.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, 8, pe.Column)

	_, err = Load(fs, "/array.json")
	assert.True(t, errs.Is(err, errs.ErrCodeTypeMismatch))
}

func TestSaveWritesVerbatimAndReloads(t *testing.T) {
	fs := newFS(t, map[string]string{"/d.json": `{"a":1}`})
	d, err := Load(fs, "/d.json")
	require.NoError(t, err)
	d.MarkDirty()

	text := "{\n    \"a\": 2,\n    \"ü\": \"ß\"\n}\n"
	require.NoError(t, d.Save(text))
	assert.False(t, d.Dirty())

	onDisk, err := afero.ReadFile(fs, "/d.json")
	require.NoError(t, err)
	assert.Equal(t, text, string(onDisk))
	assert.Equal(t, `{"a":2,"ü":"ß"}`, jsonvalue.Serialize(d.Value(), 0))
}

func TestSaveInvalidLeavesEverythingUnchanged(t *testing.T) {
	original := `{"a":1}`
	fs := newFS(t, map[string]string{"/d.json": original})
	d, err := Load(fs, "/d.json")
	require.NoError(t, err)
	d.MarkDirty()

	err = d.Save("{\n  \"a\": 1,\n  \"b\": \n}")
	var pe *errs.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 4, pe.Line)
	assert.Equal(t, 1, pe.Column)

	onDisk, err := afero.ReadFile(fs, "/d.json")
	require.NoError(t, err)
	assert.Equal(t, original, string(onDisk))
	assert.Equal(t, original, jsonvalue.Serialize(d.Value(), 0))
	assert.True(t, d.Dirty())

	err = d.Save(`"just a string"`)
	assert.True(t, errs.Is(err, errs.ErrCodeTypeMismatch))
	onDisk, _ = afero.ReadFile(fs, "/d.json")
	assert.Equal(t, original, string(onDisk))
}

func TestReloadDiscardsChanges(t *testing.T) {
	fs := newFS(t, map[string]string{"/d.json": `{"a":1}`})
	d, err := Load(fs, "/d.json")
	require.NoError(t, err)

	d.Value().Object().Set("b", jsonvalue.Int(2))
	d.MarkDirty()
	require.NoError(t, d.Reload())
	assert.False(t, d.Dirty())
	assert.Equal(t, `{"a":1}`, jsonvalue.Serialize(d.Value(), 0))
}

func TestFormat(t *testing.T) {
	out, err := Format(`{"a":[1,{"b":"ä"}]}`, 2)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": [\n    1,\n    {\n      \"b\": \"ä\"\n    }\n  ]\n}", out)

	_, err = Format(`{"a":`, 2)
	assert.True(t, errs.Is(err, errs.ErrCodeParse))

	assert.NoError(t, Validate(`{}`))
	assert.Error(t, Validate(`{,}`))
}
