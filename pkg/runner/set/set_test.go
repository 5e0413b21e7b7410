package set

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/jed/pkg/app"
	errs "tableflip.dev/jed/pkg/errors"
)

func open(t *testing.T, doc string) (*app.Service, afero.Fs, *bytes.Buffer) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/data.json", []byte(doc), 0o644))
	svc := app.New(app.Options{FS: fs, Indent: 2, Language: "en", Logger: log.New(&strings.Builder{})})
	require.NoError(t, svc.Open("/work/data.json"))

	var out bytes.Buffer
	prev, prevNoColor := color.Output, color.NoColor
	color.Output, color.NoColor = &out, true
	t.Cleanup(func() { color.Output, color.NoColor = prev, prevNoColor })
	return svc, fs, &out
}

func TestSetKeepsType(t *testing.T) {
	svc, fs, out := open(t, `{"name":"jed","n":1}`)

	s := Set{Service: svc, Path: "n", Value: "2.5"}
	require.NoError(t, s.Do(context.Background()))

	data, err := afero.ReadFile(fs, "/work/data.json")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"name\": \"jed\",\n  \"n\": 2.5\n}", string(data))
	assert.False(t, svc.Dirty())
	assert.Contains(t, out.String(), "n  📄 n  2.5")
}

func TestSetMissingPath(t *testing.T) {
	svc, fs, _ := open(t, `{"name":"jed"}`)

	s := Set{Service: svc, Path: "nope", Value: "x"}
	err := s.Do(context.Background())
	require.Error(t, err)
	assert.True(t, errs.Is(err, errs.ErrCodePathNotFound))

	data, _ := afero.ReadFile(fs, "/work/data.json")
	assert.Equal(t, `{"name":"jed"}`, string(data))
}

func TestSetContainerRefused(t *testing.T) {
	svc, _, _ := open(t, `{"o":{"a":1}}`)

	s := Set{Service: svc, Path: "o", Value: "x"}
	err := s.Do(context.Background())
	assert.True(t, errs.Is(err, errs.ErrCodeTypeMismatch))
}
