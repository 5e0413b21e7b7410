package get

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

const doc = `{"name":"jed","tags":["a","b"]}`

func open(t *testing.T) (*app.Service, *bytes.Buffer) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/work/data.json", []byte(doc), 0o644))
	svc := app.New(app.Options{FS: fs, Indent: 2, Language: "en", Logger: log.New(&strings.Builder{})})
	require.NoError(t, svc.Open("/work/data.json"))

	var out bytes.Buffer
	prev, prevNoColor := color.Output, color.NoColor
	color.Output, color.NoColor = &out, true
	t.Cleanup(func() { color.Output, color.NoColor = prev, prevNoColor })
	return svc, &out
}

func TestGet(t *testing.T) {
	tests := map[string]struct {
		get  Get
		want string
	}{
		"whole tree": {
			get:  Get{},
			want: "📁 data.json  Root Object\n  📄 name  jed\n  📋 tags  Array [2 items]\n    📄 [0]  a\n    📄 [1]  b\n",
		},
		"whole document as json": {
			get:  Get{JSON: true},
			want: "{\n  \"name\": \"jed\",\n  \"tags\": [\n    \"a\",\n    \"b\"\n  ]\n}\n",
		},
		"scalar": {
			get:  Get{Path: "tags/[1]"},
			want: "b\n",
		},
		"scalar as json": {
			get:  Get{Path: "name", JSON: true},
			want: "\"jed\"\n",
		},
		"container": {
			get:  Get{Path: "tags"},
			want: "📋 tags  Array [2 items]\n  📄 [0]  a\n  📄 [1]  b\n",
		},
		"container as json": {
			get:  Get{Path: "tags", JSON: true},
			want: "[\n  \"a\",\n  \"b\"\n]\n",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			svc, out := open(t)
			tc.get.Service = svc
			require.NoError(t, tc.get.Do(context.Background()))
			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestGetMissingPath(t *testing.T) {
	svc, out := open(t)
	g := Get{Service: svc, Path: "tags/[7]"}
	err := g.Do(context.Background())
	assert.True(t, errs.Is(err, errs.ErrCodePathNotFound))
	assert.Empty(t, out.String())
}

func TestGetWithoutDocument(t *testing.T) {
	g := Get{Service: app.New(app.Options{})}
	assert.Error(t, g.Do(context.Background()))
}
