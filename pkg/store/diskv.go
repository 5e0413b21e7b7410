package store

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

const templateExt = ".json"

// Templates persists user templates as one JSON file per name.
type Templates interface {
	Names(ctx context.Context) []string
	Read(name string) ([]byte, error)
	Write(name string, data []byte) error
	Erase(name string) error
	Has(name string) bool
}

// ErrNoTemplate is returned by Read and Erase for unknown names.
var ErrNoTemplate = errors.New("store: no such template")

// LoadTemplates opens the template store under cfg.TemplatesPath(). A nil
// cfg reads the user configuration.
func LoadTemplates(cfg Config) (Templates, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	basePath := cfg.TemplatesPath()
	if basePath == "" {
		return nil, errors.New("store: templates path unknown")
	}
	return &templates{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      256 * 1024, // 256KB
	})}, nil
}

type templates struct {
	d *diskv.Diskv
}

func (t *templates) Names(ctx context.Context) []string {
	names := make([]string, 0)
	for key := range t.d.Keys(ctx.Done()) {
		if key == "" {
			continue
		}
		names = append(names, key)
	}
	sort.Strings(names)
	return names
}

func (t *templates) Read(name string) ([]byte, error) {
	data, err := t.d.Read(name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoTemplate, name)
		}
		return nil, err
	}
	return data, nil
}

func (t *templates) Write(name string, data []byte) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("store: template name required")
	}
	return t.d.Write(name, data)
}

func (t *templates) Erase(name string) error {
	if !t.d.Has(name) {
		return fmt.Errorf("%w: %s", ErrNoTemplate, name)
	}
	return t.d.Erase(name)
}

func (t *templates) Has(name string) bool {
	return t.d.Has(name)
}

// Template names may hold any character, so file names are their URL-safe
// base64 form.
func keyToPathTransform(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: toFileName(s),
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fromFileName(pathKey.FileName)
}

func toFileName(name string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(name)) + templateExt
}

func fromFileName(s string) string {
	if !strings.HasSuffix(s, templateExt) {
		return ""
	}
	name, err := base64.RawURLEncoding.DecodeString(strings.TrimSuffix(s, templateExt))
	if err != nil {
		return ""
	}
	return string(name)
}
