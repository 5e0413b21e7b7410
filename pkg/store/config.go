package store

import (
	"errors"
	"os"
	"sort"
	"strconv"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config keys.
const (
	KeyIndent        = "indent"
	KeyLanguage      = "language"
	KeyTheme         = "theme"
	KeyTemplatesPath = "templates_path"
	KeyLogFile       = "log_file"
)

// Config is the user configuration, read from .jed.yaml and JED_* env vars.
type Config interface {
	Indent() int
	Language() string
	Theme() string
	TemplatesPath() string
	LogFile() string
	// File is the config file that was read, empty when none was found.
	File() string
	// Settings lists every key and its effective value, sorted by key.
	Settings() []Setting
}

// Setting is one effective config value.
type Setting struct {
	Key   string
	Value string
}

// LoadConfig reads .jed.yaml from $JED_CONFIG_PATH, the working directory and
// the home directory, in that order. A missing file is not an error.
func LoadConfig() (Config, error) {
	v := viper.New()
	v.SetDefault(KeyIndent, 2)
	v.SetDefault(KeyLanguage, "auto")
	v.SetDefault(KeyTheme, "auto")
	v.SetDefault(KeyTemplatesPath, "~/.jed/templates")
	v.SetDefault(KeyLogFile, "")
	v.SetConfigName(".jed") // .yaml is implicit
	v.SetEnvPrefix("JED")
	v.AutomaticEnv()

	if override := os.Getenv("JED_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}
	return &fileConfig{v: v}, nil
}

type fileConfig struct {
	v *viper.Viper
}

func (f *fileConfig) Indent() int {
	if i := f.v.GetInt(KeyIndent); i >= 0 {
		return i
	}
	return 0
}

func (f *fileConfig) Language() string { return f.v.GetString(KeyLanguage) }

func (f *fileConfig) Theme() string { return f.v.GetString(KeyTheme) }

func (f *fileConfig) TemplatesPath() string { return expand(f.v.GetString(KeyTemplatesPath)) }

func (f *fileConfig) LogFile() string { return expand(f.v.GetString(KeyLogFile)) }

func (f *fileConfig) File() string { return f.v.ConfigFileUsed() }

func (f *fileConfig) Settings() []Setting {
	keys := []string{KeyIndent, KeyLanguage, KeyTheme, KeyTemplatesPath, KeyLogFile}
	sort.Strings(keys)
	out := make([]Setting, 0, len(keys))
	for _, k := range keys {
		out = append(out, Setting{Key: k, Value: f.v.GetString(k)})
	}
	return out
}

func expand(p string) string {
	if p == "" {
		return ""
	}
	if e, err := homedir.Expand(p); err == nil {
		return e
	}
	return p
}

// StaticConfig is a fixed Config, for tests and for callers that already
// know their settings.
type StaticConfig struct {
	IndentWidth int
	Lang        string
	ThemeName   string
	Templates   string
	Log         string
}

func (s StaticConfig) Indent() int           { return s.IndentWidth }
func (s StaticConfig) Language() string      { return s.Lang }
func (s StaticConfig) Theme() string         { return s.ThemeName }
func (s StaticConfig) TemplatesPath() string { return s.Templates }
func (s StaticConfig) LogFile() string       { return s.Log }
func (s StaticConfig) File() string          { return "" }

func (s StaticConfig) Settings() []Setting {
	return []Setting{
		{Key: KeyIndent, Value: strconv.Itoa(s.IndentWidth)},
		{Key: KeyLanguage, Value: s.Lang},
		{Key: KeyLogFile, Value: s.Log},
		{Key: KeyTemplatesPath, Value: s.Templates},
		{Key: KeyTheme, Value: s.ThemeName},
	}
}
