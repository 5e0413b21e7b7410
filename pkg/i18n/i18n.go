// Package i18n translates the user-facing strings of jed. English and German
// are supported; German is the language the editor was first written in.
package i18n

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Auto selects the language from the environment.
const Auto = "auto"

var (
	supported = []language.Tag{language.English, language.German}
	matcher   = language.NewMatcher(supported)
	cat       = newCatalog()
)

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for _, key := range keys() {
		mustSet(b.SetString(language.English, key, key))
	}
	for key, msg := range german {
		mustSet(b.SetString(language.German, key, msg))
	}
	mustSet(b.Set(language.English, Matches, plural.Selectf(1, "%d",
		"one", "%[1]d match for %[2]q",
		"other", "%[1]d matches for %[2]q")))
	mustSet(b.Set(language.German, Matches, plural.Selectf(1, "%d",
		"one", "%[1]d Treffer für %[2]q",
		"other", "%[1]d Treffer für %[2]q")))
	return b
}

func mustSet(err error) {
	if err != nil {
		panic(fmt.Sprintf("i18n: bad catalog entry: %v", err))
	}
}

func keys() []string {
	out := make([]string, 0, len(german))
	for k := range german {
		out = append(out, k)
	}
	return out
}

// Translator formats messages in one language.
type Translator struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Translator for lang. "auto" or an empty string detects the
// language from $LC_ALL, $LC_MESSAGES and $LANG; anything unsupported falls
// back to English.
func New(lang string) *Translator {
	tag := Match(lang)
	return &Translator{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(cat)),
	}
}

// T formats the message key in the translator's language.
func (t *Translator) T(key string, args ...any) string {
	if t == nil {
		return fmt.Sprintf(key, args...)
	}
	return t.printer.Sprintf(key, args...)
}

// Lang returns the base language code, "en" or "de".
func (t *Translator) Lang() string {
	base, _ := t.tag.Base()
	return base.String()
}

// Supported lists the language codes New understands.
func Supported() []string {
	out := make([]string, len(supported))
	for i, t := range supported {
		base, _ := t.Base()
		out[i] = base.String()
	}
	return out
}

// Match picks the supported language closest to lang.
func Match(lang string) language.Tag {
	if lang == "" || strings.EqualFold(lang, Auto) {
		lang = fromEnv()
	}
	tag, err := language.Parse(normalize(lang))
	if err != nil {
		return language.English
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return language.English
	}
	return supported[idx]
}

func fromEnv() string {
	for _, k := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(k); v != "" && v != "C" && v != "POSIX" {
			return v
		}
	}
	return "en"
}

// normalize turns POSIX locale names like de_DE.UTF-8 into BCP 47.
func normalize(lang string) string {
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	return strings.ReplaceAll(lang, "_", "-")
}
