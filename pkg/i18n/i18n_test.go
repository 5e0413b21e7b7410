package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"de", language.German},
		{"de_DE.UTF-8", language.German},
		{"de-AT", language.German},
		{"en_US", language.English},
		{"fr", language.English},
		{"not a language", language.English},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, Match(tc.in))
		})
	}
}

func TestMatchAutoReadsEnvironment(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "de_CH.UTF-8")
	assert.Equal(t, language.German, Match(Auto))
	assert.Equal(t, language.German, Match(""))

	t.Setenv("LANG", "C")
	assert.Equal(t, language.English, Match(Auto))
}

func TestTranslate(t *testing.T) {
	en := New("en")
	de := New("de")

	assert.Equal(t, "en", en.Lang())
	assert.Equal(t, "de", de.Lang())

	assert.Equal(t, "Ready", en.T(Ready))
	assert.Equal(t, "Bereit", de.T(Ready))
	assert.Equal(t, "Zeile 3, Spalte 7", de.T(Position, 3, 7))
	assert.Equal(t, "Array [2 items]", en.T(ArrayItems, 2))
	assert.Equal(t, "Array [2 Einträge]", de.T(ArrayItems, 2))
}

func TestPluralMatches(t *testing.T) {
	en := New("en")
	assert.Equal(t, `1 match for "x"`, en.T(Matches, 1, "x"))
	assert.Equal(t, `3 matches for "x"`, en.T(Matches, 3, "x"))
	assert.Equal(t, `3 Treffer für "x"`, New("de").T(Matches, 3, "x"))
}

func TestEveryKeyHasGerman(t *testing.T) {
	de := New("de")
	for key := range german {
		assert.NotEmpty(t, de.printer.Sprintf(key), key)
	}
	assert.Equal(t, []string{"en", "de"}, Supported())
}

func TestNilTranslatorFormatsKey(t *testing.T) {
	var tr *Translator
	assert.Equal(t, "Added x", tr.T(Added, "x"))
}
