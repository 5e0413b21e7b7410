package i18n

// Message keys. Each key is also the English text.
const (
	Ready    = "Ready"
	Modified = "Modified"
	Saved    = "Saved"

	Opened       = "Opened %s"
	Reloaded     = "Reloaded %s"
	SaveSuccess  = "File saved successfully"
	Valid        = "JSON is valid"
	JSONError    = "JSON error: %s"
	CannotFormat = "Cannot format: %s"
	Formatted    = "Formatted"
	ErrorMsg     = "Error: %s"
	Position     = "Line %d, column %d"
	FileNotFound = "File not found: %s"

	SelectFirst      = "Please select a node first"
	ContainerEdit    = "Objects and arrays can only be edited in the raw editor"
	Added            = "Added %s"
	Updated          = "Updated %s"
	Deleted          = "Deleted %s"
	NothingDeleted   = "Nothing to delete"
	RootNotDeletable = "The root cannot be deleted"
	EmptyKey         = "Key must not be empty"
	Matches          = "%d matches for %q"
	NoMatches        = "No matches for %q"
	UnknownTemplate  = "Unknown template %q"
	InsertedTemplate = "Inserted template %s as %s"
	TemplateSaved    = "Saved template %s"
	TemplateDeleted  = "Deleted template %s"
	Language         = "Language: %s"
	Theme            = "Theme: %s"
	Cancelled        = "Cancelled"

	ConfirmDiscard = "Unsaved changes will be lost. Continue?"
	ConfirmDelete  = "Really delete %s?"
	YesNo          = "[y/n]"

	PromptKey      = "Key/name:"
	PromptType     = "Type (string/number/boolean/object/array, empty to infer):"
	PromptValue    = "Value:"
	PromptCurrent  = "Current value: %s"
	PromptNew      = "New value:"
	PromptSearch   = "Search term:"
	PromptTemplate = "Template (%s):"
	PromptEntry    = "Name for new entry:"

	PaneTree = "Structure"
	PaneRaw  = "Raw JSON Editor"

	RootObject = "Root Object"
	Object     = "Object"
	ArrayItems = "Array [%d items]"

	HelpAdd      = "add"
	HelpEdit     = "edit"
	HelpDelete   = "delete"
	HelpSearch   = "search"
	HelpNext     = "next match"
	HelpSave     = "save"
	HelpReload   = "reload"
	HelpValidate = "validate"
	HelpFormat   = "format"
	HelpTemplate = "template"
	HelpToggle   = "open/close"
	HelpFocus    = "switch pane"
	HelpLanguage = "language"
	HelpTheme    = "theme"
	HelpQuit     = "quit"
	HelpMore     = "more"
	HelpMove     = "move"
	HelpHelp     = "help"

	HelpSaveTemplate   = "save as template"
	PromptTemplateName = "Save as template named:"
)

// german holds the de catalog. English uses the keys themselves.
var german = map[string]string{
	Ready:    "Bereit",
	Modified: "Geändert",
	Saved:    "Gespeichert",

	Opened:       "%s geöffnet",
	Reloaded:     "%s neu geladen",
	SaveSuccess:  "Datei erfolgreich gespeichert!",
	Valid:        "JSON ist syntaktisch korrekt!",
	JSONError:    "JSON Fehler: %s",
	CannotFormat: "Kann nicht formatieren: %s",
	Formatted:    "Formatiert",
	ErrorMsg:     "Fehler: %s",
	Position:     "Zeile %d, Spalte %d",
	FileNotFound: "Datei '%s' nicht gefunden!",

	SelectFirst:      "Bitte wählen Sie einen Knoten aus!",
	ContainerEdit:    "Objekte und Arrays können nur über Raw-Editor bearbeitet werden.",
	Added:            "%s hinzugefügt",
	Updated:          "%s aktualisiert",
	Deleted:          "%s gelöscht",
	NothingDeleted:   "Nichts zu löschen",
	RootNotDeletable: "Die Wurzel kann nicht gelöscht werden",
	EmptyKey:         "Der Schlüssel darf nicht leer sein",
	NoMatches:        "Keine Treffer für %q",
	UnknownTemplate:  "Unbekanntes Template %q",
	InsertedTemplate: "Template %s als %s eingefügt",
	TemplateSaved:    "Template %s gespeichert",
	TemplateDeleted:  "Template %s gelöscht",
	Language:         "Sprache: %s",
	Theme:            "Design: %s",
	Cancelled:        "Abgebrochen",

	ConfirmDiscard: "Ungespeicherte Änderungen gehen verloren. Fortfahren?",
	ConfirmDelete:  "%s wirklich löschen?",
	YesNo:          "[j/n]",

	PromptKey:      "Schlüssel/Name:",
	PromptType:     "Typ (string/number/boolean/object/array, leer zum Erkennen):",
	PromptValue:    "Wert:",
	PromptCurrent:  "Aktueller Wert: %s",
	PromptNew:      "Neuer Wert:",
	PromptSearch:   "Suchbegriff:",
	PromptTemplate: "Template wählen (%s):",
	PromptEntry:    "Name für neuen Eintrag:",

	PaneTree: "Struktur-Ansicht",
	PaneRaw:  "Raw JSON Editor",

	RootObject: "Wurzelobjekt",
	Object:     "Objekt",
	ArrayItems: "Array [%d Einträge]",

	HelpAdd:      "hinzufügen",
	HelpEdit:     "bearbeiten",
	HelpDelete:   "löschen",
	HelpSearch:   "suchen",
	HelpNext:     "nächster Treffer",
	HelpSave:     "speichern",
	HelpReload:   "neu laden",
	HelpValidate: "validieren",
	HelpFormat:   "formatieren",
	HelpTemplate: "Template",
	HelpToggle:   "auf/zu",
	HelpFocus:    "Bereich wechseln",
	HelpLanguage: "Sprache",
	HelpTheme:    "Design",
	HelpQuit:     "beenden",
	HelpMore:     "mehr",
	HelpMove:     "bewegen",
	HelpHelp:     "Hilfe",

	HelpSaveTemplate:   "als Template speichern",
	PromptTemplateName: "Als Template speichern unter:",
}
