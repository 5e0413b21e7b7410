package templates

import "tableflip.dev/jed/pkg/jsonvalue"

var (
	str = jsonvalue.String
	obj = jsonvalue.ObjectOf
)

type member = jsonvalue.Member

// Builtins returns fresh copies of the built-in templates.
func Builtins() []Template {
	return []Template{{
		Name:        "feature",
		Description: "a new feature with its requirements",
		BuiltIn:     true,
		Value: obj(
			member{Key: "name", Value: str("New_Feature")},
			member{Key: "description", Value: str("Description_of_the_new_feature")},
			member{Key: "requirements", Value: jsonvalue.NewArray(str("Requirement_1"), str("Requirement_2"))},
			member{Key: "implementation", Value: str("not_started")},
		),
	}, {
		Name:        "hardware_component",
		Description: "a hardware part and how it connects",
		BuiltIn:     true,
		Value: obj(
			member{Key: "name", Value: str("New_Hardware")},
			member{Key: "type", Value: str("Sensor/Actuator")},
			member{Key: "interface", Value: str("USB/SPI/I2C")},
			member{Key: "configuration", Value: obj(
				member{Key: "parameter", Value: str("value")},
			)},
		),
	}, {
		Name:        "test_case",
		Description: "a test with its expected result",
		BuiltIn:     true,
		Value: obj(
			member{Key: "name", Value: str("New_Test")},
			member{Key: "description", Value: str("Test_description")},
			member{Key: "expected_result", Value: str("Expected_behavior")},
			member{Key: "status", Value: str("not_tested")},
		),
	}, {
		Name:        "neue_funktion",
		Description: "feature, with German keys",
		BuiltIn:     true,
		Value: obj(
			member{Key: "name", Value: str("Neue_Funktion")},
			member{Key: "beschreibung", Value: str("Beschreibung_der_Neuen_Funktion")},
			member{Key: "anforderungen", Value: jsonvalue.NewArray(str("Anforderung_1"), str("Anforderung_2"))},
			member{Key: "implementierung", Value: str("noch_nicht_begonnen")},
		),
	}, {
		Name:        "hardware_komponente",
		Description: "hardware_component, with German keys",
		BuiltIn:     true,
		Value: obj(
			member{Key: "name", Value: str("Neue_Hardware")},
			member{Key: "typ", Value: str("Sensor/Aktor")},
			member{Key: "schnittstelle", Value: str("USB/SPI/I2C")},
			member{Key: "konfiguration", Value: obj(
				member{Key: "parameter", Value: str("wert")},
			)},
		),
	}, {
		Name:        "empty_object",
		Description: "{}",
		BuiltIn:     true,
		Value:       jsonvalue.NewObject(),
	}, {
		Name:        "empty_array",
		Description: "[]",
		BuiltIn:     true,
		Value:       jsonvalue.NewArray(),
	}}
}

func builtin(name string) (Template, bool) {
	for _, t := range Builtins() {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}

// IsBuiltin reports whether name is a built-in template.
func IsBuiltin(name string) bool {
	_, ok := builtin(name)
	return ok
}
