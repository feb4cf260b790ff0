package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Language is a supported content language code
type Language string

const (
	LangFR Language = "fr"
	LangEN Language = "en"
	LangAR Language = "ar"
)

// DefaultLanguage is used when a request carries no (or an unknown) lang value
const DefaultLanguage = LangFR

// FallbackOrder is the fixed substitution order when a translation is missing
var FallbackOrder = []Language{LangFR, LangEN, LangAR}

// SupportedLanguages lists every language the CMS accepts
var SupportedLanguages = []Language{LangFR, LangEN, LangAR}

// ParseLanguage validates a raw lang value, falling back to the default
func ParseLanguage(raw string) Language {
	for _, lang := range SupportedLanguages {
		if string(lang) == raw {
			return lang
		}
	}
	return DefaultLanguage
}

// Translation holds per-language text for one translatable field.
// French is the canonical entry and is required on every write.
type Translation struct {
	FR string `json:"fr"`
	EN string `json:"en,omitempty"`
	AR string `json:"ar,omitempty"`
}

// Get returns the text for one language ("" when unset)
func (t Translation) Get(lang Language) string {
	switch lang {
	case LangFR:
		return t.FR
	case LangEN:
		return t.EN
	case LangAR:
		return t.AR
	}
	return ""
}

// Resolve picks the text for the requested language, walking FallbackOrder
// when it is missing. Returns "" only when every language is empty.
func (t Translation) Resolve(lang Language) string {
	if v := t.Get(lang); v != "" {
		return v
	}
	for _, fallback := range FallbackOrder {
		if fallback == lang {
			continue
		}
		if v := t.Get(fallback); v != "" {
			return v
		}
	}
	return ""
}

// HasDefault reports whether the required French entry is present
func (t Translation) HasDefault() bool {
	return t.FR != ""
}

// Value serializes the translation as a JSON column value
func (t Translation) Value() (driver.Value, error) {
	b, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan deserializes a JSON column value into the translation
func (t *Translation) Scan(value interface{}) error {
	if value == nil {
		*t = Translation{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("cannot scan %T into Translation", value)
	}
}
