package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var locales embed.FS

const DefaultLanguage = "en"

type Translator struct {
	bundle *goi18n.Bundle
}

// New returns a translator preloaded with the embedded locale files.
func New() (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	entries, err := fs.ReadDir(locales, "locales")
	if err != nil {
		return nil, fmt.Errorf("read embedded locales: %w", err)
	}
	for _, e := range entries {
		data, err := locales.ReadFile(path.Join("locales", e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", e.Name(), err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, e.Name()); err != nil {
			return nil, fmt.Errorf("parse locale %s: %w", e.Name(), err)
		}
	}
	return &Translator{bundle: bundle}, nil
}

// Load adds an extra locale file from disk, e.g. active.id.json.
func (t *Translator) Load(file string) error {
	_, err := t.bundle.LoadMessageFile(file)
	return err
}

// T localizes id for lang. Missing messages come back as the id itself.
func (t *Translator) T(lang, id string, data map[string]any) string {
	loc := goi18n.NewLocalizer(t.bundle, lang, DefaultLanguage)
	msg, err := loc.Localize(&goi18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if err != nil {
		return id
	}
	return msg
}
