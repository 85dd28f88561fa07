// Package i18n loads the embedded message catalogues used for navigation labels
// and page copy.
package i18n

import (
	"embed"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.toml
var locales embed.FS

// DefaultLanguage is the language the app was written in.
const DefaultLanguage = "ko"

// Translator resolves message IDs for a single language.
type Translator struct {
	lang      language.Tag
	localizer *goi18n.Localizer
}

func newBundle() (*goi18n.Bundle, error) {
	bundle := goi18n.NewBundle(language.Korean)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	entries, err := locales.ReadDir("locales")
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		p := path.Join("locales", e.Name())
		b, err := locales.ReadFile(p)
		if err != nil {
			return nil, err
		}
		if _, err := bundle.ParseMessageFileBytes(b, e.Name()); err != nil {
			return nil, fmt.Errorf("parse %s: %w", e.Name(), err)
		}
	}
	return bundle, nil
}

// New builds a Translator for code (e.g. "ko", "en").
func New(code string) (*Translator, error) {
	tag, err := language.Parse(code)
	if err != nil {
		return nil, fmt.Errorf("language %q: %w", code, err)
	}
	if !Supported(code) {
		return nil, fmt.Errorf("language %q is not supported", code)
	}
	bundle, err := newBundle()
	if err != nil {
		return nil, err
	}
	return &Translator{lang: tag, localizer: goi18n.NewLocalizer(bundle, tag.String())}, nil
}

// Supported reports whether an embedded catalogue exists for code.
func Supported(code string) bool {
	tag, err := language.Parse(code)
	if err != nil {
		return false
	}
	base, _ := tag.Base()
	_, err = locales.Open(path.Join("locales", "active."+base.String()+".toml"))
	return err == nil
}

func (t *Translator) Language() language.Tag { return t.lang }

// T returns the message for id, or id itself when there is none.
func (t *Translator) T(id string) string {
	if t == nil || t.localizer == nil {
		return id
	}
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id})
	if msg == "" && err != nil {
		return id
	}
	return msg
}

// Tf is T with template data.
func (t *Translator) Tf(id string, data map[string]any) string {
	if t == nil || t.localizer == nil {
		return id
	}
	msg, err := t.localizer.Localize(&goi18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if msg == "" && err != nil {
		return id
	}
	return msg
}
