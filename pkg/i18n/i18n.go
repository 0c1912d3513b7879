// Package i18n loads the embedded English and French message catalogues.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

var supported = []language.Tag{language.English, language.French}

type Translator struct {
	bundle   *goi18n.Bundle
	fallback string
	matcher  language.Matcher
}

// New loads every embedded catalogue. fallback is used when a request names
// no supported language.
func New(fallback string) (*Translator, error) {
	bundle := goi18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, file := range []string{"locales/active.en.json", "locales/active.fr.json"} {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	return &Translator{
		bundle:   bundle,
		fallback: fallback,
		matcher:  language.NewMatcher(supported),
	}, nil
}

// MustNew panics on a broken catalogue; the files are embedded so this only
// fails on a bad build.
func MustNew(fallback string) *Translator {
	t, err := New(fallback)
	if err != nil {
		panic(err)
	}
	return t
}

// Localizer resolves prefs (Accept-Language values or bare tags) against the
// supported languages.
func (t *Translator) Localizer(prefs ...string) *Localizer {
	lang := t.resolve(prefs...)
	return &Localizer{
		l:    goi18n.NewLocalizer(t.bundle, lang, t.fallback),
		lang: lang,
	}
}

func (t *Translator) resolve(prefs ...string) string {
	for _, p := range prefs {
		if p == "" {
			continue
		}
		tags, _, err := language.ParseAcceptLanguage(p)
		if err != nil || len(tags) == 0 {
			continue
		}
		_, idx, conf := t.matcher.Match(tags...)
		if conf != language.No {
			return supported[idx].String()
		}
	}
	return t.fallback
}

type Localizer struct {
	l    *goi18n.Localizer
	lang string
}

func (l *Localizer) Lang() string { return l.lang }

// T returns the message for id, or id itself when it is missing.
func (l *Localizer) T(id string, data map[string]any) string {
	msg, err := l.l.Localize(&goi18n.LocalizeConfig{MessageID: id, TemplateData: data})
	if err != nil {
		return id
	}
	return msg
}

// N is T with plural selection on count. Count is added to data.
func (l *Localizer) N(id string, count int, data map[string]any) string {
	if data == nil {
		data = map[string]any{}
	}
	data["Count"] = count
	msg, err := l.l.Localize(&goi18n.LocalizeConfig{MessageID: id, TemplateData: data, PluralCount: count})
	if err != nil {
		return id
	}
	return msg
}
