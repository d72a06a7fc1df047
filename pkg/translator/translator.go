package translator

import (
	"embed"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

var Translator *i18n.Bundle

// supported is nil when every language is accepted.
var supported []language.Tag

//go:embed translation/*.toml
var embedded embed.FS

type Config struct {
	// TranslationFolder is read from disk; when empty the message files
	// compiled into the binary are used.
	TranslationFolder  string
	// SupportedLanguages restricts the loaded message files and the accepted
	// output languages. English is always accepted. Empty accepts all.
	SupportedLanguages []string
}

const (
	LanguageFr = "fr"
	LanguageEn = "en"
)

func InitTranslator(cfg Config) {
	Translator = i18n.NewBundle(language.English)
	Translator.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	supported = parseSupported(cfg.SupportedLanguages)

	if cfg.TranslationFolder == "" {
		loadEmbedded()
		return
	}

	// List files in the translation folder
	lstFiles, err := os.ReadDir(cfg.TranslationFolder)
	if err != nil {
		zap.L().Error("failed to list translation folder", zap.String("folder", cfg.TranslationFolder), zap.Error(err))
		return
	}

	for _, f := range lstFiles {
		if f.IsDir() {
			continue
		}
		if !IsSupported(fileLanguage(f.Name())) {
			zap.L().Debug("skipping unsupported translation file", zap.String("file", f.Name()))
			continue
		}
		filepath := fmt.Sprintf("%s/%s", cfg.TranslationFolder, f.Name())

		_, err := Translator.LoadMessageFile(filepath)
		if err != nil {
			zap.L().Warn("failed to load translation file", zap.String("file", f.Name()), zap.Error(err))
		}
	}
}

func loadEmbedded() {
	entries, err := embedded.ReadDir("translation")
	if err != nil {
		zap.L().Error("failed to list embedded translations", zap.Error(err))
		return
	}
	for _, entry := range entries {
		if !IsSupported(fileLanguage(entry.Name())) {
			continue
		}
		name := path.Join("translation", entry.Name())
		buf, err := embedded.ReadFile(name)
		if err != nil {
			zap.L().Warn("failed to read embedded translation", zap.String("file", name), zap.Error(err))
			continue
		}
		if _, err := Translator.ParseMessageFileBytes(buf, name); err != nil {
			zap.L().Warn("failed to parse embedded translation", zap.String("file", name), zap.Error(err))
		}
	}
}

// IsSupported reports whether lang is one of the configured languages.
func IsSupported(lang string) bool {
	tag, err := language.Parse(lang)
	if err != nil {
		return false
	}
	if supported == nil {
		return true
	}
	for _, s := range supported {
		if s.String() == tag.String() {
			return true
		}
	}
	return false
}

func parseSupported(langs []string) []language.Tag {
	if len(langs) == 0 {
		return nil
	}
	tags := []language.Tag{language.English}
	for _, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			zap.L().Warn("ignoring invalid language", zap.String("lang", lang), zap.Error(err))
			continue
		}
		tags = append(tags, tag)
	}
	return tags
}

// fileLanguage returns the language part of a message file name such as
// "fr.toml" or "active.fr.toml".
func fileLanguage(name string) string {
	parts := strings.Split(strings.TrimSuffix(name, path.Ext(name)), ".")
	return parts[len(parts)-1]
}

// Localize renders messageID for lang, falling back to English and then to
// the message id itself.
func Localize(lang, messageID string, data map[string]any) string {
	if Translator == nil {
		return messageID
	}
	l := i18n.NewLocalizer(Translator, lang, LanguageEn)
	msg, err := l.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", messageID), zap.Error(err))
		return messageID
	}
	return msg
}
