package i18n

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type Translations struct {
	bundle   *i18n.Bundle
	localize *i18n.Localizer
}

// NewTranslations crea el bundle de traducciones. Los mensajes en inglés van
// embebidos como default; si localesPath no está vacío se cargan además los
// archivos locales/active.*.toml que haya ahí.
func NewTranslations(defaultLang string, localesPath string) (*Translations, error) {
	if defaultLang == "" {
		return nil, fmt.Errorf("language cannot be empty")
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	bundle.MustParseMessageFileBytes([]byte(defaultMessages), "default.en.toml")

	if localesPath != "" {
		files, err := filepath.Glob(filepath.Join(localesPath, "active.*.toml"))
		if err != nil {
			return nil, fmt.Errorf("error reading locales: %w", err)
		}

		for _, file := range files {
			if _, err := bundle.LoadMessageFile(file); err != nil {
				return nil, fmt.Errorf("error loading locale file %s: %w", file, err)
			}
		}
	}

	localize := i18n.NewLocalizer(bundle, defaultLang)

	return &Translations{
		bundle:   bundle,
		localize: localize,
	}, nil
}

func (t *Translations) SetLanguage(lang string) error {
	for _, tag := range t.bundle.LanguageTags() {
		if tag.String() == lang {
			t.localize = i18n.NewLocalizer(t.bundle, lang)
			return nil
		}
	}
	return fmt.Errorf("language '%s' not supported", lang)
}

func (t *Translations) GetMessage(messageID string, count int, templateData map[string]interface{}) string {
	localized, err := t.localize.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID: messageID,
		},
		PluralCount:  count,
		TemplateData: templateData,
	})
	if err != nil {
		return "Translation missing: " + messageID
	}
	return localized
}

var defaultMessages = `
	[app_usage]
	other = "Cherry-pick commits without losing track of where they came from"

	[app_description]
	other = "MatePick replays a commit onto your current branch and rewrites the commit message: the old Change-Id line is removed and a reference to the original commit is appended."

	[pick_command_usage]
	other = "Cherry-pick a change and update its Change-Id"

	[pick_command_description]
	other = "Replays the given commit onto the current branch. Any Change-Id line in the message is removed and '(cherry picked from commit <sha>)' is appended, so the change stays traceable to its origin."

	[pick_usage_error]
	other = "expected exactly one commit reference"

	[pick_conflict_hint]
	other = "NOTE: When committing (please see above) and editing the commit message, please remove the old Change-Id-line and add:\n{{.Reference}}"

	[registry_factory_already_registered]
	other = "a command factory named '{{.FactoryName}}' is already registered"

	[config_command_usage]
	other = "Manage mate-pick configuration"

	[config_show_usage]
	other = "Show the current configuration"

	[config_set_lang_usage]
	other = "Set the interface language"

	[config_set_lang_flag_usage]
	other = "Language code (en, es)"

	[unsupported_language]
	other = "Unsupported language. Available: en, es"

	[language_configured]
	other = "Language set to '{{.Lang}}'"

	[current_config]
	other = "Current configuration"

	[language_label]
	other = "Language: {{.Lang}}"

	[git_binary_label]
	other = "Git binary: {{.Git}}"

	[config_path_label]
	other = "Config file: {{.Path}}"

	[update_command_usage]
	other = "Update mate-pick to the latest version"

	[update_updating]
	other = "Checking for the latest release..."

	[update_success]
	other = "mate-pick is up to date"

	[update_available]
	other = "Update available: {{.Current}} -> {{.Latest}}"

	[update_run_command]
	other = "Run {{.Command}} to update"

	[update_go_not_found]
	other = "'go' binary not found in PATH"

	[update_brew_not_found]
	other = "'brew' binary not found in PATH"

	[update_failed]
	other = "update failed"

	[update_manual]
	other = "Download the latest release manually from {{.URL}}"
	`
