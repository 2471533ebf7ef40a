// Package prefs holds the two persisted device preferences: theme mode and
// language. Each loads once and falls back to its default when the stored
// value is missing or unreadable.
package prefs

import (
	"context"
	"sync"
)

type ThemeMode string

const (
	ThemeLight ThemeMode = "light"
	ThemeDark  ThemeMode = "dark"
)

type Language string

const (
	LangEnglish Language = "en"
	LangArabic  Language = "ar"
)

const (
	themeKey    = "app_theme_mode"
	languageKey = "app_language"
)

// KV is the slice of the local store preferences persist through.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Palette is the color token set derived from the theme mode.
type Palette struct {
	Background string
	Surface    string
	Text       string
	Primary    string
	Danger     string
}

var palettes = map[ThemeMode]Palette{
	ThemeLight: {
		Background: "#FFFFFF",
		Surface:    "#F5F6F8",
		Text:       "#101623",
		Primary:    "#1DBF73",
		Danger:     "#E0245E",
	},
	ThemeDark: {
		Background: "#10141B",
		Surface:    "#1B212C",
		Text:       "#ECEFF4",
		Primary:    "#1DBF73",
		Danger:     "#FF6B81",
	},
}

type Service struct {
	kv KV

	mu    sync.RWMutex
	theme ThemeMode
	lang  Language
}

// NewService loads both preferences. Read failure is not an error: the
// defaults (light, en) apply.
func NewService(ctx context.Context, kv KV) *Service {
	s := &Service{kv: kv, theme: ThemeLight, lang: LangEnglish}

	if v, err := kv.Get(ctx, themeKey); err == nil {
		if mode := ThemeMode(v); mode == ThemeLight || mode == ThemeDark {
			s.theme = mode
		}
	}
	if v, err := kv.Get(ctx, languageKey); err == nil {
		if _, ok := translations[Language(v)]; ok {
			s.lang = Language(v)
		}
	}
	return s
}

func (s *Service) Theme() ThemeMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *Service) SetTheme(ctx context.Context, mode ThemeMode) error {
	if mode != ThemeLight && mode != ThemeDark {
		mode = ThemeLight
	}
	if err := s.kv.Set(ctx, themeKey, string(mode)); err != nil {
		return err
	}

	s.mu.Lock()
	s.theme = mode
	s.mu.Unlock()
	return nil
}

func (s *Service) Colors() Palette {
	return palettes[s.Theme()]
}

func (s *Service) Language() Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

func (s *Service) SetLanguage(ctx context.Context, lang Language) error {
	if _, ok := translations[lang]; !ok {
		lang = LangEnglish
	}
	if err := s.kv.Set(ctx, languageKey, string(lang)); err != nil {
		return err
	}

	s.mu.Lock()
	s.lang = lang
	s.mu.Unlock()
	return nil
}

// T translates a key in the current language. Missing keys fall through to
// English, then to the key itself.
func (s *Service) T(key string) string {
	lang := s.Language()
	if v, ok := translations[lang][key]; ok {
		return v
	}
	if v, ok := translations[LangEnglish][key]; ok {
		return v
	}
	return key
}
