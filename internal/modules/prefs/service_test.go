package prefs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memKV struct {
	data    map[string]string
	readErr error
}

func newMemKV() *memKV { return &memKV{data: map[string]string{}} }

func (m *memKV) Get(_ context.Context, key string) (string, error) {
	if m.readErr != nil {
		return "", m.readErr
	}
	v, ok := m.data[key]
	if !ok {
		return "", errors.New("no value stored")
	}
	return v, nil
}

func (m *memKV) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func TestDefaultsWhenNothingStored(t *testing.T) {
	svc := NewService(context.Background(), newMemKV())
	assert.Equal(t, ThemeLight, svc.Theme())
	assert.Equal(t, LangEnglish, svc.Language())
}

func TestDefaultsWhenStoreUnreadable(t *testing.T) {
	kv := newMemKV()
	kv.readErr = errors.New("disk gone")

	svc := NewService(context.Background(), kv)
	assert.Equal(t, ThemeLight, svc.Theme())
	assert.Equal(t, LangEnglish, svc.Language())
}

func TestStoredValuesLoad(t *testing.T) {
	kv := newMemKV()
	kv.data[themeKey] = "dark"
	kv.data[languageKey] = "ar"

	svc := NewService(context.Background(), kv)
	assert.Equal(t, ThemeDark, svc.Theme())
	assert.Equal(t, LangArabic, svc.Language())
}

func TestGarbageStoredValuesFallBack(t *testing.T) {
	kv := newMemKV()
	kv.data[themeKey] = "hotdog_stand"
	kv.data[languageKey] = "xx"

	svc := NewService(context.Background(), kv)
	assert.Equal(t, ThemeLight, svc.Theme())
	assert.Equal(t, LangEnglish, svc.Language())
}

func TestSetThemePersistsAndSwitchesPalette(t *testing.T) {
	kv := newMemKV()
	svc := NewService(context.Background(), kv)

	lightBG := svc.Colors().Background
	require.NoError(t, svc.SetTheme(context.Background(), ThemeDark))

	assert.Equal(t, "dark", kv.data[themeKey])
	assert.NotEqual(t, lightBG, svc.Colors().Background)
}

func TestSetInvalidThemeCoercesToLight(t *testing.T) {
	kv := newMemKV()
	svc := NewService(context.Background(), kv)

	require.NoError(t, svc.SetTheme(context.Background(), ThemeMode("plaid")))
	assert.Equal(t, ThemeLight, svc.Theme())
	assert.Equal(t, "light", kv.data[themeKey])
}

func TestTranslationFallsThroughToEnglishThenKey(t *testing.T) {
	svc := NewService(context.Background(), newMemKV())
	require.NoError(t, svc.SetLanguage(context.Background(), LangArabic))

	assert.NotEmpty(t, svc.T("auth.invalid_login"))
	assert.NotEqual(t, "auth.invalid_login", svc.T("auth.invalid_login"))
	assert.Equal(t, "totally.unknown.key", svc.T("totally.unknown.key"))
}
