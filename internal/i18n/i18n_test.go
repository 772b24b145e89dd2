package i18n

import (
	"fmt"
	"sort"
	"testing"
)

func TestLocales(t *testing.T) {
	got := Locales()
	sort.Strings(got)
	if len(got) != 2 || got[0] != "en" || got[1] != "zh_CN" {
		t.Errorf("Locales() = %v, want [en zh_CN]", got)
	}
}

func TestGet(t *testing.T) {
	t.Cleanup(func() { _ = SetLocale(DefaultLocale) })

	tests := []struct {
		locale string
		key    string
		want   string
	}{
		{"en", "BANNER_SUCCESS", "ACCESS GRANTED"},
		{"en", "REASON_TIME_EXPIRED", "time expired"},
		{"zh_CN", "BANNER_FAILURE", "入侵失败"},
		{"en", "NO_SUCH_KEY", "NO_SUCH_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.key, func(t *testing.T) {
			if err := SetLocale(tt.locale); err != nil {
				t.Fatalf("SetLocale(%q): %v", tt.locale, err)
			}
			if got := Get(tt.key); got != tt.want {
				t.Errorf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestFormatEntries(t *testing.T) {
	t.Cleanup(func() { _ = SetLocale(DefaultLocale) })

	tests := []struct {
		locale string
		key    string
		args   []any
		want   string
	}{
		{"en", "SEQUENCES_COMPLETED", []any{2, 3}, "2/3 sequences uploaded"},
		{"zh_CN", "SEQUENCES_COMPLETED", []any{2, 3}, "已上传 2/3 个序列"},
		{"en", "SCORE", []any{232}, "Score: 232"},
		{"en", "NEED_SIZE", []any{64, 18, 30, 10}, "Need 64x18, have 30x10"},
		{"zh_CN", "NEED_SIZE", []any{64, 18, 30, 10}, "需要 64x18，当前 30x10"},
	}

	for _, tt := range tests {
		t.Run(tt.locale+"/"+tt.key, func(t *testing.T) {
			if err := SetLocale(tt.locale); err != nil {
				t.Fatalf("SetLocale(%q): %v", tt.locale, err)
			}
			if got := fmt.Sprintf(Get(tt.key), tt.args...); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	t.Cleanup(func() { _ = SetLocale(DefaultLocale) })

	keys := []string{
		"TITLE", "LABEL_PAUSED", "BANNER_SUCCESS", "HINT_KEYS", "SEQUENCES_COMPLETED",
		"WINDOW_TOO_SMALL", "NEED_SIZE", "HINT_QUIT", "SCORE", "HINT_GAME_OVER",
	}
	for _, locale := range Locales() {
		if err := SetLocale(locale); err != nil {
			t.Fatalf("SetLocale(%q): %v", locale, err)
		}
		for _, key := range keys {
			if got := Get(key); got == key {
				t.Errorf("%s: %s is untranslated", locale, key)
			}
		}
	}
}

func TestSetLocaleUnknown(t *testing.T) {
	if err := SetLocale("xx"); err == nil {
		t.Error("SetLocale(xx) should fail")
	}
	if got := Get("BANNER_SUCCESS"); got != "ACCESS GRANTED" {
		t.Errorf("failed SetLocale changed the catalog: %q", got)
	}
}
