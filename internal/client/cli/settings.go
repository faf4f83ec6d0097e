package cli

import (
	"context"
	"strings"

	"taskpurse/internal/common"
	"taskpurse/internal/currency"
)

// showSettings re-reads both preferences from the store, so a value written
// on another screen shows up here without restarting.
func (a *App) showSettings(ctx context.Context) {
	a.printf("Theme:    %s\n", a.prefs.Theme(ctx))
	a.printf("Currency: %s\n", a.prefs.Currency(ctx))
	a.printf("Supported currencies: %s\n", strings.Join(currency.Codes(), ", "))
}

func (a *App) setTheme(ctx context.Context, theme string) {
	theme = strings.ToLower(theme)
	if theme != common.ThemeLight && theme != common.ThemeDark {
		a.println("Unknown theme, expected light or dark")
		return
	}
	a.prefs.SetTheme(ctx, theme)
	a.printf("Theme set to %s\n", theme)
}

func (a *App) setCurrency(ctx context.Context, code string) {
	code = strings.ToUpper(code)
	if !currency.Supported(code) {
		a.printf("Unsupported currency, choose one of: %s\n", strings.Join(currency.Codes(), ", "))
		return
	}
	a.prefs.SetCurrency(ctx, code)
	a.printf("Currency set to %s\n", code)
}
