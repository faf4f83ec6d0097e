package common

// Collection names used by the remote store boundary.
const (
	CollectionTasks       = "tasks"
	CollectionBudgetItems = "budget_items"
)

// Local preference keys.
const (
	PrefKeyTheme    = "themePreference"
	PrefKeyCurrency = "currencyPreference"
)

// Theme preference values.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)
