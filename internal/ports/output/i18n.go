package output

// T looks up localized API messages.
type T interface {
	// T renders key in locale, with data filling template placeholders.
	// Unknown keys come back unchanged.
	T(locale, key string, data map[string]any) string
}
