package models

// Bank source slugs.
const (
	SourceAlfa    = "alfa"
	SourceTinkoff = "tinkoff"
)

// Sources lists every registered bank source in a stable order.
func Sources() []string {
	return []string{SourceAlfa, SourceTinkoff}
}

// IsValidSource reports whether slug is a registered bank source.
func IsValidSource(slug string) bool {
	for _, s := range Sources() {
		if s == slug {
			return true
		}
	}
	return false
}
