package i18n

import (
	"golang.org/x/text/message"
)

// Localizer renders message keys for one locale. Unknown keys render as the
// key itself.
type Localizer struct {
	locale  string
	printer *message.Printer
}

// Locale returns the locale the localizer resolved to
func (l *Localizer) Locale() string {
	return l.locale
}

// Localize renders the message registered for key with args
func (l *Localizer) Localize(key string, args ...any) string {
	return l.printer.Sprintf(key, args...)
}
