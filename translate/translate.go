// Package translate formats user-facing messages for the current locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FALLBACK_LOCALE is used when the environment names no locale.
const FALLBACK_LOCALE = "en-US"

var (
	printer     *message.Printer
	printerOnce sync.Once
)

// Printer returns the message printer matched to the user's locales.
func Printer() *message.Printer {
	printerOnce.Do(func() {
		locales, err := locale.GetLocales()
		if err != nil {
			log.Printf("bfc: locale: %v", err)
		}

		if len(locales) == 0 {
			locales = []string{FALLBACK_LOCALE}
		}

		tag := message.MatchLanguage(locales...)
		if tag == language.Und {
			tag = language.MustParse(FALLBACK_LOCALE)
		}

		printer = message.NewPrinter(tag)
	})

	return printer
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return Printer().Sprintf(key, args...)
}
