package lingo

import (
	"errors"
	"fmt"
)

// ErrNoSupportedLanguages is returned by New when the supported language list
// is empty. Construction cannot proceed without a default language.
var ErrNoSupportedLanguages = errors.New("no supported language supplied")

// UnsupportedLanguageError reports a switch to a language code outside the
// registry's supported set. The registry state is unchanged when it occurs.
type UnsupportedLanguageError struct {
	Code string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("language '%s' is not supported", e.Code)
}
