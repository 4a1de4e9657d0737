package diagram

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Capitalize turns a snake_case base name into a sentence:
// "stepfunction_errors" becomes "Stepfunction errors".
func Capitalize(name string) string {
	s := strings.ToLower(strings.ReplaceAll(name, "_", " "))
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// TitleCase turns a snake_case base name into a title:
// "overview_client" becomes "Overview Client".
func TitleCase(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}
