// Package naming converts contract operation and parameter names between the
// snake_case spelling used on the wire and the camelCase / PascalCase spellings
// used by generated clients.
package naming

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var ErrAmbiguousName = errors.New("ambiguous name")

// Words splits a snake_case, camelCase or PascalCase name into lower case
// words. Digits stick to the word before them.
//
// A name is rejected when it cannot be converted back to its own spelling,
// e.g. "GetURL" (would come back as "GetUrl") or "get_top_10" (would come back
// as "get_top10").
func Words(name string) ([]string, error) {
	if err := checkCharset(name); err != nil {
		return nil, err
	}

	var words []string
	if strings.Contains(name, "_") {
		if strings.ToLower(name) != name {
			return nil, fmt.Errorf("%w: %q mixes underscores and upper case", ErrAmbiguousName, name)
		}
		words = strings.Split(name, "_")
		for _, w := range words {
			if w == "" {
				return nil, fmt.Errorf("%w: %q has an empty segment", ErrAmbiguousName, name)
			}
		}
	} else {
		if hasUpperRun(name) {
			return nil, fmt.Errorf("%w: %q has consecutive upper case letters", ErrAmbiguousName, name)
		}
		words = splitCamel(name)
	}

	if !roundTrips(name, words) {
		return nil, fmt.Errorf("%w: %q does not survive conversion", ErrAmbiguousName, name)
	}
	return words, nil
}

// Snake joins words as snake_case.
func Snake(words []string) string {
	return strings.Join(words, "_")
}

// Camel joins words as camelCase.
func Camel(words []string) string {
	if len(words) == 0 {
		return ""
	}
	return words[0] + Pascal(words[1:])
}

// Pascal joins words as PascalCase.
func Pascal(words []string) string {
	title := cases.Title(language.Und)
	var sb strings.Builder
	for _, w := range words {
		sb.WriteString(title.String(w))
	}
	return sb.String()
}

// ToSnake is Words followed by Snake.
func ToSnake(name string) (string, error) {
	words, err := Words(name)
	if err != nil {
		return "", err
	}
	return Snake(words), nil
}

// ToCamel is Words followed by Camel.
func ToCamel(name string) (string, error) {
	words, err := Words(name)
	if err != nil {
		return "", err
	}
	return Camel(words), nil
}

func checkCharset(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrAmbiguousName)
	}
	for i, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
		case r >= '0' && r <= '9':
			if i == 0 {
				return fmt.Errorf("%w: %q starts with a digit", ErrAmbiguousName, name)
			}
		default:
			return fmt.Errorf("%w: %q contains %q", ErrAmbiguousName, name, r)
		}
	}
	return nil
}

// splitCamel starts a new word at every upper case letter.
func splitCamel(name string) []string {
	var words []string
	start := 0
	for i := 1; i < len(name); i++ {
		if isUpper(name[i]) {
			words = append(words, strings.ToLower(name[start:i]))
			start = i
		}
	}
	return append(words, strings.ToLower(name[start:]))
}

func hasUpperRun(name string) bool {
	for i := 1; i < len(name); i++ {
		if isUpper(name[i-1]) && isUpper(name[i]) {
			return true
		}
	}
	return false
}

func isUpper(b byte) bool {
	return b >= 'A' && b <= 'Z'
}

func roundTrips(name string, words []string) bool {
	camel := Camel(words)
	switch {
	case strings.Contains(name, "_"):
		return Snake(splitCamel(camel)) == name
	case isUpper(name[0]):
		return Pascal(words) == name
	default:
		return camel == name
	}
}
