package utils

import "regexp"

// Registry identifiers are a one to three letter prefix followed by
// seven digits, e.g. BC1234567, FM0001234, CP0000123.
var identifierRegex = regexp.MustCompile(`^[A-Z]{1,3}[0-9]{7}$`)

func IsIdentifierValid(identifier string) bool {
	return identifierRegex.MatchString(identifier)
}
