package util

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var slugRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// IndentLines indents all the lines with spaces
func IndentLines(lines []string, char string, count int) []string {
	for i := range lines {
		if lines[i] == "" {
			continue
		}
		lines[i] = strings.Repeat(char, count) + lines[i]
	}
	return lines
}

// IsSlug reports whether s is a lowercase, hyphen-separated identifier
// that is safe to use as a directory name.
func IsSlug(s string) bool {
	return slugRe.MatchString(s)
}

// EnvPrefix upper-cases the identifier and replaces
// every hyphen with an underscore.
func EnvPrefix(identifier string) string {
	return strings.ReplaceAll(strings.ToUpper(identifier), "-", "_")
}

// ContractAddressKey is the environment key holding
// the contract address of the identifier.
func ContractAddressKey(identifier string) string {
	return EnvPrefix(identifier) + "_CONTRACT_ADDRESS"
}

// TitleFromSlug turns "robot-supply-chain" into "Robot Supply Chain".
func TitleFromSlug(identifier string) string {
	caser := cases.Title(language.English)
	words := strings.Split(identifier, "-")
	for i := range words {
		words[i] = caser.String(words[i])
	}
	return strings.Join(words, " ")
}
