package utils

import (
	"regexp"
	"strings"
)

var (
	invalidNameChars = regexp.MustCompile(`[^a-z0-9\-_.]`)
	repeatedHyphens  = regexp.MustCompile(`-+`)
)

// SanitizeWalletName turns free text into a usable wallet name: lowercase,
// spaces to hyphens, other characters dropped.
func SanitizeWalletName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "-")
	name = invalidNameChars.ReplaceAllString(name, "")
	name = repeatedHyphens.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-.")

	if name == "" {
		name = "wallet"
	}
	return name
}
