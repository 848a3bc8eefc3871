package content

import (
	"fmt"
	"strings"
)

// PlatformSpec describes the posting constraints of one platform.
type PlatformSpec struct {
	MaxLength    int
	HashtagLimit int
}

// platformSpecs is the fixed table of supported platforms.
var platformSpecs = map[string]PlatformSpec{
	"x":        {MaxLength: 280, HashtagLimit: 3},
	"linkedin": {MaxLength: 3000, HashtagLimit: 5},
	"facebook": {MaxLength: 2000, HashtagLimit: 4},
}

// platformOrder keeps output deterministic.
var platformOrder = []string{"x", "linkedin", "facebook"}

// SpecFor returns the posting spec for a platform.
func SpecFor(platform string) (PlatformSpec, error) {
	spec, ok := platformSpecs[platform]
	if !ok {
		return PlatformSpec{}, fmt.Errorf("unsupported platform: %s", platform)
	}
	return spec, nil
}

// Platforms returns the supported platform names in stable order.
func Platforms() []string {
	out := make([]string, len(platformOrder))
	copy(out, platformOrder)
	return out
}

// DisplayName renders a platform name for humans. "x" stays "X",
// everything else is capitalized.
func DisplayName(platform string) string {
	if platform == "x" {
		return "X"
	}
	if platform == "" {
		return ""
	}
	return strings.ToUpper(platform[:1]) + platform[1:]
}

// DefaultLanguage is the language used when the caller does not pick one.
const DefaultLanguage = "en"

// languageNames maps supported language codes to display names.
var languageNames = map[string]string{
	"en": "English",
	"es": "Spanish",
	"fr": "French",
	"de": "German",
	"it": "Italian",
	"pt": "Portuguese",
	"nl": "Dutch",
	"ro": "Romanian",
}

// LanguageName returns the display name for a supported language code.
func LanguageName(code string) (string, error) {
	name, ok := languageNames[code]
	if !ok {
		return "", fmt.Errorf("unsupported language: %s", code)
	}
	return name, nil
}

// SupportedLanguages returns the supported codes in alphabetical order.
func SupportedLanguages() []string {
	return []string{"de", "en", "es", "fr", "it", "nl", "pt", "ro"}
}
