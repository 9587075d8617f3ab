package models

// LanguageCode is an ISO 639-1 code for a locale the signing UI and emails are translated into
type LanguageCode string

const (
	LanguageGerman  LanguageCode = "de"
	LanguageEnglish LanguageCode = "en"
	LanguageFrench  LanguageCode = "fr"
	LanguageSpanish LanguageCode = "es"
)

// DefaultLanguage is used when a template does not name one
const DefaultLanguage = LanguageEnglish

var supportedLanguageCodes = []LanguageCode{LanguageGerman, LanguageEnglish, LanguageFrench, LanguageSpanish}

// IsValid reports whether the code is one of the supported languages
func (l LanguageCode) IsValid() bool {
	for _, code := range supportedLanguageCodes {
		if l == code {
			return true
		}
	}
	return false
}

// SupportedLanguageCodes returns the supported codes as strings.
func SupportedLanguageCodes() []string {
	out := make([]string, len(supportedLanguageCodes))
	for i, code := range supportedLanguageCodes {
		out[i] = string(code)
	}
	return out
}
