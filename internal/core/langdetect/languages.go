package langdetect

import (
	"strings"

	"github.com/pemistahl/lingua-go"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Supported is the fixed set of languages the engine is built with
// the classification core treats this as configuration, not logic
var Supported = []lingua.Language{
	lingua.English, lingua.French, lingua.German,
	lingua.Spanish, lingua.Portuguese, lingua.Italian,
	lingua.Russian, lingua.Arabic, lingua.Hindi,
	lingua.Chinese, lingua.Japanese, lingua.Korean,
	lingua.Vietnamese, lingua.Thai, lingua.Dutch,
	lingua.Greek, lingua.Turkish, lingua.Polish,
	lingua.Danish, lingua.Finnish, lingua.Hungarian,
	lingua.Swedish, lingua.Indonesian, lingua.Romanian,
	lingua.Bengali, lingua.Persian, lingua.Hebrew,
	lingua.Urdu, lingua.Tamil, lingua.Malay,
}

// Info is display metadata for one supported language, resolved once at startup
type Info struct {
	Code    string `json:"code"`    // stable uppercase identifier, e.g. FRENCH
	ISO     string `json:"iso"`     // ISO 639-1 code, e.g. fr
	Display string `json:"display"` // english display name, e.g. French
}

// Code returns the stable wire identifier for a lingua language
func Code(l lingua.Language) string { return strings.ToUpper(l.String()) }

// registry is built once from Supported
var registry = buildRegistry(Supported)

func buildRegistry(langs []lingua.Language) []Info {
	namer := display.English.Languages()
	out := make([]Info, 0, len(langs))
	for _, l := range langs {
		iso := strings.ToLower(l.IsoCode639_1().String())
		name := l.String()
		if tag, err := language.Parse(iso); err == nil {
			if n := namer.Name(tag); n != "" {
				name = n
			}
		}
		out = append(out, Info{
			Code:    Code(l),
			ISO:     iso,
			Display: name,
		})
	}
	return out
}

// Registry returns display metadata for every supported language
func Registry() []Info {
	out := make([]Info, len(registry))
	copy(out, registry)
	return out
}
