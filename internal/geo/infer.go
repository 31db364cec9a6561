package geo

import (
	"sort"
	"strings"
	"unicode"

	"github.com/ishandutta2007/Tops-of-Github/internal/model"
	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// aliasesByLength lists countryAliases keys longest first, so that
// "united kingdom" is tried before a shorter alias could match inside it.
var aliasesByLength = func() []string {
	keys := make([]string, 0, len(countryAliases))
	for k := range countryAliases {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}()

// Infer returns the country for an optional location.
func Infer(location *string) string {
	if location == nil {
		return model.UnknownCountry
	}
	return InferString(*location)
}

// InferString returns the country for a location string.
//
// The first matching rule wins:
//  1. the whole location is a known country or alias;
//  2. the whole location is a known city;
//  3. a known country or alias appears anywhere in the location, longest
//     alias first;
//  4. otherwise model.UnknownCountry.
func InferString(location string) string {
	key := fold(location)
	if key == "" {
		return model.UnknownCountry
	}

	if country, ok := countryAliases[key]; ok {
		return country
	}
	if country, ok := cityCountries[key]; ok {
		return country
	}

	for _, alias := range aliasesByLength {
		if strings.Contains(key, alias) {
			return countryAliases[alias]
		}
	}
	return model.UnknownCountry
}

// fold lower-cases s with Unicode case folding, strips combining marks and
// collapses runs of white space.
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	folded := cases.Fold().String(stripped)
	return strings.Join(strings.Fields(folded), " ")
}
