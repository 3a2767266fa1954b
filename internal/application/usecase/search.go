package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// searchNormalizer descompone (NFD), elimina marcas diacríticas y recompone (NFC),
// para que "Café" y "cafe" se consideren equivalentes en la búsqueda.
var searchNormalizer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeForSearch normaliza un texto para comparación: sin tildes y en minúsculas.
func normalizeForSearch(s string) string {
	folded, _, err := transform.String(searchNormalizer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}

// matchesTerm búsqueda por substring, insensible a mayúsculas y tildes, sobre
// cualquiera de los campos. El filtro corre en memoria sobre la lista ya traída
// del store, nunca como query del lado del store.
func matchesTerm(term string, fields ...string) bool {
	t := normalizeForSearch(strings.TrimSpace(term))
	if t == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(normalizeForSearch(f), t) {
			return true
		}
	}
	return false
}
