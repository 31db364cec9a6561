// Package geo infers a country name from a free-form profile location.
//
// Inference never fails: anything that cannot be matched yields
// model.UnknownCountry. Matching is case-insensitive and ignores
// diacritics, so "São Paulo" and "sao paulo" are the same place.
package geo
