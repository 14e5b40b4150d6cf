package normalization

// Normalizer of pathname strings. Implementations convert a pathname
// string to a normalized form, such as one where empty and "."
// components have been removed.
//
// Normalization never fails. Pathname strings that contain
// unterminated quotes or trailing backslashes are normalized as well.
type Normalizer interface {
	Normalize(raw string) string
}
