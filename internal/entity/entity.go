// Package entity holds the immutable entity tables and the numeric
// character-reference parser backing the root htmlsafe transforms.
package entity

// named maps entity names (without '&' or ';') to their Unicode scalar.
// The map is built once at init and never mutated, so concurrent readers
// need no locking.
//
// Membership is the five reserved-character entities plus a curated set
// of currency, typography, and arrow entities. The list is extensible;
// nothing outside Unescape depends on its exact contents.
var named = map[string]rune{
	// Reserved characters, including the decode-only apos synonym.
	"amp":  '&',
	"lt":   '<',
	"gt":   '>',
	"quot": '"',
	"apos": '\'',

	// Currency.
	"cent":   '¢',
	"pound":  '£',
	"curren": '¤',
	"yen":    '¥',
	"euro":   '€',

	// Typography.
	"nbsp":   ' ',
	"sect":   '§',
	"copy":   '©',
	"laquo":  '«',
	"reg":    '®',
	"deg":    '°',
	"plusmn": '±',
	"sup2":   '²',
	"sup3":   '³',
	"micro":  'µ',
	"para":   '¶',
	"middot": '·',
	"raquo":  '»',
	"frac14": '¼',
	"frac12": '½',
	"frac34": '¾',
	"times":  '×',
	"divide": '÷',
	"ndash":  '–',
	"mdash":  '—',
	"lsquo":  '‘',
	"rsquo":  '’',
	"ldquo":  '“',
	"rdquo":  '”',
	"dagger": '†',
	"Dagger": '‡',
	"bull":   '•',
	"hellip": '…',
	"permil": '‰',
	"prime":  '′',
	"Prime":  '″',
	"trade":  '™',

	// Arrows.
	"larr": '←',
	"uarr": '↑',
	"rarr": '→',
	"darr": '↓',
	"harr": '↔',
}

// Named returns the scalar for an entity name. Matching is exact and
// case-sensitive; the name carries neither the leading '&' nor the ';'.
func Named(name string) (rune, bool) {
	r, ok := named[name]
	return r, ok
}
