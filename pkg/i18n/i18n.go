// Package i18n selects a display string out of the per-language columns
// carried by menu records. Names match the requested language exactly;
// descriptions fall back to English when the requested column is empty.
package i18n

// Supported language codes.
const (
	LangTR = "tr"
	LangEN = "en"
	LangAR = "ar"
)

// Text holds the three parallel language fields of a record.
type Text struct {
	TR string
	EN string
	AR string
}

// Name returns the field matching lang with no fallback; an empty field stays
// empty. Unrecognized codes resolve to English.
func Name(t Text, lang string) string {
	switch lang {
	case LangTR:
		return t.TR
	case LangEN:
		return t.EN
	case LangAR:
		return t.AR
	default:
		return t.EN
	}
}

// Description returns the field matching lang, falling back to English when
// it is empty. Unrecognized codes resolve to English.
func Description(t Text, lang string) string {
	switch lang {
	case LangTR:
		if t.TR != "" {
			return t.TR
		}
		return t.EN
	case LangAR:
		if t.AR != "" {
			return t.AR
		}
		return t.EN
	default:
		return t.EN
	}
}
