package knuthplass

import "strings"

// AbbreviationDictionary supplies known abbreviations to the tokenizer's
// sentence-end glue rule, so that "Dr." or "Mrs." doesn't
// trigger the wider sentence-ending space the way a true sentence
// terminator does.
type AbbreviationDictionary struct {
	abbreviations map[string]bool
}

// NewEnglishAbbreviations returns a dictionary of common English
// abbreviations.
func NewEnglishAbbreviations() *AbbreviationDictionary {
	return &AbbreviationDictionary{abbreviations: defaultEnglishAbbreviations()}
}

func defaultEnglishAbbreviations() map[string]bool {
	return map[string]bool{
		"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
		"rev": true, "hon": true, "st": true,

		"phd": true, "md": true, "ba": true, "ma": true, "bsc": true, "msc": true,

		"jan": true, "feb": true, "mar": true, "apr": true, "jun": true,
		"jul": true, "aug": true, "sep": true, "sept": true, "oct": true,
		"nov": true, "dec": true,

		"mon": true, "tue": true, "wed": true, "thu": true, "fri": true,
		"sat": true, "sun": true,

		"inc": true, "ltd": true, "corp": true, "co": true,

		"etc": true, "eg": true, "ie": true, "vs": true, "approx": true,
		"no": true, "vol": true, "fig": true, "ch": true, "pp": true,
	}
}

// IsAbbreviation reports whether word (case-insensitively, and with any
// single trailing period stripped) is a known abbreviation.
func (d *AbbreviationDictionary) IsAbbreviation(word string) bool {
	if d == nil || len(d.abbreviations) == 0 {
		return false
	}
	w := strings.TrimSuffix(word, ".")
	return d.abbreviations[strings.ToLower(w)]
}

// AddAbbreviation registers an additional abbreviation (without its
// trailing period).
func (d *AbbreviationDictionary) AddAbbreviation(word string) {
	if d.abbreviations == nil {
		d.abbreviations = make(map[string]bool)
	}
	d.abbreviations[strings.ToLower(word)] = true
}
