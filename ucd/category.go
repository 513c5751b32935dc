package ucd

import (
	"unicode"

	ud "github.com/go-text/typesetting/unicodedata"
)

// GeneralCategory is the Unicode General_Category of a code-point.
//
// Numbering follows the shaping literature (Cc first, Zs last), so bit-sets
// of categories may be formed with Flag.
type GeneralCategory uint8

const (
	Control             GeneralCategory = iota // Cc
	Format                                     // Cf
	Unassigned                                 // Cn
	PrivateUse                                 // Co
	Surrogate                                  // Cs
	LowercaseLetter                            // Ll
	ModifierLetter                             // Lm
	OtherLetter                                // Lo
	TitlecaseLetter                            // Lt
	UppercaseLetter                            // Lu
	SpacingMark                                // Mc
	EnclosingMark                              // Me
	NonSpacingMark                             // Mn
	DecimalNumber                              // Nd
	LetterNumber                               // Nl
	OtherNumber                                // No
	ConnectPunctuation                         // Pc
	DashPunctuation                            // Pd
	ClosePunctuation                           // Pe
	FinalPunctuation                           // Pf
	InitialPunctuation                         // Pi
	OtherPunctuation                           // Po
	OpenPunctuation                            // Ps
	CurrencySymbol                             // Sc
	ModifierSymbol                             // Sk
	MathSymbol                                 // Sm
	OtherSymbol                                // So
	LineSeparator                              // Zl
	ParagraphSeparator                         // Zp
	SpaceSeparator                             // Zs
)

var categoryNames = [...]string{
	"Cc", "Cf", "Cn", "Co", "Cs", "Ll", "Lm", "Lo", "Lt", "Lu",
	"Mc", "Me", "Mn", "Nd", "Nl", "No", "Pc", "Pd", "Pe", "Pf",
	"Pi", "Po", "Ps", "Sc", "Sk", "Sm", "So", "Zl", "Zp", "Zs",
}

func (gc GeneralCategory) String() string {
	if int(gc) < len(categoryNames) {
		return categoryNames[gc]
	}
	return "??"
}

// Flag returns a single-bit mask for a category.
func (gc GeneralCategory) Flag() uint32 {
	return 1 << gc
}

// IsMark reports whether gc is one of Mn, Mc or Me.
func (gc GeneralCategory) IsMark() bool {
	return gc.Flag()&(NonSpacingMark.Flag()|SpacingMark.Flag()|EnclosingMark.Flag()) != 0
}

// Category tables, ordered by frequency in Arabic and Syriac text.
var categoryTables = [...]struct {
	gc    GeneralCategory
	table *unicode.RangeTable
}{
	{NonSpacingMark, ud.Mn},
	{OtherLetter, ud.Lo},
	{SpacingMark, ud.Mc},
	{EnclosingMark, ud.Me},
	{Format, ud.Cf},
	{LowercaseLetter, ud.Ll},
	{UppercaseLetter, ud.Lu},
	{TitlecaseLetter, ud.Lt},
	{ModifierLetter, ud.Lm},
	{DecimalNumber, ud.Nd},
	{LetterNumber, ud.Nl},
	{OtherNumber, ud.No},
	{SpaceSeparator, ud.Zs},
	{LineSeparator, ud.Zl},
	{ParagraphSeparator, ud.Zp},
	{ConnectPunctuation, ud.Pc},
	{DashPunctuation, ud.Pd},
	{OpenPunctuation, ud.Ps},
	{ClosePunctuation, ud.Pe},
	{InitialPunctuation, ud.Pi},
	{FinalPunctuation, ud.Pf},
	{OtherPunctuation, ud.Po},
	{MathSymbol, ud.Sm},
	{CurrencySymbol, ud.Sc},
	{ModifierSymbol, ud.Sk},
	{OtherSymbol, ud.So},
	{Control, ud.Cc},
	{PrivateUse, ud.Co},
}

// LookupGeneralCategory returns the general category of r.
// Code-points not covered by any category table are Unassigned.
func LookupGeneralCategory(r rune) GeneralCategory {
	if r >= 0xD800 && r <= 0xDFFF {
		return Surrogate
	}
	for _, entry := range categoryTables {
		if unicode.Is(entry.table, r) {
			return entry.gc
		}
	}
	return Unassigned
}

// wordCategories are the categories counting as part of a word when
// looking for the extent of a stretched run.
// See https://github.com/harfbuzz/harfbuzz/commit/6e6f82b6f3dde0fc6c3c7d991d9ec6cfff57823d#commitcomment-14248516
const wordCategories = 1<<Unassigned |
	1<<PrivateUse |
	1<<ModifierLetter |
	1<<OtherLetter |
	1<<SpacingMark |
	1<<EnclosingMark |
	1<<NonSpacingMark |
	1<<DecimalNumber |
	1<<LetterNumber |
	1<<OtherNumber |
	1<<CurrencySymbol |
	1<<ModifierSymbol |
	1<<MathSymbol |
	1<<OtherSymbol

// IsWord reports whether a code-point of category gc is considered a word
// character. Cased letters are not part of the set.
func (gc GeneralCategory) IsWord() bool {
	return gc.Flag()&wordCategories != 0
}
