package ucd

import (
	"github.com/go-text/typesetting/unicodedata"
)

// JoiningType is the Arabic joining class of a code-point, as consumed by
// the joining state machine. The first six values double as column indices
// into the state table.
type JoiningType uint8

const (
	JoiningU               JoiningType = iota // non-joining
	JoiningL                                  // left-joining
	JoiningR                                  // right-joining
	JoiningD                                  // dual-joining; join-causing C folds into it
	JoiningGroupAlaph                         // Syriac Alaph
	JoiningGroupDalathRish                    // Syriac Dalath and Rish
	JoiningT                                  // transparent
	JoiningX                                  // not listed, decide by general category
)

// NumJoiningColumns is the number of joining types that drive the state machine.
const NumJoiningColumns = int(JoiningGroupDalathRish) + 1

func (jt JoiningType) String() string {
	switch jt {
	case JoiningU:
		return "U"
	case JoiningL:
		return "L"
	case JoiningR:
		return "R"
	case JoiningD:
		return "D"
	case JoiningGroupAlaph:
		return "Alaph"
	case JoiningGroupDalathRish:
		return "DalathRish"
	case JoiningT:
		return "T"
	case JoiningX:
		return "X"
	}
	return "?"
}

// LookupJoiningType returns the joining type of r as listed in
// ArabicShaping.txt. Code-points not listed there yield JoiningX.
func LookupJoiningType(r rune) JoiningType {
	jt, ok := arabicJoinings[r]
	if !ok {
		return JoiningX
	}
	switch jt {
	case unicodedata.U:
		return JoiningU
	case unicodedata.L:
		return JoiningL
	case unicodedata.R:
		return JoiningR
	case unicodedata.D, unicodedata.C:
		return JoiningD
	case unicodedata.Alaph:
		return JoiningGroupAlaph
	case unicodedata.DalathRish:
		return JoiningGroupDalathRish
	case unicodedata.T:
		return JoiningT
	}
	return JoiningX
}
