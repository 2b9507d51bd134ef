package ast

// Family identifies which of the three node algebras a Kind belongs to.
type Family string

const (
	FamilyData    Family = "data"
	FamilyPattern Family = "pattern"
	FamilyRule    Family = "rule"
)

// Kind is the closed discriminant of a CAMP node.
// The zero value is KindInvalid and is never carried by a constructed node.
type Kind int

const (
	KindInvalid Kind = iota

	// Data
	KindDUnit
	KindDNat
	KindDBool
	KindDString
	KindDColl
	KindDRec
	KindDLeft
	KindDRight
	KindDBrand
	KindDTimeScale

	// Pattern
	KindPConst
	KindPUnop
	KindPBinop
	KindPMap
	KindPAssert
	KindPOrElse
	KindPIt
	KindPLetIt
	KindPGetConstant
	KindPEnv
	KindPLetEnv
	KindPLeft
	KindPRight

	// Rule
	KindRuleWhen
	KindRuleGlobal
	KindRuleNot
	KindRuleReturn
	KindRuleMatch

	kindCount
)

var kindTags = [...]string{
	KindInvalid: "invalid",

	KindDUnit:      "dunit",
	KindDNat:       "dnat",
	KindDBool:      "dbool",
	KindDString:    "dstring",
	KindDColl:      "dcoll",
	KindDRec:       "drec",
	KindDLeft:      "dleft",
	KindDRight:     "dright",
	KindDBrand:     "dbrand",
	KindDTimeScale: "dtime_scale",

	KindPConst:       "pconst",
	KindPUnop:        "punop",
	KindPBinop:       "pbinop",
	KindPMap:         "pmap",
	KindPAssert:      "passert",
	KindPOrElse:      "porElse",
	KindPIt:          "pit",
	KindPLetIt:       "pletIt",
	KindPGetConstant: "pgetConstant",
	KindPEnv:         "penv",
	KindPLetEnv:      "pletEnv",
	KindPLeft:        "pleft",
	KindPRight:       "pright",

	KindRuleWhen:   "rule_when",
	KindRuleGlobal: "rule_global",
	KindRuleNot:    "rule_not",
	KindRuleReturn: "rule_return",
	KindRuleMatch:  "rule_match",
}

// String returns the canonical tag of the kind.
func (k Kind) String() string {
	if !k.IsValid() {
		return kindTags[KindInvalid]
	}
	return kindTags[k]
}

// IsValid returns true if k is one of the enumerated kinds.
func (k Kind) IsValid() bool {
	return k > KindInvalid && k < kindCount
}

// Family returns the algebra the kind belongs to, or "" for an invalid kind.
func (k Kind) Family() Family {
	switch {
	case k >= KindDUnit && k <= KindDTimeScale:
		return FamilyData
	case k >= KindPConst && k <= KindPRight:
		return FamilyPattern
	case k >= KindRuleWhen && k <= KindRuleMatch:
		return FamilyRule
	default:
		return ""
	}
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, int(kindCount)-1)
	for k := KindInvalid + 1; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// KindOf returns the kind whose canonical tag is tag.
func KindOf(tag string) (Kind, bool) {
	for k := KindInvalid + 1; k < kindCount; k++ {
		if kindTags[k] == tag {
			return k, true
		}
	}
	return KindInvalid, false
}
