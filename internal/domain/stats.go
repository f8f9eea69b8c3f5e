package domain

// StatType names one of the five primary attributes.
type StatType string

const (
	StatSTR StatType = "str"
	StatAGI StatType = "agi"
	StatVIT StatType = "vit"
	StatINT StatType = "int"
	StatLUK StatType = "luk"
)

// AllStats lists the attributes in display order
var AllStats = []StatType{StatSTR, StatAGI, StatVIT, StatINT, StatLUK}

// IsValid reports whether t is a known attribute
func (t StatType) IsValid() bool {
	switch t {
	case StatSTR, StatAGI, StatVIT, StatINT, StatLUK:
		return true
	}
	return false
}

// Stats is a full attribute block. Values are never negative.
type Stats struct {
	STR int `json:"str"`
	AGI int `json:"agi"`
	VIT int `json:"vit"`
	INT int `json:"int"`
	LUK int `json:"luk"`
}

// Get returns the value of a single attribute
func (s Stats) Get(t StatType) int {
	switch t {
	case StatSTR:
		return s.STR
	case StatAGI:
		return s.AGI
	case StatVIT:
		return s.VIT
	case StatINT:
		return s.INT
	case StatLUK:
		return s.LUK
	}
	return 0
}

// With returns a copy of s with delta added to attribute t
func (s Stats) With(t StatType, delta int) Stats {
	switch t {
	case StatSTR:
		s.STR += delta
	case StatAGI:
		s.AGI += delta
	case StatVIT:
		s.VIT += delta
	case StatINT:
		s.INT += delta
	case StatLUK:
		s.LUK += delta
	}
	return s
}

// Plus returns s with every bonus in b applied
func (s Stats) Plus(b StatBonus) Stats {
	for t, v := range b {
		s = s.With(t, v)
	}
	return s
}

// StatBonus is a partial attribute map carried by items and requirements.
type StatBonus map[StatType]int

// Clone returns an independent copy
func (b StatBonus) Clone() StatBonus {
	if b == nil {
		return nil
	}
	out := make(StatBonus, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}
