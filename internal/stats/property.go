// Copyright (c) 2024 Michael D Henderson. All rights reserved.

package stats

import "fmt"

// Property is one of the four counter families from "Statistics".
type Property int

const (
	Learn Property = iota
	Block
	In
	Out
	numProperties
)

func (p Property) String() string {
	switch p {
	case Learn:
		return "Learn"
	case Block:
		return "Block"
	case In:
		return "In"
	case Out:
		return "Out"
	default:
		return fmt.Sprintf("Property(%d)", int(p))
	}
}

// ValueType distinguishes a directly-observed ("Base") counter from one
// propagated from the opposite side at end-of-utterance ("Derived").
type ValueType int

const (
	BaseValue ValueType = iota
	DerivedValue
	numValueTypes
)

func (t ValueType) String() string {
	if t == BaseValue {
		return "Base"
	}
	return "Derived"
}

// code maps a dense (type, property) pair to an index into Row's scalar
// vector, following "Property encoding":
//
//	code = type * N_props + property
func code(t ValueType, p Property) int {
	return int(t)*int(numProperties) + int(p)
}

const numCodes = int(numValueTypes) * int(numProperties)
