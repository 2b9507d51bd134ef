// Package data provides the literal value algebra of CAMP.
//
// Data is a closed sum type: the only implementations are the variants in this
// package (Unit, Nat, Bool, String, Coll, Rec, Left, Right, Brand, TimeScale).
// Every variant is immutable after construction.
//
// Booleans are plain values here; the factory package interns the two
// canonical instances. Two Bool nodes with the same truth value are
// interchangeable under ast.Equal whether or not they were interned.
package data
