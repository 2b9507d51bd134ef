// Package camp ties together the CAMP node families: ast (shared protocol),
// data, pattern, and rule, plus the factory producers build trees with.
package camp

import (
	"qcert/camp/pkg/camp/ast"
	"qcert/camp/pkg/camp/pattern"
)

// Description summarizes a node for display.
type Description struct {
	Kind   string `json:"kind"`
	Family string `json:"family"`
	Render string `json:"render"`
	Nodes  int    `json:"nodes"`
}

// String returns the rendering.
func (d Description) String() string {
	return d.Render
}

// Describe returns the kind, family, canonical rendering, and size of the
// tree rooted at n.
func Describe(n ast.Node) Description {
	return Description{
		Kind:   n.Tag(),
		Family: string(n.Kind().Family()),
		Render: n.String(),
		Nodes:  ast.Count(n),
	}
}

// CheckOperators verifies the operator tables the pattern algebra validates
// against. A non-nil result means the tables are corrupted.
func CheckOperators() error {
	return pattern.CheckUnaryOperators()
}
