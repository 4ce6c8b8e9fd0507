//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package schema

import (
	"fmt"
	"strconv"

	"clausemark.org/cm/ast"
)

// Validate checks that every node of the tree matches the schema of its
// variant and occurs at an allowed place. It returns the node itself, or a
// SchemaError describing the first violation in document order.
func Validate(reg *Registry, n ast.Node) (ast.Node, error) {
	if n == nil {
		return nil, newPlacementError("", 0, "missing node")
	}
	if err := reg.check(n, "", 0, true); err != nil {
		return nil, err
	}
	return n, nil
}

func (reg *Registry) check(n ast.Node, path string, expect Level, top bool) error {
	v := n.Variant()
	spec, ok := reg.specs[v]
	if !ok {
		return newPlacementError(path, v, fmt.Sprintf("unknown variant %d", v))
	}
	switch {
	case spec.Level == LevelRoot && !top:
		return newPlacementError(path, v, "a Document must be the tree root")
	case !top && spec.Level != expect:
		return newPlacementError(path, v, fmt.Sprintf("a %v node is not allowed in a %v sequence", v, expect))
	}
	if spec.rules != nil {
		if err := spec.rules(n); err != nil {
			return newAttrError(path, v, err)
		}
	}
	for _, seq := range Sequences(n) {
		for i, child := range seq.Nodes {
			childPath := path + "/" + seq.Name + "/" + strconv.Itoa(i)
			if child == nil {
				return newPlacementError(childPath, 0, "missing node")
			}
			if err := reg.check(child, childPath, spec.Children, false); err != nil {
				return err
			}
		}
	}
	return nil
}

// Sequence is a named child sequence of a node.
type Sequence struct {
	Name  string
	Nodes []ast.Node
}

// Sequences returns all child sequences of a node, using the attribute names
// of the wire shape. Conditional and Optional nodes have three of them.
func Sequences(n ast.Node) []Sequence {
	switch n := n.(type) {
	case *ast.ConditionalNode:
		return []Sequence{{"nodes", n.Nodes}, {"whenTrue", n.WhenTrue}, {"whenFalse", n.WhenFalse}}
	case *ast.OptionalNode:
		return []Sequence{{"nodes", n.Nodes}, {"whenSome", n.WhenSome}, {"whenNone", n.WhenNone}}
	}
	if children := ast.Children(n); children != nil {
		return []Sequence{{"nodes", children}}
	}
	return nil
}
