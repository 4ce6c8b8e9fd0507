//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package ast

// CreateParaNode creates a paragraph of the given inline nodes.
func CreateParaNode(nodes ...Node) *ParaNode { return &ParaNode{Nodes: nodes} }

// CreateDocument creates a document without metadata.
func CreateDocument(nodes ...Node) *DocumentNode { return &DocumentNode{Nodes: nodes} }

// CreateTextSlice returns a slice with one text node, or nil for an empty string.
func CreateTextSlice(s string) []Node {
	if s == "" {
		return nil
	}
	return []Node{&TextNode{Text: s}}
}

// MergeText joins adjacent text nodes of a sequence.
func MergeText(ns []Node) []Node {
	var result []Node
	for _, n := range ns {
		if tn, ok := n.(*TextNode); ok {
			if tn.Text == "" {
				continue
			}
			if last := len(result) - 1; last >= 0 {
				if prev, ok2 := result[last].(*TextNode); ok2 {
					result[last] = &TextNode{Text: prev.Text + tn.Text}
					continue
				}
			}
		}
		result = append(result, n)
	}
	return result
}
