//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package jsontree reads and writes the wire shape of a tree: every node is
// a JSON object with a "type" discriminator and the attributes of its
// variant.
package jsontree

import (
	"encoding/json"
	"fmt"

	goerrors "github.com/goliatone/go-errors"

	"clausemark.org/cm/ast"
	"clausemark.org/cm/schema"
)

// TextCodeJSON marks input that is not JSON text.
const TextCodeJSON = "JSON_INVALID"

// Record is the wire shape of a single node.
type Record = map[string]any

// Marshal returns the JSON text of a tree.
func Marshal(n ast.Node) ([]byte, error) { return json.Marshal(ToRecord(n)) }

// MarshalIndent returns the indented JSON text of a tree.
func MarshalIndent(n ast.Node) ([]byte, error) { return json.MarshalIndent(ToRecord(n), "", "  ") }

// Unmarshal reads the JSON text of a document. The text is validated
// against the JSON schema of the wire shape, the resulting tree against the
// variant schema.
func Unmarshal(reg *schema.Registry, data []byte) (*ast.DocumentNode, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryBadInput, "read JSON tree").WithTextCode(TextCodeJSON)
	}
	return FromValue(reg, v)
}

// FromValue converts a decoded JSON value into a document.
func FromValue(reg *schema.Registry, v any) (*ast.DocumentNode, error) {
	if err := reg.ValidateWire(v); err != nil {
		return nil, err
	}
	rec, ok := v.(Record)
	if !ok {
		return nil, wireError("root is not a record")
	}
	n, err := FromRecord(rec)
	if err != nil {
		return nil, err
	}
	if _, err = schema.Validate(reg, n); err != nil {
		return nil, err
	}
	dn, isDoc := n.(*ast.DocumentNode)
	if !isDoc {
		return nil, wireError(fmt.Sprintf("root is a %v", n.Variant()))
	}
	return dn, nil
}

func wireError(msg string) error {
	return goerrors.New(msg, goerrors.CategoryValidation).WithTextCode(schema.TextCodeWire)
}

// ToRecord returns the wire shape of a node. Optional attributes with a zero
// value are left out.
func ToRecord(n ast.Node) Record {
	r := Record{schema.WireType: n.Variant().String()}
	setNodes := func(key string, ns []ast.Node) {
		if len(ns) > 0 {
			list := make([]any, len(ns))
			for i, child := range ns {
				list[i] = ToRecord(child)
			}
			r[key] = list
		}
	}
	setStr := func(key, value string) {
		if value != "" {
			r[key] = value
		}
	}
	setBool := func(key string, value bool) {
		if value {
			r[key] = true
		}
	}
	switch n := n.(type) {
	case *ast.DocumentNode:
		if len(n.Meta) > 0 {
			meta := make(map[string]any, len(n.Meta))
			for k, v := range n.Meta {
				meta[k] = v
			}
			r["meta"] = meta
		}
		setNodes("nodes", n.Nodes)
	case *ast.ParaNode:
		setNodes("nodes", n.Nodes)
	case *ast.HeadingNode:
		r["level"] = n.Level
		setNodes("nodes", n.Nodes)
	case *ast.ListNode:
		r["kind"] = n.Kind.String()
		if n.Start != 0 {
			r["start"] = n.Start
		}
		setBool("tight", n.Tight)
		setNodes("nodes", n.Nodes)
	case *ast.ItemNode:
		setNodes("nodes", n.Nodes)
	case *ast.BlockQuoteNode:
		setNodes("nodes", n.Nodes)
	case *ast.CodeBlockNode:
		setStr("info", n.Info)
		r["text"] = n.Text
	case *ast.HTMLBlockNode:
		r["text"] = n.Text
	case *ast.ThematicBreakNode, *ast.SoftbreakNode, *ast.LinebreakNode:
	case *ast.ClauseNode:
		r["name"] = n.Name
		setStr("src", n.Src)
		setNodes("nodes", n.Nodes)
	case *ast.ListBlockNode:
		r["name"] = n.Name
		r["kind"] = n.Kind.String()
		if n.Start != 0 {
			r["start"] = n.Start
		}
		setBool("tight", n.Tight)
		setNodes("nodes", n.Nodes)
	case *ast.TextNode:
		r["text"] = n.Text
	case *ast.CodeNode:
		r["text"] = n.Text
	case *ast.HTMLInlineNode:
		r["text"] = n.Text
	case *ast.EmphNode:
		setNodes("nodes", n.Nodes)
	case *ast.StrongNode:
		setNodes("nodes", n.Nodes)
	case *ast.LinkNode:
		r["destination"] = n.Destination
		setStr("title", n.Title)
		setNodes("nodes", n.Nodes)
	case *ast.ImageNode:
		r["destination"] = n.Destination
		setStr("title", n.Title)
		setNodes("nodes", n.Nodes)
	case *ast.VariableNode:
		r["name"], r["value"] = n.Name, n.Value
		setStr("elementType", n.ElementType)
	case *ast.FormattedVariableNode:
		r["name"], r["value"], r["format"] = n.Name, n.Value, n.Format
		setStr("elementType", n.ElementType)
	case *ast.EnumVariableNode:
		r["name"], r["value"] = n.Name, n.Value
		setStr("elementType", n.ElementType)
		r["enumValues"] = append([]string(nil), n.EnumValues...)
	case *ast.ConditionalNode:
		r["name"] = n.Name
		setBool("isTrue", n.IsTrue)
		setNodes("nodes", n.Nodes)
		setNodes("whenTrue", n.WhenTrue)
		setNodes("whenFalse", n.WhenFalse)
	case *ast.OptionalNode:
		r["name"] = n.Name
		setBool("hasSome", n.HasSome)
		setNodes("nodes", n.Nodes)
		setNodes("whenSome", n.WhenSome)
		setNodes("whenNone", n.WhenNone)
	case *ast.FormulaNode:
		r["name"], r["value"] = n.Name, n.Value
		setStr("code", n.Code)
	}
	return r
}
