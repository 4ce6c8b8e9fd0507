//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

// Package slate converts between the abstract syntax tree and the value of
// a Slate rich-text editor.
//
// Emphasis, strong emphasis and code spans become marks of text leaves.
// Leaf inlines, like variables and breaks, carry their marks themselves.
// Marks of links and conditionals are pushed into their children.
package slate

import (
	"encoding/json"

	goerrors "github.com/goliatone/go-errors"
)

// Object kinds.
const (
	ObjectValue    = "value"
	ObjectDocument = "document"
	ObjectBlock    = "block"
	ObjectInline   = "inline"
	ObjectText     = "text"
	ObjectMark     = "mark"
)

// Block types.
const (
	TypeParagraph     = "paragraph"
	TypeBlockQuote    = "block_quote"
	TypeBulletList    = "ul_list"
	TypeOrderedList   = "ol_list"
	TypeListItem      = "list_item"
	TypeCodeBlock     = "code_block"
	TypeHTMLBlock     = "html_block"
	TypeThematicBreak = "horizontal_rule"
	TypeClause        = "clause"
	TypeListBlock     = "list_block"
)

// Inline types.
const (
	TypeLink       = "link"
	TypeImage      = "image"
	TypeHTMLInline = "html_inline"
	TypeSoftbreak  = "softbreak"
	TypeLinebreak  = "linebreak"
	TypeVariable   = "variable"
	TypeFormula    = "formula"
	TypeCond       = "conditional"
	TypeOptional   = "optional"
)

// Mark types.
const (
	MarkBold   = "bold"
	MarkItalic = "italic"
	MarkCode   = "code"
)

var headingTypes = []string{"heading_one", "heading_two", "heading_three", "heading_four", "heading_five", "heading_six"}

// TextCodeSlate marks a Slate value that cannot be converted.
const TextCodeSlate = "SLATE_INVALID"

// Value is the top-level editor value.
type Value struct {
	Object   string `json:"object"`
	Document *Node  `json:"document"`
}

// Node is a document, block, inline or text node of the editor value.
type Node struct {
	Object string         `json:"object"`
	Type   string         `json:"type,omitempty"`
	Data   map[string]any `json:"data,omitempty"`
	Nodes  []*Node        `json:"nodes,omitempty"`
	Text   string         `json:"text,omitempty"`
	Marks  []Mark         `json:"marks,omitempty"`
}

// Mark is a formatting mark.
type Mark struct {
	Object string `json:"object"`
	Type   string `json:"type"`
}

// Marshal returns the JSON text of the value.
func Marshal(v *Value) ([]byte, error) { return json.Marshal(v) }

// Unmarshal reads the JSON text of a value.
func Unmarshal(data []byte) (*Value, error) {
	var v Value
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryBadInput, "read slate value").WithTextCode(TextCodeSlate)
	}
	if v.Object != ObjectValue || v.Document == nil || v.Document.Object != ObjectDocument {
		return nil, invalid("not a slate value", nil)
	}
	return &v, nil
}

func invalid(msg string, n *Node) error {
	err := goerrors.New(msg, goerrors.CategoryBadInput).WithTextCode(TextCodeSlate)
	if n != nil {
		err = err.WithMetadata(map[string]any{"object": n.Object, "type": n.Type})
	}
	return err
}

func (n *Node) str(key string) string {
	if s, ok := n.Data[key].(string); ok {
		return s
	}
	return ""
}

func (n *Node) has(key string) bool {
	_, ok := n.Data[key]
	return ok
}

func (n *Node) boolean(key string) bool {
	b, ok := n.Data[key].(bool)
	return ok && b
}

func (n *Node) integer(key string) int {
	switch v := n.Data[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return 0
}

func (n *Node) stringList(key string) []string {
	switch v := n.Data[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		result := make([]string, 0, len(v))
		for _, elem := range v {
			if s, ok := elem.(string); ok {
				result = append(result, s)
			}
		}
		return result
	}
	return nil
}
