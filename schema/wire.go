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
	"bytes"
	"encoding/json"
	"strings"

	goerrors "github.com/goliatone/go-errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// WireType is the name of the discriminator field of a wire record.
const WireType = "type"

const wireResource = "clausemark-node.json"

// WireSchema returns the JSON schema of the node wire shape.
func (reg *Registry) WireSchema() []byte { return reg.wireJSON }

// ValidateWire checks a decoded JSON value (as produced by encoding/json
// into an any) against the JSON schema of the wire shape.
func (reg *Registry) ValidateWire(v any) error {
	err := reg.wire.Validate(v)
	if err == nil {
		return nil
	}
	var fieldErrors goerrors.ValidationErrors
	var ve *jsonschema.ValidationError
	if goerrors.As(err, &ve) {
		fieldErrors = collectIssues(ve, fieldErrors)
	}
	return goerrors.NewValidation("invalid wire record", fieldErrors...).WithTextCode(TextCodeWire)
}

func collectIssues(ve *jsonschema.ValidationError, result goerrors.ValidationErrors) goerrors.ValidationErrors {
	if len(ve.Causes) == 0 {
		loc := strings.TrimSpace(ve.InstanceLocation)
		if loc == "" {
			loc = "/"
		}
		return append(result, goerrors.FieldError{Field: loc, Message: strings.TrimSpace(ve.Message)})
	}
	for _, cause := range ve.Causes {
		result = collectIssues(cause, result)
	}
	return result
}

func (reg *Registry) compileWire() error {
	encoded, err := json.Marshal(reg.wireDocument())
	if err != nil {
		return err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err = compiler.AddResource(wireResource, bytes.NewReader(encoded)); err != nil {
		return err
	}
	compiled, err := compiler.Compile(wireResource)
	if err != nil {
		return err
	}
	reg.wireJSON = encoded
	reg.wire = compiled
	return nil
}

func defRef(name string) map[string]any { return map[string]any{"$ref": "#/$defs/" + name} }

func (reg *Registry) wireDocument() map[string]any {
	defs := make(map[string]any, len(reg.order)+3)
	for _, level := range []Level{LevelBlock, LevelInline, LevelItem} {
		var names []string
		var cases []any
		for _, spec := range reg.order {
			if spec.Level != level {
				continue
			}
			name := spec.Variant.String()
			names = append(names, name)
			cases = append(cases, map[string]any{
				"if": map[string]any{
					"properties": map[string]any{WireType: map[string]any{"const": name}},
				},
				"then": defRef(name),
			})
		}
		defs[level.String()] = map[string]any{
			"type":       "object",
			"required":   []string{WireType},
			"properties": map[string]any{WireType: map[string]any{"enum": names}},
			"allOf":      cases,
		}
	}
	for _, spec := range reg.order {
		defs[spec.Variant.String()] = spec.wireDef()
	}
	return map[string]any{
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"$ref":    "#/$defs/" + rootDef,
		"$defs":   defs,
	}
}

// rootDef is the definition name of the root record.
const rootDef = "Document"

func (spec *Spec) wireDef() map[string]any {
	props := map[string]any{WireType: map[string]any{"const": spec.Variant.String()}}
	required := []string{WireType}
	for _, attr := range spec.Attrs {
		var prop map[string]any
		switch attr.Kind {
		case KindString:
			prop = map[string]any{"type": "string"}
			if len(attr.Enum) > 0 {
				prop["enum"] = attr.Enum
			}
		case KindInt:
			prop = map[string]any{"type": "integer"}
		case KindBool:
			prop = map[string]any{"type": "boolean"}
		case KindStrings:
			prop = map[string]any{"type": "array", "items": map[string]any{"type": "string"}, "minItems": 1}
		case KindMeta:
			prop = map[string]any{"type": "object", "additionalProperties": map[string]any{"type": "string"}}
		case KindNodes:
			prop = map[string]any{"type": "array", "items": defRef(spec.Children.String())}
		}
		props[attr.Name] = prop
		if attr.Required {
			required = append(required, attr.Name)
		}
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}
