//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/goccy/go-yaml"
	goerrors "github.com/goliatone/go-errors"

	"clausemark.org/cm/ast"
)

// TextCodeFrontMatter marks errors in the YAML front matter of a document.
const TextCodeFrontMatter = "FRONT_MATTER"

var yamlFormat = frontmatter.NewFormat("---", "---", func(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
})

// parseFrontMatter splits the source into metadata and markdown body.
// Scalar values are stored as text, lists and maps in YAML flow style.
func parseFrontMatter(src []byte) (ast.Meta, []byte, error) {
	var raw map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(src), &raw, yamlFormat)
	if err != nil {
		return nil, nil, goerrors.Wrap(err, goerrors.CategoryBadInput, "parse front matter").
			WithTextCode(TextCodeFrontMatter)
	}
	if len(raw) == 0 {
		return nil, body, nil
	}
	meta := make(ast.Meta, len(raw))
	for key, val := range raw {
		meta[key] = metaValue(val)
	}
	return meta, body, nil
}

func metaValue(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []any, map[string]any:
		b, err := yaml.MarshalWithOptions(v, yaml.Flow(true))
		if err != nil {
			return fmt.Sprint(v)
		}
		return strings.TrimSpace(string(b))
	}
	return fmt.Sprint(val)
}
