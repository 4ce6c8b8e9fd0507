//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package formats

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	goerrors "github.com/goliatone/go-errors"

	"clausemark.org/cm/ast"
	"clausemark.org/cm/codec"
	"clausemark.org/cm/encoder"
	"clausemark.org/cm/encoder/htmlenc"
	"clausemark.org/cm/encoder/mdenc"
	_ "clausemark.org/cm/encoder/textenc" // Allow to use text encoder.
	"clausemark.org/cm/jsontree"
	htmlparser "clausemark.org/cm/parser/html"
	"clausemark.org/cm/parser/markdown"
	"clausemark.org/cm/router"
	"clausemark.org/cm/schema"
	"clausemark.org/cm/slate"
	"clausemark.org/cm/transform"
)

// TextCodeInput marks an edge that got a value of the wrong format.
const TextCodeInput = "UNEXPECTED_INPUT"

func unexpected(in any, want string) error {
	return goerrors.New(fmt.Sprintf("expected %s, got %T", want, in), goerrors.CategoryBadInput).
		WithTextCode(TextCodeInput)
}

func source(in any) ([]byte, error) {
	switch v := in.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	}
	return nil, unexpected(in, "text")
}

func document(in any) (*ast.DocumentNode, error) {
	if dn, ok := in.(*ast.DocumentNode); ok && dn != nil {
		return dn, nil
	}
	return nil, unexpected(in, "document")
}

func validated(p *router.Params, dn *ast.DocumentNode) (any, error) {
	if _, err := schema.Validate(p.Registry(), dn); err != nil {
		return nil, err
	}
	return dn, nil
}

func readMarkdown(_ context.Context, in any, p *router.Params) (any, error) {
	src, err := source(in)
	if err != nil {
		return nil, err
	}
	dn, st, err := markdown.ParseState(src)
	if err != nil {
		return nil, err
	}
	p.Reader = st
	p.Logger.Trace().Int("blocks", len(dn.Nodes)).Int("references", len(st.References())).Msg("Markdown read")
	return dn, nil
}

func writeMarkdown(_ context.Context, in any, _ *router.Params) (any, error) {
	dn, err := document(in)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err = mdenc.Create().WriteDocument(&buf, dn); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decode(_ context.Context, in any, p *router.Params) (any, error) {
	dn, err := document(in)
	if err != nil {
		return nil, err
	}
	return codec.Decode(p.Registry(), dn, p.Reader)
}

func encode(_ context.Context, in any, p *router.Params) (any, error) {
	dn, err := document(in)
	if err != nil {
		return nil, err
	}
	return codec.Encode(p.Registry(), dn)
}

// prepare applies the output options of the conversion.
func prepare(dn *ast.DocumentNode, p *router.Params) *ast.DocumentNode {
	if p.Unquote {
		dn = ast.Rewrite(transform.Unquote{}, dn)
	}
	if p.RemoveFormatting {
		dn = ast.Rewrite(transform.RemoveFormatting{}, dn)
	}
	return dn
}

func writeHTML(_ context.Context, in any, p *router.Params) (any, error) {
	return writeWith(in, p, htmlenc.Create(&encoder.Environment{Lang: p.Lang}))
}

func writeText(_ context.Context, in any, p *router.Params) (any, error) {
	enc, err := encoder.Create(encoder.EncoderText, nil)
	if err != nil {
		return nil, err
	}
	return writeWith(in, p, enc)
}

func writeJSON(_ context.Context, in any, p *router.Params) (any, error) {
	enc, err := encoder.Create(encoder.EncoderJSON, nil)
	if err != nil {
		return nil, err
	}
	return writeWith(in, p, enc)
}

func writeWith(in any, p *router.Params, enc encoder.Encoder) (any, error) {
	dn, err := document(in)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err = enc.WriteDocument(&buf, prepare(dn, p)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func toSlate(_ context.Context, in any, p *router.Params) (any, error) {
	dn, err := document(in)
	if err != nil {
		return nil, err
	}
	return slate.FromDocument(prepare(dn, p)), nil
}

func fromSlate(_ context.Context, in any, p *router.Params) (any, error) {
	var v *slate.Value
	switch val := in.(type) {
	case *slate.Value:
		v = val
	case []byte:
		var err error
		if v, err = slate.Unmarshal(val); err != nil {
			return nil, err
		}
	default:
		return nil, unexpected(in, "editor value")
	}
	dn, err := slate.ToDocument(v)
	if err != nil {
		return nil, err
	}
	return validated(p, dn)
}

func readHTML(_ context.Context, in any, p *router.Params) (any, error) {
	src, err := source(in)
	if err != nil {
		return nil, err
	}
	dn, err := htmlparser.Parse(src)
	if err != nil {
		return nil, err
	}
	return validated(p, dn)
}

func readJSON(_ context.Context, in any, p *router.Params) (any, error) {
	src, err := source(in)
	if err != nil {
		return nil, err
	}
	return jsontree.Unmarshal(p.Registry(), src)
}

func rewriteWith(rules ast.Rules) router.EdgeFunc {
	return func(_ context.Context, in any, _ *router.Params) (any, error) {
		dn, err := document(in)
		if err != nil {
			return nil, err
		}
		return ast.Rewrite(rules, dn), nil
	}
}

var (
	unquote          = rewriteWith(transform.Unquote{})
	untype           = rewriteWith(transform.Untype{})
	removeFormatting = rewriteWith(transform.RemoveFormatting{})
)

func evaluate(_ context.Context, in any, p *router.Params) (any, error) {
	dn, err := document(in)
	if err != nil {
		return nil, err
	}
	return transform.Evaluate(dn, p.Env)
}

// identity passes a rewritten tree back as a contract tree.
func identity(_ context.Context, in any, _ *router.Params) (any, error) {
	if _, err := document(in); err != nil {
		return nil, err
	}
	return in, nil
}

// plainToMarkdown turns text into markdown. Blank lines separate paragraphs,
// all other line ends become soft breaks.
func plainToMarkdown(ctx context.Context, in any, p *router.Params) (any, error) {
	src, err := source(in)
	if err != nil {
		return nil, err
	}
	dn := &ast.DocumentNode{}
	var para []ast.Node
	flush := func() {
		if len(para) > 0 {
			dn.Nodes = append(dn.Nodes, ast.CreateParaNode(para...))
			para = nil
		}
	}
	text := strings.ReplaceAll(string(src), "\r\n", "\n")
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		if len(para) > 0 {
			para = append(para, &ast.SoftbreakNode{})
		}
		para = append(para, &ast.TextNode{Text: line})
	}
	flush()
	return writeMarkdown(ctx, dn, p)
}
