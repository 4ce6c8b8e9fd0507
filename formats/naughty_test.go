//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package formats_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"clausemark.org/cm/formats"
)

// Test all formats with a list of "naughty strings", i.e. unusual strings
// that often crash software.
var naughtyStrings = []string{
	"undefined", "null", "NaN", "-1E+02", "0xffffffff", "1/0",
	"   \ufeff", "Ω≈ç√∫˜µ≤≥÷", "田中さんにあげて下さい", "👾 🙇 💁 🙅",
	"<script>alert(123)</script>", "&lt;script&gt;alert(&#39;123&#39;);&lt;/script&gt;",
	"\"><img src=x onerror=alert(1)>", "[a](javascript:alert(1))", "`` ` ``", "***", "---",
	"```clause src=\"\" name=\"x\"\n```", "```list name=\"l\"\n- a\n```", "```clause name=\"%zz\"\n```",
	"<variable name=\"%\" value=\"%22\"/>", "<if name=\"c\" value=\"a\" whenTrue=\"a\" whenFalse=\"b\"/>",
	"<formula name=\"f\" value=\"1\"/> <variable/>", "<variable name=\"e\" value=\"a\" enumValues=\"%5B%5D\"/>",
	"\\", "\\\\\n\\", "1. a\n   2) b", "> > > >", "# \n#", "[x]: <>\n[x]", "a  \nb\\\nc",
}

func TestNaughtyStrings(t *testing.T) {
	t.Parallel()
	r := newRegistry(t)
	ctx := context.Background()
	targets := []string{
		formats.ContractMark, formats.HTML, formats.Slate, formats.PlainText, formats.JSON,
		formats.Unquoted, formats.Untyped, formats.Unformatted, formats.Evaluated,
	}
	for _, s := range naughtyStrings {
		tree, err := r.Transform(ctx, []byte(s), formats.Markdown, []string{formats.ContractMark}, nil)
		if err != nil {
			// A naughty string may be a broken document, but must not break the router.
			continue
		}
		for _, target := range targets {
			if _, err = r.Transform(ctx, tree, formats.ContractMark, []string{target}, nil); err != nil {
				t.Errorf("%q -> %s: %v", s, target, err)
			}
		}
		md, err := r.Transform(ctx, tree, formats.ContractMark, []string{formats.Markdown}, nil)
		if err != nil {
			t.Errorf("%q -> markdown: %v", s, err)
			continue
		}
		again, err := r.Transform(ctx, md, formats.Markdown, []string{formats.ContractMark}, nil)
		if err != nil {
			t.Errorf("%q printed as %q: %v", s, md, err)
			continue
		}
		if diff := cmp.Diff(tree, again, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%q printed as %q (-first +second)\n%s", s, md, diff)
		}
	}
}
