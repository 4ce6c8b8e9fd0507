//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package strfun_test

import (
	"testing"

	"clausemark.org/cm/strfun"
)

func TestSlugify(t *testing.T) {
	t.Parallel()
	tests := []struct{ in, exp string }{
		{"simple test", "simple-test"},
		{"I'm a go developer", "i-m-a-go-developer"},
		{"-!->simple   test<-!-", "simple-test"},
		{"äöüÄÖÜß", "aouaouß"},
		{"\"aèf", "aef"},
		{"a#b", "a-b"},
		{"*", ""},
	}
	for _, test := range tests {
		if got := strfun.Slugify(test.in); got != test.exp {
			t.Errorf("%q: %q != %q", test.in, got, test.exp)
		}
	}
}

func TestUniqueSlug(t *testing.T) {
	t.Parallel()
	used := strfun.NewSet()
	for _, tc := range []struct{ in, exp string }{
		{"Terms", "terms"},
		{"terms", "terms-1"},
		{"Terms!", "terms-2"},
		{"***", "h"},
		{"", "h-1"},
	} {
		if got := strfun.UniqueSlug(tc.in, "h", used); got != tc.exp {
			t.Errorf("%q: %q != %q", tc.in, got, tc.exp)
		}
	}
}
