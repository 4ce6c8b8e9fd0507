//-----------------------------------------------------------------------------
// Copyright (c) 2022 The Clausemark Authors
//
// This file is part of Clausemark.
//
// Clausemark is licensed under the latest version of the EUPL (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//-----------------------------------------------------------------------------

package transform

import (
	"fmt"
	"strconv"

	"github.com/expr-lang/expr"
	goerrors "github.com/goliatone/go-errors"

	"clausemark.org/cm/ast"
)

// TextCodeFormula marks a formula whose code could not be evaluated.
const TextCodeFormula = "FORMULA_FAILED"

// EvaluateFormulas computes the value of every formula that carries code.
// If Err is not nil, the first failure is stored there and stops further
// evaluation. Otherwise a failing formula keeps its value.
type EvaluateFormulas struct {
	ast.Rebuild
	Env map[string]any
	Err *error
}

// Formula gets the value of its code.
func (ef EvaluateFormulas) Formula(_ *ast.Rewriter, fn *ast.FormulaNode) []ast.Node {
	result := *fn
	if fn.Code == "" || (ef.Err != nil && *ef.Err != nil) {
		return []ast.Node{&result}
	}
	value, err := evalCode(fn.Code, ef.Env)
	if err != nil {
		if ef.Err == nil {
			return []ast.Node{&result}
		}
		*ef.Err = goerrors.Wrap(err, goerrors.CategoryExternal, fmt.Sprintf("evaluate formula %q", fn.Name)).
			WithTextCode(TextCodeFormula).
			WithMetadata(map[string]any{"formula": fn.Name, "code": fn.Code})
		return []ast.Node{&result}
	}
	result.Value = value
	return []ast.Node{&result}
}

func evalCode(code string, env map[string]any) (string, error) {
	program, err := expr.Compile(code, expr.Env(env))
	if err != nil {
		return "", err
	}
	val, err := expr.Run(program, env)
	if err != nil {
		return "", err
	}
	return fmt.Sprint(val), nil
}

// Evaluate computes all formulas of a document. The environment holds the
// values of the document variables, overridden by the given values.
func Evaluate(dn *ast.DocumentNode, env map[string]any) (*ast.DocumentNode, error) {
	full := VariableEnv(dn)
	for k, v := range env {
		full[k] = v
	}
	var err error
	result := ast.Rewrite(EvaluateFormulas{Env: full, Err: &err}, dn)
	if err != nil {
		return nil, err
	}
	return result, nil
}

// VariableEnv returns the values of all variables of a tree, keyed by name.
// Numbers and booleans are converted, String typed values are unquoted.
func VariableEnv(n ast.Node) map[string]any {
	v := envCollector{env: map[string]any{}}
	ast.Walk(&v, n)
	return v.env
}

type envCollector struct{ env map[string]any }

func (v *envCollector) Visit(node ast.Node) ast.WalkVisitor {
	switch n := node.(type) {
	case *ast.VariableNode:
		v.env[n.Name] = envValue(n.ElementType, n.Value)
	case *ast.FormattedVariableNode:
		v.env[n.Name] = envValue(n.ElementType, n.Value)
	case *ast.EnumVariableNode:
		v.env[n.Name] = envValue(n.ElementType, n.Value)
	case *ast.FormulaNode:
		if n.Value != "" {
			v.env[n.Name] = envValue("", n.Value)
		}
	case *ast.ConditionalNode:
		v.env[n.Name] = n.IsTrue
	case *ast.OptionalNode:
		v.env[n.Name] = n.HasSome
	}
	return v
}

func envValue(elementType, value string) any {
	if elementType == ast.ElementTypeString {
		return UnquoteValue(value)
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return value
}
