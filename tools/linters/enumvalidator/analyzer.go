// Package enumvalidator flags assignments of raw string literals to
// struct fields whose type is a named string enum. Status and role
// fields must be set from the model package's constants so the
// transition table and role checks stay exhaustive.
package enumvalidator

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

var Analyzer = &analysis.Analyzer{
	Name:     "enumvalidator",
	Doc:      "reports enum-typed struct fields assigned raw string literals",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

func run(pass *analysis.Pass) (any, error) {
	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)

	nodeFilter := []ast.Node{
		(*ast.AssignStmt)(nil),
	}

	insp.Preorder(nodeFilter, func(n ast.Node) {
		assign := n.(*ast.AssignStmt)
		for i, lhs := range assign.Lhs {
			if i >= len(assign.Rhs) {
				break
			}

			sel, ok := lhs.(*ast.SelectorExpr)
			if !ok {
				continue
			}

			lit, ok := assign.Rhs[i].(*ast.BasicLit)
			if !ok {
				continue
			}

			if !isStringEnum(pass.TypesInfo.TypeOf(sel)) {
				continue
			}

			pass.Reportf(lit.Pos(), "enum field %s assigned string literal", sel.Sel.Name)
		}
	})

	return nil, nil
}

// isStringEnum reports whether t is a named type whose underlying type
// is string. The builtin string itself does not qualify.
func isStringEnum(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok {
		return false
	}
	basic, ok := named.Underlying().(*types.Basic)
	return ok && basic.Kind() == types.String
}
