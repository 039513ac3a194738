package parser

import (
	"github.com/pyast-go/pyparse/ast"
	"github.com/pyast-go/pyparse/errors"
)

// isValidAssignmentTarget implements target validation:
// names, attributes, subscripts, and parenthesized/list/tuple
// combinations of valid targets (starred at most once per sequence).
func isValidAssignmentTarget(e ast.Expr) bool {
	switch n := e.(type) {
	case *ast.Name, *ast.Attribute, *ast.Subscript:
		return true
	case *ast.Starred:
		return isValidAssignmentTarget(n.Value)
	case *ast.List:
		return allValidTargets(n.Elts)
	case *ast.Tuple:
		return allValidTargets(n.Elts)
	default:
		return false
	}
}

func allValidTargets(elts []ast.Expr) bool {
	stars := 0
	for _, e := range elts {
		if _, ok := e.(*ast.Starred); ok {
			stars++
		}
		if !isValidAssignmentTarget(e) {
			return false
		}
	}
	return stars <= 1
}

func (p *parser) validateAssignTarget(t ast.Expr) {
	if !isValidAssignmentTarget(t) {
		p.errors.Add(errors.NewAssignmentError(t.NodeRange()))
	}
}

// isValidAugAssignTarget restricts AugAssign targets to exactly
// name/attribute/subscript.
func isValidAugAssignTarget(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Name, *ast.Attribute, *ast.Subscript:
		return true
	default:
		return false
	}
}

func (p *parser) validateAugAssignTarget(t ast.Expr) {
	if !isValidAugAssignTarget(t) {
		p.errors.Add(errors.NewAugAssignmentError(t.NodeRange()))
	}
}

// validateAnnAssignTarget rejects a tuple target for AnnAssign.
func (p *parser) validateAnnAssignTarget(t ast.Expr) {
	switch t.(type) {
	case *ast.Tuple:
		p.errors.Add(errors.NewNamedAssignmentError(t.NodeRange()))
	case *ast.Name, *ast.Attribute, *ast.Subscript, *ast.List:
	default:
		p.errors.Add(errors.NewNamedAssignmentError(t.NodeRange()))
	}
}
