package llvm

import (
	"fmt"

	"github.com/nanov/jsasta/internal/ast"
)

// collectStringConsts walks every reachable body looking for string
// literals, interning each distinct text once (deduplicated the same
// way the teacher's collectStringConsts does, keyed on the literal's
// raw text rather than its AST identity).
func (e *Emitter) collectStringConsts() error {
	for _, spec := range e.prog.AllSpecs {
		walkExprsInBlock(spec.Body, e.internStringLit)
	}
	if e.prog.EntryBody != nil {
		walkExprsInBlock(e.prog.EntryBody, e.internStringLit)
	}
	return nil
}

func (e *Emitter) internStringLit(expr ast.Expr) {
	lit, ok := expr.(*ast.StringLit)
	if !ok {
		return
	}
	if _, ok := e.strings[lit.Value]; ok {
		return
	}
	e.strSeq++
	e.strings[lit.Value] = fmt.Sprintf("@str.%d", e.strSeq)
}

func (e *Emitter) emitStringConsts() {
	for _, lit := range e.sortedStringLiterals() {
		name := e.strings[lit]
		bytes := []byte(lit)
		fmt.Fprintf(&e.buf, "%s = private unnamed_addr constant [%d x i8] c\"%s\\00\"\n",
			name, len(bytes)+1, escapeIR(bytes))
	}
	if len(e.strings) > 0 {
		e.buf.WriteByte('\n')
	}
}

// escapeIR renders bytes the way LLVM's `c"..."` string syntax expects:
// printable ASCII verbatim, everything else as \XX hex.
func escapeIR(b []byte) string {
	out := make([]byte, 0, len(b))
	const hex = "0123456789ABCDEF"
	for _, c := range b {
		if c == '"' || c == '\\' || c < 0x20 || c >= 0x7f {
			out = append(out, '\\', hex[c>>4], hex[c&0xf])
			continue
		}
		out = append(out, c)
	}
	return string(out)
}

// refString returns the ptr-typed reference to a literal's global,
// decaying the `[N x i8]` array to a bare pointer the way every other
// string-valued expression is represented.
func (e *Emitter) refString(lit string) string {
	name, ok := e.strings[lit]
	if !ok {
		return "null"
	}
	return name
}

// walkExprsInBlock visits every expression reachable from a
// specialization's or the entry's statement list, in source order.
func walkExprsInBlock(blk *ast.Block, visit func(ast.Expr)) {
	if blk == nil {
		return
	}
	var visitStmt func(ast.Stmt)
	var visitExpr func(ast.Expr)
	visitExpr = func(x ast.Expr) {
		if x == nil {
			return
		}
		visit(x)
		switch n := x.(type) {
		case *ast.Unary:
			visitExpr(n.Operand)
		case *ast.Binary:
			visitExpr(n.Left)
			visitExpr(n.Right)
		case *ast.Ternary:
			visitExpr(n.Cond)
			visitExpr(n.Then)
			visitExpr(n.Else)
		case *ast.Assign:
			visitExpr(n.Target)
			visitExpr(n.Value)
		case *ast.IncDec:
			visitExpr(n.Target)
		case *ast.Member:
			visitExpr(n.Receiver)
		case *ast.Index:
			visitExpr(n.Receiver)
			visitExpr(n.Idx)
		case *ast.Call:
			visitExpr(n.Callee)
			for _, a := range n.Args {
				visitExpr(a)
			}
		case *ast.ArrayNew:
			visitExpr(n.Size)
		case *ast.ArrayLit:
			for _, el := range n.Elems {
				visitExpr(el)
			}
		case *ast.ObjectLit:
			for _, f := range n.Fields {
				visitExpr(f.Value)
			}
		}
	}
	visitStmt = func(s ast.Stmt) {
		switch n := s.(type) {
		case *ast.VarDecl:
			visitExpr(n.Init)
		case *ast.ConstDecl:
			visitExpr(n.Init)
		case *ast.Block:
			for _, st := range n.Stmts {
				visitStmt(st)
			}
		case *ast.ExprStmt:
			visitExpr(n.X)
		case *ast.If:
			visitExpr(n.Cond)
			visitStmt(n.Then)
			if n.Els != nil {
				visitStmt(n.Els)
			}
		case *ast.While:
			visitExpr(n.Cond)
			visitStmt(n.Body)
		case *ast.For:
			if n.Init != nil {
				visitStmt(n.Init)
			}
			if n.Cond != nil {
				visitExpr(n.Cond)
			}
			if n.Post != nil {
				visitStmt(n.Post)
			}
			visitStmt(n.Body)
		case *ast.Return:
			visitExpr(n.Value)
		}
	}
	for _, s := range blk.Stmts {
		visitStmt(s)
	}
}
