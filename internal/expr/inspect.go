package expr

// Inspect traverses expressions and statements depth-first, calling fn for every
// node. Children of a node are skipped when fn returns false.
func Inspect(node any, fn func(node any) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case []Stmt:
		for _, s := range n {
			Inspect(s, fn)
		}
	case Member:
		inspectExpr(n.Target, fn)
	case Call:
		inspectExpr(n.Target, fn)
		inspectAll(n.Args, fn)
	case New:
		inspectAll(n.Args, fn)
	case Convert:
		inspectExpr(n.Operand, fn)
	case Binary:
		inspectExpr(n.Left, fn)
		inspectExpr(n.Right, fn)
	case Not:
		inspectExpr(n.Operand, fn)
	case TypeTest:
		inspectExpr(n.Operand, fn)
	case Conditional:
		inspectExpr(n.Cond, fn)
		inspectExpr(n.Then, fn)
		inspectExpr(n.Else, fn)
	case Intrinsic:
		inspectAll(n.Args, fn)
	case Return:
		inspectExpr(n.Value, fn)
	case Assign:
		inspectExpr(n.Target, fn)
		inspectExpr(n.Value, fn)
	case If:
		inspectExpr(n.Cond, fn)
		Inspect(n.Then, fn)
		Inspect(n.Else, fn)
	case Throw:
		inspectExpr(n.Subject, fn)
	case Switch:
		inspectExpr(n.Subject, fn)

		for _, c := range n.Cases {
			inspectExpr(c.Match, fn)
			Inspect(c.Body, fn)
		}

		Inspect(n.Default, fn)
	}
}

func inspectExpr(e Expr, fn func(node any) bool) {
	if e != nil {
		Inspect(e, fn)
	}
}

func inspectAll(args []Expr, fn func(node any) bool) {
	for _, a := range args {
		Inspect(a, fn)
	}
}

// Intrinsics returns every intrinsic operation used in node, in traversal order.
func Intrinsics(node any) []IntrinsicOp {
	var ops []IntrinsicOp

	Inspect(node, func(n any) bool {
		if in, ok := n.(Intrinsic); ok {
			ops = append(ops, in.Op)
		}

		return true
	})

	return ops
}
