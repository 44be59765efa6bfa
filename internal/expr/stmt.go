package expr

import "strings"

// Stmt is a statement of a member body.
type Stmt interface {
	String() string
	stmt()
}

// Return returns Value; a nil Value returns nothing.
type Return struct {
	Value Expr
}

func (Return) stmt() {}

func (s Return) String() string {
	if s.Value == nil {
		return "return;"
	}

	return "return " + s.Value.String() + ";"
}

// Assign stores Value into Target.
type Assign struct {
	Target Expr
	Value  Expr
}

func (Assign) stmt() {}

func (s Assign) String() string { return s.Target.String() + " = " + s.Value.String() + ";" }

// If runs Then when Cond holds, otherwise Else.
type If struct {
	Cond Expr
	Then []Stmt
	Else []Stmt
}

func (If) stmt() {}

func (s If) String() string {
	out := "if (" + s.Cond.String() + ") { " + joinStmts(s.Then) + " }"
	if len(s.Else) > 0 {
		out += " else { " + joinStmts(s.Else) + " }"
	}

	return out
}

// ErrorKind classifies runtime failures raised by generated code.
type ErrorKind int

const (
	// ErrorArgumentNull is a construction validation failure: a required value is absent.
	ErrorArgumentNull ErrorKind = iota
	// ErrorMapping is raised when a raw value has no corresponding case of a closed enumeration.
	ErrorMapping
)

// String returns a human-readable error kind name.
func (k ErrorKind) String() string {
	switch k {
	case ErrorArgumentNull:
		return "argument_null"
	case ErrorMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Throw raises a runtime failure. Subject is the offending value, when there is one.
type Throw struct {
	Kind    ErrorKind
	Param   string
	Message string
	Subject Expr
}

func (Throw) stmt() {}

func (s Throw) String() string {
	args := []string{s.Param}
	if s.Subject != nil {
		args = append(args, s.Subject.String())
	}

	if s.Message != "" {
		args = append(args, `"`+s.Message+`"`)
	}

	return "throw " + s.Kind.String() + "(" + strings.Join(args, ", ") + ");"
}

// Case is one arm of a Switch.
type Case struct {
	Match Expr
	Body  []Stmt
}

// Switch runs the first case whose Match equals Subject, otherwise Default.
type Switch struct {
	Subject Expr
	Cases   []Case
	Default []Stmt
}

func (Switch) stmt() {}

func (s Switch) String() string {
	var sb strings.Builder

	sb.WriteString("switch (" + s.Subject.String() + ") {")

	for _, c := range s.Cases {
		sb.WriteString(" case " + c.Match.String() + ": " + joinStmts(c.Body))
	}

	if len(s.Default) > 0 {
		sb.WriteString(" default: " + joinStmts(s.Default))
	}

	sb.WriteString(" }")

	return sb.String()
}

func joinStmts(stmts []Stmt) string {
	parts := make([]string, len(stmts))
	for i, s := range stmts {
		parts[i] = s.String()
	}

	return strings.Join(parts, " ")
}
