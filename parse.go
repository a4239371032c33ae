package sexpcalc

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// DefaultMaxDepth bounds paren nesting unless WithMaxDepth says otherwise.
const DefaultMaxDepth = 1000

type NodeType int

const (
	NodeInt NodeType = iota
	NodeAdd
	NodeMultiply
)

func (t NodeType) String() string {
	switch t {
	case NodeInt:
		return "int"
	case NodeAdd:
		return "add"
	case NodeMultiply:
		return "multiply"
	}
	return fmt.Sprintf("NodeType(%d)", int(t))
}

// Node is one parsed expression: an integer literal, or an operator
// application over one or more child nodes.
type Node struct {
	t    NodeType
	v    *big.Int
	args []*Node
	pos  int
}

var exprLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_\-]*`},
	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Space", Pattern: `[ \t\r\n\f]+`},
})

// sexpr and application mirror the grammar; Space is not elided so that
// operands must be separated and parens hug their contents.
type sexpr struct {
	Pos lexer.Position

	Int *string      `parser:"  @Int"`
	App *application `parser:"| LParen @@ RParen"`
}

type application struct {
	Pos lexer.Position

	Op   string   `parser:"@Ident"`
	Args []*sexpr `parser:"( Space @@ )+"`
}

var grammar = participle.MustBuild[sexpr](
	participle.Lexer(exprLexer),
	participle.UseLookahead(2),
)

// Parse reads exactly one expression from input. Surrounding whitespace
// is not skipped; use Evaluate for trimmed, user supplied text.
func Parse(input string) (*Node, error) {
	return parse(input, DefaultMaxDepth)
}

func parse(input string, maxDepth int) (*Node, error) {
	if d := depth(input); d > maxDepth {
		return nil, limit(input, "nesting depth %d exceeds %d", d, maxDepth)
	}
	ast, err := grammar.ParseString("", input)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return nil, invalid(input, perr.Position().Offset, "%s", perr.Message())
		}
		return nil, invalid(input, -1, "%v", err)
	}
	return ast.node(input)
}

func (s *sexpr) node(input string) (*Node, error) {
	if s.Int != nil {
		v, ok := new(big.Int).SetString(*s.Int, 10)
		if !ok {
			return nil, invalid(input, s.Pos.Offset, "invalid integer: %s", *s.Int)
		}
		return &Node{t: NodeInt, v: v, pos: s.Pos.Offset}, nil
	}

	op, ok := ops[s.App.Op]
	if !ok {
		return nil, invalid(input, s.App.Pos.Offset, "invalid op: %s", s.App.Op)
	}
	node := &Node{t: op.t, pos: s.Pos.Offset}
	for _, arg := range s.App.Args {
		child, err := arg.node(input)
		if err != nil {
			return nil, err
		}
		node.args = append(node.args, child)
	}
	return node, nil
}

// depth returns the deepest paren nesting in s, ignoring balance.
func depth(s string) int {
	var cur, deepest int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			cur++
			if cur > deepest {
				deepest = cur
			}
		case ')':
			if cur > 0 {
				cur--
			}
		}
	}
	return deepest
}

func (n *Node) Type() NodeType {
	return n.t
}

// Value is the literal of a NodeInt and nil otherwise.
func (n *Node) Value() *big.Int {
	if n.t != NodeInt {
		return nil
	}
	return new(big.Int).Set(n.v)
}

func (n *Node) Args() []*Node {
	return n.args
}

// Pos is the byte offset of the node in the parsed input.
func (n *Node) Pos() int {
	return n.pos
}

func (n *Node) String() string {
	if n == nil {
		return "nil"
	}
	var buf bytes.Buffer
	switch n.t {
	case NodeInt:
		fmt.Fprint(&buf, n.v)
	default:
		fmt.Fprintf(&buf, "(%v", n.t)
		for _, arg := range n.args {
			fmt.Fprint(&buf, " ")
			fmt.Fprint(&buf, arg)
		}
		fmt.Fprint(&buf, ")")
	}
	return buf.String()
}
