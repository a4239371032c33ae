package sexpcalc

import (
	"errors"
	"math/big"
)

type Fn func(args []*big.Int) (*big.Int, error)

type FnInfo struct {
	t  NodeType
	fn Fn
}

var ops map[string]FnInfo

func makeFn(t NodeType, fn Fn) FnInfo {
	return FnInfo{t: t, fn: fn}
}

func init() {
	ops = make(map[string]FnInfo)
	ops["add"] = makeFn(NodeAdd, doAdd)
	ops["multiply"] = makeFn(NodeMultiply, doMultiply)
}

// Apply runs the named operator over args.
func Apply(name string, args []*big.Int) (*big.Int, error) {
	op, ok := ops[name]
	if !ok {
		return nil, errors.New("invalid op: " + name)
	}
	return op.fn(args)
}

func doAdd(args []*big.Int) (*big.Int, error) {
	if len(args) == 0 {
		return nil, errors.New("invalid arguments for add")
	}
	ret := new(big.Int)
	for _, arg := range args {
		if arg.Sign() < 0 {
			return nil, errors.New("invalid arguments for add")
		}
		ret.Add(ret, arg)
	}
	return ret, nil
}

func doMultiply(args []*big.Int) (*big.Int, error) {
	if len(args) == 0 {
		return nil, errors.New("invalid arguments for multiply")
	}
	ret := new(big.Int).Set(args[0])
	for _, arg := range args {
		if arg.Sign() < 0 {
			return nil, errors.New("invalid arguments for multiply")
		}
	}
	for _, arg := range args[1:] {
		ret.Mul(ret, arg)
	}
	return ret, nil
}

// Eval computes the value of n bottom-up without modifying the tree.
func (n *Node) Eval() (*big.Int, error) {
	if n.t == NodeInt {
		return new(big.Int).Set(n.v), nil
	}
	args := make([]*big.Int, 0, len(n.args))
	for _, arg := range n.args {
		v, err := arg.Eval()
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return Apply(n.t.String(), args)
}

// collapse reduces n in place, leftmost application first, calling visit
// after every application turns into an integer. It returns the number of
// applications reduced.
func (n *Node) collapse(visit func(op NodeType, v *big.Int)) (int, error) {
	if n.t == NodeInt {
		return 0, nil
	}
	steps := 0
	args := make([]*big.Int, 0, len(n.args))
	for _, arg := range n.args {
		k, err := arg.collapse(visit)
		if err != nil {
			return steps, err
		}
		steps += k
		args = append(args, arg.v)
	}
	v, err := Apply(n.t.String(), args)
	if err != nil {
		return steps, err
	}
	op := n.t
	n.t, n.v, n.args = NodeInt, v, nil
	if visit != nil {
		visit(op, v)
	}
	return steps + 1, nil
}
