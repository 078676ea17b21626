package find

import (
	"strconv"
	"strings"

	"github.com/cwbudde/algo-find1st/internal/scan"
)

// Op is a comparison operator applied as element <op> value.
//
// The numeric codes are stable, from Less = -2 to Greater = 3, and are the
// integer comparator codes accepted by OpFromCode.
type Op int

// Operators.
const (
	Less         Op = Op(scan.Less)
	LessEqual    Op = Op(scan.LessEqual)
	Equal        Op = Op(scan.Equal)
	NotEqual     Op = Op(scan.NotEqual)
	GreaterEqual Op = Op(scan.GreaterEqual)
	Greater      Op = Op(scan.Greater)
)

type opInfo struct {
	token  string
	symbol string
}

var ops = map[Op]opInfo{
	Less:         {"lt", "<"},
	LessEqual:    {"le", "<="},
	Equal:        {"eq", "=="},
	NotEqual:     {"ne", "!="},
	GreaterEqual: {"ge", ">="},
	Greater:      {"gt", ">"},
}

// Ops returns the operators in code order.
func Ops() []Op {
	return []Op{Less, LessEqual, Equal, NotEqual, GreaterEqual, Greater}
}

// Valid reports whether o is one of the six operators.
func (o Op) Valid() bool {
	return o.cmp().Valid()
}

// String returns the short token, e.g. "gt".
func (o Op) String() string {
	if info, ok := ops[o]; ok {
		return info.token
	}
	return "Op(" + strconv.Itoa(int(o)) + ")"
}

// Symbol returns the operator symbol, e.g. ">=".
func (o Op) Symbol() string {
	if info, ok := ops[o]; ok {
		return info.symbol
	}
	return "?"
}

// ParseOp accepts a token ("eq", "ne", "gt", "ge", "lt", "le") or a symbol
// ("==", "!=", ">", ">=", "<", "<="), ignoring case and surrounding space.
func ParseOp(token string) (Op, error) {
	t := strings.ToLower(strings.TrimSpace(token))
	for op, info := range ops {
		if t == info.token || t == info.symbol {
			return op, nil
		}
	}
	return 0, &UnsupportedOperatorError{Token: token}
}

// OpFromCode converts an integer comparator code (-2..3) to an Op.
func OpFromCode(code int) (Op, error) {
	op := Op(code)
	if !op.Valid() {
		return 0, &UnsupportedOperatorError{Token: strconv.Itoa(code)}
	}
	return op, nil
}

func (o Op) cmp() scan.Cmp {
	return scan.Cmp(o)
}
