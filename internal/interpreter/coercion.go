package interpreter

import (
	"strconv"
	"strings"

	"github.com/ambitlang/ambit/internal/diagnostics"
	"github.com/ambitlang/ambit/internal/token"
)

// parseNumeric tries int then float, the "try to parse the string as int,
// else as float" rule shared by every operator's string fallback.
func parseNumeric(s string) (isInt bool, i int64, f float64, ok bool) {
	if iv, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true, iv, 0, true
	}
	if fv, err := strconv.ParseFloat(s, 64); err == nil {
		return false, 0, fv, true
	}
	return false, 0, 0, false
}

// asNumeric reduces a Value to a number, parsing strings numerically when
// possible. ok is false for bool, function, or a non-numeric string.
func asNumeric(v Value) (isInt bool, i int64, f float64, ok bool) {
	switch v.Kind {
	case KindInt:
		return true, v.IntValue, 0, true
	case KindFloat:
		return false, 0, v.FloatValue, true
	case KindString:
		return parseNumeric(v.StringValue)
	default:
		return false, 0, 0, false
	}
}

func typeError(pos token.Position, op string, l, r Value) *diagnostics.Diagnostic {
	return diagnostics.Semantic(diagnostics.TypeNotCoercible, pos,
		"operator %q is not defined for %s and %s", op, kindName(l.Kind), kindName(r.Kind))
}

func kindName(k Kind) string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindFunction:
		return "function"
	default:
		return "unknown"
	}
}

// numericResult widens to float unless both operands were ints.
func numericResult(lIsInt bool, li int64, lf float64, rIsInt bool, ri int64, rf float64, apply func(a, b float64) float64, applyInt func(a, b int64) int64) Value {
	if lIsInt && rIsInt {
		return IntValue(applyInt(li, ri))
	}
	if lIsInt {
		lf = float64(li)
	}
	if rIsInt {
		rf = float64(ri)
	}
	return FloatValue(apply(lf, rf))
}

func Add(l, r Value, pos token.Position) (Value, *diagnostics.Diagnostic) {
	if l.Kind == KindFunction || r.Kind == KindFunction {
		return Value{}, typeError(pos, "+", l, r)
	}
	if (l.Kind == KindBool && r.Kind == KindString) || (l.Kind == KindString && r.Kind == KindBool) {
		if l.Kind == KindBool {
			return StringValue(l.Text() + r.StringValue), nil
		}
		return StringValue(l.StringValue + r.Text()), nil
	}
	if l.Kind == KindBool || r.Kind == KindBool {
		return Value{}, typeError(pos, "+", l, r)
	}
	lIsInt, li, lf, lok := asNumeric(l)
	rIsInt, ri, rf, rok := asNumeric(r)
	if lok && rok {
		return numericResult(lIsInt, li, lf, rIsInt, ri, rf,
			func(a, b float64) float64 { return a + b },
			func(a, b int64) int64 { return a + b }), nil
	}
	// At least one side failed numeric parsing: the string/number and
	// string/string fallback for "+" is always textual concatenation.
	if l.Kind == KindString || r.Kind == KindString {
		return StringValue(l.Text() + r.Text()), nil
	}
	return Value{}, typeError(pos, "+", l, r)
}

func Sub(l, r Value, pos token.Position) (Value, *diagnostics.Diagnostic) {
	lIsInt, li, lf, lok := asNumeric(l)
	rIsInt, ri, rf, rok := asNumeric(r)
	if lok && rok {
		return numericResult(lIsInt, li, lf, rIsInt, ri, rf,
			func(a, b float64) float64 { return a - b },
			func(a, b int64) int64 { return a - b }), nil
	}
	return Value{}, typeError(pos, "-", l, r)
}

func Mul(l, r Value, pos token.Position) (Value, *diagnostics.Diagnostic) {
	// int x string / string x int: replicate if the string doesn't parse
	// numerically and the int is >= 0.
	if l.Kind == KindInt && r.Kind == KindString {
		if v, ok := mulIntString(l.IntValue, r, pos); ok {
			return v, nil
		}
	}
	if r.Kind == KindInt && l.Kind == KindString {
		if v, ok := mulIntString(r.IntValue, l, pos); ok {
			return v, nil
		}
	}
	lIsInt, li, lf, lok := asNumeric(l)
	rIsInt, ri, rf, rok := asNumeric(r)
	if lok && rok {
		return numericResult(lIsInt, li, lf, rIsInt, ri, rf,
			func(a, b float64) float64 { return a * b },
			func(a, b int64) int64 { return a * b }), nil
	}
	return Value{}, typeError(pos, "*", l, r)
}

// mulIntString implements `int * string`: numeric multiply if the string
// parses, otherwise string replication when n >= 0 (n == 0 yields "").
func mulIntString(n int64, s Value, pos token.Position) (Value, bool) {
	if isInt, i, f, ok := parseNumeric(s.StringValue); ok {
		if isInt {
			return IntValue(n * i), true
		}
		return FloatValue(float64(n) * f), true
	}
	if n < 0 {
		return Value{}, false
	}
	return StringValue(strings.Repeat(s.StringValue, int(n))), true
}

func Div(l, r Value, pos token.Position) (Value, *diagnostics.Diagnostic) {
	lIsInt, li, lf, lok := asNumeric(l)
	rIsInt, ri, rf, rok := asNumeric(r)
	if !lok || !rok {
		return Value{}, typeError(pos, "/", l, r)
	}
	if rIsInt && ri == 0 {
		return Value{}, diagnostics.Semantic(diagnostics.DivisionByZero, pos, "division by zero")
	}
	if !rIsInt && rf == 0 {
		return Value{}, diagnostics.Semantic(diagnostics.DivisionByZero, pos, "division by zero")
	}
	if lIsInt && rIsInt {
		return IntValue(li / ri), nil
	}
	lv := lf
	if lIsInt {
		lv = float64(li)
	}
	rv := rf
	if rIsInt {
		rv = float64(ri)
	}
	return FloatValue(lv / rv), nil
}

// Equal implements `==`/`!=`'s shared comparison logic; the caller negates
// for `!=`.
func Equal(l, r Value, pos token.Position) (bool, *diagnostics.Diagnostic) {
	if l.Kind == KindBool && r.Kind == KindString {
		return l.Text() == r.StringValue, nil
	}
	if r.Kind == KindBool && l.Kind == KindString {
		return r.Text() == l.StringValue, nil
	}
	if l.Kind == KindBool && r.Kind == KindBool {
		return l.BoolValue == r.BoolValue, nil
	}
	if l.Kind == KindFunction || r.Kind == KindFunction {
		return false, typeError(pos, "==", l, r)
	}
	lIsInt, li, lf, lok := asNumeric(l)
	rIsInt, ri, rf, rok := asNumeric(r)
	if lok && rok {
		if lIsInt && rIsInt {
			return li == ri, nil
		}
		lv := lf
		if lIsInt {
			lv = float64(li)
		}
		rv := rf
		if rIsInt {
			rv = float64(ri)
		}
		return lv == rv, nil
	}
	if l.Kind == KindString && r.Kind == KindString {
		return l.StringValue == r.StringValue, nil
	}
	return false, typeError(pos, "==", l, r)
}

// Compare implements `<,<=,>,>=`. Ordering is numeric only: both sides
// must be numbers or strings that parse as numbers.
func Compare(l, r Value, op string, pos token.Position) (bool, *diagnostics.Diagnostic) {
	lIsInt, li, lf, lok := asNumeric(l)
	rIsInt, ri, rf, rok := asNumeric(r)
	if !lok || !rok {
		return false, typeError(pos, op, l, r)
	}
	lv := lf
	if lIsInt {
		lv = float64(li)
	}
	rv := rf
	if rIsInt {
		rv = float64(ri)
	}
	switch op {
	case "<":
		return lv < rv, nil
	case "<=":
		return lv <= rv, nil
	case ">":
		return lv > rv, nil
	case ">=":
		return lv >= rv, nil
	}
	return false, diagnostics.Semantic(diagnostics.UnknownOperator, pos, "unknown relational operator %q", op)
}

// CoerceBool coerces a value to bool: bool is itself; "true"/"false"
// strings coerce; everything else (including int/float) is fatal.
func CoerceBool(v Value, pos token.Position) (bool, *diagnostics.Diagnostic) {
	switch v.Kind {
	case KindBool:
		return v.BoolValue, nil
	case KindString:
		switch v.StringValue {
		case "true":
			return true, nil
		case "false":
			return false, nil
		}
	}
	return false, diagnostics.Semantic(diagnostics.TypeNotCoercible, pos, "%s is not coercible to bool", kindName(v.Kind))
}

// UnaryMinus negates an int or float value; anything else is fatal.
func UnaryMinus(v Value, pos token.Position) (Value, *diagnostics.Diagnostic) {
	switch v.Kind {
	case KindInt:
		return IntValue(-v.IntValue), nil
	case KindFloat:
		return FloatValue(-v.FloatValue), nil
	}
	return Value{}, diagnostics.Semantic(diagnostics.TypeNotCoercible, pos, "unary minus is not defined for %s", kindName(v.Kind))
}
