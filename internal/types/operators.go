package types

// IsNumeric reports whether k is Int or Double.
func IsNumeric(k Kind) bool { return k == KindInt || k == KindDouble }

// NumericJoin implements the widening rule of spec.md §4.2: "Int
// promotes to Double in mixed arithmetic." Returns ok=false if either
// kind is not numeric.
func NumericJoin(a, b Kind) (Kind, bool) {
	if !IsNumeric(a) || !IsNumeric(b) {
		return KindUnknown, false
	}
	if a == KindDouble || b == KindDouble {
		return KindDouble, true
	}
	return KindInt, true
}

// ArithmeticResult types `+ - * / %` per spec.md §4.2: numeric join, or
// String if either operand is String and the operator is `+`.
func ArithmeticResult(op string, a, b Kind) (Kind, bool) {
	if op == "+" && (a == KindString || b == KindString) {
		return KindString, true
	}
	return NumericJoin(a, b)
}

// OrderingResult types `< > <= >=`: numerics (promoted) or both String
// (lexicographic order), per spec.md §4.2.
func OrderingResult(a, b Kind) bool {
	if k, ok := NumericJoin(a, b); ok {
		_ = k
		return true
	}
	return a == KindString && b == KindString
}

// EqualityCompatible types `== !=`: numerics are always comparable
// (after promotion); any other pair must share the same Kind, else it's
// a type error (spec.md §4.2: "T307/T312 family").
func EqualityCompatible(a, b Kind) bool {
	if IsNumeric(a) && IsNumeric(b) {
		return true
	}
	return a == b
}

// LogicalOperandsOK reports whether && || ! accept the given kinds: both
// (or the single) operand must be Bool.
func LogicalOperandsOK(kinds ...Kind) bool {
	for _, k := range kinds {
		if k != KindBool {
			return false
		}
	}
	return true
}

// BitwiseOperandsOK types `& >>`: both operands Int, result Int.
func BitwiseOperandsOK(a, b Kind) bool { return a == KindInt && b == KindInt }
