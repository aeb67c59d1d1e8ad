package templates

import (
	"fmt"
	"strconv"
	"strings"
)

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

// typeParams renders "T0, T1" for n arguments, "" for none.
func typeParams(n int) string {
	return prefixedStrings("T", n)
}

// signalDecl renders the declared type name, e.g. "Signal2[T0, T1 any]".
func signalDecl(n int) string {
	if n == 0 {
		return "Signal0"
	}
	return fmt.Sprintf("Signal%d[%s any]", n, typeParams(n))
}

// signalType renders the instantiated type name, e.g. "Signal2[T0, T1]".
func signalType(n int) string {
	if n == 0 {
		return "Signal0"
	}
	return fmt.Sprintf("Signal%d[%s]", n, typeParams(n))
}

// callSlot renders the slot call with the first k emitted arguments asserted
// back to their types, e.g. "fn(args[0].(T0), args[1].(T1))".
func callSlot(k int) string {
	if k == 0 {
		return "fn()"
	}
	casts := make([]string, k)
	for i := 0; i < k; i++ {
		casts[i] = fmt.Sprintf("args[%d].(T%d)", i, i)
	}
	return "fn(" + strings.Join(casts, ", ") + ")"
}

// emitParams renders the Emit parameter list, e.g. "a0 T0, a1 T1".
func emitParams(n int) string {
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = fmt.Sprintf("a%d T%d", i, i)
	}
	return strings.Join(parts, ", ")
}

// emitArgs renders the []any literal handed to the signal core, "nil" when
// the signal carries no arguments.
func emitArgs(n int) string {
	if n == 0 {
		return "nil"
	}
	return "[]any{" + prefixedStrings("a", n) + "}"
}
