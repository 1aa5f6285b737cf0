package interpreter

import "github.com/ambitlang/ambit/internal/token"

// CallFrame records one active function-call invocation: the callee's name
// and the position of the call. It does not hold a scope; each call builds
// its own root scope.
type CallFrame struct {
	FunctionName string
	Position     token.Position
}

// PushCall records entry into a new call by pushing a frame with the
// callee's name and call position.
func (in *Interpreter) PushCall(name string, pos token.Position) {
	in.CallStack = append(in.CallStack, CallFrame{FunctionName: name, Position: pos})
}

// PopCall removes the most recently pushed call frame on the way back out.
func (in *Interpreter) PopCall() {
	if len(in.CallStack) > 0 {
		in.CallStack = in.CallStack[:len(in.CallStack)-1]
	}
}

// Depth is the current call nesting depth. The tracer does not use it; it
// keeps its own indent counter.
func (in *Interpreter) Depth() int {
	return len(in.CallStack)
}
