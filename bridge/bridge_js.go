// Package bridge exposes the engine to a browser host via syscall/js,
// mirroring the three operations the original WebAssembly bridge
// (create_state, print_scope, eval_input) exposed through wasm_bindgen:
// create a fresh evaluator state, list its bound names, and evaluate one
// statement against it.
//
//go:build js && wasm

package bridge

import (
	"strconv"
	"sync"
	"syscall/js"

	"github.com/cidrcalc/cidrcalc/pkg/eval"
	"github.com/cidrcalc/cidrcalc/pkg/format"
	"github.com/cidrcalc/cidrcalc/pkg/parser"
	"github.com/cidrcalc/cidrcalc/pkg/scope"
	"github.com/cidrcalc/cidrcalc/pkg/value"
)

var (
	statesMu sync.Mutex
	states   = map[string]scope.Scope{}
	nextID   int
)

// Register installs the bridge functions on the global object under
// cidrcalc.createState, cidrcalc.scopeKeys, and cidrcalc.evalInput. Call
// once from a wasm_exec.js-hosted main before blocking forever.
func Register() {
	obj := js.Global().Get("Object").New()
	obj.Set("createState", js.FuncOf(createState))
	obj.Set("scopeKeys", js.FuncOf(scopeKeys))
	obj.Set("evalInput", js.FuncOf(evalInput))
	js.Global().Set("cidrcalc", obj)
}

// createState allocates a fresh, empty scope and returns an opaque handle
// string identifying it. The handle is the unit of state the host holds
// and passes back into scopeKeys/evalInput.
func createState(this js.Value, args []js.Value) any {
	statesMu.Lock()
	defer statesMu.Unlock()
	nextID++
	handle := strconv.Itoa(nextID)
	states[handle] = scope.Scope{}
	return handle
}

// scopeKeys returns the handle's currently bound names as a JS array.
func scopeKeys(this js.Value, args []js.Value) any {
	handle := args[0].String()
	statesMu.Lock()
	s, ok := states[handle]
	statesMu.Unlock()
	if !ok {
		return js.Global().Get("Array").New()
	}

	keys := s.Keys()
	out := js.Global().Get("Array").New(len(keys))
	for i, k := range keys {
		out.SetIndex(i, k)
	}
	return out
}

// evalInput evaluates one statement (a single line of source) against the
// handle's scope, replacing it in place with the resulting scope. It
// returns a two-element JS array: [lines, errString]. On success errString
// is "" and lines holds the formatted blocks of a non-unit result (empty
// for Unit). On failure lines is empty and errString holds the
// diagnostic.
func evalInput(this js.Value, args []js.Value) any {
	handle := args[0].String()
	input := args[1].String()

	statesMu.Lock()
	s, ok := states[handle]
	statesMu.Unlock()
	if !ok {
		return result(nil, "unknown state handle: "+handle)
	}

	stmt, err := parser.ParseSingle(input)
	if err != nil {
		return result(nil, err.Error())
	}

	v, next, err := eval.Eval(stmt, s)
	if err != nil {
		return result(nil, err.Error())
	}

	statesMu.Lock()
	states[handle] = next
	statesMu.Unlock()

	if v.Kind == value.Unit {
		return result(nil, "")
	}

	blocks := v.Blocks()
	lines := make([]string, len(blocks))
	for i, b := range blocks {
		lines[i] = format.Block(b)
	}
	return result(lines, "")
}

func result(lines []string, errString string) js.Value {
	arr := js.Global().Get("Array").New(len(lines))
	for i, l := range lines {
		arr.SetIndex(i, l)
	}
	out := js.Global().Get("Array").New(2)
	out.SetIndex(0, arr)
	out.SetIndex(1, errString)
	return out
}
