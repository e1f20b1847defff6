// Package luabind lets Lua functions listen to fgui events.
//
// A Binder wraps one *lua.LState. Every (function, self) pair it sees is
// given a single fgui callback handle, so registering the same pair twice
// is a no-op and removing it removes exactly what was added:
//
//	b := luabind.New(L)
//	b.Add(btn.OnClick(), L.GetGlobal("onClick").(*lua.LFunction), nil)
//
// Handlers receive the event context as a userdata of type
// "fgui.EventContext". Handlers registered with a non-nil self are called as
// fn(self, ctx).
package luabind

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/phanxgames/fgui"
)

const (
	contextTypeName = "fgui.EventContext"
	nodeTypeName    = "fgui.Node"
)

type bindKey struct {
	fn   *lua.LFunction
	self lua.LValue
}

// Binder maps Lua handlers onto fgui listeners.
type Binder struct {
	L *lua.LState

	// OnError receives errors raised by handlers. When nil the error panics.
	OnError func(error)

	callbacks map[bindKey]*fgui.EventCallback1
}

// New creates a Binder for L and registers the context and node metatables.
func New(L *lua.LState) *Binder {
	b := &Binder{
		L:         L,
		callbacks: make(map[bindKey]*fgui.EventCallback1),
	}
	b.registerTypes()
	return b
}

// Add registers fn on l. self may be nil.
func (b *Binder) Add(l *fgui.EventListener, fn *lua.LFunction, self lua.LValue) {
	l.Add(b.callback(fn, self))
}

// Remove unregisters a pair previously passed to Add or Set.
func (b *Binder) Remove(l *fgui.EventListener, fn *lua.LFunction, self lua.LValue) {
	if cb := b.lookup(fn, self); cb != nil {
		l.Remove(cb)
	}
}

// Set replaces every handler on l with fn. A nil fn just clears l.
func (b *Binder) Set(l *fgui.EventListener, fn *lua.LFunction, self lua.LValue) {
	if fn == nil {
		l.Clear()
		return
	}
	l.Set(b.callback(fn, self))
}

// AddCapture registers fn in the capture phase of l.
func (b *Binder) AddCapture(l *fgui.EventListener, fn *lua.LFunction, self lua.LValue) {
	l.AddCapture(b.callback(fn, self))
}

// RemoveCapture unregisters a capture handler added with AddCapture.
func (b *Binder) RemoveCapture(l *fgui.EventListener, fn *lua.LFunction, self lua.LValue) {
	if cb := b.lookup(fn, self); cb != nil {
		l.RemoveCapture(cb)
	}
}

func keyFor(fn *lua.LFunction, self lua.LValue) bindKey {
	if self == nil {
		self = lua.LNil
	}
	return bindKey{fn: fn, self: self}
}

func (b *Binder) lookup(fn *lua.LFunction, self lua.LValue) *fgui.EventCallback1 {
	if fn == nil {
		return nil
	}
	return b.callbacks[keyFor(fn, self)]
}

func (b *Binder) callback(fn *lua.LFunction, self lua.LValue) *fgui.EventCallback1 {
	if fn == nil {
		panic("fgui: nil lua function")
	}
	key := keyFor(fn, self)
	if cb, ok := b.callbacks[key]; ok {
		return cb
	}
	cb := fgui.NewCallback1(func(ctx *fgui.EventContext) {
		b.invoke(key, ctx)
	})
	b.callbacks[key] = cb
	return cb
}

func (b *Binder) invoke(key bindKey, ctx *fgui.EventContext) {
	ud := b.L.NewUserData()
	ud.Value = ctx
	b.L.SetMetatable(ud, b.L.GetTypeMetatable(contextTypeName))
	// The context goes back to the pool after this call.
	defer func() { ud.Value = nil }()

	var err error
	if key.self == lua.LNil {
		err = b.L.CallByParam(lua.P{Fn: key.fn, NRet: 0, Protect: true}, ud)
	} else {
		err = b.L.CallByParam(lua.P{Fn: key.fn, NRet: 0, Protect: true}, key.self, ud)
	}
	if err == nil {
		return
	}
	err = fmt.Errorf("luabind: %s handler: %w", ctx.Type, err)
	if b.OnError != nil {
		b.OnError(err)
		return
	}
	panic(err)
}

// --- Lua types ---

func (b *Binder) registerTypes() {
	L := b.L
	ctxMeta := L.NewTypeMetatable(contextTypeName)
	L.SetField(ctxMeta, "__index", L.NewFunction(b.contextIndex))

	nodeMeta := L.NewTypeMetatable(nodeTypeName)
	L.SetField(nodeMeta, "__index", L.NewFunction(b.nodeIndex))
	L.SetField(nodeMeta, "__eq", L.NewFunction(nodeEq))
}

var contextMethods = map[string]lua.LGFunction{
	"StopPropagation": func(L *lua.LState) int {
		checkContext(L).StopPropagation()
		return 0
	},
	"PreventDefault": func(L *lua.LState) int {
		checkContext(L).PreventDefault()
		return 0
	},
	"CaptureTouch": func(L *lua.LState) int {
		checkContext(L).CaptureTouch()
		return 0
	},
}

func checkContext(L *lua.LState) *fgui.EventContext {
	ud := L.CheckUserData(1)
	ctx, ok := ud.Value.(*fgui.EventContext)
	if !ok || ctx == nil {
		L.ArgError(1, "event context used outside its handler")
	}
	return ctx
}

func (b *Binder) contextIndex(L *lua.LState) int {
	ctx := checkContext(L)
	key := L.CheckString(2)
	if m, ok := contextMethods[key]; ok {
		L.Push(L.NewFunction(m))
		return 1
	}
	switch key {
	case "type":
		L.Push(lua.LString(ctx.Type))
	case "data":
		L.Push(b.ToLua(ctx.Data))
	case "sender":
		L.Push(b.ToLua(ctx.Sender()))
	case "initiator":
		L.Push(b.ToLua(ctx.Initiator()))
	case "isDefaultPrevented":
		L.Push(lua.LBool(ctx.IsDefaultPrevented()))
	case "inputEvent":
		L.Push(b.inputTable(ctx.InputEvent()))
	default:
		L.Push(lua.LNil)
	}
	return 1
}

func (b *Binder) inputTable(evt *fgui.InputEvent) lua.LValue {
	if evt == nil {
		return lua.LNil
	}
	t := b.L.NewTable()
	t.RawSetString("x", lua.LNumber(evt.X))
	t.RawSetString("y", lua.LNumber(evt.Y))
	t.RawSetString("touchId", lua.LNumber(evt.TouchID))
	t.RawSetString("button", lua.LNumber(evt.Button))
	t.RawSetString("clickCount", lua.LNumber(evt.ClickCount))
	return t
}

func checkNode(L *lua.LState, n int) *fgui.Node {
	ud := L.CheckUserData(n)
	node, ok := ud.Value.(*fgui.Node)
	if !ok {
		L.ArgError(n, "fgui.Node expected")
	}
	return node
}

func (b *Binder) nodeIndex(L *lua.LState) int {
	n := checkNode(L, 1)
	switch L.CheckString(2) {
	case "name":
		L.Push(lua.LString(n.Name))
	case "id":
		L.Push(lua.LNumber(n.ID))
	case "path":
		L.Push(lua.LString(n.Path()))
	case "x":
		L.Push(lua.LNumber(n.X))
	case "y":
		L.Push(lua.LNumber(n.Y))
	case "parent":
		L.Push(b.ToLua(n.Parent))
	default:
		L.Push(lua.LNil)
	}
	return 1
}

func nodeEq(L *lua.LState) int {
	L.Push(lua.LBool(checkNode(L, 1) == checkNode(L, 2)))
	return 1
}

// ToLua converts an event payload to a Lua value. Nodes become fgui.Node
// userdata; values with no Lua equivalent are wrapped as plain userdata.
func (b *Binder) ToLua(v any) lua.LValue {
	switch val := v.(type) {
	case nil:
		return lua.LNil
	case lua.LValue:
		return val
	case bool:
		return lua.LBool(val)
	case int:
		return lua.LNumber(val)
	case int32:
		return lua.LNumber(val)
	case int64:
		return lua.LNumber(val)
	case uint32:
		return lua.LNumber(val)
	case float32:
		return lua.LNumber(val)
	case float64:
		return lua.LNumber(val)
	case string:
		return lua.LString(val)
	case []string:
		t := b.L.NewTable()
		for i, s := range val {
			t.RawSetInt(i+1, lua.LString(s))
		}
		return t
	case map[string]any:
		t := b.L.NewTable()
		for k, e := range val {
			t.RawSetString(k, b.ToLua(e))
		}
		return t
	case *fgui.Node:
		if val == nil {
			return lua.LNil
		}
		ud := b.L.NewUserData()
		ud.Value = val
		b.L.SetMetatable(ud, b.L.GetTypeMetatable(nodeTypeName))
		return ud
	default:
		ud := b.L.NewUserData()
		ud.Value = v
		return ud
	}
}
