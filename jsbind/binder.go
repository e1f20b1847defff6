// Package jsbind lets JavaScript functions listen to fgui events.
//
// A Binder wraps one *goja.Runtime. A (function, this) pair registered
// through the Binder always maps to the same fgui callback handle, compared
// with SameAs, so the pair can later be removed by passing the same values.
//
// Handlers are called as fn.call(this, ctx). ctx exposes type, data, sender,
// initiator and inputEvent, plus stopPropagation(), preventDefault() and
// captureTouch(). It is only valid while the handler runs.
package jsbind

import (
	"fmt"

	"github.com/dop251/goja"

	"github.com/phanxgames/fgui"
)

type binding struct {
	fn   goja.Value
	this goja.Value
	cb   *fgui.EventCallback1
}

// Binder maps JavaScript handlers onto fgui listeners.
type Binder struct {
	vm *goja.Runtime

	// OnError receives exceptions thrown by handlers. When nil they panic.
	OnError func(error)

	bindings []binding
}

// New creates a Binder for vm.
func New(vm *goja.Runtime) *Binder {
	return &Binder{vm: vm}
}

// Runtime returns the wrapped runtime.
func (b *Binder) Runtime() *goja.Runtime {
	return b.vm
}

// Add registers fn on l. this may be nil.
func (b *Binder) Add(l *fgui.EventListener, fn, this goja.Value) error {
	cb, err := b.callback(fn, this)
	if err != nil {
		return err
	}
	l.Add(cb)
	return nil
}

// Remove unregisters a pair previously passed to Add or Set.
func (b *Binder) Remove(l *fgui.EventListener, fn, this goja.Value) {
	if cb := b.lookup(fn, this); cb != nil {
		l.Remove(cb)
	}
}

// Set replaces every handler on l with fn. A null or undefined fn just
// clears l.
func (b *Binder) Set(l *fgui.EventListener, fn, this goja.Value) error {
	if isNullish(fn) {
		l.Clear()
		return nil
	}
	cb, err := b.callback(fn, this)
	if err != nil {
		return err
	}
	l.Set(cb)
	return nil
}

// AddCapture registers fn in the capture phase of l.
func (b *Binder) AddCapture(l *fgui.EventListener, fn, this goja.Value) error {
	cb, err := b.callback(fn, this)
	if err != nil {
		return err
	}
	l.AddCapture(cb)
	return nil
}

// RemoveCapture unregisters a capture handler added with AddCapture.
func (b *Binder) RemoveCapture(l *fgui.EventListener, fn, this goja.Value) {
	if cb := b.lookup(fn, this); cb != nil {
		l.RemoveCapture(cb)
	}
}

func isNullish(v goja.Value) bool {
	return v == nil || goja.IsUndefined(v) || goja.IsNull(v)
}

func normalizeThis(this goja.Value) goja.Value {
	if this == nil {
		return goja.Undefined()
	}
	return this
}

func (b *Binder) lookup(fn, this goja.Value) *fgui.EventCallback1 {
	if isNullish(fn) {
		return nil
	}
	this = normalizeThis(this)
	for _, e := range b.bindings {
		if e.fn.SameAs(fn) && e.this.SameAs(this) {
			return e.cb
		}
	}
	return nil
}

func (b *Binder) callback(fn, this goja.Value) (*fgui.EventCallback1, error) {
	if cb := b.lookup(fn, this); cb != nil {
		return cb, nil
	}
	call, ok := goja.AssertFunction(fn)
	if !ok {
		return nil, fmt.Errorf("jsbind: handler is not a function: %v", fn)
	}
	this = normalizeThis(this)
	cb := fgui.NewCallback1(func(ctx *fgui.EventContext) {
		b.invoke(call, this, ctx)
	})
	b.bindings = append(b.bindings, binding{fn: fn, this: this, cb: cb})
	return cb, nil
}

func (b *Binder) invoke(call goja.Callable, this goja.Value, ctx *fgui.EventContext) {
	obj, release := b.contextObject(ctx)
	defer release()

	if _, err := call(this, obj); err != nil {
		err = fmt.Errorf("jsbind: %s handler: %w", ctx.Type, err)
		if b.OnError != nil {
			b.OnError(err)
			return
		}
		panic(err)
	}
}

// contextObject wraps ctx for script use. The returned release func detaches
// the object so a retained reference throws instead of touching a pooled
// context.
func (b *Binder) contextObject(ctx *fgui.EventContext) (*goja.Object, func()) {
	vm := b.vm
	live := ctx
	check := func() *fgui.EventContext {
		if live == nil {
			panic(vm.NewTypeError("event context used outside its handler"))
		}
		return live
	}

	obj := vm.NewObject()
	getter := func(name string, get func(*fgui.EventContext) goja.Value) {
		_ = obj.DefineAccessorProperty(name, vm.ToValue(func(goja.FunctionCall) goja.Value {
			return get(check())
		}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	}
	getter("type", func(c *fgui.EventContext) goja.Value { return vm.ToValue(c.Type) })
	getter("data", func(c *fgui.EventContext) goja.Value { return b.ToValue(c.Data) })
	getter("sender", func(c *fgui.EventContext) goja.Value { return b.ToValue(c.Sender()) })
	getter("initiator", func(c *fgui.EventContext) goja.Value { return b.ToValue(c.Initiator()) })
	getter("defaultPrevented", func(c *fgui.EventContext) goja.Value { return vm.ToValue(c.IsDefaultPrevented()) })
	getter("inputEvent", func(c *fgui.EventContext) goja.Value { return b.inputObject(c.InputEvent()) })

	_ = obj.Set("stopPropagation", func(goja.FunctionCall) goja.Value {
		check().StopPropagation()
		return goja.Undefined()
	})
	_ = obj.Set("preventDefault", func(goja.FunctionCall) goja.Value {
		check().PreventDefault()
		return goja.Undefined()
	})
	_ = obj.Set("captureTouch", func(goja.FunctionCall) goja.Value {
		check().CaptureTouch()
		return goja.Undefined()
	})
	return obj, func() { live = nil }
}

func (b *Binder) inputObject(evt *fgui.InputEvent) goja.Value {
	if evt == nil {
		return goja.Null()
	}
	obj := b.vm.NewObject()
	_ = obj.Set("x", evt.X)
	_ = obj.Set("y", evt.Y)
	_ = obj.Set("touchId", evt.TouchID)
	_ = obj.Set("button", int(evt.Button))
	_ = obj.Set("clickCount", evt.ClickCount)
	return obj
}

// ToValue converts an event payload for script use. Nodes become objects
// with live name, id, path, x, y and parent properties.
func (b *Binder) ToValue(v any) goja.Value {
	switch val := v.(type) {
	case nil:
		return goja.Null()
	case goja.Value:
		return val
	case *fgui.Node:
		if val == nil {
			return goja.Null()
		}
		return b.nodeObject(val)
	default:
		return b.vm.ToValue(v)
	}
}

func (b *Binder) nodeObject(n *fgui.Node) *goja.Object {
	vm := b.vm
	obj := vm.NewObject()
	prop := func(name string, get func() any) {
		_ = obj.DefineAccessorProperty(name, vm.ToValue(func(goja.FunctionCall) goja.Value {
			return b.ToValue(get())
		}), nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	}
	prop("name", func() any { return n.Name })
	prop("id", func() any { return n.ID })
	prop("path", func() any { return n.Path() })
	prop("x", func() any { return n.X })
	prop("y", func() any { return n.Y })
	prop("parent", func() any {
		if n.Parent == nil {
			return nil
		}
		return n.Parent
	})
	return obj
}
