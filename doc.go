// Package fgui is the event core of a retained-mode UI: a node tree, typed
// event listeners, and a dispatcher that walks capture, target and bubble
// phases over the tree.
//
// # Listening
//
// Every [Node] owns one [EventBridge] per event type. Applications reach it
// through an [EventListener], either by type name or through a typed
// accessor:
//
//	onClick := fgui.NewCallback1(func(ctx *fgui.EventContext) {
//		fmt.Println("clicked", ctx.Sender().Name)
//	})
//	btn.OnClick().Add(onClick)
//	btn.On("onSubmit").Add0(fgui.NewCallback0(save))
//
// Callbacks are compared by pointer, so keep the value returned by
// [NewCallback1] or [NewCallback0] to remove it later. Adding the same
// callback twice is a no-op.
//
// # Dispatch
//
// [Node.DispatchEvent] runs the capture handlers of the node's ancestors
// (root first) and then the node's own handlers. [Node.BubbleEvent] adds the
// bubble phase back up to the root. [Node.BroadcastEvent] reaches every node
// of a subtree in pre-order. Handlers receive a pooled [EventContext] that is
// only valid for the duration of the call:
//
//	panel.OnClick().AddCapture(fgui.NewCallback1(func(ctx *fgui.EventContext) {
//		if locked {
//			ctx.StopPropagation()
//		}
//	}))
//
// All dispatch calls report whether a handler called
// [EventContext.PreventDefault].
//
// # Stage
//
// A [Stage] owns the root node and turns raw pointer state into touch,
// click, roll-over, drag and drop events. Hosts call [Stage.HandlePointer]
// per device and [Stage.Update] once per frame; package ebitenhost does both
// for Ebitengine. Tunables come from [UIConfig], loadable from YAML or TOML
// with [LoadUIConfig].
//
// The package is not safe for concurrent use. Dispatch, the context pool and
// the node tree belong to the UI goroutine.
//
// Scripted handlers are bridged by the luabind and jsbind subpackages, and
// interaction events can be mirrored into a Donburi world through the
// fgui/ecs module.
package fgui
