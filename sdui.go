// Package sdui renders server-driven UI screens: versioned JSON schemas
// decoded into component trees and interpreted, node by node, into live
// platform views. The backend decides what a screen contains; the app binary
// only decides how each component kind looks, by supplying a Platform.
//
// The engine is built to keep rendering even when the schema is wrong. A
// node missing a required attribute becomes a small inline error view while
// its siblings render normally; a screen whose version is newer than the
// binary understands becomes a single upgrade notice; an action id the app
// never registered renders its button normally and ignores the tap.
//
// Typical use:
//
//	screen, err := sdui.DecodeScreen(data)
//	if err != nil {
//		// malformed document, nothing renderable
//	}
//	ctx := sdui.NewContext()
//	ctx.Records.Set(jobs)
//	ctx.Accessors["customer"] = func(r sdui.Record) any { return r.(*Job).Customer }
//	ctx.Actions.Register("completeJob", markComplete)
//
//	engine := sdui.New(platform)
//	view := engine.RenderScreen(screen, ctx)
//
// Rendering is synchronous, single-threaded, and free of I/O; re-rendering
// is just calling RenderScreen again with the updated context. The component
// cache is the only internally synchronized piece, so a host timer may sweep
// it while the UI thread renders.
package sdui

import "go.uber.org/zap"

// DefaultCacheCapacity is the subtree cache size an Engine starts with.
const DefaultCacheCapacity = 128

// Engine interprets screens for one platform. Construct with New, configure
// with the chainable With methods, then call RenderScreen per frame.
type Engine struct {
	platform Platform
	cache    *ComponentCache
	log      *zap.Logger
}

// New creates an engine rendering through the given platform, with a
// default-capacity cache and no logging. The platform must be non-nil.
func New(p Platform) *Engine {
	return &Engine{
		platform: p,
		cache:    NewComponentCache(DefaultCacheCapacity),
		log:      zap.NewNop(),
	}
}

// WithLogger routes engine diagnostics (invalid nodes, version fallbacks,
// unregistered actions) to the given logger. Logging never changes what
// renders.
func (e *Engine) WithLogger(log *zap.Logger) *Engine {
	if log != nil {
		e.log = log
	}
	return e
}

// WithCache replaces the subtree cache with one of the given capacity.
// Zero or negative disables memoization.
func (e *Engine) WithCache(capacity int) *Engine {
	e.cache = NewComponentCache(capacity)
	return e
}

// Cache exposes the engine's subtree cache for host-driven sweeps,
// invalidation, and diagnostics.
func (e *Engine) Cache() *ComponentCache {
	return e.cache
}

// Platform returns the platform this engine renders through.
func (e *Engine) Platform() Platform {
	return e.platform
}
