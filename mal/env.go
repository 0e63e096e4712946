package mal

import (
	"github.com/npillmayer/gomal/runtime"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Env is a typed view onto the frame stack of a runtime environment.
type Env struct {
	frames *runtime.FrameStack
}

// NewEnv wraps a frame stack.
func NewEnv(frames *runtime.FrameStack) *Env {
	return &Env{frames: frames}
}

// Get resolves a symbol. Resolution stops at the innermost function call
// frame and continues with the global bindings.
func (env *Env) Get(name string) (Value, bool) {
	v, ok := env.frames.Resolve(name)
	if !ok {
		return nil, false
	}
	return v.(Value), true
}

// Set binds a symbol in the innermost frame.
func (env *Env) Set(name string, v Value) {
	env.frames.Define(name, v)
}

// SetGlobal binds a symbol in the global frame.
func (env *Env) SetGlobal(name string, v Value) {
	env.frames.Globals().SymbolTable.Define(name, v)
}

// Push opens a nested scope.
func (env *Env) Push(name string) {
	env.frames.PushNewMemoryFrame(name, false)
}

// PushCall opens the scope of a function call. Bindings of the caller are not
// visible from within.
func (env *Env) PushCall(name string) {
	env.frames.PushNewMemoryFrame(name, true)
}

// Pop closes the innermost scope.
func (env *Env) Pop() {
	env.frames.PopMemoryFrame()
}

// Level is the number of scopes above the global frame.
func (env *Env) Level() int {
	return env.frames.Level()
}

// Unwind closes scopes until Level equals level.
func (env *Env) Unwind(level int) {
	env.frames.Unwind(level)
}

// local resolves a symbol without consulting the global frame.
func (env *Env) local(name string) (Value, bool) {
	v, ok := env.frames.ResolveLocal(name)
	if !ok {
		return nil, false
	}
	return v.(Value), true
}

// global runs f with only the global frame visible. Frames pushed by f are
// stacked onto the global frame.
func (env *Env) global(f func() (Value, error)) (Value, error) {
	tos := env.frames.Suspend()
	defer env.frames.Resume(tos)
	return f()
}
