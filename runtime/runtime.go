/*
Package runtime implements an interpreter runtime, consisting of
a stack of memory frames with symbol tables, and a table of mutable atoms.

For a thorough discussion of an interpreter's runtime environment, refer to
"Language Implementation Patterns" by Terence Parr.

Memory Frames

Memory frames are used by an interpreter to allocate local storage
for active scopes. The bottommost frame holds global symbols. Frames may be
marked as barriers: symbol resolution starting above a barrier does not see
the frames below it, except for the global frame. Function calls push
barrier frames, making scoping lexical instead of dynamic.

Atoms

Atoms are indexed slots holding mutable values. Atom indices are handed out
in ascending order and are never re-used during the lifetime of a runtime.


----------------------------------------------------------------------

BSD License

Copyright (c) 2017-21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software or the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package runtime

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'gomal.runtime'.
func tracer() tracing.Trace {
	return tracing.Select("gomal.runtime")
}

// Runtime is a type implementing a runtime environment for an interpreter.
type Runtime struct {
	Frames *FrameStack // runtime stack of memory frames
	Atoms  *AtomTable  // mutable atom slots
}

// NewRuntimeEnvironment constructs a new runtime environment, initialized with
// a global memory frame and an empty atom table.
func NewRuntimeEnvironment() *Runtime {
	rt := &Runtime{}
	rt.Frames = new(FrameStack)                   // initialize memory frame stack
	rt.Frames.PushNewMemoryFrame("global", false) // global memory
	rt.Atoms = NewAtomTable()
	return rt
}
