package runtime

import (
	"fmt"
)

// DynamicMemoryFrame is a memory frame, representing a piece of memory for a scope.
type DynamicMemoryFrame struct {
	Name        string
	Barrier     bool // symbol resolution skips frames below, except the global one
	SymbolTable *SymbolTable
	Parent      *DynamicMemoryFrame
	depth       int
}

// NewDynamicMemoryFrame creates a new memory frame.
func NewDynamicMemoryFrame(nm string, barrier bool) *DynamicMemoryFrame {
	mf := &DynamicMemoryFrame{
		Name:        nm,
		Barrier:     barrier,
		SymbolTable: NewSymbolTable(),
	}
	return mf
}

func (mf *DynamicMemoryFrame) String() string {
	return fmt.Sprintf("<mem %s #%d>", mf.Name, mf.depth)
}

// IsRoot is a predicate: Is this a root frame?
func (mf *DynamicMemoryFrame) IsRoot() bool {
	return (mf.Parent == nil)
}

// ---------------------------------------------------------------------------

// FrameStack is a (call-)stack of memory frames.
type FrameStack struct {
	memoryFrameBase *DynamicMemoryFrame
	memoryFrameTOS  *DynamicMemoryFrame
}

// Current gets the current memory frame of a stack (TOS).
func (mfst *FrameStack) Current() *DynamicMemoryFrame {
	if mfst.memoryFrameTOS == nil {
		panic("attempt to access memory frame from empty stack")
	}
	return mfst.memoryFrameTOS
}

// Globals gets the outermost memory frame, containing global symbols.
func (mfst *FrameStack) Globals() *DynamicMemoryFrame {
	if mfst.memoryFrameBase == nil {
		panic("attempt to access global memory frame from empty stack")
	}
	return mfst.memoryFrameBase
}

// Level returns the depth of the stack. The global frame has level 0.
func (mfst *FrameStack) Level() int {
	return mfst.Current().depth
}

// PushNewMemoryFrame pushes a new memory frame as TOS.
// A frame is constructed, having the recent TOS as its parent.
// The first frame pushed becomes the global frame.
func (mfst *FrameStack) PushNewMemoryFrame(nm string, barrier bool) *DynamicMemoryFrame {
	mfp := mfst.memoryFrameTOS
	newmf := NewDynamicMemoryFrame(nm, barrier)
	newmf.Parent = mfp
	if mfp == nil { // the new frame is the global frame
		mfst.memoryFrameBase = newmf // make new mf anchor
	} else {
		newmf.depth = mfp.depth + 1
	}
	mfst.memoryFrameTOS = newmf // new frame now TOS
	tracer().Debugf("pushing new memory frame %v", newmf)
	return newmf
}

// PopMemoryFrame pops the top-most memory frame. Returns the popped frame.
// Popping the global frame is an error of the client and will panic.
func (mfst *FrameStack) PopMemoryFrame() *DynamicMemoryFrame {
	if mfst.memoryFrameTOS == nil || mfst.memoryFrameTOS.IsRoot() {
		panic("attempt to pop global memory frame from call stack")
	}
	mf := mfst.memoryFrameTOS
	tracer().Debugf("popping memory frame %v", mf)
	mfst.memoryFrameTOS = mfst.memoryFrameTOS.Parent
	return mf
}

// Unwind pops memory frames until the stack has the given level.
// Levels at or above the current one are a no-op.
func (mfst *FrameStack) Unwind(level int) {
	if level < 0 {
		panic("attempt to unwind memory frames below the global frame")
	}
	for mfst.Level() > level {
		mfst.PopMemoryFrame()
	}
}

// Suspend hides all frames above the global frame. Callers receive the hidden
// top of stack and have to hand it to Resume to make the frames visible again.
// In between, new frames are pushed on top of the global frame.
func (mfst *FrameStack) Suspend() *DynamicMemoryFrame {
	tos := mfst.Current()
	mfst.memoryFrameTOS = mfst.Globals()
	tracer().Debugf("suspending memory frames above %v", tos)
	return tos
}

// Resume re-installs a top of stack previously returned by Suspend.
func (mfst *FrameStack) Resume(tos *DynamicMemoryFrame) {
	if tos == nil {
		panic("attempt to resume a nil memory frame")
	}
	mfst.memoryFrameTOS = tos
}

// Resolve looks up a symbol, starting at TOS. If a barrier frame is passed
// without finding the symbol, search continues at the global frame.
func (mfst *FrameStack) Resolve(name string) (interface{}, bool) {
	mf := mfst.Current()
	for mf != nil {
		if v, ok := mf.SymbolTable.Resolve(name); ok {
			return v, true
		}
		if mf.Barrier && mf.Parent != nil {
			return mfst.Globals().SymbolTable.Resolve(name)
		}
		mf = mf.Parent
	}
	return nil, false
}

// ResolveLocal looks up a symbol like Resolve, but ignores the global frame.
func (mfst *FrameStack) ResolveLocal(name string) (interface{}, bool) {
	mf := mfst.Current()
	for mf != nil && !mf.IsRoot() {
		if v, ok := mf.SymbolTable.Resolve(name); ok {
			return v, true
		}
		if mf.Barrier {
			break
		}
		mf = mf.Parent
	}
	return nil, false
}

// Define binds a symbol in the TOS frame, shadowing bindings in frames below.
func (mfst *FrameStack) Define(name string, value interface{}) {
	mfst.Current().SymbolTable.Define(name, value)
}
