package runtime

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNewSymTab(t *testing.T) {
	symtab := NewSymbolTable()
	if symtab == nil {
		t.Error("no symbol table created")
	}
}

func TestDefineAndResolve(t *testing.T) {
	symtab := NewSymbolTable()
	symtab.Define("new-sym", 5)
	if v, ok := symtab.Resolve("new-sym"); !ok || v != 5 {
		t.Error("cannot find stored symbol in table")
	}
	if old := symtab.Define("new-sym", 6); old != 5 {
		t.Error("symbol should have been replaced")
	}
	if symtab.Define("", 7) != nil || symtab.Size() != 1 {
		t.Error("empty names should be ignored")
	}
}

func TestSymbolsInOrder(t *testing.T) {
	symtab := NewSymbolTable()
	symtab.Define("b", 2)
	symtab.Define("a", 1)
	symtab.Define("c", 3)
	var names string
	symtab.Each(func(n string, v interface{}) { names += n })
	if names != "abc" {
		t.Errorf("expected symbols in order abc, have %s", names)
	}
}

func TestFrameLevels(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.runtime")
	defer teardown()
	//
	rt := NewRuntimeEnvironment()
	fs := rt.Frames
	if fs.Level() != 0 {
		t.Fatalf("expected global level 0, have %d", fs.Level())
	}
	fs.PushNewMemoryFrame("let", false)
	fs.PushNewMemoryFrame("let", false)
	if fs.Level() != 2 {
		t.Errorf("expected level 2, have %d", fs.Level())
	}
	fs.Unwind(0)
	if fs.Level() != 0 || fs.Current() != fs.Globals() {
		t.Errorf("expected unwinding to global frame, level is %d", fs.Level())
	}
}

func TestPopGlobalFramePanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.runtime")
	defer teardown()
	//
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected popping the global frame to panic")
		}
	}()
	rt := NewRuntimeEnvironment()
	rt.Frames.PopMemoryFrame()
}

func TestShadowing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.runtime")
	defer teardown()
	//
	fs := NewRuntimeEnvironment().Frames
	fs.Define("x", 1)
	fs.PushNewMemoryFrame("let", false)
	fs.Define("x", 2)
	if v, _ := fs.Resolve("x"); v != 2 {
		t.Errorf("expected inner binding x=2, have %v", v)
	}
	fs.PopMemoryFrame()
	if v, _ := fs.Resolve("x"); v != 1 {
		t.Errorf("expected outer binding x=1, have %v", v)
	}
}

func TestBarrierFrames(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.runtime")
	defer teardown()
	//
	fs := NewRuntimeEnvironment().Frames
	fs.Define("g", "global")
	fs.PushNewMemoryFrame("let", false)
	fs.Define("local", 1)
	fs.PushNewMemoryFrame("call", true)
	if _, ok := fs.Resolve("local"); ok {
		t.Errorf("expected barrier frame to hide caller's local binding")
	}
	if v, ok := fs.Resolve("g"); !ok || v != "global" {
		t.Errorf("expected global binding to be visible behind barrier")
	}
	if _, ok := fs.ResolveLocal("g"); ok {
		t.Errorf("expected ResolveLocal to ignore global frame")
	}
	fs.Define("p", 3)
	if v, ok := fs.ResolveLocal("p"); !ok || v != 3 {
		t.Errorf("expected ResolveLocal to find p=3")
	}
}

func TestSuspendResume(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.runtime")
	defer teardown()
	//
	fs := NewRuntimeEnvironment().Frames
	fs.PushNewMemoryFrame("let", false)
	fs.Define("x", 1)
	tos := fs.Suspend()
	if fs.Level() != 0 {
		t.Errorf("expected suspended stack at level 0, is %d", fs.Level())
	}
	if _, ok := fs.Resolve("x"); ok {
		t.Errorf("expected local x to be hidden while suspended")
	}
	fs.Define("y", 2) // goes to global frame
	fs.Resume(tos)
	if fs.Level() != 1 {
		t.Errorf("expected level 1 after resume, is %d", fs.Level())
	}
	if v, _ := fs.Resolve("y"); v != 2 {
		t.Errorf("expected global y=2 after resume")
	}
}

func TestAtomTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.runtime")
	defer teardown()
	//
	at := NewAtomTable()
	a := at.Alloc("first")
	b := at.Alloc("second")
	if a != 0 || b != 1 || at.Len() != 2 {
		t.Errorf("expected ascending atom indices 0 and 1, have %d, %d", a, b)
	}
	if !at.Set(a, "changed") {
		t.Errorf("expected atom #0 to be settable")
	}
	if v, ok := at.Get(a); !ok || v != "changed" {
		t.Errorf("expected atom #0 to hold 'changed', has %v", v)
	}
	if _, ok := at.Get(7); ok || at.Set(-1, 0) {
		t.Errorf("expected access to unallocated atoms to fail")
	}
}
