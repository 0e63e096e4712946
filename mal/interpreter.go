package mal

import (
	"bufio"
	"io"
	"io/ioutil"
	"os"

	"github.com/npillmayer/gomal/runtime"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// Reader converts source text into forms.
type Reader interface {
	Read(text string) ([]Value, error)
}

// Interpreter owns the environment and the atom table of a session.
// An interpreter must not be used by more than one goroutine at a time.
type Interpreter struct {
	rt      *runtime.Runtime
	env     *Env
	reader  Reader
	in      *bufio.Reader
	out     io.Writer
	exit    func(int)
	lastErr error
}

// Option configures an interpreter.
type Option func(*Interpreter)

// WithArgs binds *ARGV* to a list of strings.
func WithArgs(args []string) Option {
	return func(intp *Interpreter) {
		argv := make(List, len(args))
		for i, a := range args {
			argv[i] = Str(a)
		}
		intp.env.SetGlobal("*ARGV*", argv)
	}
}

// WithInput sets the stream `readline` reads from. Default is stdin.
func WithInput(r io.Reader) Option {
	return func(intp *Interpreter) {
		intp.in = bufio.NewReader(r)
	}
}

// WithOutput sets the stream printing built-ins write to. Default is stdout.
func WithOutput(w io.Writer) Option {
	return func(intp *Interpreter) {
		intp.out = w
	}
}

// WithExit replaces the function `exit` calls to terminate the process.
func WithExit(exit func(int)) Option {
	return func(intp *Interpreter) {
		intp.exit = exit
	}
}

// NewInterpreter creates an interpreter with every built-in bound in the
// global frame.
func NewInterpreter(reader Reader, opts ...Option) *Interpreter {
	rt := runtime.NewRuntimeEnvironment()
	intp := &Interpreter{
		rt:     rt,
		env:    NewEnv(rt.Frames),
		reader: reader,
		in:     bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		exit:   os.Exit,
	}
	for op := BuiltIn(0); op < builtInCount; op++ {
		intp.env.SetGlobal(op.Name(), op)
	}
	intp.env.SetGlobal("*ARGV*", List{})
	for _, opt := range opts {
		opt(intp)
	}
	return intp
}

// Env returns the environment of the interpreter.
func (intp *Interpreter) Env() *Env {
	return intp.env
}

// LastError returns the error of the most recent failed call to Rep,
// or nil.
func (intp *Interpreter) LastError() error {
	return intp.lastErr
}

// Rep reads source text and evaluates its forms in order. It returns the
// value of the last form, nil for empty input, or the first error.
func (intp *Interpreter) Rep(src string) (Value, error) {
	v, err := intp.rep(src)
	if err != nil {
		intp.lastErr = err
		tracer().Infof("%v: %v", KindOf(err), err)
	}
	return v, err
}

func (intp *Interpreter) rep(src string) (Value, error) {
	forms, err := intp.reader.Read(src)
	if err != nil {
		return nil, err
	}
	var result Value = Nil
	for _, form := range forms {
		if result, err = intp.Eval(form); err != nil {
			return nil, err
		}
	}
	return result, nil
}

// REP is Rep with the result or error rendered as a single line.
func (intp *Interpreter) REP(src string) string {
	v, err := intp.Rep(src)
	if err != nil {
		return ErrorText(err)
	}
	return PrStr(v, true)
}

// ErrorText renders err the way the interpreter reports uncaught errors.
func ErrorText(err error) string {
	if KindOf(err) == ParseError {
		return "Parse error: " + err.Error()
	}
	return "Runtime error: " + err.Error()
}

// LoadFile evaluates the forms of a source file. Definitions go to the
// global frame.
func (intp *Interpreter) LoadFile(path string) (Value, error) {
	src, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, Errorf(IOError, "load-file: %v", err)
	}
	tracer().Infof("loading %s", path)
	return intp.env.global(func() (Value, error) {
		return intp.rep(string(src))
	})
}

// LoadPrelude loads a file of definitions, if it exists.
func (intp *Interpreter) LoadPrelude(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		tracer().Infof("warning: prelude %s not found", path)
		return nil
	}
	_, err := intp.LoadFile(path)
	return err
}
