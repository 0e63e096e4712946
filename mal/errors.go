package mal

import (
	"errors"
	"fmt"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

// ErrorKind categorizes evaluation errors.
type ErrorKind int

// Kinds of errors
const (
	RuntimeError  ErrorKind = iota // unspecific
	ParseError                     // malformed source text
	UnknownSymbol                  // symbol without binding
	ArityError                     // wrong number of arguments
	TypeError                      // argument of wrong kind
	DomainError                    // argument out of range
	Thrown                         // raised by throw
	IOError                        // file or stream failure
	Fatal                          // broken evaluator invariant
)

func (k ErrorKind) String() string {
	switch k {
	case ParseError:
		return "parse error"
	case UnknownSymbol:
		return "unknown symbol"
	case ArityError:
		return "arity error"
	case TypeError:
		return "type error"
	case DomainError:
		return "domain error"
	case Thrown:
		return "thrown"
	case IOError:
		return "I/O error"
	case Fatal:
		return "fatal error"
	}
	return "runtime error"
}

// Error is the error type of the reader and the evaluator. Errors raised by
// `throw` carry the thrown value.
type Error struct {
	Kind  ErrorKind
	Msg   string
	Value Value
}

func (e *Error) Error() string {
	if e.Kind == Thrown {
		return PrStr(e.Value, true)
	}
	return e.Msg
}

// Errorf creates an error of a given kind with a formatted message.
func Errorf(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Throw creates an error carrying a user value.
func Throw(v Value) *Error {
	return &Error{Kind: Thrown, Value: v}
}

// Caught returns the value a catch* clause binds for err: the thrown value
// for errors raised by throw, the error message as a string otherwise.
func Caught(err error) Value {
	var merr *Error
	if errors.As(err, &merr) && merr.Kind == Thrown {
		if merr.Value == nil {
			return Nil
		}
		return merr.Value
	}
	return Str(err.Error())
}

// KindOf returns the error kind of err, RuntimeError for foreign errors.
func KindOf(err error) ErrorKind {
	var merr *Error
	if errors.As(err, &merr) {
		return merr.Kind
	}
	return RuntimeError
}

func arityError(name string, got int, expected string) *Error {
	return Errorf(ArityError, "wrong number of arguments to '%s': got %d, expected %s",
		name, got, expected)
}

func typeError(name string, expected string, v Value) *Error {
	return Errorf(TypeError, "'%s' expected %s, got %s %s", name, expected,
		kindName(v), PrStr(v, true))
}

func kindName(v Value) string {
	if v == nil {
		return NilKind.String()
	}
	if f, ok := v.(*Function); ok && f.IsMacro {
		return "macro"
	}
	return v.Kind().String()
}
