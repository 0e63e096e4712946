package mal

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"
	"time"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/

func prStr(intp *Interpreter, args []Value) (Value, error) {
	return Str(PrStrs(args, true, " ")), nil
}

func str(intp *Interpreter, args []Value) (Value, error) {
	return Str(PrStrs(args, false, "")), nil
}

func printString(intp *Interpreter, args []Value) (Value, error) {
	fmt.Fprintln(intp.out, PrStrs(args, false, " "))
	return Nil, nil
}

func prn(intp *Interpreter, args []Value) (Value, error) {
	fmt.Fprintln(intp.out, PrStrs(args, true, " "))
	return Nil, nil
}

func printLine(intp *Interpreter, args []Value) (Value, error) {
	return printString(intp, args)
}

func stringArg(name string, v Value) (string, error) {
	s, ok := v.(Str)
	if !ok {
		return "", typeError(name, "a string", v)
	}
	return string(s), nil
}

// readline handles (readline prompt). It returns nil at end of input.
func readline(intp *Interpreter, args []Value) (Value, error) {
	if len(args) == 1 {
		prompt, err := stringArg("readline", args[0])
		if err != nil {
			return nil, err
		}
		fmt.Fprint(intp.out, prompt)
	}
	line, err := intp.in.ReadString('\n')
	if err == io.EOF && line == "" {
		return Nil, nil
	} else if err != nil && err != io.EOF {
		return nil, Errorf(IOError, "readline: %v", err)
	}
	return Str(strings.TrimRight(line, "\r\n")), nil
}

func slurp(intp *Interpreter, args []Value) (Value, error) {
	path, err := stringArg("slurp", args[0])
	if err != nil {
		return nil, err
	}
	content, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, Errorf(IOError, "slurp: %v", err)
	}
	return Str(content), nil
}

// readString reads the first form of a string, nil if there is none.
func readString(intp *Interpreter, args []Value) (Value, error) {
	src, err := stringArg("read-string", args[0])
	if err != nil {
		return nil, err
	}
	forms, err := intp.reader.Read(src)
	if err != nil {
		return nil, err
	}
	if len(forms) == 0 {
		return Nil, nil
	}
	return forms[0], nil
}

func loadFile(intp *Interpreter, args []Value) (Value, error) {
	path, err := stringArg("load-file", args[0])
	if err != nil {
		return nil, err
	}
	return intp.LoadFile(path)
}

func typeStr(intp *Interpreter, args []Value) (Value, error) {
	return Str(kindName(args[0])), nil
}

func exit(intp *Interpreter, args []Value) (Value, error) {
	code := 0
	if len(args) == 1 {
		n, ok := args[0].(Int)
		if !ok {
			return nil, typeError("exit", "an integer status", args[0])
		}
		code = int(n)
	}
	fmt.Fprintln(intp.out, "Have a nice day!")
	intp.exit(code)
	return Nil, nil
}

func timeMs(intp *Interpreter, args []Value) (Value, error) {
	return Int(time.Now().UnixNano() / int64(time.Millisecond)), nil
}
