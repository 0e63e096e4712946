package main

import (
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/gomal/mal"
	"github.com/npillmayer/gomal/mal/mallang"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

const contPrompt = "  ... "

// main() starts an interactive CLI ("M.REPL"), where users may enter MAL
// forms. M.REPL evaluates the forms and prints out the result.
//
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	cfg := defaultConfig()
	conff := flag.String("config", "", "YAML configuration file")
	flag.String("trace", cfg.Trace, "Trace level [Debug|Info|Error]")
	flag.String("prelude", cfg.Prelude, "Prelude to load at start-up")
	flag.String("init", "", "Initial load")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelInfo) // will set the correct level later
	pterm.Info.Println("Welcome to M.REPL")   // colored welcome message
	if *conff != "" {
		if err := loadConfig(*conff, &cfg); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(2)
		}
	}
	applyFlags(&cfg)
	tracer().Infof("Trace level is %s", cfg.Trace)
	setTraceLevel(traceLevel(cfg.Trace)) // now set the user supplied level
	//
	// set up REPL
	repl, err := readline.NewEx(&readline.Config{
		Prompt:      cfg.Prompt,
		HistoryFile: cfg.History,
	})
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	exit := func(code int) {
		repl.Close()
		os.Exit(code)
	}
	intp := &Intp{
		prompt: cfg.Prompt,
		repl:   repl,
		lisp:   mallang.NewInterpreter(mal.WithArgs(flag.Args()), mal.WithExit(exit)),
	}
	if err := intp.lisp.LoadPrelude(cfg.Prelude); err != nil {
		pterm.Error.Println(mal.ErrorText(err))
	}
	//
	// load an init file and start receiving forms
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.loadInitFile(cfg.Init)         // init file name provided by flag
	intp.REPL()                         // go into interactive mode
}

// applyFlags copies flags set on the command line into cfg.
func applyFlags(cfg *Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trace":
			cfg.Trace = f.Value.String()
		case "prelude":
			cfg.Prelude = f.Value.String()
		case "init":
			cfg.Init = f.Value.String()
		}
	})
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	prompt string
	repl   *readline.Instance
	lisp   *mal.Interpreter
}

func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	if _, err := intp.lisp.LoadFile(filename); err != nil {
		tracer().Errorf("Error loading init file %s: %v", filename, err)
		pterm.Error.Println(mal.ErrorText(err))
	}
}

// REPL starts interactive mode. Input lines are collected until an empty
// line is entered.
func (intp *Intp) REPL() {
	var input []string
	for {
		line, err := intp.repl.Readline()
		if err == readline.ErrInterrupt { // <ctrl>C drops collected input
			input = input[:0]
			intp.repl.SetPrompt(intp.prompt)
			continue
		} else if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) != "" {
			input = append(input, line)
			intp.repl.SetPrompt(contPrompt)
			continue
		}
		if len(input) == 0 {
			continue
		}
		intp.Eval(strings.Join(input, "\n"))
		input = input[:0]
		intp.repl.SetPrompt(intp.prompt)
	}
	intp.repl.Close()
	println("Good bye!")
}

// Eval evaluates collected input and prints the result.
//
func (intp *Intp) Eval(text string) {
	if src := strings.TrimSpace(text); strings.HasPrefix(src, ":ast") {
		intp.printTree(strings.TrimPrefix(src, ":ast"))
		return
	}
	result, err := intp.lisp.Rep(text)
	if err != nil {
		pterm.Error.Println(mal.ErrorText(err))
		return
	}
	pterm.Info.Println(mal.PrStr(result, true))
}

// printTree displays a form as a tree on the terminal.
func (intp *Intp) printTree(src string) {
	form, err := mallang.ReadForm(src)
	if err != nil {
		pterm.Error.Println(mal.ErrorText(err))
		return
	}
	ll := leveledElem(form, pterm.LeveledList{}, 0)
	tracer().Debugf("|ll| = %d, ll = %v", len(ll), ll)
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveledElem(v mal.Value, ll pterm.LeveledList, level int) pterm.LeveledList {
	var children []mal.Value
	text := mal.PrStr(v, true)
	switch x := v.(type) {
	case mal.List:
		text, children = "( )", x
	case mal.Vector:
		text, children = "[ ]", x
	case *mal.Dict:
		text = "{ }"
		x.Each(func(k mal.DictKey, val mal.Value) {
			children = append(children, k.Value(), val)
		})
	}
	ll = append(ll, pterm.LeveledListItem{Level: level, Text: text})
	for _, child := range children {
		ll = leveledElem(child, ll, level+1)
	}
	return ll
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range []string{"gomal.eval", "gomal.reader", "gomal.scanner", "gomal.runtime"} {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
