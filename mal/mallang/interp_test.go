package mallang

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/gomal/mal"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// repAll feeds inputs to REP one at a time and compares the printed results.
func repAll(t *testing.T, intp *mal.Interpreter, inputs []string, outputs []string) {
	t.Helper()
	for i, input := range inputs {
		if got := intp.REP(input); got != outputs[i] {
			t.Errorf("%s: expected %s, got %s", input, outputs[i], got)
		}
		if intp.Env().Level() != 0 {
			t.Errorf("%s: expected env level 0 after evaluation, is %d", input, intp.Env().Level())
		}
	}
}

func TestScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.eval")
	defer teardown()
	//
	intp := NewInterpreter()
	repAll(t, intp, []string{
		"(+ 1 2 3)",
		"(let* [a 1 b (+ a 1)] (* a b))",
		"(def! sq (fn* [n] (* n n)))",
		"(sq 9)",
		"(defmacro! unless (fn* [p a b] (list 'if p b a)))",
		"(unless false 1 2)",
		"`(1 ~(+ 1 1) ~@(list 3 4) 5)",
		"(try* (throw {:code 42}) (catch* e (get e :code)))",
	}, []string{
		"6", "2", "sq", "81", "unless", "1", "(1 2 3 4 5)", "42",
	})
}

func TestBoundaryCases(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.eval")
	defer teardown()
	//
	tracing.Select("gomal.eval").SetTraceLevel(tracing.LevelError)
	tracing.Select("gomal.runtime").SetTraceLevel(tracing.LevelError)
	intp := NewInterpreter()
	repAll(t, intp, []string{
		"(/ 1 0)",
		"(nth (list 1 2) 2)",
		"(nth [1 2] -1)",
		"(-)",
		"(- 5)",
		"(- 5 1 1)",
		"((fn* [a & rest] rest) 1 2 3)",
		"((fn* [a & rest] rest) 1)",
		"(def! f (fn* [n] (if (< n 2) n (+ (f (- n 1)) (f (- n 2))))))",
		"(f 15)",
		"(def! loop (fn* [n] (if (= n 0) :done (loop (- n 1)))))",
		"(loop 100000)",
		"(undefined-thing 1)",
		`(+ 1 "a")`,
		"(1 2)",
		`"abc`,
		"(def! outer (fn* [] (do (def! inner (fn* [n] (if (= n 0) :z (inner (- n 1))))) (inner 3))))",
		"(outer)",
	}, []string{
		"Runtime error: division by zero",
		"Runtime error: nth: index 2 out of bounds for sequence of length 2",
		"Runtime error: nth: index -1 out of bounds for sequence of length 2",
		"Runtime error: wrong number of arguments to '-': got 0, expected at least 1",
		"-5",
		"3",
		"(2 3)",
		"()",
		"f",
		"610",
		"loop",
		":done",
		"Runtime error: Unknown symbol: undefined-thing",
		`Runtime error: '+' expected an integer, got string "a"`,
		"Runtime error: not callable: 1",
		"Parse error: unterminated string starting at 0",
		"outer",
		"Runtime error: Unknown symbol: inner",
	})
}

func TestLaws(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.eval")
	defer teardown()
	//
	intp := NewInterpreter()
	repAll(t, intp, []string{
		"(= (list 1 2 [3]) (vector 1 2 (list 3)))",
		"(let* [v {:a [1 \"x\"]}] (= v (read-string (pr-str v))))",
		"(deref (atom 7))",
		"(let* [a (atom 1)] (do (reset! a 2) (deref a)))",
		"(= (apply + (list 1 2 3)) (+ 1 2 3))",
		"(apply + 1 2 [3 4])",
		"(let* [a 1 b 2] (+ a b))",
		"a",
		"(defmacro! swap-args (fn* [f x y] (list f y x)))",
		"(macroexpand-1 (swap-args - (+ 1 1) 5))",
		"(swap-args - 1 5)",
		"(macroexpand-1 (+ 1 2))",
	}, []string{
		"true", "true", "7", "2", "true", "10", "3",
		"Runtime error: Unknown symbol: a",
		"swap-args",
		"(- 5 (+ 1 1))",
		"4",
		"(+ 1 2)",
	})
}

func TestTryCatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.eval")
	defer teardown()
	//
	intp := NewInterpreter()
	repAll(t, intp, []string{
		`(try* (throw "boom") (catch* e (str "caught " e)))`,
		`(try* (nth [] 0) (catch* e e))`,
		`(try* (+ 1 1) (catch* e :never))`,
		`(try* (throw [1 2]) (catch* e (first (rest e))))`,
		`(try* (abc) (catch* e (do (def! caught e) :ok)))`,
		`caught`,
		`e`,
		`(throw :up)`,
		`(try* (throw 1) (catch* e (try* (throw (+ e 1)) (catch* e (+ e 1)))))`,
	}, []string{
		`"caught boom"`,
		`"nth: index 0 out of bounds for sequence of length 0"`,
		"2",
		"2",
		":ok",
		"Runtime error: Unknown symbol: caught",
		"Runtime error: Unknown symbol: e",
		"Runtime error: :up",
		"3",
	})
	// the last failing input is (throw :up)
	if mal.KindOf(intp.LastError()) != mal.Thrown {
		t.Errorf("expected last error to be a thrown value, is %v", intp.LastError())
	}
}

func TestQuasiquote(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.eval")
	defer teardown()
	//
	intp := NewInterpreter()
	repAll(t, intp, []string{
		"(def! xs (list 1 2))",
		"`x",
		"`[a ~(first xs) ~@xs]",
		"`(~@xs)",
		"`~xs",
		"`(a (b ~@xs) c)",
		"`(~@nil)",
		"`(1 ~@2)",
	}, []string{
		"xs",
		"x",
		"(a 1 1 2)",
		"(1 2)",
		"(1 2)",
		"(a (b 1 2) c)",
		"()",
		"Runtime error: 'splice-unquote' expected a sequence, got integer 2",
	})
}

func TestBuiltins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.eval")
	defer teardown()
	//
	intp := NewInterpreter()
	repAll(t, intp, []string{
		"(first nil)",
		"(first [])",
		"(rest [1 2 3])",
		"(concat [1] (list 2) nil [])",
		"(insert 0 [1 2])",
		"(insert 9 (list 1 2) 1)",
		"(seq [])",
		"(seq [1 2])",
		`(seq "ab")`,
		"(count {:a 1})",
		"(empty? nil)",
		`(symbol "abc")`,
		`(keyword "abc")`,
		`(assoc {:a 1} "b" 2 :a 3)`,
		`(dissoc {:a 1 :b 2} :a)`,
		`(get {"x" 1} "x")`,
		`(get {:x 1} "x")`,
		`(contains? {:x nil} :x)`,
		`(keys {:a 1 "b" 2})`,
		`(vals {:a 1 "b" 2})`,
		`(get {:a 1} 1)`,
		`(pr-str "a" :b [1])`,
		`(str "a" :b [1 "c"])`,
		`(type-str (fn* [] 1))`,
		`(type-str unless-not-defined)`,
		`(type-str +)`,
		`(let* [a (atom 1)] (swap! a + 10))`,
		`(atom-at 0)`,
		`(atom-at 99)`,
		`(eval (list + 1 2))`,
		`(let* [x 1] (eval 'x))`,
		`(read-string "(1 2)")`,
		`(read-string "")`,
		`(> (time-ms) 0)`,
		`(if nil 1)`,
		`(do)`,
		`(= 1 1 1)`,
		`(<= 1 1 2)`,
		`(>= 3 2 2)`,
		`(let* [k :a] {k 1})`,
		`{(str "a") (+ 1 1)}`,
		`(hash-map :a 1 "b" 2)`,
		`(hash-map)`,
		`(hash-map :a 1 :b)`,
		`(hash-map 1 2)`,
		`(fn* [a & b c] a)`,
		`(fn* [a &] a)`,
		`(fn* [& a & b] a)`,
		`((fn* [a & b] b) 1 2 3)`,
		`(apply def! (list 'q (list 1 2)))`,
		`(apply quote (list 1))`,
	}, []string{
		"nil", "nil", "(2 3)", "(1 2)", "[0 1 2]", "(1 9 2)",
		"nil", "(1 2)", `("a" "b")`,
		"1", "true", "abc", ":abc",
		`{:a 3, "b" 2}`, "{:b 2}", "1", "nil", "true",
		`(:a "b")`, "(1 2)",
		"Runtime error: unsupported dict key: 1",
		`"\"a\" :b [1]"`, `"a:b[1 c]"`,
		`"function"`,
		"Runtime error: Unknown symbol: unless-not-defined",
		`"built-in"`,
		"11", "(atom-at 0)",
		"Runtime error: atom-at: no atom with index 99",
		"3",
		"Runtime error: Unknown symbol: x",
		"(1 2)", "nil", "true", "nil", "nil", "true", "true", "true",
		"{:a 1}", `{"a" 2}`, `{:a 1, "b" 2}`, "{}",
		"Runtime error: 'hash-map' expects key/value pairs, got 3 arguments",
		"Runtime error: unsupported dict key: 1",
		"Runtime error: fn*: '&' must appear once, before the last parameter",
		"Runtime error: fn*: '&' must appear once, before the last parameter",
		"Runtime error: fn*: '&' must appear once, before the last parameter",
		"(2 3)",
		"Runtime error: special form 'def!' cannot be applied",
		"Runtime error: special form 'quote' cannot be applied",
	})
}

func TestPrintingAndExit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.eval")
	defer teardown()
	//
	out := &bytes.Buffer{}
	status := -1
	intp := NewInterpreter(mal.WithOutput(out), mal.WithArgs([]string{"one", "two"}),
		mal.WithExit(func(code int) { status = code }))
	repAll(t, intp, []string{
		`(print-string "x" 1 "y")`,
		`(prn "x" 1)`,
		`*ARGV*`,
		`(exit 3)`,
	}, []string{
		"nil", "nil", `("one" "two")`, "nil",
	})
	if out.String() != "x 1 y\n\"x\" 1\nHave a nice day!\n" {
		t.Errorf("unexpected output %q", out.String())
	}
	if status != 3 {
		t.Errorf("expected exit status 3, got %d", status)
	}
}

func TestLoadFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.eval")
	defer teardown()
	//
	dir, err := ioutil.TempDir("", "gomal")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)
	path := filepath.Join(dir, "defs.mal")
	src := "(def! double (fn* [x] (* 2 x)))\n(double 21)\n"
	if err := ioutil.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatal(err)
	}
	intp := NewInterpreter()
	repAll(t, intp, []string{
		`((fn* [p] (load-file p)) "` + path + `")`,
		`(double 4)`,
		`(slurp "` + path + `")`,
		`(load-file "` + filepath.Join(dir, "missing.mal") + `")`,
	}, []string{
		"42", "8", mal.PrStr(mal.Str(src), true),
		"Runtime error: load-file: open " + filepath.Join(dir, "missing.mal") +
			": no such file or directory",
	})
	if err := intp.LoadPrelude(filepath.Join(dir, "missing.mal")); err != nil {
		t.Errorf("expected missing prelude to be tolerated, got %v", err)
	}
}

func TestPrelude(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "gomal.eval")
	defer teardown()
	//
	intp := NewInterpreter()
	if err := intp.LoadPrelude(filepath.Join("..", "..", "lib.mal")); err != nil {
		t.Fatalf("cannot load prelude: %v", err)
	}
	repAll(t, intp, []string{
		"(not nil)",
		"(map inc [1 2 3])",
		"(let* [k 10] (map (fn* [x] (* k x)) (list 1 2)))",
		"(filter (fn* [x] (< x 3)) [1 2 3 4])",
		"(reduce + 0 [1 2 3 4])",
		"(cond false 1 nil 2 :else 3)",
		"(or nil false 5)",
		"(and 1 2 nil 3)",
		"(when true 1 2)",
		"(last [1 2 3])",
		"(list? (list))",
		"(macro? cond)",
	}, []string{
		"true", "(2 3 4)", "(10 20)", "(1 2)", "10", "3", "5", "nil", "2", "3",
		"true", "true",
	})
}
