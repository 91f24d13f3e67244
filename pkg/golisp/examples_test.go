package golisp_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/AlxV07/golisp/pkg/golisp"
)

// Example shows basic usage of the golisp engine.
func Example() {
	engine := golisp.New()

	result, err := engine.Eval(`(display "Hello, World!")`)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(result.Output)
	// Output: Hello, World!
}

// Example_compile demonstrates compiling once and running multiple times;
// each Run evaluates against its own fresh child of the global environment.
func Example_compile() {
	engine := golisp.New()

	program, err := engine.Compile(`(defparameter greeting "Hello!") (display greeting)`)
	if err != nil {
		log.Fatal(err)
	}

	result1, _ := engine.Run(program)
	fmt.Print(result1.Output)

	result2, _ := engine.Run(program)
	fmt.Print(result2.Output)

	// Output:
	// Hello!
	// Hello!
}

// Example_withOutput shows how to capture program output to a custom writer.
func Example_withOutput() {
	var buf bytes.Buffer

	engine := golisp.New(golisp.WithOutput(&buf))

	_, err := engine.Eval(`(display "Captured!")`)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(buf.String())
	// Output: Captured!
}

// Example_fibonacci evaluates a recursive definition and prints its value.
func Example_fibonacci() {
	engine := golisp.New()

	result, err := engine.Eval(`
		(defun fib (n) (if (< n 2) n (+ (fib (- n 1)) (fib (- n 2)))))
		(fib 10)
	`)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Value)
	// Output: 55
}
