package main

import (
	"fmt"
	"os"
	"time"

	"jplex/pkg/lexer"
)

const sampleSource = `/**
 * Entry point.
 *
 * @param args command line arguments
 */
int main() {
    // integer and float variables
    int a = 10;
    float b = 20.5;

    char c = 'A';
    String str = "Hello, World!";

    String multi = """
        spans
        several lines
    """;

    if (a < b) {
        a++;
    } else {
        a--;
    }

    int result = a + b * 2 / (1 - 3) == 10;

    @SpecialSymbol
    return result;
}
`

func main() {
	src := sampleSource
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintln(os.Stderr, "read error:", err)
			os.Exit(1)
		}
		src = string(data)
	}

	lexStart := time.Now()
	tokens := lexer.Lex(src)
	lexElapsed := time.Since(lexStart)

	printStart := time.Now()
	fmt.Printf("Tokens (%d)\n", len(tokens))
	for _, tok := range tokens {
		fmt.Println(" ", tok)
	}
	printElapsed := time.Since(printStart)

	fmt.Println()
	fmt.Println("lex:  ", lexElapsed)
	fmt.Println("print:", printElapsed)
	fmt.Println("total:", lexElapsed+printElapsed)
}
