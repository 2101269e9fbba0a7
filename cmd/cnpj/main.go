// Command cnpj is a quick CLI for manual validation:
//
//	cnpj 04252011000110
//
// With no argument a built-in example is used. The exit status is always 0;
// the validation result is printed, not signaled.
package main

import (
	"fmt"
	"os"

	"github.com/nexconsult/cnpj-validator/cnpj"
)

const defaultCandidate = "04.252.011/0001-10"

func main() {
	value := defaultCandidate
	if len(os.Args) > 1 {
		value = os.Args[1]
	}

	fmt.Printf("%s -> %t\n", value, cnpj.IsValid(value))
}
