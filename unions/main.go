package main

import "fmt"

// Each demo covers one aspect of modelling a discriminated union in Go.
//
// Run:
//
//	go run ./unions
func main() {
	section("Describe — one sentence per variant")
	demoDescribe()

	section("Type switch vs Kind() — two ways to read the discriminant")
	demoDiscriminant()

	section("Decode — narrowing a flat record by its kind")
	demoDecode()

	section("Sealed interface — the zero value is the only outsider")
	demoNil()
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
