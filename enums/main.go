package main

import "fmt"

// Each demo compares a Go enumeration style with its alternatives.
//
// Run:
//
//	go run ./enums
func main() {
	section("iota enumeration — Direction and Move")
	demoDirection()

	section("Explicit codes — Status = 1, -1, 0")
	demoStatus()

	section("String literals + lookup table — the same Status without codes")
	demoLiteral()

	section("Out-of-set values — pending is the default")
	demoDefault()
}

func section(title string) {
	fmt.Printf("\n━━━ %s ━━━\n", title)
}
