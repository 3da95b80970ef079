package main

import (
	"fmt"

	"github.com/marcodamonte/typing-basics/direction"
	"github.com/marcodamonte/typing-basics/status"
)

func demoDirection() {
	for _, d := range direction.All() {
		fmt.Printf("  %-5s (%d) → %s\n", d, int(d), direction.Move(d))
	}
}

// demoStatus: the codes are part of the type, so a Status converts to and
// from int without a table.
func demoStatus() {
	for _, s := range status.All() {
		fmt.Printf("  %-7s (%2d) → %s\n", s, int(s), status.Message(s))
	}
}

// demoLiteral: with string literals the codes live in a separate table, and
// the switch compares strings instead of integers.
func demoLiteral() {
	for _, l := range status.Literals() {
		fmt.Printf("  %-9q code=%2d → %s\n", l, int(status.Codes[l]), status.MessageLiteral(l))
	}

	fmt.Println("\n  both forms agree:")
	for _, s := range status.All() {
		same := status.Message(s) == status.MessageLiteral(s.Literal())
		fmt.Printf("  Message(%s) == MessageLiteral(%q): %v\n", s, s.Literal(), same)
	}
}

// demoDefault: a conversion can produce any int or string, so every switch
// keeps a default. Status and Literal share it with Pending.
func demoDefault() {
	fmt.Printf("  Message(Status(42))        → %s\n", status.Message(status.Status(42)))
	fmt.Printf("  MessageLiteral(\"Canceled\") → %s\n", status.MessageLiteral("Canceled"))
	fmt.Printf("  Move(Direction(9))         → %s\n", direction.Move(direction.Direction(9)))

	if _, err := status.Parse("done"); err != nil {
		fmt.Printf("\n  Parse(\"done\") → %v (callers fall back to %s)\n", err, status.Pending)
	}
}
