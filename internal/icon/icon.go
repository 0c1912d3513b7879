// Package icon maps backend icon keys onto the fixed set the client renders.
package icon

import "strings"

type Name string

const (
	Laptop     Name = "laptop"
	CPU        Name = "cpu"
	Printer    Name = "printer"
	Headphones Name = "headphones"
	Box        Name = "box"
)

// Fallback is used for any key outside the known set.
const Fallback = Box

var aliases = map[string]Name{
	"laptop":     Laptop,
	"computer":   Laptop,
	"memory":     CPU,
	"cpu":        CPU,
	"print":      Printer,
	"printer":    Printer,
	"devices":    Headphones,
	"headphones": Headphones,
	"box":        Box,
}

// Resolve is case-insensitive and never fails.
func Resolve(key string) Name {
	if n, ok := aliases[strings.ToLower(strings.TrimSpace(key))]; ok {
		return n
	}
	return Fallback
}
