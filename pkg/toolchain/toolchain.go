package toolchain

import "strings"

// Family is the platform family a target triple belongs to.
type Family int

const (
	Darwin Family = iota
	Linux
	Windows
	Unknown
)

func (f Family) String() string {
	switch f {
	case Darwin:
		return "darwin"
	case Linux:
		return "linux"
	case Windows:
		return "windows"
	default:
		return "unknown"
	}
}

// Classify maps a target triple to its platform family. Matching is by
// substring, first match wins in the order darwin, linux, windows.
func Classify(triple string) Family {
	switch {
	case strings.Contains(triple, "darwin"):
		return Darwin
	case strings.Contains(triple, "linux"):
		return Linux
	case strings.Contains(triple, "windows"):
		return Windows
	default:
		return Unknown
	}
}

// CC returns the default C compiler for the family.
func (f Family) CC() string {
	switch f {
	case Darwin:
		return "clang"
	case Linux:
		return "gcc"
	case Windows:
		return "cl.exe"
	default:
		return "cc"
	}
}

// CXX returns the default C++ compiler for the family.
func (f Family) CXX() string {
	switch f {
	case Darwin:
		return "clang++"
	case Linux:
		return "g++"
	case Windows:
		return "cl.exe"
	default:
		return "c++"
	}
}
