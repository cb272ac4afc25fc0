// Package sign implements geometric ASL alphabet and number recognition
// from hand landmarks, with temporal smoothing and a hold-to-commit
// spelling mode.
//
// Recognition is a deliberately simple heuristic: an ordered table of
// finger-pattern and feature guards. It works for clear, deliberate signs
// but is not a substitute for a trained model.
package sign

// Sign is one recognizable ASL sign. Its value is the display string.
type Sign string

// ASL alphabet letters.
const (
	A Sign = "A"
	B Sign = "B"
	C Sign = "C"
	D Sign = "D"
	E Sign = "E"
	F Sign = "F"
	G Sign = "G"
	H Sign = "H"
	I Sign = "I"
	J Sign = "J"
	K Sign = "K"
	L Sign = "L"
	M Sign = "M"
	N Sign = "N"
	O Sign = "O"
	P Sign = "P"
	Q Sign = "Q"
	R Sign = "R"
	S Sign = "S"
	T Sign = "T"
	U Sign = "U"
	V Sign = "V"
	W Sign = "W"
	X Sign = "X"
	Y Sign = "Y"
	Z Sign = "Z"
)

// ASL number signs.
const (
	Zero  Sign = "0"
	One   Sign = "1"
	Two   Sign = "2"
	Three Sign = "3"
	Four  Sign = "4"
	Five  Sign = "5"
	Six   Sign = "6"
	Seven Sign = "7"
	Eight Sign = "8"
	Nine  Sign = "9"
)

// Special signs.
const (
	Space   Sign = "SPACE"
	Unknown Sign = "?"
)

// String returns the display string of the sign.
func (s Sign) String() string {
	return string(s)
}

// All returns every recognizable sign in a fixed order:
// letters, numbers, then the special signs.
func All() []Sign {
	return []Sign{
		A, B, C, D, E, F, G, H, I, J, K, L, M,
		N, O, P, Q, R, S, T, U, V, W, X, Y, Z,
		Zero, One, Two, Three, Four, Five, Six, Seven, Eight, Nine,
		Space, Unknown,
	}
}

// Parse maps a display string back to its Sign.
// The second return value is false for strings that name no sign.
func Parse(s string) (Sign, bool) {
	for _, sign := range All() {
		if string(sign) == s {
			return sign, true
		}
	}
	return Unknown, false
}
