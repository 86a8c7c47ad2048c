package entity

// Kind tags the four importable entity kinds.
type Kind uint32

const (
	KindFunction Kind = iota
	KindGlobal
	KindMemory
	KindTable
)

func (k Kind) String() string {
	switch k {
	case KindFunction:
		return "function"
	case KindGlobal:
		return "global"
	case KindMemory:
		return "memory"
	case KindTable:
		return "table"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the four defined kinds.
func (k Kind) Valid() bool {
	return k <= KindTable
}
