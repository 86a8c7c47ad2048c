package wasm

// WebAssembly binary format magic number and version.
const (
	// Magic is the WebAssembly binary magic number ("\0asm" in little-endian).
	Magic uint32 = 0x6D736100

	// Version is the supported WebAssembly binary format version.
	Version uint32 = 0x01
)

// Section IDs for the sections the scanner cares about. Non-custom
// sections must appear in increasing order by ID, so once a section
// with an ID above SectionImport shows up no imports can follow.
const (
	SectionCustom byte = 0 // Custom section (can appear anywhere)
	SectionType   byte = 1 // Type section (function signatures)
	SectionImport byte = 2 // Import section
)

// Import descriptor kinds as encoded in the import section.
const (
	KindFunc   byte = 0
	KindTable  byte = 1
	KindMemory byte = 2
	KindGlobal byte = 3
)

// FuncTypeByte prefixes every entry of the type section.
const FuncTypeByte byte = 0x60

// Value type encodings as defined in the WebAssembly binary format.
const (
	ValI32     byte = 0x7F
	ValI64     byte = 0x7E
	ValF32     byte = 0x7D
	ValF64     byte = 0x7C
	ValFuncRef byte = 0x70
	ValExtern  byte = 0x6F
)
