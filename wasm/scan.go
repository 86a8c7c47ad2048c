package wasm

import (
	"bytes"
	"encoding/binary"
	stderrors "errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/tetratelabs/wazero/api"

	"github.com/hostbridge/wasm-imports/errors"
	"github.com/hostbridge/wasm-imports/module"
)

// Scanning errors returned by ScanImports.
var (
	ErrInvalidMagic   = stderrors.New("invalid wasm magic number")
	ErrInvalidVersion = stderrors.New("invalid wasm version")
)

// ScanImports reads a core WebAssembly binary far enough to build the
// module's import metadata: interned namespace/name tables, the four
// import tables, and function signatures resolved through the type
// section.
func ScanImports(data []byte) (*module.Info, error) {
	r := bytes.NewReader(data)

	var magic, version uint32
	if err := binary.Read(r, binary.LittleEndian, &magic); err != nil {
		return nil, errors.ScanFailed("header", err)
	}
	if magic != Magic {
		return nil, errors.ScanFailed("header", ErrInvalidMagic)
	}
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, errors.ScanFailed("header", err)
	}
	if version != Version {
		return nil, errors.ScanFailed("header", ErrInvalidVersion)
	}

	info := module.NewInfo()
	var sigs []module.Signature

	for {
		sectionID, err := r.ReadByte()
		if err != nil {
			if stderrors.Is(err, io.EOF) {
				break
			}
			return nil, errors.ScanFailed("section header", err)
		}
		sectionSize, err := ReadLEB128u(r)
		if err != nil {
			return nil, errors.ScanFailed("section size", err)
		}

		// Sections past the import section cannot contain imports.
		if sectionID != SectionCustom && sectionID > SectionImport {
			break
		}

		payload := make([]byte, sectionSize)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, errors.ScanFailed("section data", err)
		}
		sr := bytes.NewReader(payload)

		switch sectionID {
		case SectionCustom:
			// skip
		case SectionType:
			if sigs, err = scanTypeSection(sr); err != nil {
				return nil, err
			}
		case SectionImport:
			if err := scanImportSection(sr, info, sigs); err != nil {
				return nil, err
			}
			return info, nil
		}
	}

	return info, nil
}

func scanTypeSection(r *bytes.Reader) ([]module.Signature, error) {
	count, err := ReadLEB128u(r)
	if err != nil {
		return nil, errors.ScanFailed("type count", err)
	}
	sigs := make([]module.Signature, 0, count)
	for i := uint32(0); i < count; i++ {
		form, err := r.ReadByte()
		if err != nil {
			return nil, errors.ScanFailed("type form", err)
		}
		if form != FuncTypeByte {
			return nil, errors.InvalidData(errors.PhaseScan,
				fmt.Sprintf("type %d: unsupported form 0x%02x", i, form))
		}
		params, err := scanValTypes(r)
		if err != nil {
			return nil, err
		}
		results, err := scanValTypes(r)
		if err != nil {
			return nil, err
		}
		sigs = append(sigs, module.Signature{Params: params, Results: results})
	}
	return sigs, nil
}

func scanValTypes(r *bytes.Reader) ([]api.ValueType, error) {
	count, err := ReadLEB128u(r)
	if err != nil {
		return nil, errors.ScanFailed("value type count", err)
	}
	types := make([]api.ValueType, 0, count)
	for i := uint32(0); i < count; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return nil, errors.ScanFailed("value type", err)
		}
		vt, err := valueType(b)
		if err != nil {
			return nil, err
		}
		types = append(types, vt)
	}
	return types, nil
}

// valueType maps a binary value-type byte onto the engine's value types.
// Reference types collapse onto externref; post-MVP types are rejected.
func valueType(b byte) (api.ValueType, error) {
	switch b {
	case ValI32:
		return api.ValueTypeI32, nil
	case ValI64:
		return api.ValueTypeI64, nil
	case ValF32:
		return api.ValueTypeF32, nil
	case ValF64:
		return api.ValueTypeF64, nil
	case ValFuncRef, ValExtern:
		return api.ValueTypeExternref, nil
	default:
		return 0, errors.InvalidData(errors.PhaseScan,
			fmt.Sprintf("unsupported value type 0x%02x", b))
	}
}

func scanImportSection(r *bytes.Reader, info *module.Info, sigs []module.Signature) error {
	count, err := ReadLEB128u(r)
	if err != nil {
		return errors.ScanFailed("import count", err)
	}

	for i := uint32(0); i < count; i++ {
		ns, err := scanName(r, "import module name")
		if err != nil {
			return err
		}
		field, err := scanName(r, "import field name")
		if err != nil {
			return err
		}
		name := info.Name(ns, field)

		kind, err := r.ReadByte()
		if err != nil {
			return errors.ScanFailed("import kind", err)
		}

		switch kind {
		case KindFunc:
			typeIdx, err := ReadLEB128u(r)
			if err != nil {
				return errors.ScanFailed("function type index", err)
			}
			if int(typeIdx) >= len(sigs) {
				return errors.OutOfBounds(errors.PhaseScan, "type section", int(typeIdx), len(sigs))
			}
			info.ImportedFunctions = append(info.ImportedFunctions, module.FunctionImport{
				ImportName: name,
				Sig:        sigs[typeIdx],
			})

		case KindTable:
			elem, err := r.ReadByte()
			if err != nil {
				return errors.ScanFailed("table element type", err)
			}
			if elem != ValFuncRef && elem != ValExtern {
				return errors.InvalidData(errors.PhaseScan,
					fmt.Sprintf("import %d: bad table element type 0x%02x", i, elem))
			}
			limits, err := scanLimits(r)
			if err != nil {
				return err
			}
			info.ImportedTables = append(info.ImportedTables, module.TableImport{
				ImportName: name,
				Limits:     limits,
			})

		case KindMemory:
			limits, err := scanLimits(r)
			if err != nil {
				return err
			}
			info.ImportedMemories = append(info.ImportedMemories, module.MemoryImport{
				ImportName: name,
				Limits:     limits,
			})

		case KindGlobal:
			b, err := r.ReadByte()
			if err != nil {
				return errors.ScanFailed("global value type", err)
			}
			vt, err := valueType(b)
			if err != nil {
				return err
			}
			mut, err := r.ReadByte()
			if err != nil {
				return errors.ScanFailed("global mutability", err)
			}
			if mut > 1 {
				return errors.InvalidData(errors.PhaseScan,
					fmt.Sprintf("import %d: bad mutability flag 0x%02x", i, mut))
			}
			info.ImportedGlobals = append(info.ImportedGlobals, module.GlobalImport{
				ImportName: name,
				Type:       vt,
				Mutable:    mut == 1,
			})

		default:
			return errors.InvalidData(errors.PhaseScan,
				fmt.Sprintf("import %d: unknown kind 0x%02x", i, kind))
		}
	}
	return nil
}

func scanName(r *bytes.Reader, what string) (string, error) {
	n, err := ReadLEB128u(r)
	if err != nil {
		return "", errors.ScanFailed(what, err)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", errors.ScanFailed(what, err)
	}
	if !utf8.Valid(buf) {
		return "", errors.InvalidUTF8(errors.PhaseScan, what, buf)
	}
	return string(buf), nil
}

func scanLimits(r *bytes.Reader) (module.Limits, error) {
	flags, err := r.ReadByte()
	if err != nil {
		return module.Limits{}, errors.ScanFailed("limits flags", err)
	}
	if flags > 0x03 {
		return module.Limits{}, errors.InvalidData(errors.PhaseScan,
			fmt.Sprintf("bad limits flags 0x%02x", flags))
	}
	min, err := ReadLEB128u(r)
	if err != nil {
		return module.Limits{}, errors.ScanFailed("limits minimum", err)
	}
	limits := module.Limits{Min: min}
	if flags&0x01 != 0 {
		max, err := ReadLEB128u(r)
		if err != nil {
			return module.Limits{}, errors.ScanFailed("limits maximum", err)
		}
		limits.Max = &max
	}
	return limits, nil
}
