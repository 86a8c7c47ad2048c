// Command imports lists the imports a WebAssembly module expects, so a
// host knows what to supply before instantiation.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tetratelabs/wazero/api"
	"golang.org/x/term"

	"github.com/hostbridge/wasm-imports/descriptor"
	"github.com/hostbridge/wasm-imports/entity"
	"github.com/hostbridge/wasm-imports/module"
	"github.com/hostbridge/wasm-imports/wasm"
)

func main() {
	var (
		wasmFile    = flag.String("wasm", "", "Path to wasm module file")
		kindFilter  = flag.String("kind", "", "Only show imports of this kind (function|table|global|memory)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *wasmFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: imports -wasm <file.wasm> [-kind function]")
		fmt.Fprintln(os.Stderr, "       imports -wasm <file.wasm> -i  (interactive mode)")
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*wasmFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*wasmFile, *kindFilter); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(wasmFile, kindFilter string) error {
	data, err := os.ReadFile(wasmFile)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	info, err := wasm.ScanImports(data)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	descs, err := descriptor.FromModule(info)
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}
	defer descs.Destroy()

	fmt.Println(titleStyle.Render(fmt.Sprintf("%s — %d imports", wasmFile, descs.Len())))

	sigIdx := 0
	for i := 0; i < descs.Len(); i++ {
		d := descs.At(i)
		if kindFilter != "" && d.Kind().String() != kindFilter {
			if d.Kind() == entity.KindFunction {
				sigIdx++
			}
			continue
		}

		line := fmt.Sprintf("  %s %s %s",
			kindStyle.Render(fmt.Sprintf("%-8s", d.Kind())),
			d.ModuleName(),
			nameStyle.Render(d.Name()))
		if d.Kind() == entity.KindFunction {
			line += " " + sigStyle.Render(signature(info.ImportedFunctions[sigIdx].Sig))
			sigIdx++
		}
		fmt.Println(line)
	}

	return nil
}

// signature renders a function signature like "(i32, i64) -> f32".
func signature(sig module.Signature) string {
	return "(" + joinTypes(sig.Params) + ")" + resultArrow(sig.Results)
}

func resultArrow(results []api.ValueType) string {
	if len(results) == 0 {
		return ""
	}
	return " -> " + joinTypes(results)
}

func joinTypes(types []api.ValueType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = api.ValueTypeName(t)
	}
	return strings.Join(parts, ", ")
}
