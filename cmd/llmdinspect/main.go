// Command llmdinspect dumps the Stage 0-2 intermediate state of the compile
// pipeline (normalized lines, the protected-block side table, and the parsed
// IR), for debugging the core against a real input. The Go analogue of the
// teacher's cmd/scanex debug dump.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/Stevenic/llmd/compile"
	"github.com/Stevenic/llmd/internal/llmdutil"
)

var cli struct {
	Path string `arg:"" help:"Markdown file to inspect." type:"existingfile"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("llmdinspect"),
		kong.Description("Dump Stage 0-2 intermediate state of the LLMD compiler."),
	)

	data, err := os.ReadFile(cli.Path)
	if err != nil {
		log := llmdutil.PrefixWriter("llmdinspect: ", os.Stderr)
		fmt.Fprintf(log, "%v\n", err)
		log.Close()
		os.Exit(1)
	}

	trace := compile.Inspect(string(data))

	fmt.Println("-- normalized --")
	for i, line := range trace.Normalized {
		fmt.Printf("%4d: %q\n", i, line)
	}

	fmt.Println("-- blocks --")
	for _, b := range trace.Blocks {
		fmt.Printf("%4d: lang=%q payload=%q\n", b.Index, b.Lang, b.Payload)
	}

	fmt.Println("-- nodes --")
	for i, n := range trace.Nodes {
		fmt.Printf("%4d: %+v\n", i, n)
	}
}
