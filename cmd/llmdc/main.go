// Command llmdc compiles Markdown into LLMD, the line-oriented textual
// format produced by the compile package.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/google/renameio"

	"github.com/Stevenic/llmd/compile"
	"github.com/Stevenic/llmd/internal/llmdutil"
)

var cli struct {
	Config  string     `help:"Path to a YAML config file. Defaults to an implicit .llmdc.yaml found by walking up from the working directory." type:"path"`
	Compile CompileCmd `cmd:"" help:"Compile one or more Markdown files into LLMD."`
	List    ListCmd    `cmd:"" help:"List Markdown files discovered under a directory, in compile order."`
}

// CompileCmd compiles one or more Markdown files into LLMD.
type CompileCmd struct {
	Paths []string `arg:"" help:"Input Markdown files. Sorted lexicographically and concatenated with a blank line between." type:"existingfile"`
	Out   string   `help:"Output path. Written atomically. Defaults to stdout." type:"path"`
}

func (c *CompileCmd) Run(cfg compile.Config) error {
	paths := append([]string(nil), c.Paths...)
	sort.Strings(paths)

	var parts []string
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		parts = append(parts, strings.TrimRight(string(data), "\r\n"))
	}
	source := strings.Join(parts, "\n\n")

	out, diags := compile.Compile(source, cfg)

	if len(diags) > 0 {
		diagw := llmdutil.PrefixWriter("llmdc: ", log.Writer())
		for _, d := range diags {
			fmt.Fprintf(diagw, "%s\n", d.Message)
		}
		diagw.Close()
	}

	if c.Out == "" {
		_, err := fmt.Print(out)
		return err
	}
	if err := renameio.WriteFile(c.Out, []byte(out), 0644); err != nil {
		return fmt.Errorf("write %s: %w; check the destination directory is writable", c.Out, err)
	}
	return nil
}

// ListCmd discovers Markdown-family files under a directory, in the
// lexicographic order the caller must honor when concatenating multi-file
// compile runs (spec.md §1, §2).
type ListCmd struct {
	Dir string `arg:"" default:"." help:"Directory to search." type:"existingdir"`
}

var llmdSourceRE = regexp.MustCompile(`(?i)\.(md|markdown|llmd)$`)

func (c *ListCmd) Run() error {
	paths, err := findSourceFiles(c.Dir)
	if err != nil {
		return fmt.Errorf("walk %s: %w", c.Dir, err)
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}

func findSourceFiles(root string) ([]string, error) {
	var paths []string
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		if llmdSourceRE.MatchString(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("llmdc"),
		kong.Description("Deterministic Markdown-to-LLMD compiler."),
		kong.UsageOnError(),
	)

	cfg, err := loadConfig(cli.Config)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(cfg)
	ctx.FatalIfErrorf(err)
}
