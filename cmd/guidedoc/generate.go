package main

import (
	"fmt"
	"io"

	"github.com/NorthernWidget/guidedoc"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	if c.Preview {
		return c.runPreview(deps)
	}
	return c.runGenerate(deps)
}

func (c *GenerateCmd) runPreview(deps *Dependencies) error {
	guide, err := deps.Generator.Build(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", guidedoc.ErrorMessage(err))
		return err
	}

	_, err = io.WriteString(deps.Stdout, guide.Content()+"\n")
	return err
}

func (c *GenerateCmd) runGenerate(deps *Dependencies) error {
	result, err := deps.Generator.Run(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", guidedoc.ErrorMessage(err))
		if guidedoc.ErrorCode(err) == guidedoc.ENOTFOUND {
			fmt.Fprintln(deps.Stderr, "Hint: run from the repository root, or check that the page still has its entry-content markers")
		}
		return err
	}

	if !result.Changed {
		fmt.Fprintf(deps.Stdout, "Unchanged %s\n", result.Path)
		return nil
	}
	fmt.Fprintf(deps.Stdout, "Wrote %s (%d bytes)\n", result.Path, result.Bytes)
	return nil
}
