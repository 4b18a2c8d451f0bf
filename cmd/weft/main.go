// Package main provides the Weft tensor toolkit CLI.
package main

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"
	gstat "gonum.org/v1/gonum/stat"

	"github.com/weft-ml/weft/textio"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Weft %s\n", version)
			return
		case "describe":
			if len(os.Args) < 3 {
				fmt.Fprintln(os.Stderr, "Usage: weft describe <file>")
				os.Exit(1)
			}
			if err := describe(os.Args[2]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("Weft - Tensors and Statistics for Go")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version           Show version")
	fmt.Println("  describe <file>   Summarize a tensor text file")
}

// describe prints the shape and value summary of a tensor text file.
func describe(path string) error {
	t, err := textio.ReadFile(path)
	if err != nil {
		return err
	}

	values := t.Values()
	fmt.Printf("File:     %s\n", path)
	fmt.Printf("Shape:    %v\n", t.Shape())
	fmt.Printf("Elements: %d\n", t.ElementCount())
	fmt.Printf("Min:      %g\n", floats.Min(values))
	fmt.Printf("Max:      %g\n", floats.Max(values))
	fmt.Printf("Mean:     %g\n", gstat.Mean(values, nil))
	if len(values) > 1 {
		fmt.Printf("StdDev:   %g\n", gstat.StdDev(values, nil))
	}
	return nil
}
