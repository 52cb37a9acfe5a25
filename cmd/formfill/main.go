// Command formfill renders a certificate request form offline from a JSON or
// YAML submission file.
//
//	formfill --form gravamen --input datos.yaml --templates pdfs --out gravamen.pdf
//	formfill --blank pdfs
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	_ "time/tzdata"

	"go.uber.org/automaxprocs/maxprocs"
)

func main() {
	// maxprocs.Set only fails on an invalid GOMAXPROCS; runtime defaults apply then.
	_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))

	err := run(context.Background(), os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "formfill:", err)
	}
	os.Exit(exitCodeFor(err))
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}

	if f.blank != "" {
		if err := writeBlankTemplates(f.blank); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "wrote blank templates to %s\n", f.blank)
		return nil
	}

	out, err := fill(ctx, f)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s\n", out)
	return nil
}
