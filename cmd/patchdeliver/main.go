/**
 * Copyright (c) 2026, The Patchwork Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Command patchdeliver runs one operation against the starwars demo schema and prints its
// incremental delivery sequence to stdout as line-delimited JSON: the initial result on the
// first line, then one line per Patch as it completes.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/patchwork-gql/patchql/executor"
	"github.com/patchwork-gql/patchql/iterator"
	"github.com/patchwork-gql/patchql/jsonwriter"
	"github.com/patchwork-gql/patchql/starwars"
)

const usage = `patchdeliver FLAGS:
  -query <string>       GraphQL operation text (default: read from stdin)
  -operation <name>     Operation to run when -query defines more than one (default: the lone one)
  -no-incremental       Disable @defer/@stream: resolve everything inline in the initial result
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("patchdeliver", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))

	query := fs.String("query", "", "GraphQL operation text")
	operationName := fs.String("operation", "", "operation name to run")
	noIncremental := fs.Bool("no-incremental", false, "disable @defer/@stream")

	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, usage)
		return err
	}

	body := []byte(*query)
	if len(body) == 0 {
		var err error
		body, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("patchdeliver: reading query from stdin: %w", err)
		}
	}

	document, parseErr := parser.ParseQuery(&ast.Source{Input: string(body)})
	if parseErr != nil {
		return fmt.Errorf("patchdeliver: %w", parseErr)
	}

	op, err := executor.Prepare(executor.PrepareParams{
		Schema:        starwars.Schema,
		Document:      document,
		OperationName: *operationName,
	})
	if err != nil {
		return fmt.Errorf("patchdeliver: %w", err)
	}

	result := op.Execute(executor.ExecuteParams{
		Context:                context.Background(),
		AppContext:             starwars.NewLoaders(),
		EnableDeferredDelivery: !*noIncremental,
	})

	if err := writeLine(result); err != nil {
		return fmt.Errorf("patchdeliver: writing initial result: %w", err)
	}

	patches := result.Patches
	for {
		patch, err := patches.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("patchdeliver: draining patches: %w", err)
		}

		p := patch
		if err := writeLine(&p); err != nil {
			return fmt.Errorf("patchdeliver: writing patch: %w", err)
		}
	}

	return nil
}

// writeLine marshals v with a fresh Stream and appends a trailing newline, so each line on
// stdout is one self-contained JSON value.
func writeLine(v jsonwriter.ValueMarshaler) error {
	out := jsonwriter.NewStream(os.Stdout)
	out.WriteInterface(v)
	if err := out.Error(); err != nil {
		return err
	}
	if err := out.Flush(); err != nil {
		return err
	}
	_, err := os.Stdout.Write([]byte{'\n'})
	return err
}
