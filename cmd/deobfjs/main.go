// Command deobfjs is the thin CLI shell around internal/deobfuscate's
// single Deobfuscate(source) -> (string, error) operation: read a file,
// run the pipeline, write the result to stdout or --out.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/aledsdavies/deobfjs/internal/deobfuscate"
	"github.com/aledsdavies/deobfjs/internal/jserrors"
	"github.com/aledsdavies/deobfjs/internal/passes"
)

// Exit code constants, mirroring cmd/devcmd/main.go's discipline.
const (
	ExitSuccess          = 0
	ExitInvalidArguments = 1
	ExitIOError          = 2
	ExitParseError       = 3
	ExitGenerationError  = 4
)

func main() {
	var (
		pretty           bool
		hashRename       bool
		outFile          string
		debug            bool
		verifyIdempotent bool
	)

	root := &cobra.Command{
		Use:   "deobfjs <file>",
		Short: "Deobfuscate a JavaScript source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputFile := args[0]

			content, err := os.ReadFile(inputFile)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
				os.Exit(ExitIOError)
			}

			var logger deobfuscate.Logger
			if debug {
				logger = debugLogger{log.New(os.Stderr, "", log.LstdFlags)}
			}

			strategy := passes.Sequential
			if hashRename {
				strategy = passes.HashBased
			}

			opts := deobfuscate.Options{
				Pretty:         pretty,
				RenameStrategy: strategy,
				Logger:         logger,
			}

			output, err := deobfuscate.DeobfuscateWithOptions(string(content), opts)
			if err != nil {
				var parseErr *jserrors.ParseError
				var deobfErr *jserrors.DeobfuscateError
				switch {
				case errors.As(err, &parseErr):
					fmt.Fprintf(os.Stderr, "Error parsing input: %v\n", parseErr)
					os.Exit(ExitParseError)
				case errors.As(err, &deobfErr) && deobfErr.Kind == jserrors.KindParseFailure:
					fmt.Fprintf(os.Stderr, "Error parsing input: %v\n", deobfErr)
					os.Exit(ExitParseError)
				default:
					fmt.Fprintf(os.Stderr, "Error deobfuscating input: %v\n", err)
					os.Exit(ExitGenerationError)
				}
			}

			if verifyIdempotent {
				ok, diff, err := deobfuscate.VerifyIdempotent(string(content))
				if err != nil {
					fmt.Fprintf(os.Stderr, "Error verifying idempotence: %v\n", err)
					os.Exit(ExitGenerationError)
				}
				if !ok {
					fmt.Fprintf(os.Stderr, "Idempotence check failed: output is not a fixed point\n%s\n", diff)
					os.Exit(ExitGenerationError)
				}
			}

			if outFile != "" {
				if err := os.WriteFile(outFile, []byte(output), 0o644); err != nil {
					fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
					os.Exit(ExitIOError)
				}
				return nil
			}

			fmt.Print(output)
			return nil
		},
	}

	root.Flags().BoolVar(&pretty, "pretty", false, "rename local bindings to short, readable names (pass 21)")
	root.Flags().BoolVar(&hashRename, "hash-names", false, "use stable hash-based names instead of sequential ones with --pretty")
	root.Flags().StringVar(&outFile, "out", "", "write output to this file instead of stdout")
	root.Flags().BoolVar(&debug, "debug", false, "log each pass as it runs")
	root.Flags().BoolVar(&verifyIdempotent, "verify-idempotent", false, "fail if deobfuscating the output again would change it")

	root.SilenceUsage = true
	root.SilenceErrors = true

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitInvalidArguments)
	}
	os.Exit(ExitSuccess)
}

// debugLogger adapts *log.Logger to deobfuscate.Logger, the driver's
// minimal debug-trace sink.
type debugLogger struct {
	l *log.Logger
}

func (d debugLogger) Debugf(format string, args ...any) {
	d.l.Printf(format, args...)
}
