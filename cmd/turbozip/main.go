// Command turbozip compresses and decompresses files using the TurboZip
// container format.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/Llucs/TurboZip/engine"
	"github.com/Llucs/TurboZip/errs"
	"github.com/spf13/cobra"
)

// containerExt is appended to an input path to derive a default output
// path for compress, and stripped to derive one for decompress.
const containerExt = ".tzip"

type commonFlags struct {
	profile string
	threads int
	force   bool
	verbose bool
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.profile, "profile", "balanced", "compression profile: lightning, fast, balanced, high, max")
	cmd.Flags().IntVar(&f.threads, "threads", 0, "worker thread count (default: logical CPU count)")
	cmd.Flags().BoolVar(&f.force, "force", false, "overwrite an existing output file")
	cmd.Flags().BoolVar(&f.verbose, "verbose", false, "print the path of the written output file")
}

func (f *commonFlags) options() []engine.Option {
	return []engine.Option{
		engine.WithProfile(f.profile),
		engine.WithThreads(f.threads),
		engine.WithForce(f.force),
		engine.WithVerbose(f.verbose),
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "turbozip",
		Short:         "Compress and decompress files in the TurboZip container format",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCompressCmd(), newDecompressCmd())

	return root
}

func newCompressCmd() *cobra.Command {
	flags := &commonFlags{}

	cmd := &cobra.Command{
		Use:   "compress <input> [output]",
		Short: "Compress a file into the TurboZip container format",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			output := input + containerExt
			if len(args) == 2 {
				output = args[1]
			}

			cfg, err := engine.NewConfig(flags.options()...)
			if err != nil {
				return err
			}

			if err := engine.CompressFile(cmd.Context(), input, output, cfg); err != nil {
				return err
			}

			if flags.verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "turbozip: wrote %s\n", output)
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newDecompressCmd() *cobra.Command {
	flags := &commonFlags{}

	cmd := &cobra.Command{
		Use:   "decompress <input> [output]",
		Short: "Decompress a TurboZip container file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			output := strings.TrimSuffix(input, containerExt)
			if output == input {
				output = input + ".out"
			}
			if len(args) == 2 {
				output = args[1]
			}

			cfg, err := engine.NewConfig(flags.options()...)
			if err != nil {
				return err
			}

			if err := engine.DecompressFile(cmd.Context(), input, output, cfg); err != nil {
				return err
			}

			if flags.verbose {
				fmt.Fprintf(cmd.OutOrStdout(), "turbozip: wrote %s\n", output)
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// diagnostic renders a single-line message naming the error kind and, where
// meaningful, the offending block index, per section 7's user-visible
// behavior requirement.
func diagnostic(cmdName string, err error) string {
	if index, ok := errs.IsBlockChecksumMismatch(err); ok {
		return fmt.Sprintf("turbozip %s: block %d checksum mismatch", cmdName, index)
	}
	return fmt.Sprintf("turbozip %s: %v", cmdName, err)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	root := newRootCmd()
	root.SetArgs(os.Args[1:])
	root.SetContext(ctx)

	cmdName := filepath.Base(os.Args[0])
	if len(os.Args) > 1 {
		cmdName = os.Args[1]
	}

	executed, err := root.ExecuteC()
	if err != nil {
		if executed != nil {
			cmdName = executed.Name()
		}
		fmt.Fprintln(os.Stderr, diagnostic(cmdName, err))
		os.Exit(errs.ExitCode(err))
	}
}
