package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/justintime4tea/numlex"
)

func resolveFormat(name string) (numlex.Format, error) {
	if name == "" {
		return numlex.Standard(), nil
	}
	f, ok := numlex.LookupFormat(name)
	if !ok {
		return 0, fmt.Errorf("numlex: unknown format preset %q", name)
	}
	return f, nil
}

// eachInputLine runs fn over every line of args (if given) or stdin
// (otherwise), counting successes/failures for the batch summary logged
// at the end.
func eachInputLine(args []string, fn func(line string) error) error {
	var ok, failed int
	run := func(line string) {
		if err := fn(line); err != nil {
			failed++
			if verbose {
				logger.Debug("conversion failed", "input", line, "error", err)
			}
			return
		}
		ok++
	}

	if len(args) > 0 {
		for _, a := range args {
			run(a)
		}
	} else {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			run(scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return err
		}
	}

	logger.Info("batch conversion complete", "ok", ok, "failed", failed)
	return nil
}

func newParseIntCommand() *cobra.Command {
	var radix int
	var format string
	var unsigned bool

	cmd := &cobra.Command{
		Use:   "parse-int [values...]",
		Short: "Parse integers from arguments or stdin (one per line)",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveFormat(format)
			if err != nil {
				return err
			}
			opts, err := numlex.NewParseIntegerOptionsBuilder().Radix(radix).FormatValue(f).Build()
			if err != nil {
				return err
			}
			return eachInputLine(args, func(line string) error {
				if unsigned {
					res := numlex.ParseInteger[uint64]([]byte(line), opts)
					v, err := res.Unwrap()
					if err != nil {
						return err
					}
					fmt.Println(v)
					return nil
				}
				res := numlex.ParseInteger[int64]([]byte(line), opts)
				v, err := res.Unwrap()
				if err != nil {
					return err
				}
				fmt.Println(v)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&radix, "radix", 10, "number base, 2-36")
	cmd.Flags().StringVar(&format, "format", "", "named format preset (see numlex.LookupFormat)")
	cmd.Flags().BoolVar(&unsigned, "unsigned", false, "parse as uint64 instead of int64")
	return cmd
}

func newParseFloatCommand() *cobra.Command {
	var radix int
	var format string
	var use32 bool
	var lossy bool

	cmd := &cobra.Command{
		Use:   "parse-float [values...]",
		Short: "Parse floats from arguments or stdin (one per line)",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := resolveFormat(format)
			if err != nil {
				return err
			}
			opts, err := numlex.NewParseFloatOptionsBuilder().
				Radix(radix).
				FormatValue(f).
				Lossy(lossy).
				Build()
			if err != nil {
				return err
			}
			return eachInputLine(args, func(line string) error {
				if use32 {
					res := numlex.ParseFloat[float32]([]byte(line), opts)
					v, err := res.Unwrap()
					if err != nil {
						return err
					}
					fmt.Println(v)
					return nil
				}
				res := numlex.ParseFloat[float64]([]byte(line), opts)
				v, err := res.Unwrap()
				if err != nil {
					return err
				}
				fmt.Println(v)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&radix, "radix", 10, "number base, 2-36")
	cmd.Flags().StringVar(&format, "format", "", "named format preset (see numlex.LookupFormat)")
	cmd.Flags().BoolVar(&use32, "float32", false, "parse as float32 instead of float64")
	cmd.Flags().BoolVar(&lossy, "lossy", false, "accept the fast/moderate-path estimate even when inconclusive")
	return cmd
}
