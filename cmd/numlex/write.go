package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/justintime4tea/numlex"
)

func newWriteIntCommand() *cobra.Command {
	var radix int

	cmd := &cobra.Command{
		Use:   "write-int [values...]",
		Short: "Write int64 values from arguments or stdin (one per line) in the given radix",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := numlex.NewWriteIntegerOptions(radix)
			if err != nil {
				return err
			}
			return eachInputLine(args, func(line string) error {
				v, err := strconv.ParseInt(line, 10, 64)
				if err != nil {
					return err
				}
				var buf [numlex.MaxWidthAnyRadix64]byte
				n := numlex.WriteInteger[int64](v, buf[:], opts)
				fmt.Println(string(buf[:n]))
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&radix, "radix", 10, "number base, 2-36")
	return cmd
}

func newWriteFloatCommand() *cobra.Command {
	var use32 bool
	var trim bool

	cmd := &cobra.Command{
		Use:   "write-float [values...]",
		Short: "Write shortest round-trip float values from arguments or stdin (one per line)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return eachInputLine(args, func(line string) error {
				if use32 {
					v, err := strconv.ParseFloat(line, 32)
					if err != nil {
						return err
					}
					opts, err := numlex.NewWriteFloatOptionsBuilder().TrimFloats(trim).Build()
					if err != nil {
						return err
					}
					var buf [numlex.MaxWidthFloat32Any]byte
					n := numlex.WriteFloat[float32](float32(v), buf[:], opts)
					fmt.Println(string(buf[:n]))
					return nil
				}
				v, err := strconv.ParseFloat(line, 64)
				if err != nil {
					return err
				}
				opts, err := numlex.NewWriteFloatOptionsBuilder().TrimFloats(trim).Build()
				if err != nil {
					return err
				}
				var buf [numlex.MaxWidthFloat64Any]byte
				n := numlex.WriteFloat[float64](v, buf[:], opts)
				fmt.Println(string(buf[:n]))
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&use32, "float32", false, "write as float32 instead of float64")
	cmd.Flags().BoolVar(&trim, "trim", false, "drop the trailing \".0\" for integer-valued floats")
	return cmd
}
