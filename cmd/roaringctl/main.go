package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dstore-labs/roaring"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "roaringctl",
		Short: "Inspect and manipulate frozen roaring bitmaps",
	}

	rootCmd.AddCommand(buildCmd(), inspectCmd(), intersectCmd(), jaccardCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <out>",
		Short: "Read newline-separated uint32s from stdin and freeze them to <out>",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rb := roaring.New()
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				line := scanner.Text()
				if line == "" {
					continue
				}
				v, err := strconv.ParseUint(line, 10, 32)
				if err != nil {
					return fmt.Errorf("parse %q: %w", line, err)
				}
				rb.Set(uint32(v))
			}
			if err := scanner.Err(); err != nil {
				return err
			}

			if err := rb.FreezeToFile(args[0]); err != nil {
				return err
			}
			fmt.Printf("wrote %d values to %s\n", rb.Count(), args[0])
			return nil
		},
	}
}

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Open a frozen bitmap and print its cardinality, container count, min and max (container shapes are not printed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			im, close, err := roaring.OpenMappedFile(args[0])
			if err != nil {
				return err
			}
			defer close()

			fmt.Printf("cardinality: %d\n", im.Count())
			fmt.Printf("containers:  %d\n", im.Len())
			if min, ok := im.Min(); ok {
				fmt.Printf("min:         %d\n", min)
			}
			if max, ok := im.Max(); ok {
				fmt.Printf("max:         %d\n", max)
			}
			return nil
		},
	}
}

func intersectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intersect <out> <in...>",
		Short: "Pack the input files into a multi-bitmap and freeze their intersection to <out>",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, inputs := args[0], args[1:]

			bitmaps := make([]*roaring.Bitmap, len(inputs))
			for i, path := range inputs {
				im, close, err := roaring.OpenMappedFile(path)
				if err != nil {
					return err
				}
				bitmaps[i] = im.ToBitmap()
				close()
			}

			buf := roaring.Pack(bitmaps)
			multi, err := roaring.OpenMulti(buf)
			if err != nil {
				return err
			}

			indices := make([]int, len(inputs))
			for i := range indices {
				indices[i] = i
			}

			result, ok := multi.Intersection(indices, 0, 0)
			if !ok {
				return fmt.Errorf("intersection failed: an index was out of range or absent")
			}

			if err := result.FreezeToFile(out); err != nil {
				return err
			}
			fmt.Printf("intersection of %d files: %d values written to %s\n", len(inputs), result.Count(), out)
			return nil
		},
	}
}

func jaccardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jaccard <a> <b>",
		Short: "Print the Jaccard distance between two frozen bitmaps",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, closeA, err := roaring.OpenMappedFile(args[0])
			if err != nil {
				return err
			}
			defer closeA()

			b, closeB, err := roaring.OpenMappedFile(args[1])
			if err != nil {
				return err
			}
			defer closeB()

			fmt.Printf("%.6f\n", a.Jaccard(b))
			return nil
		},
	}
}
