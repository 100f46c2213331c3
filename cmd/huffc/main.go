// Command huffc compresses and decompresses files with the huffman package's
// framed bitstream format.
package main

import (
	goflag "flag"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	huffman "github.com/LieutenantDan1/Huffman"
)

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()

	root := newRootCommand()
	root.PersistentFlags().AddGoFlagSet(goflag.CommandLine)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "huffc",
		Short:         "Huffman bitstream compressor",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newEncodeCommand())
	cmd.AddCommand(newDecodeCommand())
	return cmd
}

func newEncodeCommand() *cobra.Command {
	var inputPath, outputPath string
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Compress a file into a framed Huffman bitstream",
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputPath == "" {
				return fmt.Errorf("no input file specified")
			}
			if outputPath == "" {
				return fmt.Errorf("no output file specified")
			}

			then := time.Now()
			data, err := os.ReadFile(inputPath)
			if err != nil {
				return err
			}
			klog.V(1).Infof("read %d bytes from %s", len(data), inputPath)

			bits := huffman.Encode(data)
			framed := huffman.Frame(bits)
			if err := os.WriteFile(outputPath, framed, 0o644); err != nil {
				return err
			}
			elapsed := time.Since(then)
			klog.V(1).Infof("wrote %d bytes to %s", len(framed), outputPath)

			inBits := 8 * len(data)
			var ratio float64
			if inBits > 0 {
				ratio = float64(bits.Len()) / float64(inBits)
			}
			quote := ""
			if ratio >= 1 {
				quote = "\""
			}
			fmt.Printf("Successfully %scompressed%s %d bits to %d bits (%.2f%%) (in %s).\n",
				quote, quote, inBits, bits.Len(), ratio*100, elapsed)
			if ratio >= 0.95 {
				fmt.Println("Warning: dataset is either small or incompressible.")
			}
			if len(data) > 0 && singleSymbol(data) {
				fmt.Printf("Note: single-symbol input; decoding requires --symbol-count %d.\n", len(data))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "file to compress")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "file to write the framed bitstream to")
	return cmd
}

func newDecodeCommand() *cobra.Command {
	var inputPath, outputPath string
	var symbolCount int
	var allowTruncated bool
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decompress a framed Huffman bitstream",
		RunE: func(cmd *cobra.Command, args []string) error {
			if inputPath == "" {
				return fmt.Errorf("no input file specified")
			}

			then := time.Now()
			data, err := os.ReadFile(inputPath)
			if err != nil {
				return err
			}
			klog.V(1).Infof("read %d bytes from %s", len(data), inputPath)

			bits, err := huffman.Unframe(data)
			if err != nil {
				return fmt.Errorf("failed to read input data: %w", err)
			}

			var out []byte
			if allowTruncated {
				out, err = huffman.DecodeTruncated[byte](bits, symbolCount)
			} else {
				out, err = huffman.Decode[byte](bits, symbolCount)
			}
			if err != nil {
				return err
			}
			elapsed := time.Since(then)

			if outputPath == "" {
				os.Stdout.Write(out)
				fmt.Println()
				return nil
			}
			if err := os.WriteFile(outputPath, out, 0o644); err != nil {
				return err
			}
			klog.V(1).Infof("wrote %d bytes to %s", len(out), outputPath)

			var ratio float64
			if bits.Len() > 0 {
				ratio = float64(8*len(out)) / float64(bits.Len())
			}
			fmt.Printf("Successfully decompressed %d bits to %d bits (%.2f%%) (in %s).\n",
				bits.Len(), 8*len(out), ratio*100, elapsed)
			return nil
		},
	}
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "framed bitstream to decompress")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "file to write the decompressed data to (stdout if empty)")
	cmd.Flags().IntVar(&symbolCount, "symbol-count", 0, "original symbol count, required for single-symbol streams")
	cmd.Flags().BoolVar(&allowTruncated, "allow-truncated", false, "accept a payload that ends in the middle of a code")
	return cmd
}

// singleSymbol reports whether every byte of data is the same.
func singleSymbol(data []byte) bool {
	for _, b := range data {
		if b != data[0] {
			return false
		}
	}
	return true
}
