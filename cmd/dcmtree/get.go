package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/b71729/dcmtree"
	"github.com/b71729/dcmtree/dictionary"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const flagRaw = "raw"

var getCmd = &cobra.Command{
	Use:   "get <file> <(gggg,eeee)>",
	Short: "Prints every occurrence of a tag in a DICOM file, nested ones included.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, err := dictionary.ParseTag(args[1])
		if err != nil {
			return err
		}
		raw, _ := cmd.Flags().GetBool(flagRaw)
		tree := dcmtree.NewTree()
		if err := newParser().ParseFile(args[0], tree); err != nil {
			return err
		}
		var matches []dcmtree.DataElement
		_ = tree.Walk(func(_, _ int, n *dcmtree.Node) error {
			if n.Element.Tag == tag {
				matches = append(matches, n.Element)
			}
			return nil
		})
		if len(matches) == 0 {
			return errors.Errorf("tag %s could not be found in file %s", tag, args[0])
		}
		out := cmd.OutOrStdout()
		for _, e := range matches {
			fmt.Fprintln(out, e.Describe(0))
			if !raw {
				continue
			}
			buf, err := readValueBytes(args[0], e)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, goByteLiteral(buf))
		}
		return nil
	},
}

func init() {
	getCmd.Flags().Bool(flagRaw, false, "Also print the undecoded value bytes as a Go byte slice.")
	rootCmd.AddCommand(getCmd)
}

// readValueBytes re-reads the value of `e` from the file at `path`
func readValueBytes(path string, e dcmtree.DataElement) ([]byte, error) {
	if e.Length.IsUndefined() {
		return nil, errors.Errorf("%s has undefined length", e.Tag)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()
	buf := make([]byte, e.Length)
	if _, err := f.ReadAt(buf, e.Offset); err != nil && err != io.EOF {
		return nil, errors.Wrapf(err, "reading %s", e.Tag)
	}
	return buf, nil
}

func goByteLiteral(buf []byte) string {
	hex := make([]string, len(buf))
	for i, b := range buf {
		hex[i] = fmt.Sprintf("0x%02X", b)
	}
	return "[]byte{" + strings.Join(hex, ", ") + "}"
}
