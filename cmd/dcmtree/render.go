package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/b71729/dcmtree"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

type renderFunc func(w io.Writer, tree *dcmtree.Tree) error

var renderers = map[string]renderFunc{
	"text":  renderText,
	"table": renderTable,
	"yaml":  renderYAML,
}

func renderText(w io.Writer, tree *dcmtree.Tree) error {
	for _, line := range tree.Describe() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func renderTable(w io.Writer, tree *dcmtree.Tree) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Tag", "VR", "Name", "Length", "Value"})
	table.SetAutoWrapText(false)
	err := tree.Walk(func(_, depth int, n *dcmtree.Node) error {
		e := n.Element
		table.Append([]string{
			strings.Repeat("  ", depth) + e.Tag.String(),
			e.VR.Code(),
			e.Name(),
			e.Length.String(),
			e.Value.String(),
		})
		return nil
	})
	if err != nil {
		return err
	}
	table.Render()
	return nil
}

type yamlNode struct {
	Tag      string      `yaml:"tag"`
	VR       string      `yaml:"vr"`
	Name     string      `yaml:"name"`
	Length   string      `yaml:"length"`
	Value    interface{} `yaml:"value,omitempty"`
	Children []yamlNode  `yaml:"children,omitempty"`
}

func yamlValue(e dcmtree.DataElement) interface{} {
	v := e.Value
	switch v.Kind {
	case dcmtree.KindIgnored:
		return nil
	case dcmtree.KindMultiText:
		return v.Strings()
	case dcmtree.KindNumeric:
		return v.Interface()
	case dcmtree.KindNumericArray:
		if numbers, err := v.DecodeNumbers(e.Syntax.ByteOrder); err == nil {
			return numbers
		}
	}
	return v.String()
}

func toYAMLNodes(tree *dcmtree.Tree, indices []int) []yamlNode {
	nodes := make([]yamlNode, 0, len(indices))
	for _, index := range indices {
		n := tree.Node(index)
		nodes = append(nodes, yamlNode{
			Tag:      n.Element.Tag.String(),
			VR:       n.Element.VR.Code(),
			Name:     n.Element.Name(),
			Length:   n.Element.Length.String(),
			Value:    yamlValue(n.Element),
			Children: toYAMLNodes(tree, n.Children),
		})
	}
	return nodes
}

func renderYAML(w io.Writer, tree *dcmtree.Tree) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toYAMLNodes(tree, tree.Root().Children)); err != nil {
		return err
	}
	return enc.Close()
}
