package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/askretov/equal"
)

var (
	method   string
	maxDepth int
)

var rootCmd = &cobra.Command{
	Use:   "classify <a> <b>",
	Short: "Classify the equality relation between two YAML/JSON documents",
	Long: `Classify parses two YAML (or JSON) documents and reports the strictest
equality method under which they match: strict, loose, uniform or none.

Examples:
  # Classify two documents
  classify a.yaml b.yaml

  # Assert a single method instead of classifying
  classify a.json b.json --method uniform

  # Bound the structural comparison depth
  classify a.yaml b.yaml --method uniform --max-depth 2`,
	Args: cobra.ExactArgs(2),
	RunE: runClassify,
}

func init() {
	rootCmd.Flags().StringVarP(&method, "method", "m", "",
		"assert a single equality method instead of classifying")
	rootCmd.Flags().IntVarP(&maxDepth, "max-depth", "d", 0,
		"depth budget for uniform comparison (0 = unbounded)")
}

func runClassify(cmd *cobra.Command, args []string) error {
	a, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	b, err := loadDocument(args[1])
	if err != nil {
		return err
	}
	if maxDepth > 0 && method != equal.MethodUniform {
		return fmt.Errorf("--max-depth applies only to --method %s", equal.MethodUniform)
	}
	if method == equal.MethodUniform && maxDepth > 0 {
		match, err := equal.CompareDepth(a, b, maxDepth)
		if err != nil {
			return err
		}
		fmt.Println(match)
		return nil
	}
	if method != "" {
		match, err := equal.ClassifyAssert(a, b, method)
		if err != nil {
			return err
		}
		fmt.Println(match)
		return nil
	}
	fmt.Println(equal.Classify(a, b))
	return nil
}

func loadDocument(path string) (interface{}, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
