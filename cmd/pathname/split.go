package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/buildbarn/bb-pathname/pkg/filesystem/path"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var kindColors = map[path.ComponentKind]*color.Color{
	path.ComponentKindCurrent: color.New(color.FgCyan),
	path.ComponentKindParent:  color.New(color.FgMagenta),
	path.ComponentKindEmpty:   color.New(color.FgYellow),
	path.ComponentKindItem:    color.New(color.FgGreen),
}

type splitComponent struct {
	kind path.ComponentKind
	Kind string `yaml:"kind"`
	Raw  string `yaml:"raw"`
}

type splitResult struct {
	Path       string           `yaml:"path"`
	Components []splitComponent `yaml:"components"`
}

func newSplitCommand() *cobra.Command {
	var (
		output string
		raw    bool
	)
	cmd := &cobra.Command{
		Use:   "split <path>...",
		Short: "Print the components of pathname strings",
		Long: `Split pathname strings into components and print the kind of each
component ("current", "parent", "empty" or "item").`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := getFormat(raw)
			results := make([]splitResult, 0, len(args))
			for _, arg := range args {
				result := splitResult{Path: arg}
				for _, c := range format.NewPath(arg).Components() {
					result.Components = append(result.Components, splitComponent{
						kind: c.Kind(),
						Kind: c.Kind().String(),
						Raw:  c.String(),
					})
				}
				results = append(results, result)
			}

			out := cmd.OutOrStdout()
			switch output {
			case "text":
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				for _, result := range results {
					fmt.Fprintf(w, "%s\n", result.Path)
					for i, c := range result.Components {
						fmt.Fprintf(w, "  %d\t%s\t%q\n", i, kindColors[c.kind].Sprint(c.Kind), c.Raw)
					}
				}
				return w.Flush()
			case "yaml":
				encoder := yaml.NewEncoder(out)
				encoder.SetIndent(2)
				if err := encoder.Encode(results); err != nil {
					return err
				}
				return encoder.Close()
			default:
				return status.Errorf(codes.InvalidArgument, "Unknown output format %#v", output)
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text|yaml")
	cmd.Flags().BoolVar(&raw, "raw", false, "Let every slash separate components, ignoring quotes and backslashes")
	return cmd
}
