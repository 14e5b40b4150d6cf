package main

import (
	"fmt"
	"strings"

	"github.com/buildbarn/bb-pathname/pkg/filesystem/path"
	"github.com/buildbarn/bb-pathname/pkg/normalization"
	"github.com/buildbarn/bb-pathname/pkg/util"
	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

var (
	diffDeleteColor = color.New(color.FgRed, color.CrossedOut)
	diffInsertColor = color.New(color.FgGreen)
)

// renderDiff renders the differences between a pathname string and its
// normalized form. Deleted text is written as [-text-] and inserted
// text as {+text+}, so that differences remain visible when colors are
// disabled.
func renderDiff(diffs []diffmatchpatch.Diff) string {
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			sb.WriteString(diffDeleteColor.Sprint("[-" + d.Text + "-]"))
		case diffmatchpatch.DiffInsert:
			sb.WriteString(diffInsertColor.Sprint("{+" + d.Text + "+}"))
		default:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}

func newNormalizeCommand() *cobra.Command {
	var (
		trim     []string
		raw      bool
		showDiff bool
	)
	cmd := &cobra.Command{
		Use:   "normalize <path>...",
		Short: "Normalize pathname strings",
		Long: `Normalize pathname strings by removing empty components ("emptiness"),
removing "." components ("self") and collapsing ".." components ("parent").`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			trimming, err := path.NewTrimmingFromNames(trim)
			if err != nil {
				return util.StatusWrap(err, "Invalid --trim flag")
			}
			normalizer := normalization.NewTrimmingNormalizer(getFormat(raw), trimming, path.VoidComponentVisitor{})

			out := cmd.OutOrStdout()
			dmp := diffmatchpatch.New()
			for _, arg := range args {
				normalized := normalizer.Normalize(arg)
				if showDiff {
					fmt.Fprintln(out, renderDiff(dmp.DiffMain(arg, normalized, false)))
				} else {
					fmt.Fprintln(out, normalized)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&trim, "trim", "t", []string{"emptiness", "self"}, "Trimming options to apply: emptiness, self, parent")
	cmd.Flags().BoolVar(&raw, "raw", false, "Let every slash separate components, ignoring quotes and backslashes")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "Show the changes made by normalization instead of the result")
	return cmd
}
