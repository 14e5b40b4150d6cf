package normalization

import (
	"github.com/buildbarn/bb-pathname/pkg/filesystem/path"
)

type trimmingNormalizer struct {
	format   path.Format
	trimming path.Trimming
	visitor  path.ComponentVisitor
}

// NewTrimmingNormalizer creates a Normalizer that parses pathname
// strings using the provided format, and converts them back to a
// string while applying a trimming.
//
// Every component of the parsed pathname, including ones that are
// removed by the trimming, is reported to the provided visitor. Use
// path.VoidComponentVisitor{} if this is not needed.
func NewTrimmingNormalizer(format path.Format, trimming path.Trimming, visitor path.ComponentVisitor) Normalizer {
	return &trimmingNormalizer{
		format:   format,
		trimming: trimming,
		visitor:  visitor,
	}
}

func (n *trimmingNormalizer) Normalize(raw string) string {
	p := n.format.NewPath(raw)
	p.Walk(n.visitor)
	if n.trimming.IsEmpty() {
		return p.GetUNIXString()
	}
	return p.GetTrimmedUNIXString(n.trimming)
}
