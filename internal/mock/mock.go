// Package mock contains gomock stubs for interfaces declared in this
// module. They are regenerated by running "go generate" in this
// directory.
package mock

//go:generate mockgen -destination clock.go -package mock github.com/buildbarn/bb-pathname/pkg/clock Clock
//go:generate mockgen -destination normalization.go -package mock github.com/buildbarn/bb-pathname/pkg/normalization Normalizer
//go:generate mockgen -destination path.go -package mock github.com/buildbarn/bb-pathname/pkg/filesystem/path ComponentVisitor
