package path

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Format of pathname strings.
type Format interface {
	NewPath(s string) Path
}

type quotedFormat struct{}

func (quotedFormat) NewPath(s string) Path {
	return NewPath(s)
}

// QuotedFormat parses pathname strings using NewPath(), meaning that
// quoted and escaped slashes do not separate components.
var QuotedFormat Format = quotedFormat{}

type rawFormat struct{}

func (rawFormat) NewPath(s string) Path {
	return NewPathFromRaw(s)
}

// RawFormat parses pathname strings using NewPathFromRaw(), meaning
// that every slash separates components.
var RawFormat Format = rawFormat{}

// NewFormatFromName returns the Format corresponding to a name that is
// used in configuration files and command line flags.
func NewFormatFromName(name string) (Format, error) {
	switch name {
	case "", "quoted":
		return QuotedFormat, nil
	case "raw":
		return RawFormat, nil
	default:
		return nil, status.Errorf(codes.InvalidArgument, "Unknown pathname format %#v", name)
	}
}
