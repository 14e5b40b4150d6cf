package configuration

// NormalizerConfiguration describes how a Normalizer should be
// constructed.
type NormalizerConfiguration struct {
	// Name under which Prometheus metrics are reported. Defaults to
	// "default".
	Name string `json:"name"`

	// Format of pathname strings: "quoted" (default) or "raw".
	Format string `json:"format"`

	// Names of trimming options that are applied: "emptiness",
	// "self" and "parent".
	Trimming []string `json:"trimming"`
}

// ApplicationConfiguration is the configuration of the
// bb_normalize_path program.
type ApplicationConfiguration struct {
	// The normalizer that is applied to all pathname strings.
	Normalizer *NormalizerConfiguration `json:"normalizer"`

	// Pathname strings that are normalized and written to stdout
	// upon startup.
	Paths []string `json:"paths"`

	// If set, the address on which an HTTP server is launched that
	// normalizes pathname strings and exposes Prometheus metrics.
	HTTPListenAddress string `json:"httpListenAddress"`
}
