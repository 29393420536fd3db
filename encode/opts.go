package encode

import "github.com/signadot/simplejson/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// EncodeCompact drops the spaces after ':' and ','.
func EncodeCompact(v bool) EncodeOption {
	return func(es *EncState) { es.compact = v }
}

// EncodeIndent puts each member on its own line, indented by s per level.
func EncodeIndent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// FormatSuffix returns the file extension for the given format.
func FormatSuffix(f format.Format) string {
	return f.Suffix()
}
