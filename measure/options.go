package measure

// SourceOption configures FontSource creation.
type SourceOption func(*sourceConfig)

// sourceConfig holds configuration for FontSource.
type sourceConfig struct {
	parserName string
}

// defaultSourceConfig returns the default source configuration.
func defaultSourceConfig() sourceConfig {
	return sourceConfig{
		parserName: defaultParserName, // Default parser (ximage)
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/opentype.
//
// Custom parsers can be registered with RegisterParser. A name with no
// registered parser falls back to the default.
func WithParser(name string) SourceOption {
	return func(c *sourceConfig) {
		c.parserName = name
	}
}

// FaceOption configures Face creation.
type FaceOption func(*faceConfig)

// faceConfig holds configuration for Face.
type faceConfig struct {
	language    string
	tightBounds bool
}

// defaultFaceConfig returns the default face configuration.
func defaultFaceConfig() faceConfig {
	return faceConfig{
		language: "en",
	}
}

// WithLanguage sets the language tag for the face (e.g. "en", "tr", "ja").
// GoTextMeasurer passes it to the shaper; some OpenType substitutions are
// language-sensitive.
func WithLanguage(lang string) FaceOption {
	return func(c *faceConfig) {
		c.language = lang
	}
}

// WithTightBounds makes measurers report each glyph's ink bounds height
// instead of the face line extent. Tight heights hug the radius more
// closely under inside/outside alignment, at the cost of uneven offsets
// from glyph to glyph.
func WithTightBounds() FaceOption {
	return func(c *faceConfig) {
		c.tightBounds = true
	}
}
