package cmd

import (
	"github.com/sirupsen/logrus"

	toml "roseh.moe/pkg/toml"
)

// logrusFields turns a parse error's location into structured fields
// keyed by attribute name, for attaching to a logrus log entry.
func logrusFields(path string, pe *toml.ParseError) logrus.Fields {
	return logrus.Fields{
		"path":   path,
		"line":   pe.Line,
		"column": pe.Column,
		"offset": pe.Offset,
	}
}
