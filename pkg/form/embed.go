package form

import (
	"embed"
	"io/fs"
	"sync"
)

//go:embed templates/*.yml
var embeddedTemplates embed.FS

// FeatureRequestPath is the embedded location of the canonical feature
// request template.
const FeatureRequestPath = "templates/feature_request.yml"

// TemplatesFS exposes the embedded template bundle so callers can serve or
// copy the canonical documents without shipping extra files.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

var (
	featureRequestOnce sync.Once
	featureRequestTpl  Template
	featureRequestErr  error
)

// FeatureRequest returns the canonical feature-request template parsed from
// the embedded bundle. The result is parsed once and shared; callers must
// treat it as immutable.
func FeatureRequest() (Template, error) {
	featureRequestOnce.Do(func() {
		raw, err := fs.ReadFile(embeddedTemplates, FeatureRequestPath)
		if err != nil {
			featureRequestErr = err
			return
		}
		featureRequestTpl, featureRequestErr = ParseBytes(raw, FeatureRequestPath)
	})
	return featureRequestTpl, featureRequestErr
}

// MustFeatureRequest panics if the embedded template fails to parse. Useful
// for tests and CLI defaults.
func MustFeatureRequest() Template {
	tpl, err := FeatureRequest()
	if err != nil {
		panic(err)
	}
	return tpl
}
