package api

import (
	"github.com/JaimeStill/taxonomist/internal/classifier"
	"github.com/JaimeStill/taxonomist/internal/extraction"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Classifier classifier.System
	Extraction extraction.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	classifierSystem := classifier.New(
		runtime.Provider,
		runtime.Classifier,
		runtime.Logger,
		classifier.NewMetrics(runtime.Metrics),
	)

	extractionSystem := extraction.New(
		runtime.Extraction,
		runtime.Logger,
	)

	return &Domain{
		Classifier: classifierSystem,
		Extraction: extractionSystem,
	}
}
