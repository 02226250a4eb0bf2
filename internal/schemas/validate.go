// Package schemas provides JSON Schema validation for the persisted state
// trees. Schemas are embedded at compile time and compiled once; callers use
// the boolean checks to degrade corrupt blobs to the default state instead
// of failing.
package schemas

import (
	"embed"
	"fmt"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

var (
	compileOnce     sync.Once
	resumeSchema    *gojsonschema.Schema
	portfolioSchema *gojsonschema.Schema
	compileErr      error
)

func compile() {
	resumeSchema, compileErr = load("resume.schema.json")
	if compileErr != nil {
		return
	}
	portfolioSchema, compileErr = load("portfolio.schema.json")
}

func load(name string) (*gojsonschema.Schema, error) {
	data, err := schemaFiles.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded schema %s: %w", name, err)
	}
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
	}
	return schema, nil
}

// ValidResume reports whether the JSON document is a structurally valid
// ResumeData blob.
func ValidResume(doc []byte) bool {
	return valid(doc, func() *gojsonschema.Schema { return resumeSchema })
}

// ValidPortfolio reports whether the JSON document is a structurally valid
// PortfolioState blob.
func ValidPortfolio(doc []byte) bool {
	return valid(doc, func() *gojsonschema.Schema { return portfolioSchema })
}

func valid(doc []byte, schema func() *gojsonschema.Schema) bool {
	compileOnce.Do(compile)
	if compileErr != nil {
		// An uncompilable embedded schema is a build defect; fail open so
		// state loading still works.
		return true
	}
	result, err := schema().Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return false
	}
	return result.Valid()
}
