package servers

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=cfg.yaml openapi.yaml

//go:embed openapi.yaml
var openAPIDocument []byte

// RawSpec returns the OpenAPI document as written.
func RawSpec() []byte {
	return openAPIDocument
}

// GetSwagger returns the parsed and validated OpenAPI document. Every call
// returns a fresh copy, so callers may modify it.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	swagger, err := loader.LoadFromData(openAPIDocument)
	if err != nil {
		return nil, fmt.Errorf("error loading embedded spec: %w", err)
	}
	if err = swagger.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("embedded spec is invalid: %w", err)
	}
	return swagger, nil
}
