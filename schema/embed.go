package schema

import _ "embed"

// OpenAPI holds the embedded OpenAPI (Swagger) YAML for the yield token
// service's HTTP surface.
//go:embed openapi.yaml
var OpenAPI []byte
