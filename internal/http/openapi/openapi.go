// Package openapi holds the API description served at /openapi.yaml.
package openapi

import _ "embed"

// ContentType is the media type the document is served with.
const ContentType = "application/yaml"

// YAML is the OpenAPI 3 document for the tour catalog API.
//
//go:embed openapi.yaml
var YAML []byte
