// Package api holds the OpenAPI contract of the HTTP interface.
package api

import _ "embed"

// OpenAPI is the raw openapi.yml document.
//
//go:embed openapi.yml
var OpenAPI []byte
