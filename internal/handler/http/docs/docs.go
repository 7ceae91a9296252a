// Package docs embeds the OpenAPI 3 description of the /customer API.
package docs

import _ "embed"

// OpenAPI is the JSON OpenAPI document served at /customer.json.
//
//go:embed openapi.json
var OpenAPI []byte
