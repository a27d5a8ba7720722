package http

import (
	"sync"

	"github.com/swaggo/swag"
)

// docsInstance is the swag registry name served under /swagger/.
const docsInstance = "customer-order"

var registerDocsOnce sync.Once

// openAPIDoc serves the embedded OpenAPI document to swag.
type openAPIDoc struct {
	json string
}

func (d openAPIDoc) ReadDoc() string {
	return d.json
}

// registerDocs publishes the document once per process; swag panics on duplicate names.
func registerDocs(doc []byte) {
	registerDocsOnce.Do(func() {
		swag.Register(docsInstance, openAPIDoc{json: string(doc)})
	})
}
