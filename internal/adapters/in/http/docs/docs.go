// Package docs registers the OpenAPI document with swag so echo-swagger can
// serve it next to the Swagger UI.
package docs

import (
	"encoding/json"
	"sync"

	"fieldservice/internal/generated/servers"

	"github.com/swaggo/swag"
)

// InstanceName is the swag registry key echo-swagger reads by default.
const InstanceName = swag.Name

type document struct {
	raw string
}

func (d document) ReadDoc() string {
	return d.raw
}

var (
	registerOnce sync.Once
	registerErr  error
)

// Register publishes the service's OpenAPI document under InstanceName.
// swag panics on a second registration, so only the first call has an effect.
func Register() error {
	registerOnce.Do(func() {
		swagger, err := servers.GetSwagger()
		if err != nil {
			registerErr = err
			return
		}
		raw, err := json.Marshal(swagger)
		if err != nil {
			registerErr = err
			return
		}
		swag.Register(InstanceName, document{raw: string(raw)})
	})
	return registerErr
}
