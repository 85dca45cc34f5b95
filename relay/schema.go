package relay

import (
	"github.com/invopop/jsonschema"
)

// Schemas returns JSON Schemas for the client and server frames, keyed
// "client" and "server".
func Schemas() map[string]*jsonschema.Schema {
	return map[string]*jsonschema.Schema{
		"client": clientSchema(),
		"server": serverSchema(),
	}
}

func reflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
}

func clientSchema() *jsonschema.Schema {
	s := reflector().Reflect(&ClientFrame{})
	s.Title = "Gesture relay client frame"
	s.Description = "Touch, motion, config and ping frames sent to /relay/ws."
	return s
}

func serverSchema() *jsonschema.Schema {
	s := reflector().Reflect(&ServerFrame{})
	s.Title = "Gesture relay server frame"
	s.Description = "Hello, gesture, pong and error frames sent by /relay/ws."
	return s
}
