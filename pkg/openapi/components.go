package openapi

import "maps"

// NewComponents creates Components with the shared error schemas and responses.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Error": {
				Type: "object",
				Properties: map[string]*Schema{
					"error": {Type: "string", Description: "Error message"},
				},
			},
			"Failure": {
				Type:     "object",
				Required: []string{"error", "message"},
				Properties: map[string]*Schema{
					"error":    {Type: "string", Description: "Failure category", Example: "Classification failed"},
					"message":  {Type: "string", Description: "Human readable cause, including the failed dimensions"},
					"provider": {Type: "string", Description: "Completion provider that served the request", Example: "groq"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest":      errorResponse("Invalid request", "Error"),
			"NotFound":        errorResponse("Resource not found", "Error"),
			"Unauthorized":    errorResponse("Missing or invalid bearer token", "Error"),
			"PayloadTooLarge": errorResponse("Request exceeds the configured size limit", "Error"),
			"Unprocessable":   errorResponse("Document could not be processed", "Error"),
			"Failure":         errorResponse("Classification failed", "Failure"),
		},
	}
}

func errorResponse(description, schema string) *Response {
	return &Response{
		Description: description,
		Content: map[string]*MediaType{
			"application/json": {Schema: SchemaRef(schema)},
		},
	}
}

// AddSchemas merges the given schemas into the component schemas.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	maps.Copy(c.Schemas, schemas)
}

// AddResponses merges the given responses into the component responses.
func (c *Components) AddResponses(responses map[string]*Response) {
	maps.Copy(c.Responses, responses)
}
