package api

import (
	"github.com/JaimeStill/taxonomist/internal/classifier"
	"github.com/JaimeStill/taxonomist/internal/config"
	"github.com/JaimeStill/taxonomist/internal/taxonomy"
	"github.com/JaimeStill/taxonomist/pkg/openapi"
)

// Spec builds the OpenAPI document for the API module.
func Spec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)
	spec.Components.AddSchemas(schemas())

	names := make([]string, 0, 4)
	for _, d := range taxonomy.Dimensions() {
		names = append(names, string(d))
	}

	spec.Paths["/classify"] = &openapi.PathItem{
		Post: &openapi.Operation{
			OperationID: "classify",
			Summary:     "Classify a business description",
			Description: "Runs all four dimension classifications concurrently. Succeeds only when every dimension succeeds.",
			Tags:        []string{"Classification"},
			RequestBody: openapi.RequestBodyJSON("ClassifyRequest", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("All four classifications", "Classification"),
				400: openapi.ResponseRef("BadRequest"),
				401: openapi.ResponseRef("Unauthorized"),
				413: openapi.ResponseRef("PayloadTooLarge"),
				500: openapi.ResponseRef("Failure"),
				503: openapi.ResponseRef("Failure"),
				504: openapi.ResponseRef("Failure"),
			},
		},
	}

	spec.Paths["/upload/pdf"] = &openapi.PathItem{
		Post: &openapi.Operation{
			OperationID: "uploadPDF",
			Summary:     "Extract business text from a PDF",
			Tags:        []string{"Extraction"},
			RequestBody: openapi.RequestBodyMultipart("file", "PDF document"),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Extracted text", "UploadResult"),
				400: openapi.ResponseRef("BadRequest"),
				401: openapi.ResponseRef("Unauthorized"),
				413: openapi.ResponseRef("PayloadTooLarge"),
				422: openapi.ResponseRef("Unprocessable"),
			},
		},
	}

	spec.Paths["/dimensions"] = &openapi.PathItem{
		Get: &openapi.Operation{
			OperationID: "listDimensions",
			Summary:     "List classification dimensions and their allowed values",
			Tags:        []string{"Taxonomy"},
			Responses: map[int]*openapi.Response{
				200: {
					Description: "Dimensions in response order",
					Content: map[string]*openapi.MediaType{
						"application/json": {Schema: &openapi.Schema{Type: "array", Items: openapi.SchemaRef("Dimension")}},
					},
				},
			},
		},
	}

	spec.Paths["/dimensions/{dimension}"] = &openapi.PathItem{
		Get: &openapi.Operation{
			OperationID: "findDimension",
			Summary:     "Find a classification dimension",
			Tags:        []string{"Taxonomy"},
			Parameters:  []*openapi.Parameter{openapi.PathParam("dimension", "Dimension name", names...)},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Dimension", "Dimension"),
				404: openapi.ResponseRef("NotFound"),
			},
		},
	}

	spec.Paths["/provider"] = &openapi.PathItem{
		Get: &openapi.Operation{
			OperationID: "providerInfo",
			Summary:     "Describe the configured completion provider",
			Tags:        []string{"Provider"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Provider diagnostics", "ProviderInfo"),
			},
		},
	}

	return spec
}

func schemas() map[string]*openapi.Schema {
	stringList := &openapi.Schema{Type: "array", Items: &openapi.Schema{Type: "string"}}
	minName, minDescription := 1, classifier.MinDescriptionLength

	result := &openapi.Schema{
		Type:     "object",
		Required: []string{"main", "other", "justification"},
		Properties: map[string]*openapi.Schema{
			"main":          {Type: "string", Description: "Primary category, always one of the dimension's allowed values"},
			"other":         {Type: "array", Items: &openapi.Schema{Type: "string"}, Description: "Secondary categories"},
			"justification": {Type: "string", Description: "Short rationale for the primary category"},
		},
	}

	classification := &openapi.Schema{
		Type:       "object",
		Required:   make([]string, 0, 4),
		Properties: make(map[string]*openapi.Schema, 4),
	}
	for _, d := range taxonomy.Dimensions() {
		classification.Required = append(classification.Required, string(d))
		classification.Properties[string(d)] = openapi.SchemaRef("AgentResult")
	}

	return map[string]*openapi.Schema{
		"ClassifyRequest": {
			Type:     "object",
			Required: []string{"name", "description"},
			Properties: map[string]*openapi.Schema{
				"name":        {Type: "string", Description: "Business name", Example: "Acme Analytics", MinLength: &minName},
				"description": {Type: "string", Description: "Free-text business description", MinLength: &minDescription},
			},
		},
		"AgentResult":    result,
		"Classification": classification,
		"Dimension": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"dimension": {Type: "string"},
				"title":     {Type: "string"},
				"allowed":   stringList,
				"example":   openapi.SchemaRef("AgentResult"),
			},
		},
		"ProviderInfo": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"provider":  {Type: "string", Example: "groq"},
				"model":     {Type: "string"},
				"hasApiKey": {Type: "boolean"},
			},
		},
		"UploadResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"filename":         {Type: "string"},
				"extractedText":    {Type: "string"},
				"pageCount":        {Type: "integer"},
				"businessKeywords": stringList,
				"success":          {Type: "boolean"},
			},
		},
	}
}
