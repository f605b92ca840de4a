package parser

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed schema/openapi.yaml
var schemaFS embed.FS

const (
	schemaPath   = "schema/openapi.yaml"
	listPath     = "/api/v1/programs/"
	listMimeType = "application/json"
)

var (
	pageSchemaOnce sync.Once
	pageSchema     *openapi3.SchemaRef
	pageSchemaErr  error
)

// pageResponseSchema resolves the 200-response schema for the list endpoint
// from the embedded OpenAPI document. The document ships with the binary, so
// a resolution failure is a packaging bug rather than a runtime condition.
func pageResponseSchema() (*openapi3.SchemaRef, error) {
	pageSchemaOnce.Do(func() {
		data, err := schemaFS.ReadFile(schemaPath)
		if err != nil {
			pageSchemaErr = fmt.Errorf("read embedded schema: %w", err)
			return
		}

		ctx := context.Background()
		loader := &openapi3.Loader{Context: ctx}
		spec, err := loader.LoadFromData(data)
		if err != nil {
			pageSchemaErr = fmt.Errorf("load embedded schema: %w", err)
			return
		}
		if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
			pageSchemaErr = fmt.Errorf("validate embedded schema: %w", err)
			return
		}

		item := spec.Paths.Find(listPath)
		if item == nil || item.Get == nil {
			pageSchemaErr = errors.New("embedded schema is missing the list operation")
			return
		}
		response := item.Get.Responses.Status(200)
		if response == nil || response.Value == nil {
			pageSchemaErr = errors.New("embedded schema is missing the list response")
			return
		}
		media := response.Value.Content.Get(listMimeType)
		if media == nil || media.Schema == nil {
			pageSchemaErr = errors.New("embedded schema is missing the list media type")
			return
		}
		pageSchema = media.Schema
	})
	return pageSchema, pageSchemaErr
}

func validatePayload(raw []byte) error {
	schema, err := pageResponseSchema()
	if err != nil {
		return err
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	return schema.Value.VisitJSON(decoded)
}
