// ABOUTME: Rabbit hole endpoints ingesting files, URLs and memory exports
// ABOUTME: Chunking options travel as multipart fields; metadata is JSON-encoded

package endpoints

import (
	"context"

	"github.com/2389/cheshire-client/marshal"
	"github.com/2389/cheshire-client/models"
	"github.com/2389/cheshire-client/transport"
)

// IngestOptions tunes how uploaded content is split. Nil fields are omitted
// and the server defaults apply.
type IngestOptions struct {
	ChunkSize    *int
	ChunkOverlap *int
	Metadata     map[string]any
}

type RabbitHole struct {
	m *marshal.Marshaller
}

func NewRabbitHole(m *marshal.Marshaller) *RabbitHole {
	return &RabbitHole{m: m}
}

// PostFile uploads one file for ingestion. filename defaults to the base
// name of path.
func (e *RabbitHole) PostFile(
	ctx context.Context,
	path, filename string,
	opts IngestOptions,
	id transport.Identity,
) (*models.UploadSingleFileResponse, error) {
	body := &marshal.Multipart{
		Fields: opts.fields(),
		Files:  []marshal.FilePart{{Field: "file", Path: path, Filename: filename}},
	}
	return marshal.PostMultipart[models.UploadSingleFileResponse](ctx, e.m, "/rabbithole", body, id)
}

// PostFiles uploads several files in one request. The result is keyed by
// filename.
func (e *RabbitHole) PostFiles(
	ctx context.Context,
	paths []string,
	opts IngestOptions,
	id transport.Identity,
) (map[string]models.UploadSingleFileResponse, error) {
	files := make([]marshal.FilePart, 0, len(paths))
	for _, p := range paths {
		files = append(files, marshal.FilePart{Field: "files", Path: p})
	}
	body := &marshal.Multipart{Fields: opts.fields(), Files: files}
	return marshal.PostMultipartMap[models.UploadSingleFileResponse](ctx, e.m, "/rabbithole/batch", body, id)
}

// PostWeb asks the agent to scrape and ingest url.
func (e *RabbitHole) PostWeb(ctx context.Context, url string, opts IngestOptions, id transport.Identity) (*models.UploadURLResponse, error) {
	payload := map[string]any{"url": url}
	if opts.ChunkSize != nil {
		payload["chunk_size"] = *opts.ChunkSize
	}
	if opts.ChunkOverlap != nil {
		payload["chunk_overlap"] = *opts.ChunkOverlap
	}
	if opts.Metadata != nil {
		payload["metadata"] = opts.Metadata
	}
	return marshal.PostJSON[models.UploadURLResponse](ctx, e.m, "/rabbithole/web", payload, id)
}

// PostMemory uploads a JSON memory export previously downloaded from an agent.
func (e *RabbitHole) PostMemory(ctx context.Context, path, filename string, id transport.Identity) (*models.UploadSingleFileResponse, error) {
	body := &marshal.Multipart{
		Files: []marshal.FilePart{{Field: "file", Path: path, Filename: filename}},
	}
	return marshal.PostMultipart[models.UploadSingleFileResponse](ctx, e.m, "/rabbithole/memory", body, id)
}

func (e *RabbitHole) AllowedMimeTypes(ctx context.Context, id transport.Identity) (*models.AllowedMimeTypesOutput, error) {
	return marshal.Get[models.AllowedMimeTypesOutput](ctx, e.m, "/rabbithole/allowed-mimetypes", nil, id)
}

func (o IngestOptions) fields() []marshal.Field {
	var fields []marshal.Field
	if o.ChunkSize != nil {
		fields = append(fields, marshal.Field{Name: "chunk_size", Value: *o.ChunkSize})
	}
	if o.ChunkOverlap != nil {
		fields = append(fields, marshal.Field{Name: "chunk_overlap", Value: *o.ChunkOverlap})
	}
	if o.Metadata != nil {
		fields = append(fields, marshal.Field{Name: "metadata", Value: o.Metadata})
	}
	return fields
}
