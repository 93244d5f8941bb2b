// ABOUTME: Vector memory endpoints for collections, points, recall and chat history
// ABOUTME: Metadata filters are sent as JSON, in the query for reads and the body for deletes

package endpoints

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/2389/cheshire-client/apierror"
	"github.com/2389/cheshire-client/marshal"
	"github.com/2389/cheshire-client/models"
	"github.com/2389/cheshire-client/transport"
)

type Memory struct {
	m *marshal.Marshaller
}

func NewMemory(m *marshal.Marshaller) *Memory {
	return &Memory{m: m}
}

// RecallOptions narrows a recall. Zero values leave the server defaults.
type RecallOptions struct {
	K        int
	Metadata map[string]any
}

// PointsPage selects a page of points. Offset is the NextOffset of the
// previous page, or nil for the first.
type PointsPage struct {
	Limit    int
	Offset   any
	Metadata map[string]any
}

func (e *Memory) Collections(ctx context.Context, id transport.Identity) (*models.CollectionsOutput, error) {
	return marshal.Get[models.CollectionsOutput](ctx, e.m, "/memory/collections", nil, id)
}

// WipeCollections deletes every point in every collection.
func (e *Memory) WipeCollections(ctx context.Context, id transport.Identity) (*models.CollectionPointsDestroyOutput, error) {
	return marshal.Delete[models.CollectionPointsDestroyOutput](ctx, e.m, "/memory/collections", nil, id)
}

func (e *Memory) WipeCollection(ctx context.Context, collection string, id transport.Identity) (*models.CollectionPointsDestroyOutput, error) {
	return marshal.Delete[models.CollectionPointsDestroyOutput](ctx, e.m, collectionPath(collection), nil, id)
}

// ConversationHistory returns the chat history of id's user.
func (e *Memory) ConversationHistory(ctx context.Context, id transport.Identity) (*models.ConversationHistoryOutput, error) {
	return marshal.Get[models.ConversationHistoryOutput](ctx, e.m, "/memory/conversation_history", nil, id)
}

func (e *Memory) DeleteConversationHistory(ctx context.Context, id transport.Identity) (*models.ConversationHistoryDeleteOutput, error) {
	return marshal.Delete[models.ConversationHistoryDeleteOutput](ctx, e.m, "/memory/conversation_history", nil, id)
}

// AddConversationHistory appends a turn spoken by who to the history.
func (e *Memory) AddConversationHistory(
	ctx context.Context,
	who string,
	content models.ConversationHistoryItemContent,
	id transport.Identity,
) (*models.ConversationHistoryOutput, error) {
	payload := map[string]any{
		"who":  who,
		"text": content.Text,
	}
	if content.Images != nil {
		payload["images"] = content.Images
	}
	if content.Audio != nil {
		payload["audio"] = content.Audio
	}
	if content.Why != nil {
		payload["why"] = content.Why
	}
	return marshal.PostJSON[models.ConversationHistoryOutput](ctx, e.m, "/memory/conversation_history", payload, id)
}

// Recall searches every collection for points close to text.
func (e *Memory) Recall(ctx context.Context, text string, opts RecallOptions, id transport.Identity) (*models.MemoryRecallOutput, error) {
	query := url.Values{"text": {text}}
	if opts.K > 0 {
		query.Set("k", strconv.Itoa(opts.K))
	}
	if opts.Metadata != nil {
		encoded, err := json.Marshal(opts.Metadata)
		if err != nil {
			return nil, &apierror.EncodingError{Err: err}
		}
		query.Set("metadata", string(encoded))
	}
	return marshal.Get[models.MemoryRecallOutput](ctx, e.m, "/memory/recall", query, id)
}

func (e *Memory) AddPoint(ctx context.Context, collection string, point models.MemoryPoint, id transport.Identity) (*models.MemoryPointOutput, error) {
	return marshal.PostJSON[models.MemoryPointOutput](ctx, e.m, collectionPath(collection)+"/points", point, id)
}

func (e *Memory) UpdatePoint(ctx context.Context, collection, pointID string, point models.MemoryPoint, id transport.Identity) (*models.MemoryPointOutput, error) {
	return marshal.Put[models.MemoryPointOutput](ctx, e.m, pointPath(collection, pointID), point, id)
}

func (e *Memory) DeletePoint(ctx context.Context, collection, pointID string, id transport.Identity) (*models.MemoryPointDeleteOutput, error) {
	return marshal.Delete[models.MemoryPointDeleteOutput](ctx, e.m, pointPath(collection, pointID), nil, id)
}

// DeletePointsByMetadata removes every point of collection whose metadata
// matches all pairs in metadata.
func (e *Memory) DeletePointsByMetadata(
	ctx context.Context,
	collection string,
	metadata map[string]any,
	id transport.Identity,
) (*models.MemoryPointsDeleteByMetadataOutput, error) {
	return marshal.Delete[models.MemoryPointsDeleteByMetadataOutput](ctx, e.m, collectionPath(collection)+"/points", metadata, id)
}

// Points returns one page of a collection's points.
func (e *Memory) Points(ctx context.Context, collection string, page PointsPage, id transport.Identity) (*models.MemoryPointsOutput, error) {
	query := url.Values{}
	if page.Limit > 0 {
		query.Set("limit", strconv.Itoa(page.Limit))
	}
	if page.Offset != nil {
		query.Set("offset", fmt.Sprint(page.Offset))
	}
	if page.Metadata != nil {
		encoded, err := json.Marshal(page.Metadata)
		if err != nil {
			return nil, &apierror.EncodingError{Err: err}
		}
		query.Set("metadata", string(encoded))
	}
	return marshal.Get[models.MemoryPointsOutput](ctx, e.m, collectionPath(collection)+"/points", query, id)
}

func collectionPath(collection string) string {
	return "/memory/collections/" + url.PathEscape(collection)
}

func pointPath(collection, pointID string) string {
	return collectionPath(collection) + "/points/" + url.PathEscape(pointID)
}
