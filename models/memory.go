// ABOUTME: Vector memory shapes: collections, points, recall and chat history
// ABOUTME: Points carry free-form metadata used as filters by the delete and list calls

package models

type CollectionsItem struct {
	Name         string `json:"name"`
	VectorsCount int    `json:"vectors_count"`
}

type CollectionsOutput struct {
	Collections []CollectionsItem `json:"collections"`
}

func (*CollectionsOutput) RequiredFields() []string {
	return []string{"collections"}
}

// CollectionPointsDestroyOutput maps each wiped collection to its outcome.
type CollectionPointsDestroyOutput struct {
	Deleted map[string]bool `json:"deleted"`
}

func (*CollectionPointsDestroyOutput) RequiredFields() []string {
	return []string{"deleted"}
}

// ConversationHistoryItemContent is one turn's message, with the agent's
// reasoning when the turn was the agent's.
type ConversationHistoryItemContent struct {
	MessageBase
	Why *Why `json:"why,omitempty"`
}

type ConversationHistoryItem struct {
	Who     string                         `json:"who"`
	When    float64                        `json:"when"`
	Content ConversationHistoryItemContent `json:"content"`
}

type ConversationHistoryOutput struct {
	History []ConversationHistoryItem `json:"history"`
}

func (*ConversationHistoryOutput) RequiredFields() []string {
	return []string{"history"}
}

type ConversationHistoryDeleteOutput struct {
	Deleted bool `json:"deleted"`
}

func (*ConversationHistoryDeleteOutput) RequiredFields() []string {
	return []string{"deleted"}
}

// MemoryPoint is the content stored in a collection.
type MemoryPoint struct {
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type MemoryPointOutput struct {
	MemoryPoint
	ID     string    `json:"id"`
	Vector []float64 `json:"vector"`
}

func (*MemoryPointOutput) RequiredFields() []string {
	return []string{"content", "id", "vector"}
}

type MemoryPointDeleteOutput struct {
	Deleted string `json:"deleted"`
}

func (*MemoryPointDeleteOutput) RequiredFields() []string {
	return []string{"deleted"}
}

type MemoryPointsDeleteByMetadataInfo struct {
	OperationID int    `json:"operation_id"`
	Status      string `json:"status"`
}

type MemoryPointsDeleteByMetadataOutput struct {
	Deleted MemoryPointsDeleteByMetadataInfo `json:"deleted"`
}

func (*MemoryPointsDeleteByMetadataOutput) RequiredFields() []string {
	return []string{"deleted"}
}

// Record is a stored point as the vector database returns it.
type Record struct {
	ID         string         `json:"id"`
	Payload    map[string]any `json:"payload,omitempty"`
	Vector     []float64      `json:"vector,omitempty"`
	ShardKey   *string        `json:"shard_key,omitempty"`
	OrderValue *float64       `json:"order_value,omitempty"`
}

// MemoryPointsOutput is one page of points. NextOffset is nil on the last page
// and otherwise a string or number to pass back as the offset.
type MemoryPointsOutput struct {
	Points     []Record `json:"points"`
	NextOffset any      `json:"next_offset"`
}

func (*MemoryPointsOutput) RequiredFields() []string {
	return []string{"points"}
}

type MemoryRecallQuery struct {
	Text   string    `json:"text"`
	Vector []float64 `json:"vector"`
}

type MemoryRecallVectors struct {
	Embedder    string                      `json:"embedder"`
	Collections map[string][]map[string]any `json:"collections"`
}

type MemoryRecallOutput struct {
	Query   MemoryRecallQuery   `json:"query"`
	Vectors MemoryRecallVectors `json:"vectors"`
}

func (*MemoryRecallOutput) RequiredFields() []string {
	return []string{"query", "vectors", "vectors.embedder"}
}
