// ABOUTME: Settings of pluggable factory objects such as the LLM and embedder
// ABOUTME: FactoryKind names the path segment of each factory family

package models

import "slices"

// FactoryKind selects a factory family.
type FactoryKind string

const (
	FactoryLLM            FactoryKind = "llm"
	FactoryEmbedder       FactoryKind = "embedder"
	FactoryAuthHandler    FactoryKind = "auth_handler"
	FactoryFileManager    FactoryKind = "file_manager"
	FactoryChunker        FactoryKind = "chunker"
	FactoryVectorDatabase FactoryKind = "vector_database"
)

// FactoryKinds lists every family in path order.
var FactoryKinds = []FactoryKind{
	FactoryLLM,
	FactoryEmbedder,
	FactoryAuthHandler,
	FactoryFileManager,
	FactoryChunker,
	FactoryVectorDatabase,
}

// Valid reports whether k is a known family.
func (k FactoryKind) Valid() bool {
	return slices.Contains(FactoryKinds, k)
}

type FactoryObjectSettingOutput struct {
	Name   string         `json:"name"`
	Value  map[string]any `json:"value"`
	Scheme map[string]any `json:"scheme,omitempty"`
}

func (*FactoryObjectSettingOutput) RequiredFields() []string {
	return []string{"name", "value"}
}

type FactoryObjectSettingsOutput struct {
	Settings              []FactoryObjectSettingOutput `json:"settings"`
	SelectedConfiguration string                       `json:"selected_configuration"`
}

func (*FactoryObjectSettingsOutput) RequiredFields() []string {
	return []string{"settings", "selected_configuration"}
}
