// ABOUTME: Plugin catalogue and plugin settings shapes
// ABOUTME: The catalogue lists installed plugins next to registry matches for a query

package models

type FilterOutput struct {
	Query *string `json:"query"`
}

type HookOutput struct {
	Name     string `json:"name"`
	Priority int    `json:"priority"`
}

type ToolOutput struct {
	Name string `json:"name"`
}

// PluginItemOutput is an installed plugin.
type PluginItemOutput struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	AuthorName  string       `json:"author_name"`
	AuthorURL   string       `json:"author_url"`
	PluginURL   string       `json:"plugin_url"`
	Tags        string       `json:"tags"`
	Thumb       string       `json:"thumb"`
	Version     string       `json:"version"`
	Active      bool         `json:"active"`
	Hooks       []HookOutput `json:"hooks"`
	Tools       []ToolOutput `json:"tools"`
}

// PluginItemRegistryOutput is a plugin available from the registry.
type PluginItemRegistryOutput struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AuthorName  string `json:"author_name"`
	AuthorURL   string `json:"author_url"`
	PluginURL   string `json:"plugin_url"`
	Tags        string `json:"tags"`
	Thumb       string `json:"thumb"`
	Version     string `json:"version"`
	URL         string `json:"url"`
}

type PluginCollectionOutput struct {
	Filters   FilterOutput               `json:"filters"`
	Installed []PluginItemOutput         `json:"installed"`
	Registry  []PluginItemRegistryOutput `json:"registry"`
}

func (*PluginCollectionOutput) RequiredFields() []string {
	return []string{"filters"}
}

type PluginToggleOutput struct {
	Info string `json:"info"`
}

func (*PluginToggleOutput) RequiredFields() []string {
	return []string{"info"}
}

type PropertySettingsOutput struct {
	Default any            `json:"default"`
	Title   string         `json:"title"`
	Type    string         `json:"type"`
	Extra   map[string]any `json:"extra,omitempty"`
}

type PluginSchemaSettings struct {
	Title      string                            `json:"title"`
	Type       string                            `json:"type"`
	Properties map[string]PropertySettingsOutput `json:"properties"`
}

type PluginSettingsOutput struct {
	Name   string                `json:"name"`
	Value  map[string]any        `json:"value"`
	Scheme *PluginSchemaSettings `json:"scheme,omitempty"`
}

func (*PluginSettingsOutput) RequiredFields() []string {
	return []string{"name", "value"}
}

type PluginsSettingsOutput struct {
	Settings []PluginSettingsOutput `json:"settings"`
}

func (*PluginsSettingsOutput) RequiredFields() []string {
	return []string{"settings"}
}
