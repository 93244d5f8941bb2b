// ABOUTME: Agent lifecycle shapes for the system utilities
// ABOUTME: Reset reports which stores were wiped; agent calls echo the agent id

package models

type ResetOutput struct {
	DeletedSettings      bool `json:"deleted_settings"`
	DeletedMemories      bool `json:"deleted_memories"`
	DeletedPluginFolders bool `json:"deleted_plugin_folders"`
}

func (*ResetOutput) RequiredFields() []string {
	return []string{"deleted_settings", "deleted_memories", "deleted_plugin_folders"}
}

type AgentItem struct {
	AgentID  string         `json:"agent_id"`
	Metadata map[string]any `json:"metadata"`
}

func (*AgentItem) RequiredFields() []string {
	return []string{"agent_id"}
}

type AgentCreatedOutput struct {
	Created bool `json:"created"`
}

func (*AgentCreatedOutput) RequiredFields() []string {
	return []string{"created"}
}

type AgentClonedOutput struct {
	Cloned bool `json:"cloned"`
}

func (*AgentClonedOutput) RequiredFields() []string {
	return []string{"cloned"}
}

type AgentUpdatedOutput struct {
	AgentID  string         `json:"agent_id"`
	Metadata map[string]any `json:"metadata"`
}

func (*AgentUpdatedOutput) RequiredFields() []string {
	return []string{"agent_id"}
}
