// ABOUTME: Agent setting shapes for the settings resource
// ABOUTME: updated_at may arrive as a number or a string, so it is kept as any

package models

// SettingInput creates or replaces a setting.
type SettingInput struct {
	Name     string         `json:"name"`
	Value    map[string]any `json:"value"`
	Category string         `json:"category,omitempty"`
}

type SettingOutput struct {
	Name      string         `json:"name"`
	Value     map[string]any `json:"value"`
	Category  string         `json:"category"`
	SettingID string         `json:"setting_id"`
	UpdatedAt any            `json:"updated_at"`
}

func (*SettingOutput) RequiredFields() []string {
	return []string{"name", "value", "category", "setting_id", "updated_at"}
}

type SettingOutputItem struct {
	Setting SettingOutput `json:"setting"`
}

func (*SettingOutputItem) RequiredFields() []string {
	return []string{"setting", "setting.name", "setting.setting_id"}
}

type SettingsOutputCollection struct {
	Settings []SettingOutput `json:"settings"`
}

func (*SettingsOutputCollection) RequiredFields() []string {
	return []string{"settings"}
}

type SettingDeleteOutput struct {
	Deleted bool `json:"deleted"`
}

func (*SettingDeleteOutput) RequiredFields() []string {
	return []string{"deleted"}
}
