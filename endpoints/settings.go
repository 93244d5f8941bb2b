// ABOUTME: Agent settings endpoints
// ABOUTME: Settings are addressed by the setting_id the server assigns on creation

package endpoints

import (
	"context"
	"net/url"

	"github.com/2389/cheshire-client/marshal"
	"github.com/2389/cheshire-client/models"
	"github.com/2389/cheshire-client/transport"
)

type Settings struct {
	m *marshal.Marshaller
}

func NewSettings(m *marshal.Marshaller) *Settings {
	return &Settings{m: m}
}

// List returns every setting, filtered by name when search is non-empty.
func (e *Settings) List(ctx context.Context, search string, id transport.Identity) (*models.SettingsOutputCollection, error) {
	var query url.Values
	if search != "" {
		query = url.Values{"search": {search}}
	}
	return marshal.Get[models.SettingsOutputCollection](ctx, e.m, "/settings", query, id)
}

func (e *Settings) Create(ctx context.Context, in models.SettingInput, id transport.Identity) (*models.SettingOutputItem, error) {
	return marshal.PostJSON[models.SettingOutputItem](ctx, e.m, "/settings", in, id)
}

func (e *Settings) Get(ctx context.Context, settingID string, id transport.Identity) (*models.SettingOutputItem, error) {
	return marshal.Get[models.SettingOutputItem](ctx, e.m, settingPath(settingID), nil, id)
}

func (e *Settings) Update(ctx context.Context, settingID string, in models.SettingInput, id transport.Identity) (*models.SettingOutputItem, error) {
	return marshal.Put[models.SettingOutputItem](ctx, e.m, settingPath(settingID), in, id)
}

func (e *Settings) Delete(ctx context.Context, settingID string, id transport.Identity) (*models.SettingDeleteOutput, error) {
	return marshal.Delete[models.SettingDeleteOutput](ctx, e.m, settingPath(settingID), nil, id)
}

func settingPath(settingID string) string {
	return "/settings/" + url.PathEscape(settingID)
}
