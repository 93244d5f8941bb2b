// ABOUTME: Plugin catalogue, activation and per-plugin settings endpoints
// ABOUTME: Toggling flips a plugin between active and inactive for the agent

package endpoints

import (
	"context"
	"net/url"

	"github.com/2389/cheshire-client/marshal"
	"github.com/2389/cheshire-client/models"
	"github.com/2389/cheshire-client/transport"
)

type Plugins struct {
	m *marshal.Marshaller
}

func NewPlugins(m *marshal.Marshaller) *Plugins {
	return &Plugins{m: m}
}

// List returns installed plugins and registry entries matching query.
func (e *Plugins) List(ctx context.Context, query string, id transport.Identity) (*models.PluginCollectionOutput, error) {
	var q url.Values
	if query != "" {
		q = url.Values{"query": {query}}
	}
	return marshal.Get[models.PluginCollectionOutput](ctx, e.m, "/plugins", q, id)
}

func (e *Plugins) Toggle(ctx context.Context, pluginID string, id transport.Identity) (*models.PluginToggleOutput, error) {
	return marshal.Put[models.PluginToggleOutput](ctx, e.m, "/plugins/toggle/"+url.PathEscape(pluginID), nil, id)
}

// Settings returns the settings of every active plugin.
func (e *Plugins) Settings(ctx context.Context, id transport.Identity) (*models.PluginsSettingsOutput, error) {
	return marshal.Get[models.PluginsSettingsOutput](ctx, e.m, "/plugins/settings", nil, id)
}

func (e *Plugins) PluginSettings(ctx context.Context, pluginID string, id transport.Identity) (*models.PluginSettingsOutput, error) {
	return marshal.Get[models.PluginSettingsOutput](ctx, e.m, pluginSettingsPath(pluginID), nil, id)
}

func (e *Plugins) UpdatePluginSettings(
	ctx context.Context,
	pluginID string,
	values map[string]any,
	id transport.Identity,
) (*models.PluginSettingsOutput, error) {
	return marshal.Put[models.PluginSettingsOutput](ctx, e.m, pluginSettingsPath(pluginID), values, id)
}

func pluginSettingsPath(pluginID string) string {
	return "/plugins/settings/" + url.PathEscape(pluginID)
}
