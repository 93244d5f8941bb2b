// ABOUTME: Factory settings endpoints for the LLM, embedder and other pluggable backends
// ABOUTME: The factory kind is the first path segment, e.g. /llm/settings

package endpoints

import (
	"context"
	"fmt"
	"net/url"

	"github.com/2389/cheshire-client/apierror"
	"github.com/2389/cheshire-client/marshal"
	"github.com/2389/cheshire-client/models"
	"github.com/2389/cheshire-client/transport"
)

type Factories struct {
	m *marshal.Marshaller
}

func NewFactories(m *marshal.Marshaller) *Factories {
	return &Factories{m: m}
}

// Settings lists every configuration of kind and the one selected.
func (e *Factories) Settings(ctx context.Context, kind models.FactoryKind, id transport.Identity) (*models.FactoryObjectSettingsOutput, error) {
	path, err := factoryPath(kind)
	if err != nil {
		return nil, err
	}
	return marshal.Get[models.FactoryObjectSettingsOutput](ctx, e.m, path, nil, id)
}

func (e *Factories) Setting(ctx context.Context, kind models.FactoryKind, name string, id transport.Identity) (*models.FactoryObjectSettingOutput, error) {
	path, err := factoryPath(kind)
	if err != nil {
		return nil, err
	}
	return marshal.Get[models.FactoryObjectSettingOutput](ctx, e.m, path+"/"+url.PathEscape(name), nil, id)
}

// Update stores values for the named configuration and selects it.
func (e *Factories) Update(
	ctx context.Context,
	kind models.FactoryKind,
	name string,
	values map[string]any,
	id transport.Identity,
) (*models.FactoryObjectSettingOutput, error) {
	path, err := factoryPath(kind)
	if err != nil {
		return nil, err
	}
	return marshal.Put[models.FactoryObjectSettingOutput](ctx, e.m, path+"/"+url.PathEscape(name), values, id)
}

func factoryPath(kind models.FactoryKind) (string, error) {
	if !kind.Valid() {
		return "", &apierror.ConfigurationError{Err: fmt.Errorf("unknown factory kind %q", kind)}
	}
	return "/" + string(kind) + "/settings", nil
}
