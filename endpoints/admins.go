// ABOUTME: System utilities for resetting the installation and managing agents
// ABOUTME: Installation-wide calls run as the system agent; per-agent calls target that agent

package endpoints

import (
	"context"

	"github.com/2389/cheshire-client/marshal"
	"github.com/2389/cheshire-client/models"
	"github.com/2389/cheshire-client/transport"
)

// SystemAgentID is the agent that owns installation-wide operations.
const SystemAgentID = "system"

var system = transport.Identity{AgentID: SystemAgentID}

type Admins struct {
	m *marshal.Marshaller
}

func NewAdmins(m *marshal.Marshaller) *Admins {
	return &Admins{m: m}
}

// FactoryReset wipes settings, memories and plugin folders of every agent.
func (e *Admins) FactoryReset(ctx context.Context) (*models.ResetOutput, error) {
	return marshal.PostJSON[models.ResetOutput](ctx, e.m, "/utils/factory/reset/", nil, system)
}

func (e *Admins) Agents(ctx context.Context) ([]models.AgentItem, error) {
	return marshal.GetList[models.AgentItem](ctx, e.m, "/utils/agents/", nil, system)
}

// CreateAgent registers agentID. metadata may be nil.
func (e *Admins) CreateAgent(ctx context.Context, agentID string, metadata map[string]any) (*models.AgentCreatedOutput, error) {
	payload := map[string]any{"agent_id": agentID}
	if metadata != nil {
		payload["metadata"] = metadata
	}
	return marshal.PostJSON[models.AgentCreatedOutput](ctx, e.m, "/utils/agents/create/", payload, system)
}

// ResetAgent restores agentID to its initial state.
func (e *Admins) ResetAgent(ctx context.Context, agentID string) (*models.ResetOutput, error) {
	return marshal.PostJSON[models.ResetOutput](ctx, e.m, "/utils/agents/reset/", nil, transport.Identity{AgentID: agentID})
}

// DestroyAgent removes agentID and everything it owns.
func (e *Admins) DestroyAgent(ctx context.Context, agentID string) (*models.ResetOutput, error) {
	return marshal.PostJSON[models.ResetOutput](ctx, e.m, "/utils/agents/destroy/", nil, transport.Identity{AgentID: agentID})
}

// CloneAgent copies agentID to a new agent named newAgentID.
func (e *Admins) CloneAgent(ctx context.Context, agentID, newAgentID string) (*models.AgentClonedOutput, error) {
	return marshal.PostJSON[models.AgentClonedOutput](ctx, e.m, "/utils/agents/clone/",
		map[string]any{"agent_id": newAgentID}, transport.Identity{AgentID: agentID})
}

// UpdateAgent replaces the metadata of agentID.
func (e *Admins) UpdateAgent(ctx context.Context, agentID string, metadata map[string]any) (*models.AgentUpdatedOutput, error) {
	return marshal.Put[models.AgentUpdatedOutput](ctx, e.m, "/utils/agents/",
		map[string]any{"metadata": metadata}, transport.Identity{AgentID: agentID})
}
