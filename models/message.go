// ABOUTME: Chat message shapes sent to and received from the agent
// ABOUTME: Message merges caller-supplied extra fields into the top-level JSON object

package models

import (
	"encoding/json"
	"fmt"
)

// MessageTypeChat marks the terminal frame of a websocket exchange.
const MessageTypeChat = "chat"

// MessageBase is the text and media common to inbound and outbound messages.
type MessageBase struct {
	Text   string   `json:"text"`
	Images []string `json:"images,omitempty"`
	Audio  []string `json:"audio,omitempty"`
}

// Message is a user message. AdditionalFields are merged into the encoded
// object and override base fields of the same name.
type Message struct {
	MessageBase
	AdditionalFields map[string]any `json:"-"`
}

// MarshalJSON flattens AdditionalFields alongside text, images and audio.
func (m Message) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, 3+len(m.AdditionalFields))
	out["text"] = m.Text
	if m.Images != nil {
		out["images"] = m.Images
	}
	if m.Audio != nil {
		out["audio"] = m.Audio
	}
	for k, v := range m.AdditionalFields {
		out[k] = v
	}
	return json.Marshal(out)
}

// UnmarshalJSON fills the base fields and collects every other key into
// AdditionalFields.
func (m *Message) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &m.MessageBase); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	delete(raw, "text")
	delete(raw, "images")
	delete(raw, "audio")
	if len(raw) == 0 {
		m.AdditionalFields = nil
		return nil
	}

	m.AdditionalFields = make(map[string]any, len(raw))
	for k, v := range raw {
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			return fmt.Errorf("field %q: %w", k, err)
		}
		m.AdditionalFields[k] = val
	}
	return nil
}

// Memory is the recalled context attached to an answer.
type Memory struct {
	Episodic    any `json:"episodic"`
	Declarative any `json:"declarative"`
	Procedural  any `json:"procedural"`
}

// Why explains how the agent produced an answer.
type Why struct {
	Input             *string `json:"input"`
	IntermediateSteps any     `json:"intermediate_steps"`
	Memory            Memory  `json:"memory"`
	ModelInteractions any     `json:"model_interactions"`
}

// MessageOutput is the agent's answer.
type MessageOutput struct {
	MessageBase
	Type  string `json:"type"`
	Why   Why    `json:"why"`
	Error bool   `json:"error"`
}

// Content returns the answer text.
func (m *MessageOutput) Content() string {
	return m.Text
}

func (*MessageOutput) RequiredFields() []string {
	return []string{"text"}
}
