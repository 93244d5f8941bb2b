// ABOUTME: Tests for message encoding and the small helpers on models
// ABOUTME: Messages must survive a JSON round trip with media and extra fields intact

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_RoundTrip(t *testing.T) {
	in := Message{MessageBase: MessageBase{
		Text:   "describe these",
		Images: []string{"data:image/png;base64,AAA", "https://img.example.com/b.png"},
		Audio:  []string{"data:audio/wav;base64,BBB"},
	}}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Message
	require.NoError(t, json.Unmarshal(data, &out))

	assert.Equal(t, in.Text, out.Text)
	assert.Equal(t, in.Images, out.Images)
	assert.Equal(t, in.Audio, out.Audio)
	assert.Nil(t, out.AdditionalFields)
}

func TestMessage_AdditionalFieldsMerged(t *testing.T) {
	in := Message{
		MessageBase: MessageBase{Text: "hi"},
		AdditionalFields: map[string]any{
			"prompt_settings": map[string]any{"temperature": 0.2},
			"chat_id":         "c-1",
		},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"hi","chat_id":"c-1","prompt_settings":{"temperature":0.2}}`, string(data))

	var out Message
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, "c-1", out.AdditionalFields["chat_id"])
	assert.Equal(t, map[string]any{"temperature": 0.2}, out.AdditionalFields["prompt_settings"])
}

func TestMessage_AdditionalFieldOverridesText(t *testing.T) {
	in := Message{
		MessageBase:      MessageBase{Text: "original"},
		AdditionalFields: map[string]any{"text": "override"},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"override"}`, string(data))
}

func TestMessage_UnencodableField(t *testing.T) {
	in := Message{
		MessageBase:      MessageBase{Text: "hi"},
		AdditionalFields: map[string]any{"bad": make(chan int)},
	}

	_, err := json.Marshal(in)
	assert.Error(t, err)
}

func TestMessageOutput_Content(t *testing.T) {
	var out MessageOutput
	require.NoError(t, json.Unmarshal([]byte(`{
		"type": "chat",
		"text": "Meow",
		"why": {"input": "hi", "memory": {"episodic": []}},
		"error": false
	}`), &out))

	assert.Equal(t, "Meow", out.Content())
	assert.Equal(t, MessageTypeChat, out.Type)
	require.NotNil(t, out.Why.Input)
	assert.Equal(t, "hi", *out.Why.Input)
}

func TestFactoryKind_Valid(t *testing.T) {
	assert.True(t, FactoryLLM.Valid())
	assert.True(t, FactoryKind("vector_database").Valid())
	assert.False(t, FactoryKind("database").Valid())
}
