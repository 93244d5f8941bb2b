// ABOUTME: Tests for the endpoint groups against a routing httptest server
// ABOUTME: Each test checks the verb, path, identity headers and body a call produces

package endpoints

import (
	"bytes"
	"context"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389/cheshire-client/apierror"
	"github.com/2389/cheshire-client/chat"
	"github.com/2389/cheshire-client/marshal"
	"github.com/2389/cheshire-client/models"
	"github.com/2389/cheshire-client/transport"
)

// recorded is what the fake server saw for one request.
type recorded struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// fakeAPI answers each "METHOD /path" with a canned JSON body.
type fakeAPI struct {
	t        *testing.T
	routes   map[string]string
	requests chan recorded
	hits     atomic.Int32
	tr       *transport.Transport
	m        *marshal.Marshaller
	ws       http.HandlerFunc
}

func newFakeAPI(t *testing.T, routes map[string]string) *fakeAPI {
	t.Helper()
	return newFakeAPIWithChat(t, routes, nil)
}

// newFakeAPIWithChat also serves websocket upgrades with ws.
func newFakeAPIWithChat(t *testing.T, routes map[string]string, ws http.HandlerFunc) *fakeAPI {
	t.Helper()

	api := &fakeAPI{t: t, routes: routes, ws: ws, requests: make(chan recorded, 16)}
	srv := httptest.NewServer(http.HandlerFunc(api.serve))
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	api.tr, err = transport.New(transport.Options{Host: u.Hostname(), Port: port, APIKey: "key"})
	require.NoError(t, err)
	api.m = marshal.New(api.tr, nil)
	return api
}

func (a *fakeAPI) serve(w http.ResponseWriter, r *http.Request) {
	if a.ws != nil && websocket.IsWebSocketUpgrade(r) {
		a.ws(w, r)
		return
	}
	a.hits.Add(1)
	body, _ := io.ReadAll(r.Body)
	a.requests <- recorded{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Header: r.Header.Clone(),
		Body:   body,
	}

	resp, ok := a.routes[r.Method+" "+r.URL.Path]
	if !ok {
		http.Error(w, `{"detail":"Not Found"}`, http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = io.WriteString(w, resp)
}

func (a *fakeAPI) last() recorded {
	a.t.Helper()
	select {
	case r := <-a.requests:
		return r
	case <-time.After(time.Second):
		a.t.Fatal("no request recorded")
		return recorded{}
	}
}

const userJSON = `{"username":"alice","permissions":{"CHAT":["WRITE"]},"id":"u-1"}`

func TestUsers_TokenStoresSessionToken(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).
		SignedString([]byte("server"))
	require.NoError(t, err)

	api := newFakeAPI(t, map[string]string{
		"POST /auth/token": `{"access_token":"` + signed + `","token_type":"bearer"}`,
		"GET /users":       `[` + userJSON + `]`,
	})
	users := NewUsers(api.m, nil)

	out, err := users.Token(context.Background(), "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, signed, out.AccessToken)
	assert.Equal(t, signed, api.tr.Token())

	login := api.last()
	assert.JSONEq(t, `{"username":"alice","password":"pw"}`, string(login.Body))
	assert.Empty(t, login.Header.Get(transport.HeaderAgentID))

	list, err := users.List(context.Background(), transport.Identity{AgentID: "a1"})
	require.NoError(t, err)
	require.Len(t, list, 1)

	req := api.last()
	assert.Equal(t, "Bearer "+signed, req.Header.Get("Authorization"))
	assert.Equal(t, "a1", req.Header.Get(transport.HeaderAgentID))
}

func TestUsers_CRUD(t *testing.T) {
	api := newFakeAPI(t, map[string]string{
		"POST /users":                     userJSON,
		"GET /users/u-1":                  userJSON,
		"PUT /users/u-1":                  userJSON,
		"DELETE /users/u-1":               userJSON,
		"GET /auth/available-permissions": `{"CHAT":["READ","WRITE"]}`,
	})
	users := NewUsers(api.m, nil)
	ctx := context.Background()
	id := transport.Identity{}

	_, err := users.Create(ctx, models.UserInput{Username: "alice", Password: "pw"}, id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"username":"alice","password":"pw"}`, string(api.last().Body))

	got, err := users.Get(ctx, "u-1", id)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "agent", api.last().Header.Get(transport.HeaderAgentID))

	_, err = users.Update(ctx, "u-1", models.UserInput{Password: "new"}, id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"password":"new"}`, string(api.last().Body))

	_, err = users.Delete(ctx, "u-1", id)
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, api.last().Method)

	perms, err := users.AvailablePermissions(ctx, id)
	require.NoError(t, err)
	assert.Contains(t, perms, "CHAT")
}

func TestSettings(t *testing.T) {
	item := `{"setting":{"name":"n","value":{"a":1},"category":"general","setting_id":"s-1","updated_at":"2024-01-01"}}`
	api := newFakeAPI(t, map[string]string{
		"GET /settings":        `{"settings":[]}`,
		"POST /settings":       item,
		"GET /settings/s-1":    item,
		"PUT /settings/s-1":    item,
		"DELETE /settings/s-1": `{"deleted":true}`,
	})
	settings := NewSettings(api.m)
	ctx := context.Background()
	id := transport.Identity{AgentID: "a1"}

	_, err := settings.List(ctx, "n", id)
	require.NoError(t, err)
	assert.Equal(t, "n", api.last().Query.Get("search"))

	created, err := settings.Create(ctx, models.SettingInput{Name: "n", Value: map[string]any{"a": 1}}, id)
	require.NoError(t, err)
	assert.Equal(t, "s-1", created.Setting.SettingID)
	assert.JSONEq(t, `{"name":"n","value":{"a":1}}`, string(api.last().Body))

	_, err = settings.Get(ctx, "s-1", id)
	require.NoError(t, err)
	api.last()

	_, err = settings.Update(ctx, "s-1", models.SettingInput{Name: "n", Value: map[string]any{}}, id)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, api.last().Method)

	deleted, err := settings.Delete(ctx, "s-1", id)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)
}

func TestMemory(t *testing.T) {
	api := newFakeAPI(t, map[string]string{
		"GET /memory/collections":                           `{"collections":[{"name":"declarative","vectors_count":3}]}`,
		"DELETE /memory/collections":                        `{"deleted":{"declarative":true,"episodic":true}}`,
		"DELETE /memory/collections/episodic":               `{"deleted":{"episodic":true}}`,
		"GET /memory/recall":                                `{"query":{"text":"cats","vector":[0.1]},"vectors":{"embedder":"e","collections":{}}}`,
		"POST /memory/collections/declarative/points":       `{"content":"c","metadata":{"k":"v"},"id":"p-1","vector":[0.5]}`,
		"PUT /memory/collections/declarative/points/p-1":    `{"content":"c2","id":"p-1","vector":[0.5]}`,
		"DELETE /memory/collections/declarative/points/p-1": `{"deleted":"p-1"}`,
		"DELETE /memory/collections/declarative/points":     `{"deleted":{"operation_id":7,"status":"completed"}}`,
		"GET /memory/collections/declarative/points":        `{"points":[{"id":"p-1","payload":{}}],"next_offset":"p-2"}`,
		"GET /memory/conversation_history":                  `{"history":[{"who":"user","when":1.5,"content":{"text":"hi"}}]}`,
		"POST /memory/conversation_history":                 `{"history":[]}`,
		"DELETE /memory/conversation_history":               `{"deleted":true}`,
	})
	mem := NewMemory(api.m)
	ctx := context.Background()
	id := transport.Identity{AgentID: "a1", UserID: "u1"}

	cols, err := mem.Collections(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, cols.Collections[0].VectorsCount)
	api.last()

	wiped, err := mem.WipeCollections(ctx, id)
	require.NoError(t, err)
	assert.True(t, wiped.Deleted["episodic"])
	api.last()

	_, err = mem.WipeCollection(ctx, "episodic", id)
	require.NoError(t, err)
	api.last()

	recall, err := mem.Recall(ctx, "cats", RecallOptions{K: 5, Metadata: map[string]any{"source": "doc"}}, id)
	require.NoError(t, err)
	assert.Equal(t, "e", recall.Vectors.Embedder)
	req := api.last()
	assert.Equal(t, "cats", req.Query.Get("text"))
	assert.Equal(t, "5", req.Query.Get("k"))
	assert.JSONEq(t, `{"source":"doc"}`, req.Query.Get("metadata"))
	assert.Equal(t, "u1", req.Header.Get(transport.HeaderUserID))

	point, err := mem.AddPoint(ctx, "declarative", models.MemoryPoint{Content: "c", Metadata: map[string]any{"k": "v"}}, id)
	require.NoError(t, err)
	assert.Equal(t, "p-1", point.ID)
	assert.JSONEq(t, `{"content":"c","metadata":{"k":"v"}}`, string(api.last().Body))

	_, err = mem.UpdatePoint(ctx, "declarative", "p-1", models.MemoryPoint{Content: "c2"}, id)
	require.NoError(t, err)
	api.last()

	del, err := mem.DeletePoint(ctx, "declarative", "p-1", id)
	require.NoError(t, err)
	assert.Equal(t, "p-1", del.Deleted)
	api.last()

	byMeta, err := mem.DeletePointsByMetadata(ctx, "declarative", map[string]any{"source": "doc"}, id)
	require.NoError(t, err)
	assert.Equal(t, 7, byMeta.Deleted.OperationID)
	assert.JSONEq(t, `{"source":"doc"}`, string(api.last().Body))

	page, err := mem.Points(ctx, "declarative", PointsPage{Limit: 10, Offset: "p-0"}, id)
	require.NoError(t, err)
	assert.Equal(t, "p-2", page.NextOffset)
	req = api.last()
	assert.Equal(t, "10", req.Query.Get("limit"))
	assert.Equal(t, "p-0", req.Query.Get("offset"))

	history, err := mem.ConversationHistory(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "hi", history.History[0].Content.Text)
	api.last()

	_, err = mem.AddConversationHistory(ctx, "user",
		models.ConversationHistoryItemContent{MessageBase: models.MessageBase{Text: "remember this"}}, id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"who":"user","text":"remember this"}`, string(api.last().Body))

	cleared, err := mem.DeleteConversationHistory(ctx, id)
	require.NoError(t, err)
	assert.True(t, cleared.Deleted)
}

func TestConversations(t *testing.T) {
	conv := `{"chat_id":"c-1","name":"Cats","num_messages":2,"metadata":{},"created_at":1.0,"updated_at":null}`
	api := newFakeAPI(t, map[string]string{
		"GET /conversations":             `[` + conv + `]`,
		"GET /conversations/c-1":         conv,
		"GET /conversations/c-1/history": `{"history":[]}`,
		"PUT /conversations/c-1":         `{"changed":true}`,
		"DELETE /conversations/c-1":      `{"deleted":true}`,
	})
	convs := NewConversations(api.m)
	ctx := context.Background()
	id := transport.Identity{AgentID: "a1", UserID: "u1"}

	list, err := convs.List(ctx, id)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].UpdatedAt)
	req := api.last()
	assert.Equal(t, "u1", req.Header.Get(transport.HeaderUserID))

	_, err = convs.Get(ctx, "c-1", id)
	require.NoError(t, err)
	api.last()

	_, err = convs.History(ctx, "c-1", id)
	require.NoError(t, err)
	api.last()

	changed, err := convs.UpdateAttributes(ctx, "c-1", models.ConversationAttributes{Name: "Dogs"}, id)
	require.NoError(t, err)
	assert.True(t, changed.Changed)
	assert.JSONEq(t, `{"name":"Dogs"}`, string(api.last().Body))

	deleted, err := convs.Delete(ctx, "c-1", id)
	require.NoError(t, err)
	assert.True(t, deleted.Deleted)
}

func TestConversations_UpdateAttributesRequiresSomething(t *testing.T) {
	api := newFakeAPI(t, nil)

	_, err := NewConversations(api.m).UpdateAttributes(context.Background(), "c-1",
		models.ConversationAttributes{}, transport.Identity{})

	assert.ErrorIs(t, err, ErrNoAttributes)
	assert.Equal(t, int32(0), api.hits.Load())
}

func TestPlugins(t *testing.T) {
	settings := `{"name":"p1","value":{"enabled":true}}`
	api := newFakeAPI(t, map[string]string{
		"GET /plugins":             `{"filters":{"query":"cat"},"installed":[{"id":"p1","name":"P1","active":true,"hooks":[{"name":"h","priority":1}],"tools":[]}],"registry":[]}`,
		"PUT /plugins/toggle/p1":   `{"info":"Plugin p1 toggled"}`,
		"GET /plugins/settings":    `{"settings":[` + settings + `]}`,
		"GET /plugins/settings/p1": settings,
		"PUT /plugins/settings/p1": settings,
	})
	plugins := NewPlugins(api.m)
	ctx := context.Background()
	id := transport.Identity{}

	list, err := plugins.List(ctx, "cat", id)
	require.NoError(t, err)
	assert.True(t, list.Installed[0].Active)
	assert.Equal(t, "cat", api.last().Query.Get("query"))

	toggled, err := plugins.Toggle(ctx, "p1", id)
	require.NoError(t, err)
	assert.Contains(t, toggled.Info, "toggled")
	assert.Empty(t, api.last().Body)

	all, err := plugins.Settings(ctx, id)
	require.NoError(t, err)
	assert.Len(t, all.Settings, 1)
	api.last()

	_, err = plugins.PluginSettings(ctx, "p1", id)
	require.NoError(t, err)
	api.last()

	_, err = plugins.UpdatePluginSettings(ctx, "p1", map[string]any{"enabled": false}, id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"enabled":false}`, string(api.last().Body))
}

func TestRabbitHole_PostFile(t *testing.T) {
	api := newFakeAPI(t, map[string]string{
		"POST /rabbithole": `{"filename":"doc.txt","content_type":"text/plain","info":"queued"}`,
	})

	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("cats purr"), 0o600))

	size, overlap := 256, 32
	out, err := NewRabbitHole(api.m).PostFile(context.Background(), path, "", IngestOptions{
		ChunkSize:    &size,
		ChunkOverlap: &overlap,
		Metadata:     map[string]any{"source": "unit"},
	}, transport.Identity{AgentID: "a1"})
	require.NoError(t, err)
	assert.Equal(t, "queued", out.Info)

	req := api.last()
	fields, files := parseMultipart(t, req)
	assert.Equal(t, "256", fields["chunk_size"])
	assert.Equal(t, "32", fields["chunk_overlap"])
	assert.JSONEq(t, `{"source":"unit"}`, fields["metadata"])
	assert.Equal(t, "cats purr", files["file"])
}

func TestRabbitHole_PostFilesMissingFileSendsNothing(t *testing.T) {
	api := newFakeAPI(t, nil)

	present := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(present, []byte("a"), 0o600))

	_, err := NewRabbitHole(api.m).PostFiles(context.Background(),
		[]string{present, filepath.Join(t.TempDir(), "missing.txt")}, IngestOptions{}, transport.Identity{})

	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, int32(0), api.hits.Load())
}

func TestRabbitHole_WebMemoryAndMimeTypes(t *testing.T) {
	api := newFakeAPI(t, map[string]string{
		"POST /rabbithole/web":              `{"url":"https://example.com","info":"queued"}`,
		"POST /rabbithole/memory":           `{"filename":"mem.json","content_type":"application/json","info":"queued"}`,
		"GET /rabbithole/allowed-mimetypes": `{"allowed":["text/plain","application/pdf"]}`,
	})
	rh := NewRabbitHole(api.m)
	ctx := context.Background()
	id := transport.Identity{}

	size := 128
	_, err := rh.PostWeb(ctx, "https://example.com", IngestOptions{ChunkSize: &size}, id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"https://example.com","chunk_size":128}`, string(api.last().Body))

	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"collections":{}}`), 0o600))
	_, err = rh.PostMemory(ctx, path, "mem.json", id)
	require.NoError(t, err)
	_, files := parseMultipart(t, api.last())
	assert.JSONEq(t, `{"collections":{}}`, files["file"])

	mimes, err := rh.AllowedMimeTypes(ctx, id)
	require.NoError(t, err)
	assert.Contains(t, mimes.Allowed, "application/pdf")
}

func TestFactories(t *testing.T) {
	api := newFakeAPI(t, map[string]string{
		"GET /embedder/settings":            `{"settings":[{"name":"EmbedderFake","value":{}}],"selected_configuration":"EmbedderFake"}`,
		"GET /llm/settings/LLMOpenAIConfig": `{"name":"LLMOpenAIConfig","value":{"model":"gpt"}}`,
		"PUT /llm/settings/LLMOpenAIConfig": `{"name":"LLMOpenAIConfig","value":{"model":"gpt-4"}}`,
	})
	f := NewFactories(api.m)
	ctx := context.Background()
	id := transport.Identity{}

	all, err := f.Settings(ctx, models.FactoryEmbedder, id)
	require.NoError(t, err)
	assert.Equal(t, "EmbedderFake", all.SelectedConfiguration)
	api.last()

	one, err := f.Setting(ctx, models.FactoryLLM, "LLMOpenAIConfig", id)
	require.NoError(t, err)
	assert.Equal(t, "gpt", one.Value["model"])
	api.last()

	_, err = f.Update(ctx, models.FactoryLLM, "LLMOpenAIConfig", map[string]any{"model": "gpt-4"}, id)
	require.NoError(t, err)
	assert.JSONEq(t, `{"model":"gpt-4"}`, string(api.last().Body))

	_, err = f.Settings(ctx, models.FactoryKind("nope"), id)
	var cfgErr *apierror.ConfigurationError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestAdmins(t *testing.T) {
	reset := `{"deleted_settings":true,"deleted_memories":true,"deleted_plugin_folders":false}`
	api := newFakeAPI(t, map[string]string{
		"POST /utils/factory/reset/":  reset,
		"GET /utils/agents/":          `[{"agent_id":"a1","metadata":{}}]`,
		"POST /utils/agents/create/":  `{"created":true}`,
		"POST /utils/agents/reset/":   reset,
		"POST /utils/agents/destroy/": reset,
		"POST /utils/agents/clone/":   `{"cloned":true}`,
		"PUT /utils/agents/":          `{"agent_id":"a1","metadata":{"k":"v"}}`,
	})
	admins := NewAdmins(api.m)
	ctx := context.Background()

	_, err := admins.FactoryReset(ctx)
	require.NoError(t, err)
	assert.Equal(t, SystemAgentID, api.last().Header.Get(transport.HeaderAgentID))

	agents, err := admins.Agents(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a1", agents[0].AgentID)
	assert.Equal(t, SystemAgentID, api.last().Header.Get(transport.HeaderAgentID))

	created, err := admins.CreateAgent(ctx, "a2", map[string]any{"owner": "me"})
	require.NoError(t, err)
	assert.True(t, created.Created)
	assert.JSONEq(t, `{"agent_id":"a2","metadata":{"owner":"me"}}`, string(api.last().Body))

	_, err = admins.ResetAgent(ctx, "a2")
	require.NoError(t, err)
	assert.Equal(t, "a2", api.last().Header.Get(transport.HeaderAgentID))

	_, err = admins.DestroyAgent(ctx, "a2")
	require.NoError(t, err)
	api.last()

	cloned, err := admins.CloneAgent(ctx, "a1", "a3")
	require.NoError(t, err)
	assert.True(t, cloned.Cloned)
	req := api.last()
	assert.Equal(t, "a1", req.Header.Get(transport.HeaderAgentID))
	assert.JSONEq(t, `{"agent_id":"a3"}`, string(req.Body))

	updated, err := admins.UpdateAgent(ctx, "a1", map[string]any{"k": "v"})
	require.NoError(t, err)
	assert.Equal(t, "v", updated.Metadata["k"])
}

func TestMessage_SendHTTP(t *testing.T) {
	api := newFakeAPI(t, map[string]string{
		"POST /message": `{"type":"chat","text":"Meow","why":{}}`,
	})

	out, err := NewMessage(api.m, chat.New(api.tr, nil)).SendHTTP(context.Background(),
		models.Message{MessageBase: models.MessageBase{Text: "hi"}, AdditionalFields: map[string]any{"chat_id": "c-1"}},
		transport.Identity{AgentID: "a1"})
	require.NoError(t, err)
	assert.Equal(t, "Meow", out.Content())
	assert.JSONEq(t, `{"text":"hi","chat_id":"c-1"}`, string(api.last().Body))
}

func TestMessage_SendWebSocket(t *testing.T) {
	upgrader := websocket.Upgrader{}
	paths := make(chan string, 1)
	api := newFakeAPIWithChat(t, nil, func(w http.ResponseWriter, r *http.Request) {
		paths <- r.URL.Path
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"notification","content":"..."}`))
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"chat","text":"Purr"}`))
		_, _, _ = conn.ReadMessage()
	})

	msg := NewMessage(api.m, chat.New(api.tr, nil))

	var notes int
	out, err := msg.SendWebSocket(context.Background(),
		models.Message{MessageBase: models.MessageBase{Text: "hi"}},
		transport.Identity{AgentID: "a1"},
		func(string) error {
			notes++
			return nil
		})
	require.NoError(t, err)
	assert.Equal(t, "Purr", out.Text)
	assert.Equal(t, 1, notes)
	assert.Equal(t, "/ws/a1", <-paths)

	stream, err := msg.Stream(context.Background(),
		models.Message{MessageBase: models.MessageBase{Text: "again"}}, transport.Identity{})
	require.NoError(t, err)
	defer stream.Close()
	res, err := stream.Result()
	require.NoError(t, err)
	assert.Equal(t, "Purr", res.Text)
	assert.Equal(t, "/ws", <-paths)
}

func parseMultipart(t *testing.T, req recorded) (fields, files map[string]string) {
	t.Helper()

	_, params, err := mime.ParseMediaType(req.Header.Get("Content-Type"))
	require.NoError(t, err)

	fields, files = map[string]string{}, map[string]string{}
	reader := multipart.NewReader(bytes.NewReader(req.Body), params["boundary"])
	for {
		p, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(p)
		require.NoError(t, err)
		if p.FileName() != "" {
			files[p.FormName()] = string(data)
		} else {
			fields[p.FormName()] = string(data)
		}
	}
	return fields, files
}
