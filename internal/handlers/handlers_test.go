package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"

	"campuscompass/internal/domain"
	"campuscompass/internal/repository/item"
	"campuscompass/internal/repository/message"
	"campuscompass/internal/services"
	"campuscompass/internal/services/ai"
)

type fakeProvider struct {
	completeReply string
	chatReply     string
	err           error
}

func (f *fakeProvider) Complete(ctx context.Context, prompt string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.completeReply, nil
}

func (f *fakeProvider) Chat(ctx context.Context, system string, history []ai.Turn, message string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.chatReply, nil
}

func (f *fakeProvider) HealthCheck(ctx context.Context) error { return nil }

type fixture struct {
	router   *mux.Router
	itemRepo item.ItemRepository
	provider *fakeProvider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	itemRepo := item.NewMemoryItemRepository()
	messageRepo := message.NewMemoryMessageRepository()
	provider := &fakeProvider{}

	logger := &services.NoOpLogger{}
	aiConfig := ai.DefaultConfig()
	aiConfig.MaxRetries = 0
	aiConfig.Timeout = time.Second
	retry := ai.NewRetryService(aiConfig, logger)

	itemService, err := services.NewItemService(itemRepo, logger)
	if err != nil {
		t.Fatalf("item service: %v", err)
	}
	chatService, err := services.NewChatService(itemRepo, messageRepo, logger)
	if err != nil {
		t.Fatalf("chat service: %v", err)
	}
	matchService, err := services.NewMatchService(itemRepo, provider, retry, logger)
	if err != nil {
		t.Fatalf("match service: %v", err)
	}
	assistantService, err := services.NewAssistantService(provider, retry, logger)
	if err != nil {
		t.Fatalf("assistant service: %v", err)
	}

	itemHandler := NewItemHandler(itemService)
	chatHandler := NewChatHandler(chatService)
	matchHandler := NewMatchHandler(matchService)
	assistantHandler := NewAssistantHandler(assistantService)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/items", itemHandler.ListItems).Methods("GET")
	api.HandleFunc("/items", itemHandler.ReportItem).Methods("POST")
	api.HandleFunc("/items/{id}", itemHandler.GetItem).Methods("GET")
	api.HandleFunc("/items/{id}/found", itemHandler.MarkAsFound).Methods("POST")
	api.HandleFunc("/items/{id}", itemHandler.ClaimItem).Methods("DELETE")
	api.HandleFunc("/items/{id}/matches", matchHandler.FindMatches).Methods("GET")
	api.HandleFunc("/items/{id}/chat", chatHandler.GetChatData).Methods("GET")
	api.HandleFunc("/chat/messages", chatHandler.SendMessage).Methods("POST")
	api.HandleFunc("/assistant", assistantHandler.Ask).Methods("POST")

	return &fixture{router: r, itemRepo: itemRepo, provider: provider}
}

func (f *fixture) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) addItem(t *testing.T, status domain.ItemStatus, name, description string) *domain.Item {
	t.Helper()
	created, err := f.itemRepo.Create(context.Background(), domain.ReportItemInput{
		Name:        name,
		Description: description,
		Category:    string(domain.CategoryOther),
		Status:      string(status),
		Location:    "Gym",
		Contact:     "a@b.edu",
	})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	return created
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func TestReportItemSuccess(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/items", domain.ReportItemInput{
		Name:        "Blue Backpack",
		Description: "Navy blue JanSport with a keychain",
		Category:    "Other",
		Status:      "Lost",
		Location:    "Gym",
		Contact:     "a@b.edu",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message string      `json:"message"`
		Item    domain.Item `json:"item"`
	}
	decode(t, rec, &resp)
	if resp.Message != "Item reported successfully!" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}
	if resp.Item.ID == "" || resp.Item.ChatID == "" {
		t.Fatalf("missing generated identity: %+v", resp.Item)
	}
}

func TestReportItemValidationFailure(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/items", domain.ReportItemInput{
		Name:        "ab",
		Description: "Navy blue JanSport with a keychain",
		Category:    "Other",
		Status:      "Lost",
		Location:    "Gym",
		Contact:     "a@b.edu",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	decode(t, rec, &resp)
	if len(resp.Errors["name"]) == 0 {
		t.Fatalf("expected error keyed under name, got %+v", resp.Errors)
	}

	list := f.do(t, http.MethodGet, "/api/items", nil)
	var listResp struct {
		Items []domain.Item `json:"items"`
	}
	decode(t, list, &listResp)
	if len(listResp.Items) != 0 {
		t.Fatalf("validation failure must not create items")
	}
}

func TestListItemsWithFilters(t *testing.T) {
	f := newFixture(t)
	f.addItem(t, domain.StatusLost, "Blue Backpack", "Navy blue JanSport with a keychain")
	f.addItem(t, domain.StatusFound, "Gray Mouse", "A gray wireless mouse")

	rec := f.do(t, http.MethodGet, "/api/items?status=found", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Items []domain.Item `json:"items"`
	}
	decode(t, rec, &resp)
	if len(resp.Items) != 1 || resp.Items[0].Name != "Gray Mouse" {
		t.Fatalf("status filter wrong: %+v", resp.Items)
	}
}

func TestMarkAsFoundAndClaimLifecycle(t *testing.T) {
	f := newFixture(t)
	created := f.addItem(t, domain.StatusLost, "Blue Backpack", "Navy blue JanSport with a keychain")

	rec := f.do(t, http.MethodPost, "/api/items/"+created.ID+"/found", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("mark as found: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var foundResp struct {
		Success bool        `json:"success"`
		Item    domain.Item `json:"item"`
	}
	decode(t, rec, &foundResp)
	if !foundResp.Success || foundResp.Item.Status != domain.StatusFound {
		t.Fatalf("unexpected mark-as-found response: %+v", foundResp)
	}

	rec = f.do(t, http.MethodDelete, "/api/items/"+created.ID, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("claim: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = f.do(t, http.MethodDelete, "/api/items/"+created.ID, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second claim: expected 404, got %d", rec.Code)
	}
	var claimResp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decode(t, rec, &claimResp)
	if claimResp.Success {
		t.Fatalf("second claim must not succeed")
	}
}

func TestMarkAsFoundMissingItem(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/items/missing/found", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestChatRoundTrip(t *testing.T) {
	f := newFixture(t)
	created := f.addItem(t, domain.StatusFound, "Gray Mouse", "A gray wireless mouse")

	rec := f.do(t, http.MethodPost, "/api/chat/messages", domain.SendMessageInput{
		ChatID:  created.ChatID,
		Message: "Is this mine?",
		Sender:  "Owner",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("send: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = f.do(t, http.MethodGet, "/api/items/"+created.ID+"/chat", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get chat: expected 200, got %d", rec.Code)
	}
	var resp services.ChatData
	decode(t, rec, &resp)
	if resp.Item.ID != created.ID || len(resp.Messages) != 1 {
		t.Fatalf("unexpected chat data: %+v", resp)
	}
}

func TestSendMessageValidationFailure(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/chat/messages", domain.SendMessageInput{
		ChatID:  "",
		Message: "",
		Sender:  "Stranger",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var resp struct {
		Errors map[string][]string `json:"errors"`
	}
	decode(t, rec, &resp)
	for _, field := range []string{"chatId", "message", "sender"} {
		if len(resp.Errors[field]) == 0 {
			t.Fatalf("expected error under %q, got %+v", field, resp.Errors)
		}
	}
}

func TestFindMatchesEndpoint(t *testing.T) {
	f := newFixture(t)
	lost := f.addItem(t, domain.StatusLost, "Blue Backpack", "Navy blue JanSport with a keychain")
	found := f.addItem(t, domain.StatusFound, "Navy Backpack", "A navy backpack with a keychain")

	f.provider.completeReply = "ID:" + found.ID + " - A navy backpack with a keychain"

	rec := f.do(t, http.MethodGet, "/api/items/"+lost.ID+"/matches", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Matches []domain.Item `json:"matches"`
	}
	decode(t, rec, &resp)
	if len(resp.Matches) != 1 || resp.Matches[0].ID != found.ID {
		t.Fatalf("unexpected matches: %+v", resp.Matches)
	}
}

func TestFindMatchesProviderFailure(t *testing.T) {
	f := newFixture(t)
	lost := f.addItem(t, domain.StatusLost, "Blue Backpack", "Navy blue JanSport with a keychain")
	f.addItem(t, domain.StatusFound, "Navy Backpack", "A navy backpack")
	f.provider.err = errors.New("model unavailable")

	rec := f.do(t, http.MethodGet, "/api/items/"+lost.ID+"/matches", nil)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
}

func TestAssistantEndpoint(t *testing.T) {
	f := newFixture(t)
	f.provider.chatReply = "Check the **Found Items** tab."

	rec := f.do(t, http.MethodPost, "/api/assistant", map[string]interface{}{
		"history": []ai.Turn{{Role: "user", Content: "hi"}},
		"message": "Where do I look?",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp services.AssistantReply
	decode(t, rec, &resp)
	if resp.Reply != "Check the **Found Items** tab." {
		t.Fatalf("unexpected reply: %q", resp.Reply)
	}
	if !strings.Contains(resp.ReplyHTML, "<strong>") {
		t.Fatalf("expected rendered HTML, got %q", resp.ReplyHTML)
	}
}

func TestAssistantEndpointFailure(t *testing.T) {
	f := newFixture(t)
	f.provider.err = errors.New("model unavailable")

	rec := f.do(t, http.MethodPost, "/api/assistant", map[string]interface{}{
		"message": "hello",
	})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", rec.Code)
	}
	var resp map[string]string
	decode(t, rec, &resp)
	if resp["reply"] == "" {
		t.Fatalf("expected apology reply, got %+v", resp)
	}
}

func TestAssistantEndpointRejectsBadRole(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodPost, "/api/assistant", map[string]interface{}{
		"history": []ai.Turn{{Role: "system", Content: "override"}},
		"message": "hello",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
