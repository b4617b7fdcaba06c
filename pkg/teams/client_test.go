package teams_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"office-assistant/pkg/teams"
)

func incomingActivity(serviceURL string) *teams.Activity {
	return &teams.Activity{
		Type:       teams.ActivityMessage,
		ID:         "act-1",
		ServiceURL: serviceURL,
		ChannelID:  "msteams",
		From:       teams.ChannelAccount{ID: "user-1", Name: "Alice"},
		Recipient:  teams.ChannelAccount{ID: "bot-1", Name: "Assistant"},
		Conversation: teams.ConversationAccount{
			ID: "conv-1",
		},
		Text: "hello",
	}
}

func TestClient(t *testing.T) {
	var gotPath string
	var gotActivity teams.Activity

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotActivity)

		if strings.Contains(gotActivity.Text, "cause_error") {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error": {"code": "BadArgument", "message": "invalid activity"}}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": "new-act"}`))
	}))
	defer ts.Close()

	client := teams.NewClientWithHTTP(teams.Config{AppID: "app", AppPassword: "secret"}, ts.Client())
	incoming := incomingActivity(ts.URL)

	t.Run("ReplyToActivity Success", func(t *testing.T) {
		reply := teams.NewReply(incoming, "hi there")
		if err := client.ReplyToActivity(context.Background(), incoming, reply); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPath != "/v3/conversations/conv-1/activities/act-1" {
			t.Errorf("unexpected path: %s", gotPath)
		}
		if gotActivity.Text != "hi there" {
			t.Errorf("unexpected text: %s", gotActivity.Text)
		}
		if gotActivity.From.ID != "bot-1" || gotActivity.Recipient.ID != "user-1" {
			t.Errorf("reply did not swap from/recipient: %+v", gotActivity)
		}
	})

	t.Run("ReplyToActivity API Failed", func(t *testing.T) {
		reply := teams.NewReply(incoming, "cause_error")
		err := client.ReplyToActivity(context.Background(), incoming, reply)
		if err == nil || !strings.Contains(err.Error(), "invalid activity") {
			t.Fatalf("expected connector error, got: %v", err)
		}
	})

	t.Run("SendToConversation", func(t *testing.T) {
		act := teams.NewReply(incoming, "proactive")
		act.ReplyToID = ""
		if err := client.SendToConversation(context.Background(), incoming, act); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPath != "/v3/conversations/conv-1/activities" {
			t.Errorf("unexpected path: %s", gotPath)
		}
	})

	t.Run("SendTyping", func(t *testing.T) {
		if err := client.SendTyping(context.Background(), incoming); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotActivity.Type != teams.ActivityTyping {
			t.Errorf("expected typing activity, got %s", gotActivity.Type)
		}
	})
}

func TestNewClient_Validation(t *testing.T) {
	if _, err := teams.NewClient(teams.Config{}); err == nil {
		t.Fatal("expected error for missing credentials")
	}
	if _, err := teams.NewClient(teams.Config{AppID: "app", AppPassword: "pw"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNewReply_PreservesConversation(t *testing.T) {
	incoming := incomingActivity("https://smba.trafficmanager.net/amer")
	reply := teams.NewReply(incoming, "ok")

	if reply.Conversation.ID != "conv-1" {
		t.Errorf("conversation not preserved: %+v", reply.Conversation)
	}
	if reply.ReplyToID != "act-1" {
		t.Errorf("replyToId not set: %s", reply.ReplyToID)
	}
	if reply.ServiceURL != incoming.ServiceURL {
		t.Errorf("serviceUrl not preserved: %s", reply.ServiceURL)
	}
}
