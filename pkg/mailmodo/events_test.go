package mailmodo

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"go.mau.fi/util/ptr"
)

func TestSendEventDefaultsTimestamp(t *testing.T) {
	var sent Event
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &sent); err != nil {
			t.Errorf("failed to decode event body: %v", err)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{"success": true, "ref": "evt-1"})
	})

	before := time.Now().Unix()
	resp, err := client.SendEvent(t.Context(), Event{Email: "a@b.com", EventName: "signup"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success || resp.Ref != "evt-1" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if sent.TS == nil {
		t.Fatalf("expected ts to be defaulted")
	}
	if *sent.TS < before || *sent.TS > time.Now().Unix() {
		t.Fatalf("defaulted ts %d outside expected window", *sent.TS)
	}
}

func TestSendEventKeepsExplicitTimestamp(t *testing.T) {
	var sent Event
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &sent)
		writeJSON(t, w, http.StatusOK, map[string]any{"success": true})
	})

	if _, err := client.SendEvent(t.Context(), Event{
		Email:     "a@b.com",
		EventName: "signup",
		TS:        ptr.Ptr(int64(1700000000)),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sent.TS == nil || *sent.TS != 1700000000 {
		t.Fatalf("expected explicit ts to be forwarded, got %+v", sent.TS)
	}
}

func TestSendEventRequiresEmailAndName(t *testing.T) {
	calls := 0
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	if _, err := client.SendEvent(t.Context(), Event{EventName: "signup"}); err == nil {
		t.Fatalf("expected missing email to be rejected")
	}
	if _, err := client.SendEvent(t.Context(), Event{Email: "a@b.com"}); err == nil {
		t.Fatalf("expected missing event_name to be rejected")
	}
	if calls != 0 {
		t.Fatalf("expected zero network calls, got %d", calls)
	}
}

func TestSendEventDegradesOnNetworkFailure(t *testing.T) {
	client := newDeadClient(t)
	resp, err := client.SendEvent(t.Context(), Event{Email: "a@b.com", EventName: "signup"})
	if err != nil {
		t.Fatalf("network failure must degrade, not error: %v", err)
	}
	if resp.Success {
		t.Fatalf("expected success=false after network failure")
	}
}
