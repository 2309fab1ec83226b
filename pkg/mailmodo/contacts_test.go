package mailmodo

import (
	"net/http"
	"strings"
	"testing"
)

func TestAddContactRequiresEmailAndListName(t *testing.T) {
	calls := 0
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	if _, err := client.AddContactToList(t.Context(), Contact{ListName: "vip"}); err == nil {
		t.Fatalf("expected missing email to be rejected")
	}
	if _, err := client.AddContactToList(t.Context(), Contact{Email: "a@b.com"}); err == nil {
		t.Fatalf("expected missing listName to be rejected")
	}
	if calls != 0 {
		t.Fatalf("expected zero network calls, got %d", calls)
	}
}

func TestAddContactDegradesOnNetworkFailure(t *testing.T) {
	client := newDeadClient(t)
	resp, err := client.AddContactToList(t.Context(), Contact{Email: "a@b.com", ListName: "vip"})
	if err != nil {
		t.Fatalf("network failure must degrade, not error: %v", err)
	}
	if resp.Success {
		t.Fatalf("expected success=false after network failure")
	}
}

func TestAddContactIssuesIndependentCalls(t *testing.T) {
	calls := 0
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		writeJSON(t, w, http.StatusOK, map[string]any{"success": true})
	})

	contact := Contact{Email: "a@b.com", ListName: "vip"}
	for range 2 {
		if _, err := client.AddContactToList(t.Context(), contact); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if calls != 2 {
		t.Fatalf("expected two independent network calls, got %d", calls)
	}
}

func TestBulkAddRejectsBlankEmailBeforeNetwork(t *testing.T) {
	calls := 0
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	batch := BulkContactBatch{
		ListName: "vip",
		Values:   []BulkContact{{Email: "a@b.com"}, {Email: "   "}},
	}
	if _, err := client.BulkAddContactToList(t.Context(), batch); err == nil {
		t.Fatalf("expected whitespace-only email to reject the whole batch")
	}
	if calls != 0 {
		t.Fatalf("expected zero network calls, got %d", calls)
	}
}

func TestBulkAddDegradesToEmptyListID(t *testing.T) {
	client := newDeadClient(t)
	resp, err := client.BulkAddContactToList(t.Context(), BulkContactBatch{
		ListName: "vip",
		Values:   []BulkContact{{Email: "a@b.com"}},
	})
	if err != nil {
		t.Fatalf("network failure must degrade, not error: %v", err)
	}
	if resp.ListID != "" {
		t.Fatalf("expected empty listId, got %q", resp.ListID)
	}
}

func TestRemoveFromListTreats400AsBenign(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]any{"message": "contact not in list"})
	})

	resp, err := client.RemoveContactFromList(t.Context(), "a@b.com", "vip")
	if err != nil {
		t.Fatalf("400 must not surface as error: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success-shaped benign outcome")
	}
	if !strings.Contains(resp.Message, "doesn't exist") {
		t.Fatalf("expected not-a-member wording, got %q", resp.Message)
	}
}

func TestRemoveFromListReturnsOtherErrors(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, map[string]any{"message": "boom"})
	})

	if _, err := client.RemoveContactFromList(t.Context(), "a@b.com", "vip"); err == nil {
		t.Fatalf("expected non-400 failure to be returned")
	}
}

func TestDeleteContactTreats400AsAlreadyArchived(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		writeJSON(t, w, http.StatusBadRequest, map[string]any{"message": "no such contact"})
	})

	resp, err := client.DeleteContact(t.Context(), "a@b.com")
	if err != nil {
		t.Fatalf("400 must not surface as error: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success=true for already-archived contact")
	}
	if !strings.Contains(resp.Message, "already archived") {
		t.Fatalf("expected already-archived wording, got %q", resp.Message)
	}
}

func TestDeleteContactDegradesOn500(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusInternalServerError, map[string]any{"message": "storage offline"})
	})

	resp, err := client.DeleteContact(t.Context(), "a@b.com")
	if err != nil {
		t.Fatalf("500 must degrade, not error: %v", err)
	}
	if resp.Success {
		t.Fatalf("expected success=false on 500")
	}
	if resp.Message != "storage offline" {
		t.Fatalf("expected remote message to be surfaced, got %q", resp.Message)
	}
}

func TestDeleteContactFallbackMessageWithoutRemoteDetail(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	resp, err := client.DeleteContact(t.Context(), "a@b.com")
	if err != nil {
		t.Fatalf("500 must degrade, not error: %v", err)
	}
	if resp.Message != "Failed to archive contact" {
		t.Fatalf("expected fixed fallback message, got %q", resp.Message)
	}
}

func TestUnsubscribeSurfacesRemoteMessage(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnprocessableEntity, map[string]any{"message": "contact suppressed already"})
	})

	resp, err := client.UnsubscribeContact(t.Context(), "a@b.com")
	if err != nil {
		t.Fatalf("remote error must degrade, not error: %v", err)
	}
	if resp.Success {
		t.Fatalf("expected success=false")
	}
	if resp.Message != "contact suppressed already" {
		t.Fatalf("expected remote message, got %q", resp.Message)
	}
}

func TestResubscribeRemapsSuccess(t *testing.T) {
	client, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"message": "welcome back"})
	})

	resp, err := client.ResubscribeContact(t.Context(), "a@b.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected 2xx resubscribe to report success")
	}
	if resp.Message != "welcome back" {
		t.Fatalf("expected remote message, got %q", resp.Message)
	}
}

func TestGetContactListsDegradeToEmpty(t *testing.T) {
	client := newDeadClient(t)
	resp, err := client.GetAllContactLists(t.Context())
	if err != nil {
		t.Fatalf("network failure must degrade, not error: %v", err)
	}
	if len(resp.ListDetails) != 0 {
		t.Fatalf("expected empty listDetails")
	}
}
