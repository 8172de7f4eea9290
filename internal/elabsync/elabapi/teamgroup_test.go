package elabapi

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestClient_AddUserToTeamgroup(t *testing.T) {
	server := mockServer(map[string]http.HandlerFunc{
		"/api/v2/teams/10/teamgroups/100": func(w http.ResponseWriter, r *http.Request) {
			if r.Method != "PATCH" {
				t.Errorf("Expected PATCH method, got %s", r.Method)
			}

			var body struct {
				How    string `json:"how"`
				UserID int    `json:"userid"`
			}
			json.NewDecoder(r.Body).Decode(&body)

			if body.How != "add" {
				t.Errorf("Expected how 'add', got %q", body.How)
			}
			if body.UserID != 1 {
				t.Errorf("Expected userid 1, got %d", body.UserID)
			}

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id": 100}`))
		},
	})
	defer server.Close()

	api := testClient(server.URL)
	if err := api.AddUserToTeamgroup(10, 100, 1); err != nil {
		t.Errorf("AddUserToTeamgroup() failed: %v", err)
	}
}

func TestTeamgroup_HasMember(t *testing.T) {
	group := &Teamgroup{
		ID:   100,
		Name: "Wetlab",
		Users: []GroupMember{
			{UserID: 1, Fullname: "Ada Lovelace"},
			{UserID: 3, Fullname: "Grace Hopper"},
		},
	}

	if !group.HasMember(1) {
		t.Error("HasMember(1) = false, want true")
	}
	if group.HasMember(2) {
		t.Error("HasMember(2) = true, want false")
	}
}
