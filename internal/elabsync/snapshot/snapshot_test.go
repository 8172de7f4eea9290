package snapshot

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/elabtools/elabsync/internal/elabsync/elabapi"
)

// serverState is the canned fixture most tests load: two users, two
// teams, one teamgroup per team.
var serverState = map[string]string{
	"/api/v2/users": `[
		{"userid": 1, "email": "a@x.com", "fullname": "Ada Lovelace"},
		{"userid": 2, "email": "b@x.com", "fullname": "Grace Hopper"}
	]`,
	"/api/v2/teams": `[
		{"id": 10, "name": "Lab1"},
		{"id": 11, "name": "Lab2"}
	]`,
	"/api/v2/teams/10/teamgroups": `[
		{"id": 100, "name": "Wetlab", "users": [{"userid": 1, "fullname": "Ada Lovelace"}]}
	]`,
	"/api/v2/teams/11/teamgroups": `[
		{"id": 110, "name": "Drylab", "users": []}
	]`,
}

func fixtureServer(overrides map[string]http.HandlerFunc) *httptest.Server {
	mux := http.NewServeMux()
	for path, body := range serverState {
		if _, ok := overrides[path]; ok {
			continue
		}
		payload := body
		mux.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(payload))
		})
	}
	for path, handler := range overrides {
		mux.HandleFunc(path, handler)
	}
	return httptest.NewServer(mux)
}

func loadFixture(t *testing.T, overrides map[string]http.HandlerFunc) (*Snapshot, error) {
	t.Helper()
	server := fixtureServer(overrides)
	t.Cleanup(server.Close)

	api, err := elabapi.Init(server.URL, "test-api-key")
	if err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	return Load(api)
}

func TestLoad(t *testing.T) {
	snap, err := loadFixture(t, nil)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	users, teams, groups := snap.Counts()
	if users != 2 || teams != 2 || groups != 2 {
		t.Errorf("Counts() = (%d, %d, %d), want (2, 2, 2)", users, teams, groups)
	}
}

func TestLoad_TeamgroupFetchFailureAborts(t *testing.T) {
	_, err := loadFixture(t, map[string]http.HandlerFunc{
		"/api/v2/teams/11/teamgroups": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
	})
	if err == nil {
		t.Fatal("Load() expected error when one team's group fetch fails")
	}
}

func TestLoad_UserFetchFailureAborts(t *testing.T) {
	_, err := loadFixture(t, map[string]http.HandlerFunc{
		"/api/v2/users": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		},
	})
	if err == nil {
		t.Fatal("Load() expected error when the user fetch fails")
	}
}

func TestSnapshot_Lookups(t *testing.T) {
	snap, err := loadFixture(t, nil)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if id, ok := snap.UserIDByEmail("a@x.com"); !ok || id != 1 {
		t.Errorf("UserIDByEmail(a@x.com) = (%d, %v), want (1, true)", id, ok)
	}
	if _, ok := snap.UserIDByEmail("missing@x.com"); ok {
		t.Error("UserIDByEmail(missing@x.com) = found, want absent")
	}

	if id, ok := snap.TeamIDByName("Lab1"); !ok || id != 10 {
		t.Errorf("TeamIDByName(Lab1) = (%d, %v), want (10, true)", id, ok)
	}
	if _, ok := snap.TeamIDByName("Lab9"); ok {
		t.Error("TeamIDByName(Lab9) = found, want absent")
	}

	if id, ok := snap.TeamgroupIDByNames("Lab1", "Wetlab"); !ok || id != 100 {
		t.Errorf("TeamgroupIDByNames(Lab1, Wetlab) = (%d, %v), want (100, true)", id, ok)
	}
	if _, ok := snap.TeamgroupIDByNames("Lab2", "Wetlab"); ok {
		t.Error("TeamgroupIDByNames(Lab2, Wetlab) = found, want absent: group names are team-scoped")
	}
}

func TestSnapshot_TeamgroupHasMember(t *testing.T) {
	snap, err := loadFixture(t, nil)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if !snap.TeamgroupHasMember("Lab1", "Wetlab", 1) {
		t.Error("TeamgroupHasMember(Lab1, Wetlab, 1) = false, want true")
	}
	if snap.TeamgroupHasMember("Lab1", "Wetlab", 2) {
		t.Error("TeamgroupHasMember(Lab1, Wetlab, 2) = true, want false")
	}
	if snap.TeamgroupHasMember("Lab9", "Wetlab", 1) {
		t.Error("TeamgroupHasMember on unknown team = true, want false")
	}
}

func TestSnapshot_SortedAccessors(t *testing.T) {
	snap, err := loadFixture(t, nil)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	var teamNames []string
	for _, team := range snap.Teams() {
		teamNames = append(teamNames, team.Name)
	}
	if diff := cmp.Diff([]string{"Lab1", "Lab2"}, teamNames); diff != "" {
		t.Errorf("Teams() order mismatch (-want +got):\n%s", diff)
	}

	groups := snap.Teamgroups("Lab2")
	if len(groups) != 1 || groups[0].Name != "Drylab" {
		t.Errorf("Teamgroups(Lab2) = %+v, want [Drylab]", groups)
	}
}
