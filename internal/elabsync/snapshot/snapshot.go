// Package snapshot caches the server-side users, teams and teamgroups a
// run resolves against. A snapshot is built once at run start and is
// read-only afterwards; lookups never mutate it.
package snapshot

import (
	"fmt"
	"sort"

	"github.com/elabtools/elabsync/internal/elabsync/elabapi"
	"github.com/elabtools/elabsync/internal/log"
)

// Snapshot indexes the server state by natural key: email for users,
// name for teams, (team name, group name) for teamgroups.
type Snapshot struct {
	users      map[string]*elabapi.User
	teams      map[string]*elabapi.Team
	teamgroups map[string]map[string]*elabapi.Teamgroup
}

// Load fetches users, teams and per-team teamgroups, in that order. Any
// fetch failure aborts the load: a partial snapshot would make the
// membership pre-checks unreliable.
func Load(api *elabapi.Client) (*Snapshot, error) {
	users, err := api.Users()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	teams, err := api.Teams()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch teams: %w", err)
	}

	snap := &Snapshot{
		users:      make(map[string]*elabapi.User, len(users)),
		teams:      make(map[string]*elabapi.Team, len(teams)),
		teamgroups: make(map[string]map[string]*elabapi.Teamgroup, len(teams)),
	}

	for _, user := range users {
		snap.users[user.Email] = user
	}

	for _, team := range teams {
		groups, err := team.Teamgroups()
		if err != nil {
			return nil, fmt.Errorf("failed to fetch teamgroups for team %q: %w", team.Name, err)
		}

		byName := make(map[string]*elabapi.Teamgroup, len(groups))
		for _, group := range groups {
			byName[group.Name] = group
		}

		snap.teams[team.Name] = team
		snap.teamgroups[team.Name] = byName
	}

	u, t, g := snap.Counts()
	log.InfoH2("Snapshot loaded: %d users, %d teams, %d teamgroups", u, t, g)

	return snap, nil
}

// UserIDByEmail resolves a user email to its server-assigned ID.
func (s *Snapshot) UserIDByEmail(email string) (int, bool) {
	user, ok := s.users[email]
	if !ok {
		return 0, false
	}
	return user.UserID, true
}

// TeamIDByName resolves a team name to its server-assigned ID.
func (s *Snapshot) TeamIDByName(name string) (int, bool) {
	team, ok := s.teams[name]
	if !ok {
		return 0, false
	}
	return team.ID, true
}

// TeamgroupIDByNames resolves a (team name, group name) pair to the
// teamgroup's server-assigned ID.
func (s *Snapshot) TeamgroupIDByNames(team, group string) (int, bool) {
	tg, ok := s.teamgroups[team][group]
	if !ok {
		return 0, false
	}
	return tg.ID, true
}

// TeamgroupHasMember reports whether the user already appears in the
// teamgroup's member list as of snapshot time.
func (s *Snapshot) TeamgroupHasMember(team, group string, userID int) bool {
	tg, ok := s.teamgroups[team][group]
	return ok && tg.HasMember(userID)
}

// Counts returns the number of users, teams and teamgroups held.
func (s *Snapshot) Counts() (users, teams, teamgroups int) {
	for _, byName := range s.teamgroups {
		teamgroups += len(byName)
	}
	return len(s.users), len(s.teams), teamgroups
}

// Teams returns all teams sorted by name, for reporting.
func (s *Snapshot) Teams() []*elabapi.Team {
	teams := make([]*elabapi.Team, 0, len(s.teams))
	for _, team := range s.teams {
		teams = append(teams, team)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams
}

// Teamgroups returns the named team's teamgroups sorted by name.
func (s *Snapshot) Teamgroups(team string) []*elabapi.Teamgroup {
	groups := make([]*elabapi.Teamgroup, 0, len(s.teamgroups[team]))
	for _, group := range s.teamgroups[team] {
		groups = append(groups, group)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })
	return groups
}
