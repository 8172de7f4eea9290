package importer

import (
	"errors"
	"fmt"

	"github.com/elabtools/elabsync/internal/elabsync/elabapi"
	apperrors "github.com/elabtools/elabsync/internal/elabsync/errors"
	"github.com/elabtools/elabsync/internal/log"
)

// Result classifies the outcome of a reconciliation call.
type Result int

const (
	// ResultAdded means a membership write was issued and accepted.
	ResultAdded Result = iota
	// ResultAlreadyMember means the membership already existed and no
	// write took effect.
	ResultAlreadyMember
)

// EnsureTeamMembership makes sure the user identified by email belongs
// to the named team. There is no cheap way to check team membership
// locally, so the write is always attempted; the server enforces
// no-duplicate-membership by rejecting it, and that rejection is treated
// as a successful no-op. Transport failures propagate.
func (im *Importer) EnsureTeamMembership(email, team string) (Result, error) {
	if email == "" {
		return 0, &apperrors.ValidationError{Field: "email"}
	}
	if team == "" {
		return 0, &apperrors.ValidationError{Field: "team"}
	}

	userID, ok := im.snap.UserIDByEmail(email)
	if !ok {
		return 0, &apperrors.NotFoundError{Kind: "user", Value: email}
	}
	teamID, ok := im.snap.TeamIDByName(team)
	if !ok {
		return 0, &apperrors.NotFoundError{Kind: "team", Value: team, Context: "for user " + email}
	}

	if err := im.api.AddUserToTeam(userID, teamID); err != nil {
		var apiErr *elabapi.APIError
		if errors.As(err, &apiErr) {
			log.InfoH3("User %s is already in team %s (server answered %d)", email, team, apiErr.StatusCode)
			return ResultAlreadyMember, nil
		}
		return 0, err
	}

	log.InfoH3("User %s added to team %s (team id %d)", email, team, teamID)
	return ResultAdded, nil
}

// EnsureTeamgroupMembership makes sure the user identified by email
// belongs to the named teamgroup within the named team. Unlike team
// membership, the snapshot already holds the group's member list, so an
// existing membership is detected locally and the write skipped; a
// failing write is never swallowed, since no server-side dedup guards
// this endpoint.
func (im *Importer) EnsureTeamgroupMembership(email, team, group string) (Result, error) {
	if email == "" {
		return 0, &apperrors.ValidationError{Field: "email"}
	}
	if team == "" {
		return 0, &apperrors.ValidationError{Field: "team"}
	}
	if group == "" {
		return 0, &apperrors.ValidationError{Field: "teamgroup"}
	}

	userID, ok := im.snap.UserIDByEmail(email)
	if !ok {
		return 0, &apperrors.NotFoundError{Kind: "user", Value: email}
	}
	teamID, ok := im.snap.TeamIDByName(team)
	if !ok {
		return 0, &apperrors.NotFoundError{Kind: "team", Value: team, Context: "for user " + email}
	}
	groupID, ok := im.snap.TeamgroupIDByNames(team, group)
	if !ok {
		return 0, &apperrors.NotFoundError{
			Kind:    "teamgroup",
			Value:   group,
			Context: fmt.Sprintf("in team %s for user %s", team, email),
		}
	}

	if im.snap.TeamgroupHasMember(team, group, userID) {
		log.InfoH3("User %s is already in teamgroup %s", email, group)
		return ResultAlreadyMember, nil
	}

	if err := im.api.AddUserToTeamgroup(teamID, groupID, userID); err != nil {
		return 0, err
	}

	log.InfoH3("User %s added to teamgroup %s (group id %d) in team %s", email, group, groupID, team)
	return ResultAdded, nil
}
