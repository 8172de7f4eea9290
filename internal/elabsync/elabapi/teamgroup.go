package elabapi

import "fmt"

// GroupMember is one user entry in a teamgroup's member list
//
//nolint:revive // Field names match API responses
type GroupMember struct {
	UserID   int    `json:"userid"`
	Fullname string `json:"fullname"`
}

// Teamgroup represents a named sub-group scoped within one team
//
//nolint:revive // Field names match API responses
type Teamgroup struct {
	ID    int           `json:"id"`
	Name  string        `json:"name"`
	Users []GroupMember `json:"users"`
}

// HasMember reports whether the user appears in the group's member list
func (g *Teamgroup) HasMember(userID int) bool {
	for _, m := range g.Users {
		if m.UserID == userID {
			return true
		}
	}
	return false
}

// AddUserToTeamgroup adds the user to a teamgroup within the team
func (c *Client) AddUserToTeamgroup(teamID, groupID, userID int) error {
	return c.patch(fmt.Sprintf("/teams/%d/teamgroups/%d", teamID, groupID),
		map[string]any{"how": "add", "userid": userID}, nil)
}
