package elabapi

import "fmt"

// Team represents a team on the server
//
//nolint:revive // Field names match API responses
type Team struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	API  *Client `json:"-"`
}

// Teams retrieves all teams from the server
func (c *Client) Teams() ([]*Team, error) {
	var teams []*Team
	if err := c.get("/teams", &teams); err != nil {
		return nil, err
	}
	for i := range teams {
		teams[i].API = c
	}
	return teams, nil
}

// Teamgroups retrieves the teamgroups scoped to this team
func (t *Team) Teamgroups() ([]*Teamgroup, error) {
	var groups []*Teamgroup
	if err := t.API.get(fmt.Sprintf("/teams/%d/teamgroups", t.ID), &groups); err != nil {
		return nil, err
	}
	return groups, nil
}
