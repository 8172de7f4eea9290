package elabapi

import "fmt"

// User represents a user account on the server
//
//nolint:revive // Field names match API responses
type User struct {
	UserID    int     `json:"userid"`
	Email     string  `json:"email"`
	Firstname string  `json:"firstname"`
	Lastname  string  `json:"lastname"`
	Fullname  string  `json:"fullname"`
	API       *Client `json:"-"`
}

// Users retrieves all user accounts visible to the API key
func (c *Client) Users() ([]*User, error) {
	var users []*User
	if err := c.get("/users", &users); err != nil {
		return nil, err
	}
	for i := range users {
		users[i].API = c
	}
	return users, nil
}

// PatchUser applies a partial update to a user account
func (c *Client) PatchUser(userID int, body any) error {
	return c.patch(fmt.Sprintf("/users/%d", userID), body, nil)
}

// AddUserToTeam adds the user to a team. The server rejects the call
// when the user is already a member of that team.
func (c *Client) AddUserToTeam(userID, teamID int) error {
	return c.PatchUser(userID, map[string]any{"action": "add", "team": teamID})
}
