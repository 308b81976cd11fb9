// Package types contains wire shapes shared between the service and the HTTP API.
package types

// Activity mirrors the JSON shape returned by GET /activities for one activity.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}
