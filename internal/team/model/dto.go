package model

// TeamResponse represents a team in API responses.
type TeamResponse struct {
	ID   string `json:"id"`
	Name string `json:"nome"`
}

// NewTeamResponses maps teams to their response form, keeping order.
func NewTeamResponses(teams []Team) []TeamResponse {
	resp := make([]TeamResponse, 0, len(teams))
	for _, t := range teams {
		resp = append(resp, TeamResponse{ID: t.ID, Name: t.Name})
	}
	return resp
}
