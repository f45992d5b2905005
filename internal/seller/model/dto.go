package model

// SellerResponse represents a seller in API responses.
// TeamID and TeamName are null for sellers without a team.
type SellerResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"nome"`
	TeamID   *string `json:"equipe_id"`
	TeamName *string `json:"equipe_nome"`
}

// NewSellerResponses maps sellers to their response form, keeping order.
func NewSellerResponses(sellers []Seller) []SellerResponse {
	resp := make([]SellerResponse, 0, len(sellers))
	for _, s := range sellers {
		resp = append(resp, SellerResponse{
			ID:       s.ID,
			Name:     s.Name,
			TeamID:   s.TeamID,
			TeamName: s.TeamName,
		})
	}
	return resp
}
