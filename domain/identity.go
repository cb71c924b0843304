package domain

// Identity is the caller record attached to a request after API key
// authentication.
type Identity struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
