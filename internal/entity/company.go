package entity

// Company is one input descriptor from the companies CSV. It is never
// persisted; only leads derived from it are.
type Company struct {
	Name    string `json:"name"`
	Website string `json:"website"`
	Status  string `json:"status"` // free text, e.g. "Active", "Inactive", "Acquired by X"
}
