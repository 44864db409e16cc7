package dto

// LocationResponse elemento de catálogo (estado, municipio o colonia).
type LocationResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parentId,omitempty"`
}
