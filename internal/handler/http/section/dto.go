package section

// CatalogEntryDTO describes one section route for tooling.
type CatalogEntryDTO struct {
	Name     string   `json:"name"`
	Route    string   `json:"route"`
	Resource string   `json:"resource"`
	Aliases  []string `json:"aliases"`
}
