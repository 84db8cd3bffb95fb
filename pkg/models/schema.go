package models

type TablesResponse struct {
	Tables []string `json:"tables"`
}

type SchemaResponse struct {
	Schema string `json:"schema"`
}

type CatalogEntry struct {
	Label    string `json:"label"`
	Category string `json:"category"`
	Kind     string `json:"kind"`
}

type CatalogResponse struct {
	Entries []CatalogEntry `json:"entries"`
}
