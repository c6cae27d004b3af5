package dto

type CatalogEntry struct {
	Id   int16  `json:"id"`
	Desc string `json:"desc"`
}

type CatalogListResponse struct {
	Catalogs []string `json:"catalogs"`
}
