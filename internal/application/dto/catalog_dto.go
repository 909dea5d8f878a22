package dto

// ProductResponse salida de un producto del catálogo.
type ProductResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Article string `json:"article"`
	Stock   int    `json:"stock"`
	Status  string `json:"status"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// WarehouseListResponse lista de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Total int                 `json:"total"`
}

// PackagingOptionListResponse etiquetas de empaque conocidas (filtradas por q si se indicó).
type PackagingOptionListResponse struct {
	Items []string `json:"items"`
	Query string   `json:"query,omitempty"`
}
