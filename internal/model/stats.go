package model

type ProductStats struct {
	TotalProducts int             `json:"total_products"`
	InStock       int             `json:"in_stock"`
	OutOfStock    int             `json:"out_of_stock"`
	Featured      int             `json:"featured"`
	ByCategory    []CategoryCount `json:"by_category"`
}

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
