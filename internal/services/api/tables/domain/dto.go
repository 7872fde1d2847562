// Package domain holds DTOs for raw table browsing
package domain

// PageQuery bounds a table page request
type PageQuery struct {
	Limit  int `json:"limit" validate:"omitempty,min=1,max=500" example:"100"`
	Offset int `json:"offset" validate:"omitempty,min=0" example:"0"`
}

// PageResult is one page of rows with their column order preserved
type PageResult struct {
	Columns []string         `json:"columns"`
	Rows    []map[string]any `json:"rows"`
}
