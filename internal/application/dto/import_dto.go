package dto

import "time"

// NFeImportResponse nota fiscal já importada (histórico).
type NFeImportResponse struct {
	ID             string    `json:"id"`
	DocumentNumber string    `json:"document_number"`
	SupplierName   string    `json:"supplier_name"`
	SupplierCNPJ   string    `json:"supplier_cnpj,omitempty"`
	IssueDate      time.Time `json:"issue_date"`
	ImportedAt     time.Time `json:"imported_at"`
}

// NFeImportListResponse histórico paginado de importações.
type NFeImportListResponse struct {
	Items []NFeImportResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}
