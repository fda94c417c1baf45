package entity

import "time"

// NFeImport registra uma nota fiscal já importada. O Digest (hash canônico C14N
// do XML) garante idempotência: a mesma nota enviada duas vezes é rejeitada.
type NFeImport struct {
	ID             string
	FarmID         string
	Digest         string
	DocumentNumber string
	SupplierName   string
	SupplierCNPJ   string
	IssueDate      time.Time
	ImportedAt     time.Time
}
