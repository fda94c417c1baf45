package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jprezende/AgroGestor-api/internal/domain"
	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

var _ repository.NFeImportRepository = (*NFeImportRepo)(nil)

// NFeImportRepo implementação de NFeImportRepository sobre PostgreSQL.
type NFeImportRepo struct {
	q Querier
}

// NewNFeImportRepository constrói o adaptador de persistência para notas importadas.
func NewNFeImportRepository(q Querier) *NFeImportRepo {
	return &NFeImportRepo{q: q}
}

// Create registra uma nota importada. O índice único (farm_id, digest) garante
// idempotência também sob corrida.
func (r *NFeImportRepo) Create(imp *entity.NFeImport) error {
	query := `
		INSERT INTO nfe_imports (id, farm_id, digest, document_number, supplier_name, supplier_cnpj, issue_date, imported_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		imp.ID, imp.FarmID, imp.Digest, imp.DocumentNumber,
		imp.SupplierName, imp.SupplierCNPJ, imp.IssueDate, imp.ImportedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("nota %s: %w", imp.DocumentNumber, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert nfe import: %w", err)
	}
	return nil
}

// GetByFarmAndDigest localiza uma importação pelo digest canônico do XML.
func (r *NFeImportRepo) GetByFarmAndDigest(farmID, digest string) (*entity.NFeImport, error) {
	query := `
		SELECT id, farm_id, digest, document_number, supplier_name, supplier_cnpj, issue_date, imported_at
		FROM nfe_imports WHERE farm_id = $1 AND digest = $2`
	var n entity.NFeImport
	err := r.q.QueryRow(context.Background(), query, farmID, digest).Scan(
		&n.ID, &n.FarmID, &n.Digest, &n.DocumentNumber,
		&n.SupplierName, &n.SupplierCNPJ, &n.IssueDate, &n.ImportedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get nfe import: %w", err)
	}
	return &n, nil
}

// ListByFarm lista notas importadas da fazenda, mais recentes primeiro.
func (r *NFeImportRepo) ListByFarm(farmID string, limit, offset int) ([]*entity.NFeImport, int, error) {
	var total int
	if err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM nfe_imports WHERE farm_id = $1`, farmID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count nfe imports: %w", err)
	}

	query := `
		SELECT id, farm_id, digest, document_number, supplier_name, supplier_cnpj, issue_date, imported_at
		FROM nfe_imports WHERE farm_id = $1
		ORDER BY imported_at DESC, id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, farmID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list nfe imports: %w", err)
	}
	defer rows.Close()

	var list []*entity.NFeImport
	for rows.Next() {
		var n entity.NFeImport
		if err := rows.Scan(&n.ID, &n.FarmID, &n.Digest, &n.DocumentNumber,
			&n.SupplierName, &n.SupplierCNPJ, &n.IssueDate, &n.ImportedAt); err != nil {
			return nil, 0, fmt.Errorf("scan nfe import: %w", err)
		}
		list = append(list, &n)
	}
	return list, total, rows.Err()
}
