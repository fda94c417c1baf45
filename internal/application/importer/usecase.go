package importer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jprezende/AgroGestor-api/internal/application/inventory"
	"github.com/jprezende/AgroGestor-api/internal/domain"
	"github.com/jprezende/AgroGestor-api/internal/domain/agro"
	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/nfe"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

// Decoder porta para o decodificador de NF-e (implementado em infrastructure/nfe).
type Decoder interface {
	Decode(raw []byte) (*nfe.Document, error)
}

// MovementRecorder porta para o registrador de movimentações (caminho único de
// escrita no razão; a importação nunca toca o razão diretamente).
type MovementRecorder interface {
	RecordMovement(ctx context.Context, input inventory.RecordMovementInput) (*entity.MovementWithRefs, error)
}

// UseCase importa uma NF-e de fornecedor: decodifica o XML, cria/completa o
// cadastro de defensivos (categoria inferida por NCM/descrição) e registra as
// entradas de estoque item a item via Recorder.
type UseCase struct {
	decoder   Decoder
	recorder  MovementRecorder
	agrochems repository.AgrochemicalRepository
	imports   repository.NFeImportRepository
}

// NewUseCase constrói o caso de uso.
func NewUseCase(
	decoder Decoder,
	recorder MovementRecorder,
	agrochems repository.AgrochemicalRepository,
	imports repository.NFeImportRepository,
) *UseCase {
	return &UseCase{decoder: decoder, recorder: recorder, agrochems: agrochems, imports: imports}
}

// ItemResult resultado da importação de um item da nota.
type ItemResult struct {
	Description    string `json:"description"`
	AgrochemicalID string `json:"agrochemical_id,omitempty"`
	Category       string `json:"category,omitempty"`
	CreatedItem    bool   `json:"created_item"`
	Error          string `json:"error,omitempty"`
}

// Result resumo da importação da nota.
type Result struct {
	DocumentNumber string       `json:"document_number"`
	SupplierName   string       `json:"supplier_name"`
	Imported       int          `json:"imported"`
	Items          []ItemResult `json:"items"`
}

// PartialFailure indica se algum item da nota falhou.
func (r *Result) PartialFailure() bool { return r.Imported < len(r.Items) }

// ImportNFe processa o XML. A mesma nota (digest canônico) não importa duas
// vezes: ErrDuplicate. Itens falhos não abortam os demais; o resultado traz o
// detalhe por item, e a nota só é marcada como importada se algum item entrou.
func (uc *UseCase) ImportNFe(ctx context.Context, farmID, userID string, raw []byte) (*Result, error) {
	doc, err := uc.decoder.Decode(raw)
	if err != nil {
		return nil, err
	}

	if prev, err := uc.imports.GetByFarmAndDigest(farmID, doc.Digest); err != nil {
		return nil, err
	} else if prev != nil {
		return nil, fmt.Errorf("nota %s já importada em %s: %w",
			doc.Header.DocumentNumber, prev.ImportedAt.Format("02/01/2006"), domain.ErrDuplicate)
	}

	result := &Result{
		DocumentNumber: doc.Header.DocumentNumber,
		SupplierName:   doc.Header.SupplierName,
	}
	activity := fmt.Sprintf("Importação NF-e nº %s (%s)", doc.Header.DocumentNumber, doc.Header.SupplierName)

	for _, line := range doc.Items {
		res := uc.importItem(ctx, farmID, userID, activity, line)
		if res.Error == "" {
			result.Imported++
		}
		result.Items = append(result.Items, res)
	}

	if result.Imported > 0 {
		err := uc.imports.Create(&entity.NFeImport{
			ID:             uuid.New().String(),
			FarmID:         farmID,
			Digest:         doc.Digest,
			DocumentNumber: doc.Header.DocumentNumber,
			SupplierName:   doc.Header.SupplierName,
			SupplierCNPJ:   doc.Header.SupplierCNPJ,
			IssueDate:      doc.Header.IssueDate,
			ImportedAt:     time.Now(),
		})
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

// ListImports lista o histórico de notas importadas da fazenda.
func (uc *UseCase) ListImports(farmID string, limit, offset int) ([]*entity.NFeImport, int, error) {
	return uc.imports.ListByFarm(farmID, limit, offset)
}

func (uc *UseCase) importItem(ctx context.Context, farmID, userID, activity string, line nfe.LineItem) ItemResult {
	res := ItemResult{Description: line.Description}

	item, err := uc.agrochems.GetByFarmAndName(farmID, line.Description)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	if item == nil {
		now := time.Now()
		item = &entity.Agrochemical{
			ID:        uuid.New().String(),
			FarmID:    farmID,
			Name:      line.Description,
			NCMCode:   line.NCMCode,
			Category:  agro.InferCategory(line.NCMCode, line.Description),
			Unit:      line.Unit,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := uc.agrochems.Create(item); err != nil {
			res.Error = err.Error()
			return res
		}
		res.CreatedItem = true
	}
	res.AgrochemicalID = item.ID
	res.Category = item.Category

	_, err = uc.recorder.RecordMovement(ctx, inventory.RecordMovementInput{
		FarmID:   farmID,
		UserID:   userID,
		ItemKind: entity.ItemKindAgrochemical,
		ItemID:   item.ID,
		Type:     entity.MovementTypeEntrada,
		Quantity: line.Quantity,
		Activity: activity,
	})
	if err != nil {
		res.Error = err.Error()
	}
	return res
}
