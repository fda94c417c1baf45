package importer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jprezende/AgroGestor-api/internal/application/importer"
	"github.com/jprezende/AgroGestor-api/internal/application/inventory"
	"github.com/jprezende/AgroGestor-api/internal/domain"
	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/nfe"
)

const testFarmID = "farm-1"

type stubDecoder struct {
	doc *nfe.Document
	err error
}

func (d *stubDecoder) Decode([]byte) (*nfe.Document, error) { return d.doc, d.err }

type stubRecorder struct {
	calls  []inventory.RecordMovementInput
	failOn string // ItemID que deve falhar
}

func (r *stubRecorder) RecordMovement(_ context.Context, in inventory.RecordMovementInput) (*entity.MovementWithRefs, error) {
	if r.failOn != "" && in.ItemID == r.failOn {
		return nil, domain.ErrInsufficientStock
	}
	r.calls = append(r.calls, in)
	return &entity.MovementWithRefs{}, nil
}

type memAgroRepo struct {
	items map[string]*entity.Agrochemical
}

func newMemAgroRepo() *memAgroRepo { return &memAgroRepo{items: map[string]*entity.Agrochemical{}} }

func (r *memAgroRepo) Create(a *entity.Agrochemical) error { r.items[a.ID] = a; return nil }
func (r *memAgroRepo) GetByID(id string) (*entity.Agrochemical, error) {
	return r.items[id], nil
}
func (r *memAgroRepo) GetByFarmAndRegistry(farmID, registry string) (*entity.Agrochemical, error) {
	return nil, nil
}
func (r *memAgroRepo) GetByFarmAndName(farmID, name string) (*entity.Agrochemical, error) {
	for _, a := range r.items {
		if a.FarmID == farmID && a.Name == name {
			return a, nil
		}
	}
	return nil, nil
}
func (r *memAgroRepo) Update(a *entity.Agrochemical) error { r.items[a.ID] = a; return nil }
func (r *memAgroRepo) ListByFarm(farmID string, limit, offset int) ([]*entity.Agrochemical, int, error) {
	return nil, 0, nil
}
func (r *memAgroRepo) Delete(id string) error { delete(r.items, id); return nil }

type memImportRepo struct {
	imports []*entity.NFeImport
}

func (r *memImportRepo) Create(i *entity.NFeImport) error {
	r.imports = append(r.imports, i)
	return nil
}
func (r *memImportRepo) GetByFarmAndDigest(farmID, digest string) (*entity.NFeImport, error) {
	for _, i := range r.imports {
		if i.FarmID == farmID && i.Digest == digest {
			return i, nil
		}
	}
	return nil, nil
}
func (r *memImportRepo) ListByFarm(farmID string, limit, offset int) ([]*entity.NFeImport, int, error) {
	return r.imports, len(r.imports), nil
}

func sampleDoc() *nfe.Document {
	return &nfe.Document{
		Header: nfe.Header{
			DocumentNumber: "12345",
			SupplierName:   "Agroquimica Brasil",
			IssueDate:      time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		},
		Items: []nfe.LineItem{
			{Description: "Glifosato 480 g/L SL", NCMCode: "38089329", Unit: "L", Quantity: decimal.NewFromInt(200)},
			{Description: "Mancozebe WG 800", NCMCode: "38089210", Unit: "KG", Quantity: decimal.NewFromInt(50)},
		},
		Digest: "abc123",
	}
}

func TestImportNFe_CriaItensERegistraEntradas(t *testing.T) {
	agros := newMemAgroRepo()
	imports := &memImportRepo{}
	rec := &stubRecorder{}
	uc := importer.NewUseCase(&stubDecoder{doc: sampleDoc()}, rec, agros, imports)

	res, err := uc.ImportNFe(context.Background(), testFarmID, "user-1", []byte("<xml/>"))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.False(t, res.PartialFailure())

	// Categorias inferidas pela tabela de regras (NCM manda).
	require.Len(t, res.Items, 2)
	assert.Equal(t, "Herbicida", res.Items[0].Category)
	assert.True(t, res.Items[0].CreatedItem)
	assert.Equal(t, "Fungicida", res.Items[1].Category)

	// Uma ENTRADA por item, com a nota na atividade.
	require.Len(t, rec.calls, 2)
	assert.Equal(t, entity.MovementTypeEntrada, rec.calls[0].Type)
	assert.True(t, rec.calls[0].Quantity.Equal(decimal.NewFromInt(200)))
	assert.Contains(t, rec.calls[0].Activity, "12345")

	// Nota marcada como importada.
	require.Len(t, imports.imports, 1)
	assert.Equal(t, "abc123", imports.imports[0].Digest)
}

func TestImportNFe_ReaproveitaCadastroExistente(t *testing.T) {
	agros := newMemAgroRepo()
	_ = agros.Create(&entity.Agrochemical{
		ID: "agro-1", FarmID: testFarmID, Name: "Glifosato 480 g/L SL", Category: "Herbicida",
	})
	rec := &stubRecorder{}
	uc := importer.NewUseCase(&stubDecoder{doc: sampleDoc()}, rec, agros, &memImportRepo{})

	res, err := uc.ImportNFe(context.Background(), testFarmID, "user-1", nil)
	require.NoError(t, err)
	assert.False(t, res.Items[0].CreatedItem)
	assert.Equal(t, "agro-1", res.Items[0].AgrochemicalID)
	assert.Len(t, agros.items, 2) // só o Mancozebe foi criado
}

func TestImportNFe_NotaDuplicada(t *testing.T) {
	uc := importer.NewUseCase(&stubDecoder{doc: sampleDoc()}, &stubRecorder{}, newMemAgroRepo(), &memImportRepo{})
	ctx := context.Background()

	_, err := uc.ImportNFe(ctx, testFarmID, "user-1", nil)
	require.NoError(t, err)
	_, err = uc.ImportNFe(ctx, testFarmID, "user-1", nil)
	require.ErrorIs(t, err, domain.ErrDuplicate)
	assert.Contains(t, err.Error(), "12345")
}

func TestImportNFe_XMLInvalido(t *testing.T) {
	dec := &stubDecoder{err: domain.ErrImportParse}
	uc := importer.NewUseCase(dec, &stubRecorder{}, newMemAgroRepo(), &memImportRepo{})

	_, err := uc.ImportNFe(context.Background(), testFarmID, "user-1", []byte("lixo"))
	require.True(t, errors.Is(err, domain.ErrImportParse))
}

func TestImportNFe_FalhaParcialPorItem(t *testing.T) {
	agros := newMemAgroRepo()
	_ = agros.Create(&entity.Agrochemical{ID: "agro-falha", FarmID: testFarmID, Name: "Glifosato 480 g/L SL"})
	rec := &stubRecorder{failOn: "agro-falha"}
	imports := &memImportRepo{}
	uc := importer.NewUseCase(&stubDecoder{doc: sampleDoc()}, rec, agros, imports)

	res, err := uc.ImportNFe(context.Background(), testFarmID, "user-1", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Imported)
	assert.True(t, res.PartialFailure())
	assert.NotEmpty(t, res.Items[0].Error)
	assert.Empty(t, res.Items[1].Error)
	// Importou parcialmente: a nota fica registrada mesmo assim.
	assert.Len(t, imports.imports, 1)
}
