package http

import (
	"bytes"
	"encoding/csv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jprezende/AgroGestor-api/internal/application/dto"
	"github.com/jprezende/AgroGestor-api/internal/application/harvest"
	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
	"github.com/jprezende/AgroGestor-api/internal/infrastructure/pdf"
)

// HarvestHandler trata as requisições HTTP de colheita (protegido).
type HarvestHandler struct {
	uc       *harvest.UseCase
	farms    repository.FarmRepository
	reporter *pdf.HarvestReportGenerator
}

// NewHarvestHandler constrói o handler.
func NewHarvestHandler(uc *harvest.UseCase, farms repository.FarmRepository, reporter *pdf.HarvestReportGenerator) *HarvestHandler {
	return &HarvestHandler{uc: uc, farms: farms, reporter: reporter}
}

// harvestFilterFromQuery monta o filtro a partir da query string.
func harvestFilterFromQuery(c *fiber.Ctx, farmID string) repository.HarvestLoadFilter {
	limit, offset := pageParams(c)
	filter := repository.HarvestLoadFilter{
		FarmID:     farmID,
		Crop:       c.Query("crop"),
		FieldName:  c.Query("field"),
		PlantingID: c.Query("planting_id"),
		Limit:      limit,
		Offset:     offset,
	}
	if v := c.Query("from"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			filter.From = &t
		}
	}
	if v := c.Query("to"); v != "" {
		if t, err := time.Parse("2006-01-02", v); err == nil {
			end := t.Add(24*time.Hour - time.Nanosecond)
			filter.To = &end
		}
	}
	return filter
}

// Create godoc
// @Summary      Registrar carga de colheita (romaneio)
// @Description  O peso bruto deve exceder a tara; o líquido é derivado na entrada.
// @Tags         harvest
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterHarvestLoadRequest  true  "date, crop, gross_kg, tare_kg"
// @Success      201   {object}  dto.HarvestLoadResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/harvest-loads [post]
func (h *HarvestHandler) Create(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.RegisterHarvestLoadRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	date, err := time.Parse("2006-01-02", in.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date deve estar no formato 2006-01-02"})
	}
	load, err := h.uc.RegisterLoad(harvest.RegisterLoadInput{
		FarmID:       farmID,
		Date:         date,
		Crop:         in.Crop,
		FieldName:    in.FieldName,
		PlantingID:   in.PlantingID,
		Plate:        in.Plate,
		Driver:       in.Driver,
		Destination:  in.Destination,
		TicketNumber: in.TicketNumber,
		GrossKg:      in.GrossKg,
		TareKg:       in.TareKg,
		Notes:        in.Notes,
	})
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toHarvestLoadResponse(load))
}

// List godoc
// @Summary      Listar cargas de colheita
// @Tags         harvest
// @Security     Bearer
// @Produce      json
// @Param        crop         query  string  false  "Cultura (substring, sem caixa/acentos)"
// @Param        field        query  string  false  "Talhão (substring)"
// @Param        planting_id  query  string  false  "Filtrar por plantio"
// @Param        from         query  string  false  "Data inicial (2006-01-02)"
// @Param        to           query  string  false  "Data final inclusiva (2006-01-02)"
// @Param        limit        query  int     false  "Limite"   default(20)
// @Param        offset       query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.HarvestLoadListResponse
// @Router       /api/harvest-loads [get]
func (h *HarvestHandler) List(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	filter := harvestFilterFromQuery(c, farmID)
	list, total, err := h.uc.ListLoads(filter)
	if err != nil {
		return writeDomainError(c, err)
	}
	items := make([]dto.HarvestLoadResponse, 0, len(list))
	for _, l := range list {
		items = append(items, toHarvestLoadResponse(l))
	}
	return c.JSON(dto.HarvestLoadListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: filter.Limit, Offset: filter.Offset, Total: total},
	})
}

// Delete godoc
// @Summary      Excluir carga de colheita
// @Description  Sem efeito no razão de estoque.
// @Tags         harvest
// @Security     Bearer
// @Param        id  path  string  true  "ID da carga"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/harvest-loads/{id} [delete]
func (h *HarvestHandler) Delete(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	if err := h.uc.DeleteLoad(farmID, c.Params("id")); err != nil {
		return writeDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Summary godoc
// @Summary      Agregados de colheita da janela de filtro
// @Description  Totais de peso e produtividade (kg/ha e sc/ha). A área de
//
//	referência vem do plantio filtrado, senão da maior área entre os plantios
//	vinculados, senão de fallback_area_ha.
//
// @Tags         harvest
// @Security     Bearer
// @Produce      json
// @Param        crop              query  string  false  "Cultura"
// @Param        from              query  string  false  "Data inicial (2006-01-02)"
// @Param        to                query  string  false  "Data final inclusiva (2006-01-02)"
// @Param        fallback_area_ha  query  string  false  "Área usada quando nenhum plantio dá a referência"
// @Success      200  {object}  harvest.Summary
// @Router       /api/harvest-loads/summary [get]
func (h *HarvestHandler) Summary(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	filter := harvestFilterFromQuery(c, farmID)
	fallback := decimal.Zero
	if v := c.Query("fallback_area_ha"); v != "" {
		if d, err := decimal.NewFromString(v); err == nil && d.IsPositive() {
			fallback = d
		}
	}
	summary, err := h.uc.Aggregate(filter, fallback)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(summary)
}

// ExportCSV godoc
// @Summary      Exportar cargas de colheita em CSV
// @Tags         harvest
// @Security     Bearer
// @Produce      text/csv
// @Param        crop  query  string  false  "Cultura"
// @Param        from  query  string  false  "Data inicial (2006-01-02)"
// @Param        to    query  string  false  "Data final inclusiva (2006-01-02)"
// @Success      200  {string}  string  "arquivo CSV"
// @Router       /api/harvest-loads/export.csv [get]
func (h *HarvestHandler) ExportCSV(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	filter := harvestFilterFromQuery(c, farmID)
	list, err := h.uc.ListAllLoads(filter)
	if err != nil {
		return writeDomainError(c, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"data", "cultura", "talhao", "placa", "motorista", "destino", "ticket", "bruto_kg", "tara_kg", "liquido_kg"})
	for _, l := range list {
		_ = w.Write([]string{
			l.Date.Format("2006-01-02"),
			l.Crop,
			l.FieldName,
			l.Plate,
			l.Driver,
			l.Destination,
			l.TicketNumber,
			l.GrossKg.String(),
			l.TareKg.String(),
			l.NetKg.String(),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return writeDomainError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="colheita.csv"`)
	return c.Send(buf.Bytes())
}

// Report godoc
// @Summary      Relatório de colheita em PDF
// @Tags         harvest
// @Security     Bearer
// @Produce      application/pdf
// @Param        crop  query  string  false  "Cultura"
// @Param        from  query  string  false  "Data inicial (2006-01-02)"
// @Param        to    query  string  false  "Data final inclusiva (2006-01-02)"
// @Success      200  {string}  string  "arquivo PDF"
// @Router       /api/harvest-loads/report.pdf [get]
func (h *HarvestHandler) Report(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	farm, err := h.farms.GetByID(farmID)
	if err != nil {
		return writeDomainError(c, err)
	}
	if farm == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "fazenda não encontrada"})
	}

	filter := harvestFilterFromQuery(c, farmID)
	loads, err := h.uc.ListAllLoads(filter)
	if err != nil {
		return writeDomainError(c, err)
	}
	summary, err := h.uc.Aggregate(filter, decimal.Zero)
	if err != nil {
		return writeDomainError(c, err)
	}

	doc, err := h.reporter.GenerateHarvestReport(farm, loads, summary, filter.From, filter.To)
	if err != nil {
		return writeDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio-colheita.pdf"`)
	return c.Send(doc)
}

func toHarvestLoadResponse(l *entity.HarvestLoad) dto.HarvestLoadResponse {
	return dto.HarvestLoadResponse{
		ID:           l.ID,
		Date:         l.Date,
		Crop:         l.Crop,
		FieldName:    l.FieldName,
		PlantingID:   l.PlantingID,
		Plate:        l.Plate,
		Driver:       l.Driver,
		Destination:  l.Destination,
		TicketNumber: l.TicketNumber,
		GrossKg:      l.GrossKg,
		TareKg:       l.TareKg,
		NetKg:        l.NetKg,
		Notes:        l.Notes,
		CreatedAt:    l.CreatedAt,
	}
}
