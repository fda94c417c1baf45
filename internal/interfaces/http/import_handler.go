package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jprezende/AgroGestor-api/internal/application/dto"
	"github.com/jprezende/AgroGestor-api/internal/application/importer"
)

// ImportHandler trata a importação de NF-e de insumos (protegido).
type ImportHandler struct {
	uc *importer.UseCase
}

// NewImportHandler constrói o handler.
func NewImportHandler(uc *importer.UseCase) *ImportHandler {
	return &ImportHandler{uc: uc}
}

// ImportNFe godoc
// @Summary      Importar NF-e de insumos (XML)
// @Description  Aceita o XML via multipart (campo "file") ou corpo bruto.
//
//	Cria defensivos ausentes e registra as entradas no razão. Itens falhos
//	não abortam os demais: 207 com o detalhe por item.
//
// @Tags         imports
// @Security     Bearer
// @Accept       mpfd
// @Produce      json
// @Param        file  formData  file  false  "XML da NF-e (procNFe ou NFe)"
// @Success      201  {object}  importer.Result
// @Success      207  {object}  importer.Result  "importação parcial"
// @Failure      409  {object}  dto.ErrorResponse  "nota já importada"
// @Failure      422  {object}  dto.ErrorResponse  "XML inválido"
// @Router       /api/imports/nfe [post]
func (h *ImportHandler) ImportNFe(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}

	raw, err := xmlFromRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "envie o XML no campo file ou no corpo da requisição"})
	}

	res, err := h.uc.ImportNFe(c.Context(), farmID, GetUserID(c), raw)
	if err != nil {
		return writeDomainError(c, err)
	}
	status := fiber.StatusCreated
	if res.PartialFailure() {
		status = fiber.StatusMultiStatus
	}
	return c.Status(status).JSON(res)
}

// History godoc
// @Summary      Histórico de notas importadas
// @Tags         imports
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.NFeImportListResponse
// @Router       /api/imports/nfe [get]
func (h *ImportHandler) History(c *fiber.Ctx) error {
	farmID := GetFarmID(c)
	if farmID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	limit, offset := pageParams(c)
	list, total, err := h.uc.ListImports(farmID, limit, offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	items := make([]dto.NFeImportResponse, 0, len(list))
	for _, i := range list {
		items = append(items, dto.NFeImportResponse{
			ID:             i.ID,
			DocumentNumber: i.DocumentNumber,
			SupplierName:   i.SupplierName,
			SupplierCNPJ:   i.SupplierCNPJ,
			IssueDate:      i.IssueDate,
			ImportedAt:     i.ImportedAt,
		})
	}
	return c.JSON(dto.NFeImportListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	})
}

// xmlFromRequest extrai o XML do multipart (campo file) ou do corpo bruto.
func xmlFromRequest(c *fiber.Ctx) ([]byte, error) {
	if fh, err := c.FormFile("file"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(f)
	}
	body := c.Body()
	if len(body) == 0 {
		return nil, fiber.ErrBadRequest
	}
	return body, nil
}
