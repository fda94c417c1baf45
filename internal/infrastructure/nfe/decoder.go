// Decodificador de NF-e (modelo 55) para os itens de interesse do almoxarifado:
// cabeçalho, itens com NCM e lotes de rastreabilidade (grupo rastro).
package nfe

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/ucarion/c14n"

	"github.com/jprezende/AgroGestor-api/internal/domain"
	domnfe "github.com/jprezende/AgroGestor-api/internal/domain/nfe"
)

// Decoder decodifica o XML de uma NF-e (aceita o envelope nfeProc ou a NFe direta).
type Decoder struct{}

// NewDecoder cria o decodificador.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode interpreta o XML e devolve o documento estruturado.
// Qualquer problema estrutural devolve erro embrulhando domain.ErrImportParse.
func (d *Decoder) Decode(raw []byte) (*domnfe.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, fmt.Errorf("ler XML: %v: %w", err, domain.ErrImportParse)
	}

	inf := doc.FindElement("//infNFe")
	if inf == nil {
		return nil, fmt.Errorf("elemento infNFe ausente: %w", domain.ErrImportParse)
	}

	header, err := parseHeader(inf)
	if err != nil {
		return nil, err
	}

	dets := inf.FindElements("det")
	if len(dets) == 0 {
		return nil, fmt.Errorf("nota sem itens (det): %w", domain.ErrImportParse)
	}
	items := make([]domnfe.LineItem, 0, len(dets))
	for _, det := range dets {
		item, err := parseItem(det)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	digest, err := canonicalDigest(raw)
	if err != nil {
		return nil, err
	}

	return &domnfe.Document{Header: *header, Items: items, Digest: digest}, nil
}

func parseHeader(inf *etree.Element) (*domnfe.Header, error) {
	ide := inf.SelectElement("ide")
	emit := inf.SelectElement("emit")
	if ide == nil || emit == nil {
		return nil, fmt.Errorf("grupos ide/emit ausentes: %w", domain.ErrImportParse)
	}

	number := childText(ide, "nNF")
	if number == "" {
		return nil, fmt.Errorf("número da nota (nNF) ausente: %w", domain.ErrImportParse)
	}

	// dhEmi (com hora, NF-e 4.00) ou dEmi (legado, só data).
	var issue time.Time
	var err error
	if raw := childText(ide, "dhEmi"); raw != "" {
		issue, err = time.Parse(time.RFC3339, raw)
	} else if raw := childText(ide, "dEmi"); raw != "" {
		issue, err = time.Parse("2006-01-02", raw)
	} else {
		return nil, fmt.Errorf("data de emissão ausente: %w", domain.ErrImportParse)
	}
	if err != nil {
		return nil, fmt.Errorf("data de emissão: %v: %w", err, domain.ErrImportParse)
	}

	return &domnfe.Header{
		DocumentNumber: number,
		Series:         childText(ide, "serie"),
		IssueDate:      issue,
		SupplierName:   childText(emit, "xNome"),
		SupplierCNPJ:   childText(emit, "CNPJ"),
	}, nil
}

func parseItem(det *etree.Element) (*domnfe.LineItem, error) {
	prod := det.SelectElement("prod")
	if prod == nil {
		return nil, fmt.Errorf("item sem grupo prod: %w", domain.ErrImportParse)
	}
	qty, err := decimalChild(prod, "qCom")
	if err != nil {
		return nil, err
	}
	price, err := decimalChild(prod, "vUnCom")
	if err != nil {
		return nil, err
	}

	item := &domnfe.LineItem{
		Description: childText(prod, "xProd"),
		NCMCode:     childText(prod, "NCM"),
		Unit:        childText(prod, "uCom"),
		Quantity:    qty,
		UnitPrice:   price,
	}
	if item.Description == "" {
		return nil, fmt.Errorf("item sem descrição (xProd): %w", domain.ErrImportParse)
	}

	for _, rastro := range prod.FindElements("rastro") {
		lotQty, err := decimalChild(rastro, "qLote")
		if err != nil {
			return nil, err
		}
		lot := domnfe.LotBatch{
			LotID:    childText(rastro, "nLote"),
			Quantity: lotQty,
		}
		if raw := childText(rastro, "dFab"); raw != "" {
			if lot.ManufactureDate, err = time.Parse("2006-01-02", raw); err != nil {
				return nil, fmt.Errorf("dFab do lote %s: %v: %w", lot.LotID, err, domain.ErrImportParse)
			}
		}
		if raw := childText(rastro, "dVal"); raw != "" {
			if lot.ExpiryDate, err = time.Parse("2006-01-02", raw); err != nil {
				return nil, fmt.Errorf("dVal do lote %s: %v: %w", lot.LotID, err, domain.ErrImportParse)
			}
		}
		item.Lots = append(item.Lots, lot)
	}
	return item, nil
}

// canonicalDigest calcula o SHA-256 hex do XML canônico (C14N). A mesma nota
// reenviada, mesmo com diferenças de formatação, produz o mesmo digest.
func canonicalDigest(raw []byte) (string, error) {
	dec := xml.NewDecoder(bytes.NewReader(raw))
	dec.Entity = map[string]string{}
	canonical, err := c14n.Canonicalize(dec)
	if err != nil {
		return "", fmt.Errorf("canonicalizar XML: %v: %w", err, domain.ErrImportParse)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func childText(parent *etree.Element, tag string) string {
	if el := parent.SelectElement(tag); el != nil {
		return el.Text()
	}
	return ""
}

func decimalChild(parent *etree.Element, tag string) (decimal.Decimal, error) {
	raw := childText(parent, tag)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("campo %s ausente: %w", tag, domain.ErrImportParse)
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("campo %s = %q: %w", tag, raw, domain.ErrImportParse)
	}
	return v, nil
}
