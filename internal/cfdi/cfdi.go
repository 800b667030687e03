// Package cfdi builds the unsigned CFDI 4.0 payload handed to the signing provider.
package cfdi

import (
	"encoding/xml"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/l10n_addons/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	Namespace      = "http://www.sat.gob.mx/cfd/4"
	SchemaLocation = "http://www.sat.gob.mx/cfd/4 http://www.sat.gob.mx/sitio_internet/cfd/4/cfdv40.xsd"
	Version        = "4.0"

	// Receiver data used when the customer is unknown.
	PublicRFC    = "XAXX010101000"
	PublicName   = "PUBLICO EN GENERAL"
	PublicRegime = "616"

	TypeIncome = "I"
	TypeEgress = "E"

	dateLayout = "2006-01-02T15:04:05"
)

// ErrNothingToInvoice is returned when no concept has a positive amount.
var ErrNothingToInvoice = errors.New("no amount left to invoice")

// Comprobante is the root element of a CFDI.
type Comprobante struct {
	XMLName           xml.Name           `xml:"cfdi:Comprobante"`
	XMLNS             string             `xml:"xmlns:cfdi,attr"`
	XMLNSXsi          string             `xml:"xmlns:xsi,attr"`
	SchemaLocation    string             `xml:"xsi:schemaLocation,attr"`
	Version           string             `xml:"Version,attr"`
	Folio             string             `xml:"Folio,attr,omitempty"`
	Fecha             string             `xml:"Fecha,attr"`
	SubTotal          string             `xml:"SubTotal,attr"`
	Moneda            string             `xml:"Moneda,attr"`
	Total             string             `xml:"Total,attr"`
	TipoDeComprobante string             `xml:"TipoDeComprobante,attr"`
	Exportacion       string             `xml:"Exportacion,attr"`
	LugarExpedicion   string             `xml:"LugarExpedicion,attr"`
	InformacionGlobal *InformacionGlobal `xml:"cfdi:InformacionGlobal,omitempty"`
	CfdiRelacionados  *CfdiRelacionados  `xml:"cfdi:CfdiRelacionados,omitempty"`
	Emisor            Emisor             `xml:"cfdi:Emisor"`
	Receptor          Receptor           `xml:"cfdi:Receptor"`
	Conceptos         Conceptos          `xml:"cfdi:Conceptos"`
	Impuestos         *ImpuestosResumen  `xml:"cfdi:Impuestos,omitempty"`
}

type InformacionGlobal struct {
	Periodicidad string `xml:"Periodicidad,attr"`
	Meses        string `xml:"Meses,attr"`
	Anio         string `xml:"Año,attr"`
}

type CfdiRelacionados struct {
	TipoRelacion string         `xml:"TipoRelacion,attr"`
	Relacionados []CfdiRelacion `xml:"cfdi:CfdiRelacionado"`
}

type CfdiRelacion struct {
	UUID string `xml:"UUID,attr"`
}

type Emisor struct {
	Rfc           string `xml:"Rfc,attr"`
	Nombre        string `xml:"Nombre,attr"`
	RegimenFiscal string `xml:"RegimenFiscal,attr"`
}

type Receptor struct {
	Rfc                     string `xml:"Rfc,attr"`
	Nombre                  string `xml:"Nombre,attr"`
	DomicilioFiscalReceptor string `xml:"DomicilioFiscalReceptor,attr"`
	RegimenFiscalReceptor   string `xml:"RegimenFiscalReceptor,attr"`
	UsoCFDI                 string `xml:"UsoCFDI,attr"`
}

type Conceptos struct {
	Concepto []Concepto `xml:"cfdi:Concepto"`
}

type Concepto struct {
	ClaveProdServ    string     `xml:"ClaveProdServ,attr"`
	NoIdentificacion string     `xml:"NoIdentificacion,attr,omitempty"`
	Cantidad         string     `xml:"Cantidad,attr"`
	ClaveUnidad      string     `xml:"ClaveUnidad,attr"`
	Descripcion      string     `xml:"Descripcion,attr"`
	ValorUnitario    string     `xml:"ValorUnitario,attr"`
	Importe          string     `xml:"Importe,attr"`
	ObjetoImp        string     `xml:"ObjetoImp,attr"`
	Impuestos        *Impuestos `xml:"cfdi:Impuestos,omitempty"`
}

type Impuestos struct {
	Traslados Traslados `xml:"cfdi:Traslados"`
}

type Traslados struct {
	Traslado []Traslado `xml:"cfdi:Traslado"`
}

type Traslado struct {
	Base       string `xml:"Base,attr"`
	Impuesto   string `xml:"Impuesto,attr"`
	TipoFactor string `xml:"TipoFactor,attr"`
	TasaOCuota string `xml:"TasaOCuota,attr"`
	Importe    string `xml:"Importe,attr"`
}

type ImpuestosResumen struct {
	TotalImpuestosTrasladados string    `xml:"TotalImpuestosTrasladados,attr"`
	Traslados                 Traslados `xml:"cfdi:Traslados"`
}

// Input is what a CFDI is built from.
type Input struct {
	Company     domain.Company
	Orders      []domain.Order
	Lane        domain.Lane
	Origin      string // "<relation code>|<uuid>", empty when unrelated
	Periodicity string // Global lane only
	Folio       string
	Date        time.Time
}

// concept is an amount line before formatting.
type concept struct {
	ref         string
	description string
	quantity    decimal.Decimal
	base        decimal.Decimal
	tax         decimal.Decimal
}

// Build renders the CFDI for in.
func Build(in Input) ([]byte, error) {
	if len(in.Orders) == 0 {
		return nil, ErrNothingToInvoice
	}

	var concepts []concept
	kind := TypeIncome
	if in.Lane == domain.LaneGlobalInvoice {
		concepts = globalConcepts(in.Orders)
	} else {
		concepts = invoiceConcepts(in.Orders)
		if in.Orders[0].IsRefund() {
			kind = TypeEgress
		}
	}
	if len(concepts) == 0 {
		return nil, ErrNothingToInvoice
	}

	currency := in.Company.CurrencyCode
	if currency == "" {
		currency = "MXN"
	}
	doc := Comprobante{
		XMLNS:             Namespace,
		XMLNSXsi:          "http://www.w3.org/2001/XMLSchema-instance",
		SchemaLocation:    SchemaLocation,
		Version:           Version,
		Folio:             in.Folio,
		Fecha:             in.Date.Format(dateLayout),
		Moneda:            currency,
		TipoDeComprobante: kind,
		Exportacion:       "01",
		LugarExpedicion:   in.Company.ZIP,
		Emisor: Emisor{
			Rfc:           in.Company.VAT,
			Nombre:        in.Company.Name,
			RegimenFiscal: in.Company.FiscalRegime,
		},
		Receptor: receiver(in),
	}

	if in.Lane == domain.LaneGlobalInvoice {
		doc.InformacionGlobal = &InformacionGlobal{
			Periodicidad: in.Periodicity,
			Meses:        fmt.Sprintf("%02d", int(in.Date.Month())),
			Anio:         fmt.Sprintf("%d", in.Date.Year()),
		}
	}
	if code, uuid, ok := domain.ParseOrigin(in.Origin); ok {
		doc.CfdiRelacionados = &CfdiRelacionados{
			TipoRelacion: code,
			Relacionados: []CfdiRelacion{{UUID: uuid}},
		}
	}

	subtotal, taxTotal := decimal.Zero, decimal.Zero
	var summary []Traslado
	for _, c := range concepts {
		subtotal = subtotal.Add(c.base)
		taxTotal = taxTotal.Add(c.tax)
		x := Concepto{
			ClaveProdServ:    "01010101",
			NoIdentificacion: c.ref,
			Cantidad:         c.quantity.StringFixed(6),
			ClaveUnidad:      "ACT",
			Descripcion:      c.description,
			ValorUnitario:    c.base.Div(c.quantity).StringFixed(2),
			Importe:          money(c.base),
			ObjetoImp:        "01",
		}
		if c.tax.IsPositive() {
			t := Traslado{
				Base:       money(c.base),
				Impuesto:   "002",
				TipoFactor: "Tasa",
				TasaOCuota: rate(c.base, c.tax),
				Importe:    money(c.tax),
			}
			x.ObjetoImp = "02"
			x.Impuestos = &Impuestos{Traslados: Traslados{Traslado: []Traslado{t}}}
			summary = mergeTraslado(summary, t)
		}
		doc.Conceptos.Concepto = append(doc.Conceptos.Concepto, x)
	}
	doc.SubTotal = money(subtotal)
	doc.Total = money(subtotal.Add(taxTotal))
	if len(summary) > 0 {
		doc.Impuestos = &ImpuestosResumen{
			TotalImpuestosTrasladados: money(taxTotal),
			Traslados:                 Traslados{Traslado: summary},
		}
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cfdi: %w", err)
	}
	return append([]byte(xml.Header), out...), nil
}

func receiver(in Input) Receptor {
	r := Receptor{
		Rfc:                     PublicRFC,
		Nombre:                  PublicName,
		DomicilioFiscalReceptor: in.Company.ZIP,
		RegimenFiscalReceptor:   PublicRegime,
		UsoCFDI:                 "S01",
	}
	if in.Lane == domain.LaneGlobalInvoice || in.Orders[0].PartnerVAT == "" {
		return r
	}
	r.Rfc = in.Orders[0].PartnerVAT
	r.Nombre = in.Orders[0].PartnerID
	r.RegimenFiscalReceptor = in.Company.FiscalRegime
	r.UsoCFDI = "G03"
	if in.Orders[0].IsRefund() {
		r.UsoCFDI = "G02"
	}
	return r
}

// globalConcepts emits one concept per ticket. Refund lines included in the set are netted
// against the ticket they refund; tickets refunded in full are left out.
func globalConcepts(orders []domain.Order) []concept {
	byOrder := make(map[string]*concept)
	var ordered []string
	for _, o := range orders {
		if o.IsRefund() {
			continue
		}
		c := &concept{ref: o.Name, description: "Venta", quantity: decimal.NewFromInt(1)}
		for _, l := range o.Lines {
			c.base = c.base.Add(l.PriceSubtotal)
			c.tax = c.tax.Add(l.TaxAmount())
		}
		byOrder[o.OrderID] = c
		ordered = append(ordered, o.OrderID)
	}
	for _, o := range orders {
		for _, l := range o.Lines {
			parent, ok := byOrder[l.RefundedOrderID]
			if l.RefundedOrderID == "" || !ok {
				continue
			}
			parent.base = parent.base.Add(l.PriceSubtotal)
			parent.tax = parent.tax.Add(l.TaxAmount())
		}
	}

	var out []concept
	for _, id := range ordered {
		if c := byOrder[id]; c.base.IsPositive() {
			out = append(out, *c)
		}
	}
	return out
}

// invoiceConcepts emits one concept per line. Refund lines are emitted with positive amounts,
// the egress type carries the sign.
func invoiceConcepts(orders []domain.Order) []concept {
	var out []concept
	for _, o := range orders {
		for _, l := range o.Lines {
			if l.Quantity.IsZero() {
				continue
			}
			desc := l.Description
			if desc == "" {
				desc = l.ProductRef
			}
			out = append(out, concept{
				ref:         l.ProductRef,
				description: desc,
				quantity:    l.Quantity.Abs(),
				base:        l.PriceSubtotal.Abs(),
				tax:         l.TaxAmount().Abs(),
			})
		}
	}
	return out
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func rate(base, tax decimal.Decimal) string {
	if base.IsZero() {
		return decimal.Zero.StringFixed(6)
	}
	return tax.Div(base).Round(2).StringFixed(6)
}

func mergeTraslado(summary []Traslado, t Traslado) []Traslado {
	for i := range summary {
		if summary[i].TasaOCuota == t.TasaOCuota {
			base, _ := decimal.NewFromString(summary[i].Base)
			imp, _ := decimal.NewFromString(summary[i].Importe)
			tb, _ := decimal.NewFromString(t.Base)
			ti, _ := decimal.NewFromString(t.Importe)
			summary[i].Base = money(base.Add(tb))
			summary[i].Importe = money(imp.Add(ti))
			return summary
		}
	}
	return append(summary, t)
}
