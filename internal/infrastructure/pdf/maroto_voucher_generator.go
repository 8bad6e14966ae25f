// Package pdf implementa la generación del voucher de reserva en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Marca + "VOUCHER DE RESERVA" │ N° Reserva + Fecha  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PASAJERO: Nombre + Documento + contacto                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VUELO: Aerolínea | Origen → Destino | Salida | Regreso     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Pasajeros / Tarifa unitaria / TOTAL               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR de verificación + condiciones                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/turismo-market/internal/application/reservas"
	"github.com/tu-usuario/turismo-market/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 96, Blue: 100}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reservas.VoucherGenerator = (*MarotoVoucherGenerator)(nil)

// MarotoVoucherGenerator implementa reservas.VoucherGenerator usando Maroto v2.
type MarotoVoucherGenerator struct{}

// NewMarotoVoucherGenerator construye el generador.
func NewMarotoVoucherGenerator() *MarotoVoucherGenerator { return &MarotoVoucherGenerator{} }

// Generate genera el voucher y devuelve sus bytes.
func (g *MarotoVoucherGenerator) Generate(
	reserva *entity.Reserva,
	cliente *entity.Cliente,
	cupo *entity.CupoAereo,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Voucher de Reserva", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(reserva))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(pasajeroRow(cliente))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(vueloRows(cupo)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalesRow(reserva, cupo))
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(reserva)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar voucher: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: marca (izq) y N° de reserva + fecha + estado (der).
func headerRow(reserva *entity.Reserva) core.Row {
	fecha := reserva.CreatedAt.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("Turismo Market", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Mercado mayorista de cupos aéreos", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("VOUCHER DE RESERVA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(reserva.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New(fmt.Sprintf("Fecha: %s   |   Estado: %s", fecha, strings.ToUpper(reserva.Estado)), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// pasajeroRow: datos del cliente titular de la reserva.
func pasajeroRow(cliente *entity.Cliente) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PASAJERO TITULAR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(cliente.Apellido+", "+cliente.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Documento: %s   |   Email: %s   |   Tel: %s",
				cliente.Documento,
				nonEmpty(cliente.Email, "—"),
				nonEmpty(cliente.Telefono, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// vueloRows: detalle del cupo aéreo reservado.
func vueloRows(cupo *entity.CupoAereo) []core.Row {
	return []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("DETALLE DEL VUELO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
		row.New(10).Add(
			col.New(4).Add(
				text.New("Aerolínea", props.Text{Size: 7, Color: colorGray, Top: 1}),
				text.New(cupo.Aerolinea, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
			),
			col.New(8).Add(
				text.New("Ruta", props.Text{Size: 7, Color: colorGray, Top: 1}),
				text.New(cupo.Origen+"  ✈  "+cupo.Destino, props.Text{Style: fontstyle.Bold, Size: 10, Top: 5}),
			),
		),
		row.New(10).Add(
			col.New(6).Add(
				text.New("Salida", props.Text{Size: 7, Color: colorGray, Top: 1}),
				text.New(cupo.FechaSalida.Format("02/01/2006"), props.Text{Size: 10, Top: 5}),
			),
			col.New(6).Add(
				text.New("Regreso", props.Text{Size: 7, Color: colorGray, Top: 1}),
				text.New(cupo.FechaRegreso.Format("02/01/2006"), props.Text{Size: 10, Top: 5}),
			),
		),
	}
}

// totalesRow: bloque de totales alineado a la derecha.
func totalesRow(reserva *entity.Reserva, cupo *entity.CupoAereo) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(26).Add(
		col.New(3),
		col.New(4).Add(
			label("Pasajeros:"),
			label("Tarifa por pasajero:"),
			grandLabel("TOTAL:"),
		),
		col.New(4).Add(
			value(fmt.Sprintf("%d", reserva.Pasajeros)),
			value(cupo.Moneda+" "+formatMoney(cupo.Tarifa.StringFixed(0))),
			grandValue(reserva.Moneda+" "+formatMoney(reserva.Total.StringFixed(0))),
		),
		col.New(1),
	)
}

// footerRows: QR de verificación + condiciones.
func footerRows(reserva *entity.Reserva) []core.Row {
	return []core.Row{
		row.New(40).Add(
			col.New(4).Add(code.NewQr("reserva:"+reserva.ID, props.Rect{
				Percent: 95,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Presentá este voucher al momento del\ncheck-in junto con el documento del pasajero.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
				text.New("COMPROBANTE DE RESERVA\nDE PLAZAS AÉREAS", props.Text{
					Style: fontstyle.Bold, Size: 10, Top: 18,
					Left: 3, Color: colorPrimary,
				}),
			),
		),
		row.New(8).Add(col.New(12).Add(
			text.New(
				"Las plazas quedan sujetas a las condiciones de la aerolínea y del operador emisor. "+
					"La cancelación repone las plazas al cupo según la política vigente al momento de la reserva.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// shortID devuelve el primer bloque del uuid, en mayúsculas, como número
// corto de reserva legible.
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return strings.ToUpper(id[:i])
	}
	return strings.ToUpper(id)
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000", "1000000" → "1.000.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
