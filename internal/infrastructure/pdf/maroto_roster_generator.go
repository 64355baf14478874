// Package pdf implementa la generación del reporte PDF de la plantilla de
// empleados (la acción "Export" del listado).
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Assosa University — Employee Roster │ Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Empleado | Departamento | Cargo | Estado | Salario   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: empleados listados / nómina mensual                │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
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
	"github.com/shopspring/decimal"

	"github.com/assosa-edu/hrms-api/internal/application/ports"
	"github.com/assosa-edu/hrms-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que el generador implementa el puerto.
var _ ports.RosterPDFGenerator = (*MarotoRosterGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 58, Blue: 138} // azul institucional
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoRosterGenerator implementa ports.RosterPDFGenerator usando Maroto v2.
type MarotoRosterGenerator struct{}

// NewMarotoRosterGenerator construye el generador.
func NewMarotoRosterGenerator() *MarotoRosterGenerator { return &MarotoRosterGenerator{} }

// GenerateRosterPDF genera el PDF del roster y devuelve sus bytes.
func (g *MarotoRosterGenerator) GenerateRosterPDF(
	_ context.Context,
	employees []entity.Employee,
	departments []entity.Department,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Employee Roster", true).
		WithAuthor("Assosa University", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	// Tabla de empleados
	deptNames := departmentNameIndex(departments)
	m.AddRows(tableHeaderRow())
	for _, emp := range employees {
		m.AddRows(employeeRow(emp, deptNames))
	}

	// Totales
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(employees))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// departmentNameIndex id → nombre; los ids sin coincidencia se muestran como
// "Unknown", igual que en el listado.
func departmentNameIndex(departments []entity.Department) map[string]string {
	idx := make(map[string]string, len(departments))
	for _, d := range departments {
		idx[d.ID] = d.Name
	}
	return idx
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título del reporte (izq) y fecha de generación (der).
func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006")

	return row.New(16).Add(
		col.New(8).Add(
			text.New("Assosa University", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Employee Roster", props.Text{
				Size: 10, Top: 8, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generated: "+fecha, props.Text{
				Size: 9, Top: 4, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow cabecera de la tabla del roster.
func tableHeaderRow() core.Row {
	estilo := props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1}
	return row.New(8).Add(
		col.New(3).Add(text.New("Employee", estilo)),
		col.New(3).Add(text.New("Department", estilo)),
		col.New(2).Add(text.New("Position", estilo)),
		col.New(2).Add(text.New("Status", estilo)),
		col.New(2).Add(text.New("Salary", props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1, Align: align.Right,
		})),
	)
}

// employeeRow una fila de la tabla por empleado.
func employeeRow(emp entity.Employee, deptNames map[string]string) core.Row {
	deptName, ok := deptNames[emp.DepartmentID]
	if !ok {
		deptName = "Unknown"
	}

	celda := props.Text{Size: 8, Top: 1}
	return row.New(6).Add(
		col.New(3).Add(text.New(emp.FullName(), celda)),
		col.New(3).Add(text.New(deptName, celda)),
		col.New(2).Add(text.New(emp.Position, celda)),
		col.New(2).Add(text.New(emp.Status, celda)),
		col.New(2).Add(text.New("$"+emp.Salary.StringFixed(2), props.Text{
			Size: 8, Top: 1, Align: align.Right,
		})),
	)
}

// totalsRow total de empleados listados y nómina mensual agregada.
func totalsRow(employees []entity.Employee) core.Row {
	payroll := decimal.Zero
	for _, e := range employees {
		payroll = payroll.Add(e.Salary)
	}

	return row.New(10).Add(
		col.New(8).Add(
			text.New(fmt.Sprintf("Employees listed: %d", len(employees)), props.Text{
				Size: 9, Top: 2, Style: fontstyle.Bold,
			}),
		),
		col.New(4).Add(
			text.New("Monthly payroll: $"+payroll.StringFixed(2), props.Text{
				Size: 9, Top: 2, Style: fontstyle.Bold, Align: align.Right, Color: colorPrimary,
			}),
		),
	)
}
