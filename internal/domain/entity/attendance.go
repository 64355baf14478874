package entity

// Estados válidos para AttendanceRecord.
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
	AttendanceLate    = "Late"
)

// AttendanceRecord registro de asistencia de un empleado.
//
// El tipo forma parte del contrato de datos pero ninguna operación alcanzable lo
// crea ni lo muta todavía; es un punto de extensión.
type AttendanceRecord struct {
	ID         string
	EmployeeID string
	Date       string // fecha calendario YYYY-MM-DD
	CheckIn    string // hora HH:MM
	CheckOut   string // hora HH:MM
	Status     string // Present, Absent, Late
}
