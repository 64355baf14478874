package memory_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assosa-edu/hrms-api/internal/domain/entity"
	"github.com/assosa-edu/hrms-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func nuevoEmpleado(deptID string) entity.Employee {
	return entity.Employee{
		FirstName:    "Test",
		LastName:     "Empleado",
		Email:        "test@assosa.edu.et",
		Phone:        "0900000000",
		DepartmentID: deptID,
		Position:     "Lecturer",
		Salary:       decimal.NewFromInt(10000),
		HireDate:     "2024-01-15",
		Gender:       entity.GenderMale,
		Status:       entity.StatusActive,
	}
}

// storeSembrado devuelve un Store con el dataset mock cargado.
func storeSembrado(t *testing.T) *memory.Store {
	t.Helper()
	s := memory.NewStore()
	s.Seed()
	return s
}

// verificarConteoExacto comprueba que cada contador de departamento iguala al
// número de empleados que lo referencian. Solo aplica a stores construidos sin
// semilla (la semilla trae contadores deliberadamente mayores que la lista).
func verificarConteoExacto(t *testing.T, s *memory.Store) {
	t.Helper()
	ctx := context.Background()

	emps, err := s.ListEmployees(ctx)
	require.NoError(t, err)
	depts, err := s.ListDepartments(ctx)
	require.NoError(t, err)

	for _, d := range depts {
		n := 0
		for _, e := range emps {
			if e.DepartmentID == d.ID {
				n++
			}
		}
		assert.Equal(t, n, d.EmployeeCount,
			"el contador del departamento %q debe igualar a sus empleados", d.Name)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedad 1: tras cada mutación, contador == |empleados del departamento|
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_ConteoConsistenteTrasSecuenciaDeMutaciones(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore() // sin semilla: los contadores parten de 0

	d1, err := s.CreateDepartment(ctx, entity.Department{Name: "Física"})
	require.NoError(t, err)
	d2, err := s.CreateDepartment(ctx, entity.Department{Name: "Química"})
	require.NoError(t, err)

	// Secuencia mixta de altas y bajas, verificando el invariante tras cada una.
	var ids []string
	for i := 0; i < 5; i++ {
		dept := d1.ID
		if i%2 == 1 {
			dept = d2.ID
		}
		emp, err := s.CreateEmployee(ctx, nuevoEmpleado(dept))
		require.NoError(t, err)
		ids = append(ids, emp.ID)
		verificarConteoExacto(t, s)
	}
	for _, id := range ids[:3] {
		require.NoError(t, s.DeleteEmployee(ctx, id))
		verificarConteoExacto(t, s)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedad 2: delete de id inexistente es un no-op verificable
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_DeleteIdInexistente_NoOp(t *testing.T) {
	ctx := context.Background()
	s := storeSembrado(t)

	antesEmps, err := s.ListEmployees(ctx)
	require.NoError(t, err)
	antesDepts, err := s.ListDepartments(ctx)
	require.NoError(t, err)

	require.NoError(t, s.DeleteEmployee(ctx, "no-existe"))

	despuesEmps, err := s.ListEmployees(ctx)
	require.NoError(t, err)
	despuesDepts, err := s.ListDepartments(ctx)
	require.NoError(t, err)

	assert.Equal(t, antesEmps, despuesEmps, "la colección de empleados no debe cambiar")
	assert.Equal(t, antesDepts, despuesDepts, "ningún contador debe cambiar")
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedad 3: alta seguida de baja restaura el estado previo (round-trip)
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_AltaYBajaInmediata_RestauraEstado(t *testing.T) {
	ctx := context.Background()
	s := storeSembrado(t)

	antesEmps, err := s.ListEmployees(ctx)
	require.NoError(t, err)
	antesDepts, err := s.ListDepartments(ctx)
	require.NoError(t, err)

	emp, err := s.CreateEmployee(ctx, nuevoEmpleado("2"))
	require.NoError(t, err)
	require.NoError(t, s.DeleteEmployee(ctx, emp.ID))

	despuesEmps, err := s.ListEmployees(ctx)
	require.NoError(t, err)
	despuesDepts, err := s.ListDepartments(ctx)
	require.NoError(t, err)

	assert.Equal(t, antesEmps, despuesEmps)
	assert.Equal(t, antesDepts, despuesDepts)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedad 4: departamento nuevo nace con contador 0 e id distinto
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_CreateDepartment_ContadorCeroIdNuevo(t *testing.T) {
	ctx := context.Background()
	s := storeSembrado(t)

	previos, err := s.ListDepartments(ctx)
	require.NoError(t, err)

	// El caller intenta forzar un contador; el store lo ignora.
	dept, err := s.CreateDepartment(ctx, entity.Department{Name: "Law", EmployeeCount: 99})
	require.NoError(t, err)

	assert.Equal(t, 0, dept.EmployeeCount, "el contador derivado nace en 0 siempre")
	assert.NotEmpty(t, dept.ID)
	for _, p := range previos {
		assert.NotEqual(t, p.ID, dept.ID, "el id nuevo debe ser distinto de todos los previos")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedad 5: el decremento nunca baja de 0 (piso defensivo)
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_DecrementoConPisoEnCero(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	dept, err := s.CreateDepartment(ctx, entity.Department{Name: "Medicine"})
	require.NoError(t, err)

	// Dos empleados del mismo departamento; el contador queda en 2.
	e1, err := s.CreateEmployee(ctx, nuevoEmpleado(dept.ID))
	require.NoError(t, err)
	e2, err := s.CreateEmployee(ctx, nuevoEmpleado(dept.ID))
	require.NoError(t, err)

	// Mover e2 fuera del departamento vía update deja el contador en 1; borrar
	// ambos después solo puede restarlo una vez — jamás por debajo de 0.
	otro := ""
	_, err = s.UpdateEmployee(ctx, e2.ID, entity.EmployeePatch{DepartmentID: &otro})
	require.NoError(t, err)
	require.NoError(t, s.DeleteEmployee(ctx, e1.ID))
	require.NoError(t, s.DeleteEmployee(ctx, e2.ID))

	d, err := s.GetDepartment(ctx, dept.ID)
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.GreaterOrEqual(t, d.EmployeeCount, 0, "el contador nunca puede ser negativo")
	assert.Equal(t, 0, d.EmployeeCount)
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedad 6: escenario concreto 12 → 13 → 12 sobre el departamento "1"
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_EscenarioConcreto_DepartamentoUno(t *testing.T) {
	ctx := context.Background()
	s := storeSembrado(t)

	d, err := s.GetDepartment(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, d)
	require.Equal(t, 12, d.EmployeeCount, "la semilla deja el departamento 1 en 12")

	emp, err := s.CreateEmployee(ctx, nuevoEmpleado("1"))
	require.NoError(t, err)

	d, err = s.GetDepartment(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 13, d.EmployeeCount, "el alta incrementa a 13")

	require.NoError(t, s.DeleteEmployee(ctx, emp.ID))

	d, err = s.GetDepartment(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 12, d.EmployeeCount, "la baja devuelve el contador a 12")
}

// ──────────────────────────────────────────────────────────────────────────────
// Propiedad 7: referencia a departamento inexistente no toca ningún contador
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_AltaConDepartamentoInexistente_NoTocaContadores(t *testing.T) {
	ctx := context.Background()
	s := storeSembrado(t)

	antesEmps, err := s.ListEmployees(ctx)
	require.NoError(t, err)
	antesDepts, err := s.ListDepartments(ctx)
	require.NoError(t, err)

	emp, err := s.CreateEmployee(ctx, nuevoEmpleado("nonexistent"))
	require.NoError(t, err)
	assert.NotEmpty(t, emp.ID)

	despuesEmps, err := s.ListEmployees(ctx)
	require.NoError(t, err)
	despuesDepts, err := s.ListDepartments(ctx)
	require.NoError(t, err)

	assert.Len(t, despuesEmps, len(antesEmps)+1, "la colección crece en 1")
	assert.Equal(t, antesDepts, despuesDepts, "ningún contador cambia")

	// Borrarlo tampoco debe corromper contadores ajenos.
	require.NoError(t, s.DeleteEmployee(ctx, emp.ID))
	finalesDepts, err := s.ListDepartments(ctx)
	require.NoError(t, err)
	assert.Equal(t, antesDepts, finalesDepts)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update: cambio de departamento mueve el contador de uno a otro
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_Update_CambioDeDepartamentoMueveContadores(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	d1, err := s.CreateDepartment(ctx, entity.Department{Name: "Origen"})
	require.NoError(t, err)
	d2, err := s.CreateDepartment(ctx, entity.Department{Name: "Destino"})
	require.NoError(t, err)

	emp, err := s.CreateEmployee(ctx, nuevoEmpleado(d1.ID))
	require.NoError(t, err)

	actualizado, err := s.UpdateEmployee(ctx, emp.ID, entity.EmployeePatch{DepartmentID: &d2.ID})
	require.NoError(t, err)
	require.NotNil(t, actualizado)
	assert.Equal(t, d2.ID, actualizado.DepartmentID)

	origen, err := s.GetDepartment(ctx, d1.ID)
	require.NoError(t, err)
	destino, err := s.GetDepartment(ctx, d2.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, origen.EmployeeCount)
	assert.Equal(t, 1, destino.EmployeeCount)
	verificarConteoExacto(t, s)
}

func TestStore_Update_IdInexistente_NoOp(t *testing.T) {
	ctx := context.Background()
	s := storeSembrado(t)

	nombre := "Nuevo"
	emp, err := s.UpdateEmployee(ctx, "no-existe", entity.EmployeePatch{FirstName: &nombre})
	require.NoError(t, err)
	assert.Nil(t, emp, "update de id inexistente devuelve nil sin error")
}

// ──────────────────────────────────────────────────────────────────────────────
// Lecturas por copia: mutar lo devuelto no afecta el estado interno
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_LecturasDevuelvenCopias(t *testing.T) {
	ctx := context.Background()
	s := storeSembrado(t)

	depts, err := s.ListDepartments(ctx)
	require.NoError(t, err)
	depts[0].EmployeeCount = 999
	depts[0].Name = "Hackeado"

	otraVez, err := s.ListDepartments(ctx)
	require.NoError(t, err)
	assert.Equal(t, 12, otraVez[0].EmployeeCount, "mutar el slice devuelto no toca el estado")
	assert.Equal(t, "Computer Science", otraVez[0].Name)

	emp, err := s.GetEmployee(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, emp)
	emp.FirstName = "Otro"

	relectura, err := s.GetEmployee(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Alemu", relectura.FirstName)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ids únicos en altas consecutivas
// ──────────────────────────────────────────────────────────────────────────────

func TestStore_IdsUnicosEnAltasConsecutivas(t *testing.T) {
	ctx := context.Background()
	s := memory.NewStore()

	vistos := make(map[string]bool)
	for i := 0; i < 50; i++ {
		emp, err := s.CreateEmployee(ctx, nuevoEmpleado(""))
		require.NoError(t, err)
		require.False(t, vistos[emp.ID], fmt.Sprintf("id repetido en la iteración %d", i))
		vistos[emp.ID] = true
	}
}

// La vista de asistencia existe pero nada la puebla: siempre vacía.
func TestStore_AsistenciaSiempreVacia(t *testing.T) {
	s := storeSembrado(t)
	regs, err := s.ListAttendance(context.Background())
	require.NoError(t, err)
	assert.Empty(t, regs)
}
