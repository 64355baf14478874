package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assosa-edu/hrms-api/internal/application/dto"
	"github.com/assosa-edu/hrms-api/internal/application/usecase"
	"github.com/assosa-edu/hrms-api/internal/domain"
	"github.com/assosa-edu/hrms-api/internal/domain/entity"
	"github.com/assosa-edu/hrms-api/internal/infrastructure/memory"
)

// pdfFalso generador de PDF trivial para los tests del caso de uso.
type pdfFalso struct{ llamado bool }

func (f *pdfFalso) GenerateRosterPDF(_ context.Context, _ []entity.Employee, _ []entity.Department) ([]byte, error) {
	f.llamado = true
	return []byte("%PDF-fake"), nil
}

func casoDeUsoEmpleados(t *testing.T) (*usecase.EmployeeUseCase, *memory.Store, *pdfFalso) {
	t.Helper()
	store := memory.NewStore()
	store.Seed()
	pdf := &pdfFalso{}
	uc := usecase.NewEmployeeUseCase(
		memory.NewEmployeeRepository(store),
		memory.NewDepartmentRepository(store),
		pdf,
	)
	return uc, store, pdf
}

func TestEmployeeUseCase_Create_ValidaPresencia(t *testing.T) {
	uc, store, _ := casoDeUsoEmpleados(t)
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateEmployeeRequest{LastName: "SinNombre", Email: "x@y.z"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "first_name es obligatorio")

	_, err = uc.Create(ctx, dto.CreateEmployeeRequest{FirstName: "SinEmail"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "email es obligatorio")

	out, err := uc.Create(ctx, dto.CreateEmployeeRequest{
		FirstName:    "Meron",
		Email:        "meron@assosa.edu.et",
		DepartmentID: "4",
		Salary:       decimal.NewFromInt(9000),
		Gender:       entity.GenderFemale,
		Status:       entity.StatusActive,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)

	// El alta incrementó el contador derivado del departamento 4 (5 → 6).
	d, err := store.GetDepartment(ctx, "4")
	require.NoError(t, err)
	assert.Equal(t, 6, d.EmployeeCount)
}

func TestEmployeeUseCase_List_FiltraPorNombreYCargo(t *testing.T) {
	uc, _, _ := casoDeUsoEmpleados(t)
	ctx := context.Background()

	// Insensible a mayúsculas sobre first_name
	out, err := uc.List(ctx, "alemu", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Alemu", out.Items[0].FirstName)

	// Sobre el cargo
	out, err = uc.List(ctx, "LECTURER", dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Senior Lecturer", out.Items[0].Position)

	// Sin query devuelve todo
	out, err = uc.List(ctx, "", dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, out.Items, 4)
	assert.Equal(t, 4, out.Page.Total)
}

func TestEmployeeUseCase_List_Paginacion(t *testing.T) {
	uc, _, _ := casoDeUsoEmpleados(t)
	ctx := context.Background()

	out, err := uc.List(ctx, "", dto.PageRequest{Limit: 2, Offset: 0})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 4, out.Page.Total)

	out, err = uc.List(ctx, "", dto.PageRequest{Limit: 2, Offset: 3})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)

	// Offset fuera de rango: página vacía, nunca panic.
	out, err = uc.List(ctx, "", dto.PageRequest{Limit: 2, Offset: 99})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
}

func TestEmployeeUseCase_Update_IdInexistente_NotFound(t *testing.T) {
	uc, _, _ := casoDeUsoEmpleados(t)

	nombre := "Nadie"
	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateEmployeeRequest{FirstName: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmployeeUseCase_Delete_Idempotente(t *testing.T) {
	uc, _, _ := casoDeUsoEmpleados(t)
	ctx := context.Background()

	require.NoError(t, uc.Delete(ctx, "1"))
	require.NoError(t, uc.Delete(ctx, "1"), "segundo delete del mismo id es un no-op sin error")
}

func TestEmployeeUseCase_ExportRoster(t *testing.T) {
	uc, _, pdf := casoDeUsoEmpleados(t)

	out, err := uc.ExportRoster(context.Background())
	require.NoError(t, err)
	assert.True(t, pdf.llamado)
	assert.NotEmpty(t, out)
}
