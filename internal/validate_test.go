package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func patinadorValido() Patinador {
	return Patinador{
		NumberID:     1,
		FirstName:    "Ana",
		FirstSurname: "Diaz",
		BirthDate:    "01/01/2000",
		Branch:       "Femenino",
		Estado:       EstadoNuevo,
	}
}

func TestValidarPatinador_Completo(t *testing.T) {
	p := patinadorValido()
	assert.NoError(t, validate.Struct(&p))
}

func TestValidarPatinador_EstadoOpcional(t *testing.T) {
	p := patinadorValido()
	p.Estado = ""
	assert.NoError(t, validate.Struct(&p))
}

func TestValidarPatinador_Errores(t *testing.T) {
	casos := []struct {
		nombre  string
		mutar   func(*Patinador)
		mensaje string
	}{
		{"sin number_ID", func(p *Patinador) { p.NumberID = 0 }, "number_ID"},
		{"sin first_name", func(p *Patinador) { p.FirstName = "" }, "first_name"},
		{"sin first_surname", func(p *Patinador) { p.FirstSurname = "" }, "first_surname"},
		{"fecha con guiones", func(p *Patinador) { p.BirthDate = "01-01-2000" }, "formato de fecha"},
		{"fecha incompleta", func(p *Patinador) { p.BirthDate = "1/1/00" }, "formato de fecha"},
		{"branch desconocida", func(p *Patinador) { p.Branch = "Mixto" }, "branch"},
		{"estado desconocido", func(p *Patinador) { p.Estado = "Retirado" }, "estado"},
	}
	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			p := patinadorValido()
			tc.mutar(&p)
			err := validate.Struct(&p)
			require.Error(t, err)
			assert.Contains(t, mensajeValidacion(err), tc.mensaje)
		})
	}
}

func TestFechaRe(t *testing.T) {
	validas := []string{"01/01/2000", "31/12/1999", "07/06/2024"}
	for _, v := range validas {
		assert.True(t, fechaRe.MatchString(v), v)
	}
	invalidas := []string{"", "2000/01/01", "1/1/2000", "01-01-2000", "01/01/20", "aa/bb/cccc"}
	for _, v := range invalidas {
		assert.False(t, fechaRe.MatchString(v), v)
	}
}

func TestValidarResolucion(t *testing.T) {
	r := Resolucion{
		NameEvent:         "Copa Santander",
		DateStart:         "10/03/2024",
		DateEnd:           "12/03/2024",
		PlaceEvent:        "Bucaramanga",
		ValueNewPatinador: 50000,
		ValuePatinador:    30000,
		CategoriesDate:    "01/01/2024",
	}
	assert.NoError(t, validate.Struct(&r))

	r.DateEnd = "12-03-2024"
	err := validate.Struct(&r)
	require.Error(t, err)
	assert.Contains(t, mensajeValidacion(err), "formato de fecha")

	r.DateEnd = "12/03/2024"
	r.NameEvent = ""
	err = validate.Struct(&r)
	require.Error(t, err)
	assert.Contains(t, mensajeValidacion(err), "name_event")
}
