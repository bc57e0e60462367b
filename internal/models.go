package internal

const (
	EstadoNuevo    = "Nuevo"
	EstadoAfiliado = "Afiliado"

	RolSecretario = "secretario"
	RolEntrenador = "entrenador"
)

type Patinador struct {
	ID                int     `json:"id"`
	NumeroCompetencia *int    `json:"numero_competencia,omitempty"`
	NumberID          int     `json:"number_ID" validate:"required"`
	FirstName         string  `json:"first_name" validate:"required"`
	SecondName        *string `json:"second_name,omitempty"`
	FirstSurname      string  `json:"first_surname" validate:"required"`
	SecondSurname     *string `json:"second_surname,omitempty"`
	BirthDate         string  `json:"birth_date" validate:"required,fecha"`
	Branch            string  `json:"branch" validate:"required,oneof=Femenino Masculino"`
	Estado            string  `json:"estado" validate:"omitempty,oneof=Afiliado Nuevo"`
	Categoria         *string `json:"categoria,omitempty"`
}

// PatinadorUpdate is the allow-list for PUT: estado, number_ID,
// numero_competencia and categoria are never modified through it.
type PatinadorUpdate struct {
	FirstName     string  `json:"first_name" validate:"required"`
	SecondName    *string `json:"second_name"`
	FirstSurname  string  `json:"first_surname" validate:"required"`
	SecondSurname *string `json:"second_surname"`
	BirthDate     string  `json:"birth_date" validate:"required,fecha"`
	Branch        string  `json:"branch" validate:"required,oneof=Femenino Masculino"`
}

type Resolucion struct {
	ID                int     `json:"id"`
	NameEvent         string  `json:"name_event" validate:"required"`
	DateStart         string  `json:"date_start" validate:"required,fecha"`
	DateEnd           string  `json:"date_end" validate:"required,fecha"`
	PlaceEvent        string  `json:"place_event" validate:"required"`
	ValueNewPatinador float64 `json:"value_new_patinador" validate:"required"`
	ValuePatinador    float64 `json:"value_patinador" validate:"required"`
	CategoriesDate    string  `json:"categories_date" validate:"required,fecha"`
}

// ResolucionUpdate excludes name_event: the lookup key is immutable in place.
type ResolucionUpdate struct {
	DateStart         string  `json:"date_start" validate:"required,fecha"`
	DateEnd           string  `json:"date_end" validate:"required,fecha"`
	PlaceEvent        string  `json:"place_event" validate:"required"`
	ValueNewPatinador float64 `json:"value_new_patinador" validate:"required"`
	ValuePatinador    float64 `json:"value_patinador" validate:"required"`
	CategoriesDate    string  `json:"categories_date" validate:"required,fecha"`
}

type Usuario struct {
	ID    int     `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name,omitempty"`
	Rol   string  `json:"rol"`
}
