package internal

import (
	"errors"
	"net/http"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

const patinadorCols = "id, numero_competencia, number_id, first_name, second_name, first_surname, second_surname, birth_date, branch, estado, categoria"

func escanearPatinador(row pgx.Row) (Patinador, error) {
	var p Patinador
	err := row.Scan(&p.ID, &p.NumeroCompetencia, &p.NumberID, &p.FirstName, &p.SecondName,
		&p.FirstSurname, &p.SecondSurname, &p.BirthDate, &p.Branch, &p.Estado, &p.Categoria)
	return p, err
}

// POST /api/patinadores
//
// Takes a batch of athletes. A brand-new number_ID is inserted as "Nuevo"
// (whatever estado the payload carried); a known number_ID only has its
// estado flipped to "Afiliado", every other stored field stays as it was.
// The single INSERT .. ON CONFLICT per item makes that decision atomic, so
// two concurrent submissions of the same new number_ID cannot both insert.
func RegistrarPatinadores(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var batch []Patinador
		if err := c.BindJSON(&batch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Se esperaba un arreglo de patinadores"})
			return
		}

		// any invalid payload rejects the whole batch before any write
		for _, p := range batch {
			if err := validate.Struct(&p); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": mensajeValidacion(err)})
				return
			}
		}

		results := make([]Patinador, len(batch))
		g, ctx := errgroup.WithContext(c.Request.Context())
		for i, p := range batch {
			i, p := i, p
			g.Go(func() error {
				q := psql.Insert("patinadores").
					Columns("numero_competencia", "number_id", "first_name", "second_name",
						"first_surname", "second_surname", "birth_date", "branch", "estado", "categoria").
					Values(p.NumeroCompetencia, p.NumberID, p.FirstName, p.SecondName,
						p.FirstSurname, p.SecondSurname, p.BirthDate, p.Branch, EstadoNuevo, p.Categoria).
					Suffix("ON CONFLICT (number_id) DO UPDATE SET estado = ?", EstadoAfiliado).
					Suffix("RETURNING " + patinadorCols)
				res, err := escanearPatinador(qRow(ctx, db, q))
				if err != nil {
					return err
				}
				results[i] = res
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al registrar los patinadores"})
			return
		}

		c.JSON(http.StatusOK, results)
	}
}

// GET /api/patinadores
func ListarPatinadores(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := qQuery(c.Request.Context(), db,
			psql.Select(patinadorCols).From("patinadores").OrderBy("id ASC"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener los patinadores"})
			return
		}
		defer rows.Close()

		out := []Patinador{}
		for rows.Next() {
			var p Patinador
			if err := rows.Scan(&p.ID, &p.NumeroCompetencia, &p.NumberID, &p.FirstName, &p.SecondName,
				&p.FirstSurname, &p.SecondSurname, &p.BirthDate, &p.Branch, &p.Estado, &p.Categoria); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener los patinadores"})
				return
			}
			out = append(out, p)
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /api/patinadores/:number_ID
func ObtenerPatinador(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		numberID, err := strconv.Atoi(c.Param("number_ID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "number_ID inválido"})
			return
		}

		q := psql.Select(patinadorCols).From("patinadores").Where(sq.Eq{"number_id": numberID})
		p, err := escanearPatinador(qRow(c.Request.Context(), db, q))
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Patinador no encontrado"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener el patinador"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

// PUT /api/patinadores/:number_ID
func ActualizarPatinador(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		numberID, err := strconv.Atoi(c.Param("number_ID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "number_ID inválido"})
			return
		}

		var req PatinadorUpdate
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Datos inválidos"})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": mensajeValidacion(err)})
			return
		}

		q := psql.Update("patinadores").
			Set("first_name", req.FirstName).
			Set("second_name", req.SecondName).
			Set("first_surname", req.FirstSurname).
			Set("second_surname", req.SecondSurname).
			Set("birth_date", req.BirthDate).
			Set("branch", req.Branch).
			Where(sq.Eq{"number_id": numberID}).
			Suffix("RETURNING " + patinadorCols)
		p, err := escanearPatinador(qRow(c.Request.Context(), db, q))
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Patinador no encontrado"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al actualizar el patinador"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Patinador actualizado exitosamente", "data": p})
	}
}

// DELETE /api/patinadores/:number_ID
func EliminarPatinador(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		numberID, err := strconv.Atoi(c.Param("number_ID"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "number_ID inválido"})
			return
		}

		tag, err := qExec(c.Request.Context(), db,
			psql.Delete("patinadores").Where(sq.Eq{"number_id": numberID}))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al eliminar el patinador"})
			return
		}
		if tag.RowsAffected() == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Patinador no encontrado"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Patinador eliminado exitosamente"})
	}
}
