package internal

import (
	"errors"
	"net/http"

	sq "github.com/Masterminds/squirrel"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const resolucionCols = "id, name_event, date_start, date_end, place_event, value_new_patinador, value_patinador, categories_date"

func escanearResolucion(row pgx.Row) (Resolucion, error) {
	var r Resolucion
	err := row.Scan(&r.ID, &r.NameEvent, &r.DateStart, &r.DateEnd, &r.PlaceEvent,
		&r.ValueNewPatinador, &r.ValuePatinador, &r.CategoriesDate)
	return r, err
}

// POST /resolucion/resoluciones
//
// name_event is not unique: a second resolution with the same name is
// accepted and both show up in the listing.
func CrearResolucion(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Resolucion
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Error al crear la resolución"})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": mensajeValidacion(err)})
			return
		}

		q := psql.Insert("resoluciones").
			Columns("name_event", "date_start", "date_end", "place_event",
				"value_new_patinador", "value_patinador", "categories_date").
			Values(req.NameEvent, req.DateStart, req.DateEnd, req.PlaceEvent,
				req.ValueNewPatinador, req.ValuePatinador, req.CategoriesDate).
			Suffix("RETURNING " + resolucionCols)
		r, err := escanearResolucion(qRow(c.Request.Context(), db, q))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al crear la resolución"})
			return
		}

		actor := uid(c)
		registrarActividad(db, &actor, "crear_resolucion", r.NameEvent)
		c.JSON(http.StatusCreated, r)
	}
}

// GET /resolucion/resoluciones
func ListarResoluciones(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := qQuery(c.Request.Context(), db,
			psql.Select(resolucionCols).From("resoluciones").OrderBy("id ASC"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener las resoluciones"})
			return
		}
		defer rows.Close()

		out := []Resolucion{}
		for rows.Next() {
			var r Resolucion
			if err := rows.Scan(&r.ID, &r.NameEvent, &r.DateStart, &r.DateEnd, &r.PlaceEvent,
				&r.ValueNewPatinador, &r.ValuePatinador, &r.CategoriesDate); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener las resoluciones"})
				return
			}
			out = append(out, r)
		}
		c.JSON(http.StatusOK, out)
	}
}

// GET /resolucion/resoluciones/:name_event
//
// With duplicate names the oldest record wins, matching the
// first-match lookup the update and delete below use.
func ObtenerResolucion(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name_event")

		q := psql.Select(resolucionCols).From("resoluciones").
			Where(sq.Eq{"name_event": name}).
			OrderBy("id ASC").Limit(1)
		r, err := escanearResolucion(qRow(c.Request.Context(), db, q))
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Resolución no encontrada"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener la resolución"})
			return
		}
		c.JSON(http.StatusOK, r)
	}
}

// PUT /resolucion/resoluciones/:name_event
func ActualizarResolucion(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name_event")

		var req ResolucionUpdate
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Error al actualizar la resolución"})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": mensajeValidacion(err)})
			return
		}

		q := psql.Update("resoluciones").
			Set("date_start", req.DateStart).
			Set("date_end", req.DateEnd).
			Set("place_event", req.PlaceEvent).
			Set("value_new_patinador", req.ValueNewPatinador).
			Set("value_patinador", req.ValuePatinador).
			Set("categories_date", req.CategoriesDate).
			Where("id = (SELECT min(id) FROM resoluciones WHERE name_event = ?)", name).
			Suffix("RETURNING " + resolucionCols)
		r, err := escanearResolucion(qRow(c.Request.Context(), db, q))
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Resolución no encontrada"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al actualizar la resolución"})
			return
		}

		actor := uid(c)
		registrarActividad(db, &actor, "actualizar_resolucion", name)
		c.JSON(http.StatusOK, r)
	}
}

// DELETE /resolucion/resoluciones/:name_event
func EliminarResolucion(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Param("name_event")

		tag, err := qExec(c.Request.Context(), db,
			psql.Delete("resoluciones").
				Where("id = (SELECT min(id) FROM resoluciones WHERE name_event = ?)", name))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al eliminar la resolución"})
			return
		}
		if tag.RowsAffected() == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Resolución no encontrada"})
			return
		}

		actor := uid(c)
		registrarActividad(db, &actor, "eliminar_resolucion", name)
		c.JSON(http.StatusOK, gin.H{"message": "Resolución eliminada"})
	}
}
