package internal

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// registrarActividad appends to the activity trail. Best effort: a failed
// insert never fails the request that triggered it.
func registrarActividad(db *pgxpool.Pool, actorID *int, action, details string) {
	_, _ = db.Exec(context.Background(),
		"INSERT INTO actividad(actor_id, action, details) VALUES ($1,$2,$3)",
		actorID, action, details,
	)
}

// GET /resolucion/actividad
func ListarActividad(db *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		rows, err := db.Query(c.Request.Context(),
			`SELECT a.id,
			        to_char(a.created_at, 'YYYY-MM-DD HH24:MI:SS') AS created_at,
			        COALESCE(u.email,'(desconocido)') AS actor,
			        a.action,
			        a.details
			 FROM actividad a
			 LEFT JOIN usuarios u ON u.id=a.actor_id
			 ORDER BY a.id DESC LIMIT 200`)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener la actividad"})
			return
		}
		defer rows.Close()

		type row struct {
			ID        int64  `json:"id"`
			CreatedAt string `json:"created_at"`
			Actor     string `json:"actor"`
			Action    string `json:"action"`
			Details   string `json:"details"`
		}

		out := []row{}
		for rows.Next() {
			var r row
			if err := rows.Scan(&r.ID, &r.CreatedAt, &r.Actor, &r.Action, &r.Details); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Error al obtener la actividad"})
				return
			}
			out = append(out, r)
		}

		c.JSON(http.StatusOK, out)
	}
}
