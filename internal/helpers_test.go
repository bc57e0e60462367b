package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const testSecret = "super-secret-key"

// testRouter mirrors the wiring in main.go. A nil pool is fine for tests
// that must be rejected before any database access.
func testRouter(db *pgxpool.Pool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "backend proyecto liga santandereana de patinaje")
	})

	api := r.Group("/api")
	api.POST("/patinadores", RegistrarPatinadores(db))
	api.GET("/patinadores", ListarPatinadores(db))
	api.GET("/patinadores/:number_ID", ObtenerPatinador(db))
	api.PUT("/patinadores/:number_ID", ActualizarPatinador(db))
	api.DELETE("/patinadores/:number_ID", EliminarPatinador(db))

	auth := r.Group("/auth")
	auth.POST("/register", Registrar(db, testSecret, time.Hour, RolSecretario))
	auth.POST("/login", Login(db, testSecret, time.Hour))

	entrenador := r.Group("/entrenador")
	entrenador.POST("/register", Registrar(db, testSecret, time.Hour, RolEntrenador))
	entrenador.POST("/login", Login(db, testSecret, time.Hour))

	resolucion := r.Group("/resolucion", VerificarRol(testSecret, RolSecretario))
	resolucion.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Acceso concedido a ruta protegida"})
	})
	resolucion.POST("/resoluciones", CrearResolucion(db))
	resolucion.GET("/resoluciones", ListarResoluciones(db))
	resolucion.GET("/resoluciones/:name_event", ObtenerResolucion(db))
	resolucion.PUT("/resoluciones/:name_event", ActualizarResolucion(db))
	resolucion.DELETE("/resoluciones/:name_event", EliminarResolucion(db))
	resolucion.GET("/actividad", ListarActividad(db))

	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// testDB hands back a migrated, truncated pool, or skips when no test
// database is configured.
func testDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	pool, err := pgxpool.New(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	require.NoError(t, MigrateUp(url))
	_, err = pool.Exec(context.Background(),
		"TRUNCATE patinadores, resoluciones, usuarios, actividad RESTART IDENTITY")
	require.NoError(t, err)
	return pool
}

func registrarSecretario(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"email":    "secretaria@liga.co",
		"password": "clave123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
