package main

import (
	"net/http"
	"os"
	"time"

	"patinaje-backend/internal"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "9000"
	}
	exp := 24 * time.Hour
	if v := os.Getenv("EXPIRED_TIME"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Fatal().Str("EXPIRED_TIME", v).Msg("EXPIRED_TIME must be a duration, e.g. 24h")
		}
		exp = d
	}

	db := internal.MustDB(dbURL)
	defer db.Close()

	if err := internal.MigrateUp(dbURL); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "backend proyecto liga santandereana de patinaje")
	})

	api := r.Group("/api")
	{
		api.POST("/patinadores", internal.RegistrarPatinadores(db))
		api.GET("/patinadores", internal.ListarPatinadores(db))
		api.GET("/patinadores/:number_ID", internal.ObtenerPatinador(db))
		api.PUT("/patinadores/:number_ID", internal.ActualizarPatinador(db))
		api.DELETE("/patinadores/:number_ID", internal.EliminarPatinador(db))
	}

	auth := r.Group("/auth")
	{
		auth.POST("/register", internal.Registrar(db, secret, exp, internal.RolSecretario))
		auth.POST("/login", internal.Login(db, secret, exp))
	}

	entrenador := r.Group("/entrenador")
	{
		entrenador.POST("/register", internal.Registrar(db, secret, exp, internal.RolEntrenador))
		entrenador.POST("/login", internal.Login(db, secret, exp))
	}

	resolucion := r.Group("/resolucion", internal.VerificarRol(secret, internal.RolSecretario))
	{
		resolucion.GET("/protected", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Acceso concedido a ruta protegida"})
		})
		resolucion.POST("/resoluciones", internal.CrearResolucion(db))
		resolucion.GET("/resoluciones", internal.ListarResoluciones(db))
		resolucion.GET("/resoluciones/:name_event", internal.ObtenerResolucion(db))
		resolucion.PUT("/resoluciones/:name_event", internal.ActualizarResolucion(db))
		resolucion.DELETE("/resoluciones/:name_event", internal.EliminarResolucion(db))
		resolucion.GET("/actividad", internal.ListarActividad(db))
	}

	log.Info().Str("port", port).Msg("Server listening")
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
