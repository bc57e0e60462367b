package internal

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

func emitirToken(secret string, exp time.Duration, userID int, rol string) (string, error) {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		UserID: userID,
		Role:   rol,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(exp)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "patinaje-backend",
		},
	})
	return tok.SignedString([]byte(secret))
}

// Registrar creates an account and grants it rol. Both registration route
// groups share this handler; only the granted role differs.
func Registrar(db *pgxpool.Pool, secret string, exp time.Duration, rol string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string  `json:"email" validate:"required,email"`
			Name     *string `json:"name"`
			Password string  `json:"password" validate:"required,min=6"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Por favor llene los campos faltantes"})
			return
		}
		if err := validate.Struct(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": mensajeValidacion(err)})
			return
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 10)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error en el registro"})
			return
		}

		var id int
		err = db.QueryRow(c.Request.Context(),
			"INSERT INTO usuarios(email, name, password_hash, rol) VALUES ($1,$2,$3,$4) RETURNING id",
			req.Email, req.Name, string(hash), rol,
		).Scan(&id)
		if err != nil {
			// unique_violation on email
			c.JSON(http.StatusBadRequest, gin.H{"message": "El usuario ya se encuentra registrado"})
			return
		}

		token, err := emitirToken(secret, exp, id, rol)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error en el registro"})
			return
		}

		registrarActividad(db, &id, "register", "rol="+rol)
		c.JSON(http.StatusCreated, gin.H{"token": token})
	}
}

// Login authenticates by email. Unknown account and wrong password answer
// with the same message so the endpoint does not leak which emails exist.
func Login(db *pgxpool.Pool, secret string, exp time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := c.BindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Por favor ingrese todos los campos"})
			return
		}

		var id int
		var rol, passHash string
		err := db.QueryRow(c.Request.Context(),
			"SELECT id, rol, password_hash FROM usuarios WHERE email=$1",
			req.Email,
		).Scan(&id, &rol, &passHash)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Credenciales inválidas"})
			return
		}
		if bcrypt.CompareHashAndPassword([]byte(passHash), []byte(req.Password)) != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Credenciales inválidas"})
			return
		}

		token, err := emitirToken(secret, exp, id, rol)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error en el login"})
			return
		}

		registrarActividad(db, &id, "login", "")
		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
