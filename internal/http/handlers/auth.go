package handlers

import (
	"database/sql"
	"net/http"
	"strings"
	"time"

	intconfig "tripplanner/internal/config"
	intdb "tripplanner/internal/db"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthUser is the user payload returned by login/register.
type AuthUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	db := intconfig.DB
	if db == nil || !intdb.HasTable(db, "users") {
		RespondError(c, http.StatusServiceUnavailable, "user storage unavailable", nil)
		return
	}

	var (
		user         AuthUser
		passwordHash string
	)
	err := db.QueryRow(`
        SELECT id, name, email, password_hash, role
        FROM users
        WHERE email = ?
    `, strings.TrimSpace(req.Email)).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&passwordHash,
		&user.Role,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		} else {
			RespondError(c, http.StatusInternalServerError, "failed to query user", err)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to sign token", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": tokenString,
		"user":  user,
	})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	HomeCity string `json:"homeCity"`
}

// POST /api/auth/register
func Register(c *gin.Context) {
	var req registerRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Name == "" || req.Email == "" || len(req.Password) < 8 {
		RespondError(c, http.StatusBadRequest, "name, email and a password of 8+ characters are required", nil)
		return
	}

	db := intconfig.DB
	if db == nil || !intdb.HasTable(db, "users") {
		RespondError(c, http.StatusServiceUnavailable, "user storage unavailable", nil)
		return
	}

	var exists int64
	if err := db.QueryRow(`SELECT id FROM users WHERE email = ?`, req.Email).Scan(&exists); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
		return
	} else if err != sql.ErrNoRows {
		RespondError(c, http.StatusInternalServerError, "failed to query user", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	// Older deployments predate the home_city column.
	var res sql.Result
	if intdb.HasColumn(db, "users", "home_city") {
		res, err = db.Exec(`
			INSERT INTO users (name, email, password_hash, role, home_city)
			VALUES (?, ?, ?, 'traveler', ?)`,
			req.Name, req.Email, string(hash), intdb.NullIfEmpty(strings.TrimSpace(req.HomeCity)),
		)
	} else {
		res, err = db.Exec(`
			INSERT INTO users (name, email, password_hash, role)
			VALUES (?, ?, ?, 'traveler')`,
			req.Name, req.Email, string(hash),
		)
	}
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to create user", err)
		return
	}

	id, _ := res.LastInsertId()
	c.JSON(http.StatusCreated, gin.H{
		"user": AuthUser{ID: id, Name: req.Name, Email: req.Email, Role: "traveler"},
	})
}
