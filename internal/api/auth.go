package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/lucabarbosa/chocoflix/internal/db"
)

type Auth struct {
	Store  UserStore
	Secret string
	Expiry time.Duration
}

// Claims is the token payload issued at login.
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=5"`
}

func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindingError(err))
		return
	}

	user, err := h.Store.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		fail(c, err)
		return
	}
	if user == nil {
		fail(c, NotFound(resourceUser))
		return
	}
	if !db.CheckPassword(user, req.Password) {
		fail(c, Unauthorized("Invalid Password."))
		return
	}

	claims := Claims{
		ID:    user.ID.Hex(),
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(h.Expiry)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.Secret))
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, token)
}
