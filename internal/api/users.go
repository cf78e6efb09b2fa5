package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucabarbosa/chocoflix/internal/db"
	"github.com/lucabarbosa/chocoflix/internal/model"
	"go.mongodb.org/mongo-driver/bson"
)

const resourceUser = "User"

type Users struct {
	Store UserStore
}

type createUserRequest struct {
	Name             string `json:"name" binding:"required,min=3"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=5"`
	PreferedLanguage string `json:"preferedLanguage" binding:"omitempty,oneof=pt en"`
	UseSubtitle      bool   `json:"useSubtitle"`
}

// UserUpdate requires the current password; newPassword, when present,
// is re-hashed before it reaches the store.
type UserUpdate struct {
	Password         string  `json:"password" binding:"required,min=5"`
	NewPassword      *string `json:"newPassword"`
	Name             *string `json:"name"`
	PreferedLanguage *string `json:"preferedLanguage" binding:"omitempty,oneof=pt en"`
	UseSubtitle      *bool   `json:"useSubtitle"`
}

func (u UserUpdate) fields() bson.M {
	fields := bson.M{}
	if u.Name != nil {
		fields["name"] = *u.Name
	}
	if u.PreferedLanguage != nil {
		fields["preferedLanguage"] = *u.PreferedLanguage
	}
	if u.UseSubtitle != nil {
		fields["useSubtitle"] = *u.UseSubtitle
	}
	return fields
}

type passwordRequest struct {
	Password string `json:"password" binding:"required,min=5"`
}

func (h *Users) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindingError(err))
		return
	}

	ctx := c.Request.Context()
	existing, err := h.Store.GetUserByEmail(ctx, req.Email)
	if err != nil {
		fail(c, err)
		return
	}
	if existing != nil {
		fail(c, BadRequest("This email is already taken."))
		return
	}

	user := model.User{
		Name:             req.Name,
		Email:            req.Email,
		PreferedLanguage: req.PreferedLanguage,
		UseSubtitle:      req.UseSubtitle,
	}
	if err := h.Store.CreateUser(ctx, &user, req.Password); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *Users) Index(c *gin.Context) {
	users, err := h.Store.ListUsers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *Users) Get(c *gin.Context) {
	user, err := h.Store.GetUserByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		fail(c, err)
		return
	}
	if user == nil {
		fail(c, NotFound(resourceUser))
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *Users) Update(c *gin.Context) {
	email := c.Param("email")

	var upd UserUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		fail(c, bindingError(err))
		return
	}

	ctx := c.Request.Context()
	user, err := h.Store.GetUserByEmail(ctx, email)
	if err != nil {
		fail(c, err)
		return
	}
	if user == nil {
		fail(c, NotFound(resourceUser))
		return
	}
	if !db.CheckPassword(user, upd.Password) {
		fail(c, Unauthorized("Invalid Password."))
		return
	}

	fields := upd.fields()
	if upd.NewPassword != nil {
		hash, err := db.HashPassword(*upd.NewPassword)
		if err != nil {
			fail(c, err)
			return
		}
		fields["password"] = hash
	}

	updated, err := h.Store.UpdateUser(ctx, email, fields)
	if err != nil {
		fail(c, err)
		return
	}
	if updated == nil {
		fail(c, NotFound(resourceUser))
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *Users) Destroy(c *gin.Context) {
	email := c.Param("email")

	var req passwordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, bindingError(err))
		return
	}

	ctx := c.Request.Context()
	user, err := h.Store.GetUserByEmail(ctx, email)
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

	if _, err := h.Store.DeleteUser(ctx, email); err != nil {
		fail(c, err)
		return
	}

	deleted(c, resourceUser)
}
