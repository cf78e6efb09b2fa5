package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucabarbosa/chocoflix/internal/model"
)

const resourceCategory = "Category"

type Categories struct {
	Store CategoryStore
}

func (h *Categories) Create(c *gin.Context) {
	var category model.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		fail(c, bindingError(err))
		return
	}

	if err := h.Store.CreateCategory(c.Request.Context(), &category); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *Categories) Index(c *gin.Context) {
	categories, err := h.Store.ListCategories(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *Categories) Get(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		fail(c, NotFound(resourceCategory))
		return
	}

	category, err := h.Store.GetCategory(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if category == nil {
		fail(c, NotFound(resourceCategory))
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *Categories) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		fail(c, NotFound(resourceCategory))
		return
	}

	var upd CategoryUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		fail(c, bindingError(err))
		return
	}

	category, err := h.Store.UpdateCategory(c.Request.Context(), id, upd.fields())
	if err != nil {
		fail(c, err)
		return
	}
	if category == nil {
		fail(c, NotFound(resourceCategory))
		return
	}

	c.JSON(http.StatusOK, category)
}

// Destroy removes the category; documents referencing it are untouched.
func (h *Categories) Destroy(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		fail(c, NotFound(resourceCategory))
		return
	}

	category, err := h.Store.DeleteCategory(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if category == nil {
		fail(c, NotFound(resourceCategory))
		return
	}

	deleted(c, resourceCategory)
}
