package api

import (
	"net/http"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/lucabarbosa/chocoflix/internal/model"
)

const resourceMovie = "Movie"

// Movies serves the /movies resource: root CRUD plus the saga, the
// nested sequence of installments addressed by generated identifiers.
type Movies struct {
	Store MovieStore
}

func (h *Movies) Create(c *gin.Context) {
	var mov model.Movie
	if err := c.ShouldBindJSON(&mov); err != nil {
		fail(c, bindingError(err))
		return
	}

	if err := h.Store.CreateMovie(c.Request.Context(), &mov); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, mov)
}

func (h *Movies) Append(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		fail(c, NotFound(resourceMovie))
		return
	}

	var entry model.Media
	if err := c.ShouldBindJSON(&entry); err != nil {
		fail(c, bindingError(err))
		return
	}
	entry.GenerateIDs()

	mov, err := h.Store.AppendSagaEntry(c.Request.Context(), id, &entry)
	if err != nil {
		fail(c, err)
		return
	}
	if mov == nil {
		fail(c, NotFound(resourceMovie))
		return
	}

	c.JSON(http.StatusCreated, mov)
}

func (h *Movies) Index(c *gin.Context) {
	movies, err := h.Store.ListMovies(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, movies)
}

func (h *Movies) Get(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		fail(c, NotFound(resourceMovie))
		return
	}

	mov, err := h.Store.GetMovie(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if mov == nil {
		fail(c, NotFound(resourceMovie))
		return
	}

	c.JSON(http.StatusOK, mov)
}

func (h *Movies) GetSagaEntry(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		fail(c, NotFound(resourceMovie))
		return
	}
	entryID, ok := parseID(c.Param("movie"))
	if !ok {
		fail(c, NotFound(resourceMovie))
		return
	}

	mov, err := h.Store.FindMovieBySagaEntry(c.Request.Context(), id, entryID)
	if err != nil {
		fail(c, err)
		return
	}
	if mov == nil {
		fail(c, NotFound(resourceMovie))
		return
	}

	// the filter match proves the root, not the entry
	entry := mov.SagaEntry(entryID)
	if entry == nil {
		fail(c, NotFound(resourceMovie))
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *Movies) Update(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		fail(c, NotFound(resourceMovie))
		return
	}

	var upd MovieUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		fail(c, bindingError(err))
		return
	}

	mov, err := h.Store.UpdateMovie(c.Request.Context(), id, upd.fields())
	if err != nil {
		fail(c, err)
		return
	}
	if mov == nil {
		fail(c, NotFound(resourceMovie))
		return
	}

	c.JSON(http.StatusOK, mov)
}

func (h *Movies) UpdateSagaEntry(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		fail(c, NotFound(resourceMovie))
		return
	}
	entryID, ok := parseID(c.Param("movie"))
	if !ok {
		fail(c, NotFound(resourceMovie))
		return
	}

	var upd MediaUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		fail(c, bindingError(err))
		return
	}

	mov, err := h.Store.UpdateSagaEntry(c.Request.Context(), id, entryID, upd.fields())
	if err != nil {
		fail(c, err)
		return
	}
	if mov == nil {
		fail(c, NotFound(resourceMovie))
		return
	}

	// if the entry cannot be re-located, the update silently no-opped
	entry := mov.SagaEntry(entryID)
	if entry == nil {
		fail(c, NotFound(resourceMovie))
		return
	}

	c.JSON(http.StatusOK, entry)
}

func (h *Movies) Destroy(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		fail(c, NotFound(resourceMovie))
		return
	}

	mov, err := h.Store.DeleteMovie(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if mov == nil {
		fail(c, NotFound(resourceMovie))
		return
	}

	deleted(c, resourceMovie)
}

func (h *Movies) DestroySagaEntry(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		fail(c, NotFound(resourceMovie))
		return
	}
	entryID, ok := parseID(c.Param("movie"))
	if !ok {
		fail(c, NotFound(resourceMovie))
		return
	}

	mov, err := h.Store.PullSagaEntry(c.Request.Context(), id, entryID)
	if err != nil {
		fail(c, err)
		return
	}
	if mov == nil {
		fail(c, NotFound(resourceMovie))
		return
	}

	// the store accepted the pull; a surviving entry is an internal
	// inconsistency, never a 404
	if mov.SagaEntry(entryID) != nil {
		log.WithFields(log.Fields{
			"movie": id.Hex(),
			"entry": entryID.Hex(),
		}).Error("saga entry still present after pull")
		fail(c, Internal())
		return
	}

	deleted(c, resourceMovie)
}
