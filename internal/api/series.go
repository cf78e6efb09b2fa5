package api

import (
	"context"
	"net/http"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
	"github.com/lucabarbosa/chocoflix/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	resourceSerie   = "Serie"
	resourceSeason  = "Season"
	resourceEpisode = "Episode"
)

// Series serves the /series resource: Serie -> Season -> Episode, the
// deepest addressing the catalog supports. Failures name the resource at
// the depth where resolution broke.
type Series struct {
	Store SerieStore
}

// classifySeasonMiss decides what to report when a compound filter on
// {serie, season} matched nothing: the root may be gone, or only the
// season.
func (h *Series) classifySeasonMiss(ctx context.Context, id primitive.ObjectID) error {
	root, err := h.Store.GetSerie(ctx, id)
	if err != nil {
		return err
	}
	if root == nil {
		return NotFound(resourceSerie)
	}
	return NotFound(resourceSeason)
}

// classifyEpisodeMiss walks one level further down.
func (h *Series) classifyEpisodeMiss(ctx context.Context, id, seasonID primitive.ObjectID) error {
	root, err := h.Store.GetSerie(ctx, id)
	if err != nil {
		return err
	}
	if root == nil {
		return NotFound(resourceSerie)
	}
	if root.Season(seasonID) == nil {
		return NotFound(resourceSeason)
	}
	return NotFound(resourceEpisode)
}

func (h *Series) Create(c *gin.Context) {
	var serie model.Serie
	if err := c.ShouldBindJSON(&serie); err != nil {
		fail(c, bindingError(err))
		return
	}

	if err := h.Store.CreateSerie(c.Request.Context(), &serie); err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, serie)
}

func (h *Series) AppendSeason(c *gin.Context) {
	id, ok := parseID(c.Param("serie"))
	if !ok {
		fail(c, NotFound(resourceSerie))
		return
	}

	serie, err := h.Store.AppendSeason(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if serie == nil {
		fail(c, NotFound(resourceSerie))
		return
	}

	c.JSON(http.StatusCreated, serie)
}

func (h *Series) AppendEpisode(c *gin.Context) {
	id, ok := parseID(c.Param("serie"))
	if !ok {
		fail(c, NotFound(resourceSerie))
		return
	}
	seasonID, ok := parseID(c.Param("season"))
	if !ok {
		fail(c, NotFound(resourceSeason))
		return
	}

	var episode model.Media
	if err := c.ShouldBindJSON(&episode); err != nil {
		fail(c, bindingError(err))
		return
	}
	episode.GenerateIDs()

	ctx := c.Request.Context()
	serie, err := h.Store.AppendEpisode(ctx, id, seasonID, &episode)
	if err != nil {
		fail(c, err)
		return
	}
	if serie == nil {
		fail(c, h.classifySeasonMiss(ctx, id))
		return
	}
	if serie.Season(seasonID) == nil {
		fail(c, NotFound(resourceSeason))
		return
	}

	c.JSON(http.StatusCreated, serie)
}

func (h *Series) Index(c *gin.Context) {
	series, err := h.Store.ListSeries(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, series)
}

func (h *Series) Get(c *gin.Context) {
	id, ok := parseID(c.Param("serie"))
	if !ok {
		fail(c, NotFound(resourceSerie))
		return
	}

	serie, err := h.Store.GetSerie(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if serie == nil {
		fail(c, NotFound(resourceSerie))
		return
	}

	c.JSON(http.StatusOK, serie)
}

func (h *Series) GetSeason(c *gin.Context) {
	id, ok := parseID(c.Param("serie"))
	if !ok {
		fail(c, NotFound(resourceSerie))
		return
	}
	seasonID, ok := parseID(c.Param("season"))
	if !ok {
		fail(c, NotFound(resourceSeason))
		return
	}

	ctx := c.Request.Context()
	serie, err := h.Store.FindSerieBySeason(ctx, id, seasonID)
	if err != nil {
		fail(c, err)
		return
	}
	if serie == nil {
		fail(c, h.classifySeasonMiss(ctx, id))
		return
	}

	season := serie.Season(seasonID)
	if season == nil {
		fail(c, NotFound(resourceSeason))
		return
	}

	c.JSON(http.StatusOK, season)
}

func (h *Series) GetEpisode(c *gin.Context) {
	id, ok := parseID(c.Param("serie"))
	if !ok {
		fail(c, NotFound(resourceSerie))
		return
	}
	seasonID, ok := parseID(c.Param("season"))
	if !ok {
		fail(c, NotFound(resourceSeason))
		return
	}
	episodeID, ok := parseID(c.Param("episode"))
	if !ok {
		fail(c, NotFound(resourceEpisode))
		return
	}

	ctx := c.Request.Context()
	serie, err := h.Store.FindSerieByEpisode(ctx, id, seasonID, episodeID)
	if err != nil {
		fail(c, err)
		return
	}
	if serie == nil {
		fail(c, h.classifyEpisodeMiss(ctx, id, seasonID))
		return
	}

	season := serie.Season(seasonID)
	if season == nil {
		fail(c, NotFound(resourceSeason))
		return
	}

	// the filter matches the episode id at any depth under seasons; only
	// the walk proves it lives under the requested season
	episode := season.Episode(episodeID)
	if episode == nil {
		fail(c, NotFound(resourceEpisode))
		return
	}

	c.JSON(http.StatusOK, episode)
}

func (h *Series) Update(c *gin.Context) {
	id, ok := parseID(c.Param("serie"))
	if !ok {
		fail(c, NotFound(resourceSerie))
		return
	}

	var upd SerieUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		fail(c, bindingError(err))
		return
	}

	serie, err := h.Store.UpdateSerie(c.Request.Context(), id, upd.fields())
	if err != nil {
		fail(c, err)
		return
	}
	if serie == nil {
		fail(c, NotFound(resourceSerie))
		return
	}

	c.JSON(http.StatusOK, serie)
}

func (h *Series) UpdateSeason(c *gin.Context) {
	id, ok := parseID(c.Param("serie"))
	if !ok {
		fail(c, NotFound(resourceSerie))
		return
	}
	seasonID, ok := parseID(c.Param("season"))
	if !ok {
		fail(c, NotFound(resourceSerie))
		return
	}

	var upd SeasonUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		fail(c, bindingError(err))
		return
	}

	serie, err := h.Store.UpdateSeason(c.Request.Context(), id, seasonID, upd.fields())
	if err != nil {
		fail(c, err)
		return
	}
	if serie == nil {
		fail(c, NotFound(resourceSerie))
		return
	}

	season := serie.Season(seasonID)
	if season == nil {
		fail(c, NotFound(resourceSerie))
		return
	}

	c.JSON(http.StatusOK, season)
}

func (h *Series) UpdateEpisode(c *gin.Context) {
	id, ok := parseID(c.Param("serie"))
	if !ok {
		fail(c, NotFound(resourceSerie))
		return
	}
	seasonID, ok := parseID(c.Param("season"))
	if !ok {
		fail(c, NotFound(resourceSerie))
		return
	}
	episodeID, ok := parseID(c.Param("episode"))
	if !ok {
		fail(c, NotFound(resourceSerie))
		return
	}

	var upd MediaUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		fail(c, bindingError(err))
		return
	}

	serie, err := h.Store.UpdateEpisode(c.Request.Context(), id, seasonID, episodeID, upd.fields())
	if err != nil {
		fail(c, err)
		return
	}
	if serie == nil {
		fail(c, NotFound(resourceSerie))
		return
	}

	episode := serie.Episode(seasonID, episodeID)
	if episode == nil {
		fail(c, NotFound(resourceSerie))
		return
	}

	c.JSON(http.StatusOK, episode)
}

func (h *Series) Destroy(c *gin.Context) {
	id, ok := parseID(c.Param("serie"))
	if !ok {
		fail(c, NotFound(resourceSerie))
		return
	}

	serie, err := h.Store.DeleteSerie(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	if serie == nil {
		fail(c, NotFound(resourceSerie))
		return
	}

	deleted(c, resourceSerie)
}

func (h *Series) DestroySeason(c *gin.Context) {
	id, ok := parseID(c.Param("serie"))
	if !ok {
		fail(c, NotFound(resourceSeason))
		return
	}
	seasonID, ok := parseID(c.Param("season"))
	if !ok {
		fail(c, NotFound(resourceSeason))
		return
	}

	serie, err := h.Store.PullSeason(c.Request.Context(), id, seasonID)
	if err != nil {
		fail(c, err)
		return
	}
	if serie == nil {
		fail(c, NotFound(resourceSeason))
		return
	}

	if serie.Season(seasonID) != nil {
		log.WithFields(log.Fields{
			"serie":  id.Hex(),
			"season": seasonID.Hex(),
		}).Error("season still present after pull")
		fail(c, Internal())
		return
	}

	deleted(c, resourceSeason)
}

func (h *Series) DestroyEpisode(c *gin.Context) {
	id, ok := parseID(c.Param("serie"))
	if !ok {
		fail(c, NotFound(resourceEpisode))
		return
	}
	seasonID, ok := parseID(c.Param("season"))
	if !ok {
		fail(c, NotFound(resourceEpisode))
		return
	}
	episodeID, ok := parseID(c.Param("episode"))
	if !ok {
		fail(c, NotFound(resourceEpisode))
		return
	}

	serie, err := h.Store.PullEpisode(c.Request.Context(), id, seasonID, episodeID)
	if err != nil {
		fail(c, err)
		return
	}
	if serie == nil {
		fail(c, NotFound(resourceEpisode))
		return
	}

	if serie.Episode(seasonID, episodeID) != nil {
		log.WithFields(log.Fields{
			"serie":   id.Hex(),
			"season":  seasonID.Hex(),
			"episode": episodeID.Hex(),
		}).Error("episode still present after pull")
		fail(c, Internal())
		return
	}

	deleted(c, resourceEpisode)
}
