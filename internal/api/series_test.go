package api

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lucabarbosa/chocoflix/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seriesRouter(store SerieStore) *gin.Engine {
	h := &Series{Store: store}
	r := gin.New()
	r.GET("/series", h.Index)
	r.POST("/series", h.Create)
	r.GET("/series/:serie", h.Get)
	r.PUT("/series/:serie", h.Update)
	r.DELETE("/series/:serie", h.Destroy)
	r.POST("/series/:serie", h.AppendSeason)
	r.GET("/series/:serie/:season", h.GetSeason)
	r.PUT("/series/:serie/:season", h.UpdateSeason)
	r.DELETE("/series/:serie/:season", h.DestroySeason)
	r.POST("/series/:serie/:season", h.AppendEpisode)
	r.GET("/series/:serie/:season/:episode", h.GetEpisode)
	r.PUT("/series/:serie/:season/:episode", h.UpdateEpisode)
	r.DELETE("/series/:serie/:season/:episode", h.DestroyEpisode)
	return r
}

func episodeBody() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Pilot",
		"description": "Where it all starts",
		"filePath":    "/media/s01e01.mkv",
		"duration":    42.0,
	}
}

func TestSeriesGetSeasonDisambiguation(t *testing.T) {
	serieID := primitive.NewObjectID()
	seasonID := primitive.NewObjectID()

	type testCase struct {
		name    string
		store   *fakeSerieStore
		status  int
		message string
	}

	testCases := []testCase{
		{
			name: "season found",
			store: &fakeSerieStore{
				findBySeason: func(id, sid primitive.ObjectID) (*model.Serie, error) {
					return &model.Serie{ID: id, Seasons: []model.Season{{ID: sid, Episodes: []model.Media{}}}}, nil
				},
			},
			status: http.StatusOK,
		},
		{
			name:    "serie does not exist",
			store:   &fakeSerieStore{},
			status:  http.StatusNotFound,
			message: "Serie Not Found.",
		},
		{
			name: "serie exists without the season",
			store: &fakeSerieStore{
				getSerie: func(id primitive.ObjectID) (*model.Serie, error) {
					return &model.Serie{ID: id, Seasons: []model.Season{{ID: primitive.NewObjectID()}}}, nil
				},
			},
			status:  http.StatusNotFound,
			message: "Season Not Found.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := perform(seriesRouter(tc.store), http.MethodGet, "/series/"+serieID.Hex()+"/"+seasonID.Hex(), nil)
			assert.Equal(t, tc.status, w.Code)
			if tc.message != "" {
				assert.Equal(t, tc.message, message(w))
			}
		})
	}
}

func TestSeriesGetEpisodeDisambiguation(t *testing.T) {
	serieID := primitive.NewObjectID()
	seasonID := primitive.NewObjectID()
	episodeID := primitive.NewObjectID()

	type testCase struct {
		name    string
		store   *fakeSerieStore
		status  int
		message string
	}

	testCases := []testCase{
		{
			name: "episode found",
			store: &fakeSerieStore{
				findByEpisode: func(id, sid, eid primitive.ObjectID) (*model.Serie, error) {
					return &model.Serie{ID: id, Seasons: []model.Season{
						{ID: sid, Episodes: []model.Media{{ID: eid, Title: "Pilot"}}},
					}}, nil
				},
			},
			status: http.StatusOK,
		},
		{
			name:    "serie does not exist",
			store:   &fakeSerieStore{},
			status:  http.StatusNotFound,
			message: "Serie Not Found.",
		},
		{
			name: "season does not exist",
			store: &fakeSerieStore{
				getSerie: func(id primitive.ObjectID) (*model.Serie, error) {
					return &model.Serie{ID: id, Seasons: []model.Season{}}, nil
				},
			},
			status:  http.StatusNotFound,
			message: "Season Not Found.",
		},
		{
			name: "episode does not exist under an existing season",
			store: &fakeSerieStore{
				getSerie: func(id primitive.ObjectID) (*model.Serie, error) {
					return &model.Serie{ID: id, Seasons: []model.Season{{ID: seasonID}}}, nil
				},
			},
			status:  http.StatusNotFound,
			message: "Episode Not Found.",
		},
		{
			// the filter matches the episode id under any season, so
			// the document comes back and the walk must reject it
			name: "episode lives under a sibling season",
			store: &fakeSerieStore{
				findByEpisode: func(id, sid, eid primitive.ObjectID) (*model.Serie, error) {
					return &model.Serie{ID: id, Seasons: []model.Season{
						{ID: sid, Episodes: []model.Media{}},
						{ID: primitive.NewObjectID(), Episodes: []model.Media{{ID: eid}}},
					}}, nil
				},
			},
			status:  http.StatusNotFound,
			message: "Episode Not Found.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := "/series/" + serieID.Hex() + "/" + seasonID.Hex() + "/" + episodeID.Hex()
			w := perform(seriesRouter(tc.store), http.MethodGet, path, nil)
			assert.Equal(t, tc.status, w.Code)
			if tc.message != "" {
				assert.Equal(t, tc.message, message(w))
			}
		})
	}
}

func TestSeriesAppendSeason(t *testing.T) {
	serieID := primitive.NewObjectID()

	store := &fakeSerieStore{
		appendSeason: func(id primitive.ObjectID) (*model.Serie, error) {
			return &model.Serie{ID: id, Seasons: []model.Season{{ID: primitive.NewObjectID(), Episodes: []model.Media{}}}}, nil
		},
	}
	w := perform(seriesRouter(store), http.MethodPost, "/series/"+serieID.Hex(), nil)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = perform(seriesRouter(&fakeSerieStore{}), http.MethodPost, "/series/"+serieID.Hex(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Serie Not Found.", message(w))
}

func TestSeriesAppendEpisode(t *testing.T) {
	serieID := primitive.NewObjectID()
	seasonID := primitive.NewObjectID()

	var appended *model.Media
	store := &fakeSerieStore{
		appendEpisode: func(id, sid primitive.ObjectID, episode *model.Media) (*model.Serie, error) {
			appended = episode
			return &model.Serie{ID: id, Seasons: []model.Season{
				{ID: sid, Episodes: []model.Media{*episode}},
			}}, nil
		},
	}

	path := "/series/" + serieID.Hex() + "/" + seasonID.Hex()
	w := perform(seriesRouter(store), http.MethodPost, path, episodeBody())

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, appended)
	assert.False(t, appended.ID.IsZero())
}

func TestSeriesAppendEpisodeSeasonMiss(t *testing.T) {
	serieID := primitive.NewObjectID()
	seasonID := primitive.NewObjectID()

	store := &fakeSerieStore{
		getSerie: func(id primitive.ObjectID) (*model.Serie, error) {
			return &model.Serie{ID: id, Seasons: []model.Season{}}, nil
		},
	}

	path := "/series/" + serieID.Hex() + "/" + seasonID.Hex()
	w := perform(seriesRouter(store), http.MethodPost, path, episodeBody())

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Season Not Found.", message(w))
}

func TestSeriesDestroySeason(t *testing.T) {
	serieID := primitive.NewObjectID()
	seasonID := primitive.NewObjectID()

	type testCase struct {
		name    string
		store   *fakeSerieStore
		status  int
		message string
	}

	testCases := []testCase{
		{
			name: "season pulled",
			store: &fakeSerieStore{
				pullSeason: func(id, sid primitive.ObjectID) (*model.Serie, error) {
					return &model.Serie{ID: id, Seasons: []model.Season{}}, nil
				},
			},
			status:  http.StatusOK,
			message: "Season deleted successfully!",
		},
		{
			name:    "season never existed",
			store:   &fakeSerieStore{},
			status:  http.StatusNotFound,
			message: "Season Not Found.",
		},
		{
			name: "season survived the pull",
			store: &fakeSerieStore{
				pullSeason: func(id, sid primitive.ObjectID) (*model.Serie, error) {
					return &model.Serie{ID: id, Seasons: []model.Season{{ID: sid}}}, nil
				},
			},
			status:  http.StatusInternalServerError,
			message: "Internal Server Error.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := perform(seriesRouter(tc.store), http.MethodDelete, "/series/"+serieID.Hex()+"/"+seasonID.Hex(), nil)
			assert.Equal(t, tc.status, w.Code)
			assert.Equal(t, tc.message, message(w))
		})
	}
}

// Deleting an episode twice answers success then not found: the second
// pull misses the compound filter because the episode id is part of it.
func TestSeriesDestroyEpisodeTwice(t *testing.T) {
	serieID := primitive.NewObjectID()
	seasonID := primitive.NewObjectID()
	episodeID := primitive.NewObjectID()

	present := true
	store := &fakeSerieStore{
		pullEpisode: func(id, sid, eid primitive.ObjectID) (*model.Serie, error) {
			if !present {
				return nil, nil
			}
			present = false
			return &model.Serie{ID: id, Seasons: []model.Season{
				{ID: sid, Episodes: []model.Media{}},
			}}, nil
		},
	}

	r := seriesRouter(store)
	path := "/series/" + serieID.Hex() + "/" + seasonID.Hex() + "/" + episodeID.Hex()

	w := perform(r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Episode deleted successfully!", message(w))

	w = perform(r, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Episode Not Found.", message(w))
}

func TestSeriesDestroyEpisodeSurvivedPull(t *testing.T) {
	serieID := primitive.NewObjectID()
	seasonID := primitive.NewObjectID()
	episodeID := primitive.NewObjectID()

	store := &fakeSerieStore{
		pullEpisode: func(id, sid, eid primitive.ObjectID) (*model.Serie, error) {
			return &model.Serie{ID: id, Seasons: []model.Season{
				{ID: sid, Episodes: []model.Media{{ID: eid}}},
			}}, nil
		},
	}

	path := "/series/" + serieID.Hex() + "/" + seasonID.Hex() + "/" + episodeID.Hex()
	w := perform(seriesRouter(store), http.MethodDelete, path, nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error.", message(w))
}

func TestSeriesCreate(t *testing.T) {
	store := &fakeSerieStore{
		createSerie: func(serie *model.Serie) error {
			serie.ID = primitive.NewObjectID()
			return nil
		},
	}

	w := perform(seriesRouter(store), http.MethodPost, "/series", map[string]interface{}{"title": "Dark"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = perform(seriesRouter(store), http.MethodPost, "/series", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
