package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lucabarbosa/chocoflix/internal/config"
	"github.com/lucabarbosa/chocoflix/internal/db"
)

// NewRouter mounts every endpoint of the catalog on a fresh engine.
func NewRouter(database *db.Database, cfg config.Configuration) *gin.Engine {
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := &Auth{Store: database, Secret: cfg.Secret, Expiry: cfg.TokenExpiry}
	r.POST("/auth/login", auth.Login)

	movies := &Movies{Store: database}
	mov := r.Group("/movies")
	{
		mov.GET("", movies.Index)
		mov.POST("", movies.Create)
		mov.GET("/:id", movies.Get)
		mov.PUT("/:id", movies.Update)
		mov.DELETE("/:id", movies.Destroy)
		mov.POST("/:id", movies.Append)
		mov.GET("/:id/:movie", movies.GetSagaEntry)
		mov.PUT("/:id/:movie", movies.UpdateSagaEntry)
		mov.DELETE("/:id/:movie", movies.DestroySagaEntry)
	}

	series := &Series{Store: database}
	ser := r.Group("/series")
	{
		ser.GET("", series.Index)
		ser.POST("", series.Create)
		ser.GET("/:serie", series.Get)
		ser.PUT("/:serie", series.Update)
		ser.DELETE("/:serie", series.Destroy)
		ser.POST("/:serie", series.AppendSeason)
		ser.GET("/:serie/:season", series.GetSeason)
		ser.PUT("/:serie/:season", series.UpdateSeason)
		ser.DELETE("/:serie/:season", series.DestroySeason)
		ser.POST("/:serie/:season", series.AppendEpisode)
		ser.GET("/:serie/:season/:episode", series.GetEpisode)
		ser.PUT("/:serie/:season/:episode", series.UpdateEpisode)
		ser.DELETE("/:serie/:season/:episode", series.DestroyEpisode)
	}

	categories := &Categories{Store: database}
	cat := r.Group("/categories")
	{
		cat.GET("", categories.Index)
		cat.POST("", categories.Create)
		cat.GET("/:id", categories.Get)
		cat.PUT("/:id", categories.Update)
		cat.DELETE("/:id", categories.Destroy)
	}

	users := &Users{Store: database}
	usr := r.Group("/users")
	{
		usr.GET("", users.Index)
		usr.POST("", users.Create)
		usr.GET("/:email", users.Get)
		usr.PUT("/:email", users.Update)
		usr.DELETE("/:email", users.Destroy)
	}

	return r
}
