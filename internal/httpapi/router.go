package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter wires the handler onto a gin engine.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(h.log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/symbols", h.Symbols)
		api.GET("/opposite/:color", h.Opposite)

		api.POST("/board/init", h.InitBoard)
		api.POST("/board/score", h.Score)
		api.POST("/board/render", h.Render)

		api.POST("/moves", h.Moves)
		api.POST("/moves/possible", h.Possible)
		api.POST("/moves/check", h.Check)
		api.POST("/moves/player", h.PlayerMove)
		api.POST("/moves/computer", h.ComputerMove)
	}
	return r
}

func requestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.FullPath(),
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("request")
	}
}
