package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/PedroGomesFR/myPlanning/internal/config"
	dbpkg "github.com/PedroGomesFR/myPlanning/internal/db"
	"github.com/PedroGomesFR/myPlanning/internal/logger"
	"github.com/PedroGomesFR/myPlanning/internal/middleware"
	"github.com/PedroGomesFR/myPlanning/internal/routes"
)

func main() {

	log := logger.New()
	defer log.Sync()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg, log)
	defer dbpkg.Close(db, log)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, log)

	log.Info("Server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
