package main

import (
	"fmt"

	"github.com/OumaimaAyadi17/Football/config"
	"github.com/OumaimaAyadi17/Football/handler"
	loggerinternal "github.com/OumaimaAyadi17/Football/logger"
	"github.com/OumaimaAyadi17/Football/middleware"
	"github.com/OumaimaAyadi17/Football/repository"
	"github.com/OumaimaAyadi17/Football/service"
	"github.com/gin-gonic/gin"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "run",
		Short: "Server starts running the server",
		Run:   startServer,
	}

	if err := rootCmd.Execute(); err != nil {
		panic(err)
	}
}

func startServer(_ *cobra.Command, _ []string) {
	cfg := config.Parse[config.Server]()

	logger := loggerinternal.SetupLogger()

	// Budgets serialize as plain JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	r := gin.Default()

	db := repository.EstablishDatabaseConnection(cfg.PG)

	equipeRepository := repository.NewEquipeRepository(db)
	joueurRepository := repository.NewJoueurRepository(db)

	equipeService := service.NewEquipeService(equipeRepository, joueurRepository, logger)
	joueurService := service.NewJoueurService(joueurRepository, equipeRepository, logger)

	equipeHandler := handler.NewEquipeHandler(equipeService)
	joueurHandler := handler.NewJoueurHandler(joueurService)

	api := r.Group("/api").Use(middleware.Timeout(cfg.App.Timeout))

	api.GET("/equipes", equipeHandler.List)
	api.POST("/equipes", equipeHandler.Create)
	api.GET("/equipes/:id", equipeHandler.GetByID)
	api.GET("/equipes/acronyme/:acronyme", equipeHandler.GetByAcronyme)
	api.POST("/equipes/:id/joueurs/:joueurId", equipeHandler.AddJoueur)
	api.DELETE("/equipes/:id/joueurs/:joueurId", equipeHandler.RemoveJoueur)

	api.GET("/joueurs", joueurHandler.List)
	api.POST("/joueurs", joueurHandler.Create)
	api.GET("/joueurs/:id", joueurHandler.GetByID)
	api.PUT("/joueurs/:id/transfer", joueurHandler.Transfer)
	api.DELETE("/joueurs/:id", joueurHandler.Delete)

	_ = r.Run(fmt.Sprintf(":%s", cfg.App.Port))
}
