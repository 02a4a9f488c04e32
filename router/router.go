package router

import (
	"time"

	"github.com/WanderPlan/wanderplan-backend/config"
	"github.com/WanderPlan/wanderplan-backend/handlers"
	"github.com/WanderPlan/wanderplan-backend/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Dependencies holds everything required for setting up routes.
type Dependencies struct {
	Config           *config.Config
	ItineraryHandler *handlers.ItineraryHandler
	TripInfoHandler  *handlers.TripInfoHandler
	ExpenseHandler   *handlers.ExpenseHandler
	BudgetHandler    *handlers.BudgetHandler
	MarkerHandler    *handlers.MarkerHandler
	HealthHandler    *handlers.HealthHandler
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	if deps.Config.Server.Environment == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.ErrorHandler())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.Config.Server.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", deps.HealthHandler.ReadinessCheck)
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)

	v1 := r.Group("/v1")
	{
		v1.POST("/trips/parse", deps.TripInfoHandler.ParseTripInfoHandler)
		v1.POST("/expenses/parse", deps.ExpenseHandler.ParseExpenseHandler)

		tripRoutes := v1.Group("/trips/:id")
		{
			tripRoutes.POST("/itinerary", deps.ItineraryHandler.GenerateItineraryHandler)
			tripRoutes.GET("/itinerary", deps.ItineraryHandler.GetItineraryHandler)
			tripRoutes.GET("/itinerary/days/:day/markers", deps.MarkerHandler.GetDayMarkersHandler)

			tripRoutes.GET("/expenses", deps.ExpenseHandler.ListExpensesHandler)
			tripRoutes.POST("/expenses", deps.ExpenseHandler.AddExpenseHandler)
			tripRoutes.DELETE("/expenses/:expenseId", deps.ExpenseHandler.DeleteExpenseHandler)

			tripRoutes.GET("/budget", deps.BudgetHandler.GetBudgetHandler)
		}
	}

	return r
}
