package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"keliauk/cmd/fx/account_fx"
	"keliauk/cmd/fx/attractions_fx"
	"keliauk/cmd/fx/complaints_fx"
	"keliauk/cmd/fx/controllers_fx"
	"keliauk/cmd/fx/db_fx"
	"keliauk/cmd/fx/fortune_fx"
	"keliauk/cmd/fx/friends_fx"
	"keliauk/cmd/fx/mail_fx"
	"keliauk/cmd/fx/races_fx"
	"keliauk/cmd/fx/recommendations_fx"
	"keliauk/cmd/fx/routes_fx"
	"keliauk/cmd/fx/visits_fx"
	"keliauk/internal/api/controllers"
	"keliauk/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		attractions_fx.Module,
		visits_fx.Module,
		routes_fx.Module,
		fortune_fx.Module,
		account_fx.Module,
		races_fx.Module,
		friends_fx.Module,
		complaints_fx.Module,
		recommendations_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	attractionsController *controllers.AttractionsController,
	visitsController *controllers.VisitsController,
	routesController *controllers.RoutesController,
	fortuneController *controllers.FortuneController,
	authController *controllers.AuthController,
	racesController *controllers.RacesController,
	friendsController *controllers.FriendsController,
	complaintsController *controllers.ComplaintsController,
	recommendationsController *controllers.RecommendationsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		attractionsController,
		visitsController,
		routesController,
		fortuneController,
		authController,
		racesController,
		friendsController,
		complaintsController,
		recommendationsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	attractionsController *controllers.AttractionsController,
	visitsController *controllers.VisitsController,
	routesController *controllers.RoutesController,
	fortuneController *controllers.FortuneController,
	authController *controllers.AuthController,
	racesController *controllers.RacesController,
	friendsController *controllers.FriendsController,
	complaintsController *controllers.ComplaintsController,
	recommendationsController *controllers.RecommendationsController) {

	authGroup := r.Group("/auth")
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/verify-2fa", authController.VerifyTwoFactor)
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/forgotpassword", authController.ForgotPassword)
	authGroup.POST("/resetpassword", authController.ResetPassword)

	attractionsGroup := r.Group("/attractions")
	attractionsGroup.GET("", attractionsController.ListAttractions)
	attractionsGroup.GET("/:id", attractionsController.GetAttractionByID)
	attractionsGroup.GET("/:id/visit", visitsController.GetVisitInfo)
	attractionsGroup.GET("/:id/reviews", visitsController.GetReviews)
	attractionsGroup.GET("/:id/images", visitsController.GetImages)

	racesGroup := r.Group("/races")
	racesGroup.GET("", racesController.ListRaces)

	friendsGroup := r.Group("/friends")
	friendsGroup.GET("", friendsController.ListFriends)

	fortuneGroup := r.Group("/fortune")
	fortuneGroup.POST("/scans", fortuneController.StartScan)
	fortuneGroup.GET("/scans/:sessionId", fortuneController.GetScan)
	fortuneGroup.POST("/scans/:sessionId/predict", fortuneController.Predict)
	fortuneGroup.DELETE("/scans/:sessionId", fortuneController.Cancel)

	recommendationsGroup := r.Group("/recommendations")
	recommendationsGroup.GET("", recommendationsController.Recommend)

	routesGroup := r.Group("/routes")
	routesGroup.POST("/sessions", routesController.StartSession)
	routesGroup.GET("/sessions/:sessionId", routesController.GetSession)
	routesGroup.POST("/sessions/:sessionId/destinations", routesController.AddDestination)
	routesGroup.DELETE("/sessions/:sessionId/destinations/:attractionId", routesController.RemoveDestination)
	routesGroup.POST("/sessions/:sessionId/calculate", routesController.Calculate)
	routesGroup.DELETE("/sessions/:sessionId", routesController.Cancel)

	authorized := r.Group("/")
	authorized.Use(middleware.JWTAuthMiddleware())

	authorized.POST("/attractions/:id/visit", visitsController.RegisterVisit)
	authorized.POST("/attractions/:id/reviews", visitsController.AddReview)
	authorized.POST("/attractions/:id/images", visitsController.UploadImages)

	authorized.POST("/races/:id/join", racesController.JoinRace)
	authorized.POST("/races/:id/leave", racesController.LeaveRace)

	authorized.POST("/routes/sessions/:sessionId/save", routesController.Save)
	authorized.GET("/routes/saved", routesController.ListSavedRoutes)
	authorized.PATCH("/routes/saved/:routeId", routesController.RenameSavedRoute)
	authorized.DELETE("/routes/saved/:routeId", routesController.DeleteSavedRoute)

	authorized.POST("/complaints", complaintsController.CreateComplaint)
	authorized.GET("/complaints", complaintsController.ListComplaints)
	authorized.PATCH("/complaints/:id/status", complaintsController.ChangeStatus)
	authorized.DELETE("/complaints/:id", complaintsController.DeleteComplaint)

	authorized.GET("/profile", authController.GetProfile)
	authorized.PUT("/profile", authController.UpdateProfile)
}
