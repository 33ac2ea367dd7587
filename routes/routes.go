package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nutrifind/controllers"
	"nutrifind/middlewares"
)

type Controllers struct {
	Auth    *controllers.AuthController
	Foods   *controllers.FoodController
	Records *controllers.RecordController
	Search  *controllers.SearchWSController
	Users   *controllers.UserController
}

func SetupRouter(ctrl Controllers, jwtSecret []byte) *gin.Engine {
	r := gin.Default()

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", ctrl.Auth.Register)
		auth.POST("/login", ctrl.Auth.Login)
	}

	guard := middlewares.AuthMiddleware(jwtSecret)

	food := r.Group("/food")
	food.Use(guard)
	{
		food.GET("/search", ctrl.Foods.SearchFoods)
		food.POST("/recognize", ctrl.Foods.RecognizeFood)
	}

	records := r.Group("/records")
	records.Use(guard)
	{
		records.POST("", ctrl.Records.SaveRecord)
		records.GET("", ctrl.Records.ListRecords)
		records.DELETE("/:id", ctrl.Records.DeleteRecord)
	}

	user := r.Group("/user")
	user.Use(guard)
	{
		user.GET("/profile", ctrl.Users.GetProfile)
		user.PUT("/profile", ctrl.Users.UpdateProfile)
	}

	ws := r.Group("/ws")
	ws.Use(guard)
	{
		ws.GET("/search", ctrl.Search.SearchWS)
	}

	return r
}
