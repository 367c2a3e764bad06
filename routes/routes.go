package routes

import (
	"barberpro-backend/config"
	"barberpro-backend/controllers"
	"barberpro-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handlers struct {
	Appointments *controllers.AppointmentController
	Settings     *controllers.SettingsController

	// Queue is nil when no Redis board is configured.
	Queue *controllers.QueueController
}

func SetupRouter(h Handlers, allowedOrigins []string, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger(logger))

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		appointments := api.Group("/appointments")
		{
			appointments.POST("", h.Appointments.CreateAppointment)
			appointments.GET("", h.Appointments.GetAppointments)
			appointments.GET("/:id", h.Appointments.GetAppointment)
			appointments.PATCH("/:id", h.Appointments.UpdateAppointment)
			appointments.DELETE("/:id", utils.OwnerOnly(), h.Appointments.DeleteAppointment)
		}

		api.GET("/reports/attendants", h.Appointments.GetAttendantSummaries)

		customers := api.Group("/customers")
		{
			customers.POST("", controllers.CreateCustomer)
			customers.GET("", controllers.GetCustomers)
			customers.GET("/:id", controllers.GetCustomer)
			customers.PUT("/:id", controllers.UpdateCustomer)
			customers.DELETE("/:id", utils.OwnerOnly(), controllers.DeleteCustomer)
		}

		services := api.Group("/services")
		{
			services.GET("", controllers.GetServices)
			services.GET("/:id", controllers.GetService)
			services.POST("", utils.OwnerOnly(), controllers.CreateService)
			services.PUT("/:id", utils.OwnerOnly(), controllers.UpdateService)
			services.DELETE("/:id", utils.OwnerOnly(), controllers.DeleteService)
		}

		products := api.Group("/products")
		{
			products.GET("", controllers.GetProducts)
			products.GET("/:id", controllers.GetProduct)
			products.POST("", utils.OwnerOnly(), controllers.CreateProduct)
			products.PUT("/:id", utils.OwnerOnly(), controllers.UpdateProduct)
			products.DELETE("/:id", utils.OwnerOnly(), controllers.DeleteProduct)
		}

		partnerships := api.Group("/partnerships")
		{
			partnerships.GET("", controllers.GetPartnerships)
			partnerships.POST("", utils.OwnerOnly(), controllers.CreatePartnership)
			partnerships.PUT("/:id", utils.OwnerOnly(), controllers.UpdatePartnership)
			partnerships.DELETE("/:id", utils.OwnerOnly(), controllers.DeletePartnership)
		}

		api.GET("/staff", controllers.GetStaff)
		api.POST("/staff", utils.OwnerOnly(), controllers.Register)

		if h.Queue != nil {
			api.GET("/queue/waiting", h.Queue.GetWaiting)
		}

		api.GET("/settings/fees", h.Settings.GetFeeSettings)
		api.PUT("/settings/fees", utils.OwnerOnly(), h.Settings.UpdateFeeSettings)
	}

	return r
}
