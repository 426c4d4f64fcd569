package api

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/travelhub/booking-backend-go/internal/config"
	"github.com/travelhub/booking-backend-go/internal/handler"
	"github.com/travelhub/booking-backend-go/internal/middleware"
	"github.com/travelhub/booking-backend-go/internal/repository"
	"github.com/travelhub/booking-backend-go/internal/service"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config, db *sql.DB, limiter middleware.Limiter) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		status, code := "ok", http.StatusOK
		if err := db.PingContext(c.Request.Context()); err != nil {
			status, code = "degraded", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"status":  status,
			"message": "Travel Booking API is running",
		})
	})

	pricing := service.NewPricingEngine(repository.NewPackageRepository(db))
	search := service.NewPackageSearchEngine(
		repository.NewHotelRepository(db),
		repository.NewFlightRepository(db),
		repository.NewTrainRepository(db),
		repository.NewBusRepository(db),
		repository.NewCityRepository(db),
	).WithTimeout(cfg.SearchTimeout).WithCandidateLimit(cfg.SearchCandidateLimit)
	bookings := service.NewBookingService(pricing, repository.NewBookingRepository(db))

	packageHandler := handler.NewPackageHandler(pricing)
	searchHandler := handler.NewSearchHandler(search)
	bookingHandler := handler.NewBookingHandler(bookings)

	// API 路由组
	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(limiter))
	{
		packages := api.Group("/packages")
		{
			packages.GET("/:id/options", packageHandler.GetOptions)
			packages.POST("/:id/price", packageHandler.CalculatePrice)
		}

		api.GET("/search/packages", searchHandler.SearchPackages)

		booking := api.Group("/bookings", middleware.Auth(cfg.JWTSecret))
		{
			booking.POST("", bookingHandler.CreateBooking)
			booking.GET("", bookingHandler.ListBookings)
			booking.GET("/:id", bookingHandler.GetBooking)
		}
	}

	return r
}
