package http

import (
	"embed"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ngtrthanh/tide-app/internal/config"
	"github.com/ngtrthanh/tide-app/internal/observability"
	"github.com/ngtrthanh/tide-app/internal/usecase"
)

//go:embed templates/chart.html
var templatesFS embed.FS

// SetupRouter creates and configures the Gin router.
func SetupRouter(tideUC *usecase.TideUseCase, cfg *config.Config, metrics *observability.Metrics) *gin.Engine {
	router := gin.Default()

	// Setup CORS middleware. Empty config allows all origins.
	corsConfig := cors.DefaultConfig()
	if cfg.CORSAllowedOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.CORSAllowedOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))
	router.Use(metricsMiddleware(metrics))

	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/chart.html")))

	handler := NewHandler(tideUC)

	router.GET("/", handler.StationInfo)
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes.
	v1 := router.Group("/v1")
	v1.GET("/constituents", handler.GetConstituentsList)

	tide := v1.Group("/tide")
	tide.GET("/current", handler.GetCurrent)
	tide.GET("/extremes", handler.GetDailyExtremes)
	tide.GET("/forecast", handler.GetForecast)
	tide.GET("/chart", handler.GetChart)
	tide.GET("/chart/data", handler.GetChartData)
	tide.GET("/validate", handler.GetValidation)
	tide.POST("/validate", handler.PostValidation)

	return router
}

// metricsMiddleware records request counts and latencies per matched route.
func metricsMiddleware(m *observability.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.Requests.WithLabelValues(path, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}
}
