package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kaskita/payment-service/internal/handlers"
	"github.com/kaskita/payment-service/internal/metrics"
	"github.com/kaskita/payment-service/internal/service"
	"github.com/kaskita/payment-service/internal/telemetry"
)

func NewRouter(payments *service.Payments) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(CORSMiddleware())
	r.Use(telemetry.TracingMiddleware())
	r.Use(MetricsMiddleware())

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "payment-service"})
	})

	// Payment routes
	paymentHandler := handlers.NewPaymentHandler(payments)
	webhookHandler := handlers.NewWebhookHandler(payments)
	statusHandler := handlers.NewStatusHandler(payments)

	r.POST("/payments", paymentHandler.CreatePayment)
	r.POST("/payments/notification", webhookHandler.HandleNotification)
	r.GET("/payments/:order_id/status", statusHandler.GetTransactionStatus)

	return r
}

// CORSMiddleware answers browser preflights and marks every response as
// cross-origin readable. The ledger client runs inside a mobile webview, so
// Snap-related calls arrive subject to CORS.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")

		if c.Request.Method == http.MethodOptions {
			c.Header("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}

// MetricsMiddleware records a counter and duration histogram per route.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		status := "FAILED"
		if c.Writer.Status() >= 200 && c.Writer.Status() < 400 {
			status = "SUCCESS"
		}
		metrics.IncRequest(c.FullPath(), status, c.Request.Method)
		metrics.ObserveDuration(c.FullPath(), status, time.Since(start).Seconds())
	}
}
