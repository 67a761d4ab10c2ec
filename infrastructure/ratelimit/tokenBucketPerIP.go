package ratelimit

import (
	"encoding/json"
	"net/http"
	"time"

	"biogate.io/infrastructure/logger"
	"github.com/didip/tollbooth"
	"github.com/didip/tollbooth/limiter"
	"github.com/didip/tollbooth_gin"
	"github.com/gin-gonic/gin"
)

func limitMessage(message string) string {
	jsonMessage, _ := json.Marshal(map[string]any{
		"message": message,
	})
	return string(jsonMessage)
}

// TokenBucketPerIP is the global limiter applied to every route.
func TokenBucketPerIP() gin.HandlerFunc {
	tlbthLimiter := tollbooth.NewLimiter(25, &limiter.ExpirableOptions{
		DefaultExpirationTTL: time.Minute * 1,
	})
	tlbthLimiter.SetMessageContentType("application/json")
	tlbthLimiter.SetMessage(limitMessage("You are going too fast! You have been ratelimited."))

	return tollbooth_gin.LimitHandler(tlbthLimiter)
}

// BiometricAttemptsPerIP allows max attempts per window for each client address.
func BiometricAttemptsPerIP(max int, window time.Duration) gin.HandlerFunc {
	if max <= 0 {
		max = 10
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	tlbthLimiter := tollbooth.NewLimiter(float64(max)/window.Seconds(), &limiter.ExpirableOptions{
		DefaultExpirationTTL: window,
	})
	tlbthLimiter.SetBurst(max)
	tlbthLimiter.SetMessageContentType("application/json")
	tlbthLimiter.SetMessage(limitMessage("Too many biometric attempts. Please try again later."))
	tlbthLimiter.SetOnLimitReached(func(w http.ResponseWriter, r *http.Request) {
		logger.Warning("biometric rate limit reached", logger.LoggerOptions{
			Key:  "remoteAddr",
			Data: r.RemoteAddr,
		}, logger.LoggerOptions{
			Key:  "path",
			Data: r.URL.Path,
		})
	})

	return tollbooth_gin.LimitHandler(tlbthLimiter)
}
