package http

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/time/rate"

	"github.com/dcastano/almacen-api/internal/application/dto"
)

type ipLimiter struct {
	limiter *rate.Limiter
	// Nanos unix de la última petición. Lo escriben las goroutines de las
	// peticiones y lo lee la goroutine de limpieza, de ahí el atómico.
	lastSeen atomic.Int64
}

// RateLimit limita peticiones por IP con un token bucket (r por segundo,
// ráfaga b). Protege el endpoint del escáner, donde un lector USB atascado
// puede disparar decenas de resoluciones por segundo.
func RateLimit(r rate.Limit, b int) fiber.Handler {
	limiters := &sync.Map{}

	// Limpieza de entradas inactivas cada 5 minutos.
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			cutoff := time.Now().Add(-10 * time.Minute).UnixNano()
			limiters.Range(func(k, v interface{}) bool {
				if v.(*ipLimiter).lastSeen.Load() < cutoff {
					limiters.Delete(k)
				}
				return true
			})
		}
	}()

	getLimiter := func(ip string) *rate.Limiter {
		v, _ := limiters.LoadOrStore(ip, &ipLimiter{limiter: rate.NewLimiter(r, b)})
		il := v.(*ipLimiter)
		il.lastSeen.Store(time.Now().UnixNano())
		return il.limiter
	}

	return func(c *fiber.Ctx) error {
		if !getLimiter(c.IP()).Allow() {
			return c.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{
				Code:    "RATE_LIMITED",
				Message: "demasiadas peticiones, reintenta en unos segundos",
			})
		}
		return c.Next()
	}
}
