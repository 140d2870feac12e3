package handlers

import (
	"github.com/gin-gonic/gin"

	"transtour/internal/http/middleware"
	"transtour/internal/repositories"
	"transtour/internal/routing"
	"transtour/internal/services"
)

// Deps carries the process-wide collaborators handlers cannot build per
// request (routing aggregator, config values).
type Deps struct {
	Routes            *routing.Aggregator
	TolerancePercent  float64
	DefaultOffsetDays int
	JWTSecret         []byte
}

var deps Deps

// Init must run once before the router serves traffic.
func Init(d Deps) {
	deps = d
	if len(d.JWTSecret) > 0 {
		jwtSecret = d.JWTSecret
	}
}

func orderService(c *gin.Context) services.OrderService {
	return services.OrderService{
		VehicleTypes:      repositories.VehicleTypeRepository{},
		Packages:          repositories.TourPackageRepository{},
		Orders:            repositories.OrderRepository{},
		Routes:            deps.Routes,
		TolerancePercent:  deps.TolerancePercent,
		DefaultOffsetDays: deps.DefaultOffsetDays,
		RequestID:         middleware.GetRequestID(c),
	}
}
