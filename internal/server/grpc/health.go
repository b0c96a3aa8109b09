package grpcserver

import (
	"context"

	"github.com/rzbill/snowid/internal/runtime"
	snowidv1 "github.com/rzbill/snowid/proto/gen/go/snowid/v1"
)

type healthSvc struct {
	snowidv1.UnimplementedHealthServiceServer
	rt *runtime.Runtime
}

func (h *healthSvc) Check(ctx context.Context, _ *snowidv1.HealthCheckRequest) (*snowidv1.HealthCheckResponse, error) {
	if err := h.rt.CheckHealth(ctx); err != nil {
		return &snowidv1.HealthCheckResponse{Status: "not_serving"}, nil
	}
	return &snowidv1.HealthCheckResponse{Status: "ok"}, nil
}
