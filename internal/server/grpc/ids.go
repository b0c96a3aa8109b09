package grpcserver

import (
	"context"

	idsvc "github.com/rzbill/snowid/internal/services/ids"
	snowidv1 "github.com/rzbill/snowid/proto/gen/go/snowid/v1"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type idsSvc struct {
	snowidv1.UnimplementedIdServiceServer
	svc *idsvc.Service
}

func (s *idsSvc) Generate(ctx context.Context, req *snowidv1.GenerateRequest) (*snowidv1.GenerateResponse, error) {
	out, err := s.svc.Generate(ctx, int(req.GetCount()))
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	ids := make([]*snowidv1.GeneratedId, 0, len(out))
	for _, g := range out {
		ids = append(ids, &snowidv1.GeneratedId{Id: g.ID, Base62: g.Base62})
	}
	return &snowidv1.GenerateResponse{Ids: ids}, nil
}

func (s *idsSvc) Decompose(ctx context.Context, req *snowidv1.DecomposeRequest) (*snowidv1.DecomposeResponse, error) {
	var p idsvc.Parts
	if b62 := req.GetBase62(); b62 != "" {
		var err error
		p, err = s.svc.DecomposeBase62(ctx, b62)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
	} else {
		p = s.svc.Decompose(ctx, req.GetId())
	}
	return &snowidv1.DecomposeResponse{
		Id:        p.ID,
		Base62:    p.Base62,
		Timestamp: p.Timestamp,
		WallMs:    p.WallMs,
		Node:      p.Node,
		Sequence:  p.Sequence,
	}, nil
}
