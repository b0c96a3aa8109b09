package idsvc

import (
	"context"
	"fmt"

	"github.com/rzbill/snowid/internal/runtime"
	"github.com/rzbill/snowid/pkg/snowid"
)

const defaultMaxCount = 1024

type Service struct{ rt *runtime.Runtime }

func New(rt *runtime.Runtime) *Service { return &Service{rt: rt} }

// Generated is one minted id in both representations.
type Generated struct {
	ID     uint64 `json:"id,string"`
	Base62 string `json:"base62"`
}

// Parts is the field breakdown of an id under the instance layout.
type Parts struct {
	ID        uint64 `json:"id,string"`
	Base62    string `json:"base62"`
	Timestamp uint64 `json:"timestamp"`
	WallMs    int64  `json:"wallMs"`
	Node      uint64 `json:"node"`
	Sequence  uint64 `json:"sequence"`
}

func (s *Service) maxCount() int {
	if n := s.rt.Config().GenerateMaxCount; n > 0 {
		return n
	}
	return defaultMaxCount
}

// Generate mints count ids. Count defaults to 1 and is capped by the
// configured per-call maximum.
func (s *Service) Generate(ctx context.Context, count int) ([]Generated, error) {
	if count <= 0 {
		count = 1
	}
	if max := s.maxCount(); count > max {
		return nil, fmt.Errorf("ids: count %d exceeds per-call maximum %d", count, max)
	}
	gen := s.rt.Generator()
	out := make([]Generated, 0, count)
	for i := 0; i < count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s62, raw := gen.GenerateBase62WithRaw()
		out = append(out, Generated{ID: raw, Base62: s62})
	}
	return out, nil
}

// Decompose splits a raw id into its fields under the instance layout.
func (s *Service) Decompose(ctx context.Context, id uint64) Parts {
	ts, node, seq := s.rt.Generator().Decompose(id)
	return Parts{
		ID:        id,
		Base62:    snowid.EncodeBase62(id),
		Timestamp: ts,
		WallMs:    s.rt.Layout().EpochMs() + int64(ts),
		Node:      node,
		Sequence:  seq,
	}
}

// DecomposeBase62 decodes a base62 string and splits the result.
func (s *Service) DecomposeBase62(ctx context.Context, s62 string) (Parts, error) {
	id, err := snowid.DecodeBase62(s62)
	if err != nil {
		return Parts{}, err
	}
	return s.Decompose(ctx, id), nil
}
