package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	snowidv1 "github.com/rzbill/snowid/proto/gen/go/snowid/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// grpcAddrFromEnv returns the gRPC server address from SNOWID_GRPC or a default.
func grpcAddrFromEnv() string {
	if addr := os.Getenv("SNOWID_GRPC"); addr != "" {
		return addr
	}
	return "127.0.0.1:50051"
}

// httpBaseFromEnv returns the HTTP API base URL from SNOWID_HTTP or a default.
func httpBaseFromEnv() string {
	if base := os.Getenv("SNOWID_HTTP"); base != "" {
		return strings.TrimRight(base, "/")
	}
	return "http://127.0.0.1:8080"
}

// dialGRPCContext dials the snowid gRPC endpoint with insecure transport for local/dev.
func dialGRPCContext(ctx context.Context) (*grpc.ClientConn, error) {
	addr := grpcAddrFromEnv()
	return grpc.DialContext(ctx, addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

// withIdClient provides an IdService client and ensures the connection is closed.
func withIdClient(ctx context.Context, fn func(snowidv1.IdServiceClient) error) error {
	conn, err := dialGRPCContext(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = conn.Close() }()
	return fn(snowidv1.NewIdServiceClient(conn))
}

func httpGetJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, httpBaseFromEnv()+path, nil)
	if err != nil {
		return err
	}
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.StatusCode >= 300 {
		b, _ := io.ReadAll(res.Body)
		return fmt.Errorf("%s: %s", res.Status, strings.TrimSpace(string(b)))
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func httpPostJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, httpBaseFromEnv()+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.StatusCode >= 300 {
		b, _ := io.ReadAll(res.Body)
		return fmt.Errorf("%s: %s", res.Status, strings.TrimSpace(string(b)))
	}
	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
