package intercepters

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/atinyakov/go-submission-handler/internal/middleware"
)

// requestIDKey is the metadata key of the request correlation ID.
var requestIDKey = strings.ToLower(middleware.RequestIDHeader)

// WithRequestID reuses the caller's x-request-id metadata or generates a
// UUID, injects it into the context and sends it back as a header.
func WithRequestID(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	var id string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if ids := md.Get(requestIDKey); len(ids) > 0 {
			id = ids[0]
		}
	}

	if id == "" {
		id = uuid.NewString()
	}

	_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDKey, id))

	return handler(middleware.InjectRequestID(ctx, id), req)
}
