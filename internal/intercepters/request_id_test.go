package intercepters_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/atinyakov/go-submission-handler/internal/intercepters"
	"github.com/atinyakov/go-submission-handler/internal/middleware"
)

func TestWithRequestID(t *testing.T) {
	tests := []struct {
		name string
		md   metadata.MD
		want string
	}{
		{name: "from metadata", md: metadata.Pairs("x-request-id", "rid-9"), want: "rid-9"},
		{name: "generated", md: metadata.MD{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := metadata.NewIncomingContext(context.Background(), tt.md)

			var seen string
			handler := func(ctx context.Context, req interface{}) (interface{}, error) {
				seen = middleware.RequestIDFromContext(ctx)
				return "ok", nil
			}

			resp, err := intercepters.WithRequestID(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/test"}, handler)
			require.NoError(t, err)
			assert.Equal(t, "ok", resp)

			if tt.want != "" {
				assert.Equal(t, tt.want, seen)
				return
			}
			_, err = uuid.Parse(seen)
			assert.NoError(t, err)
		})
	}
}
