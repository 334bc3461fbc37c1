// Package grpc exposes the submission service over gRPC. The service is
// described by hand with google.protobuf.Struct messages, so no generated
// code is required:
//
//	service SubmissionService {
//	  rpc Submit(google.protobuf.Struct) returns (google.protobuf.Struct);
//	}
package grpc

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/atinyakov/go-submission-handler/internal/app/service"
	"github.com/atinyakov/go-submission-handler/internal/intercepters"
	"github.com/atinyakov/go-submission-handler/internal/models"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "submission.v1.SubmissionService"

// SubmitMethod is the full method name used by clients.
const SubmitMethod = "/" + ServiceName + "/Submit"

// SubmissionServer is the server API of SubmissionService.
type SubmissionServer interface {
	Submit(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// ServiceDesc registers SubmissionServer implementations with a grpc.Server.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SubmissionServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Submit",
			Handler:    submitHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "submission/v1/submission.proto",
}

func submitHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(SubmissionServer).Submit(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: SubmitMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(SubmissionServer).Submit(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// Server wraps the gRPC server and dependencies.
type Server struct {
	grpcServer *grpc.Server
	port       int
	logger     *zap.Logger
}

// New creates a gRPC server serving svc.
func New(logger *zap.Logger, svc service.SubmissionServiceIface, port int) *Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			intercepters.WithRequestID,
			logging.UnaryServerInterceptor(intercepters.InterceptorLogger(logger)),
		),
	)

	s.RegisterService(&ServiceDesc, &SubmissionHandler{Service: svc})

	return &Server{
		grpcServer: s,
		port:       port,
		logger:     logger,
	}
}

// Start runs the gRPC server until it is stopped.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", s.port))
	if err != nil {
		s.logger.Error("gRPC server failed to listen", zap.Error(err))
		return err
	}

	s.logger.Info("gRPC server listening on port", zap.Int("port", s.port))
	return s.grpcServer.Serve(lis)
}

// GracefulStop shuts down the server gracefully.
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}

// SubmissionHandler implements SubmissionServer on top of the service.
type SubmissionHandler struct {
	Service service.SubmissionServiceIface
}

// Submit treats the request Struct as the JSON body and incoming metadata
// as request headers.
func (h *SubmissionHandler) Submit(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	body, err := protojson.Marshal(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	resp := h.Service.Handle(ctx, models.Request{
		Method:  http.MethodPost,
		Headers: headersFromMetadata(ctx),
		Body:    body,
	})

	if resp.StatusCode != http.StatusOK {
		return nil, statusFromResponse(resp)
	}

	out := new(structpb.Struct)
	if err := protojson.Unmarshal(resp.Body, out); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return out, nil
}

func headersFromMetadata(ctx context.Context) models.Headers {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return models.Headers{}
	}

	h := make(models.Headers, len(md))
	for k, v := range md {
		h[strings.ToLower(k)] = strings.Join(v, ", ")
	}
	return h
}

func statusFromResponse(resp models.Response) error {
	var body models.ErrorResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return status.Error(codes.Internal, string(resp.Body))
	}

	msg := body.Error
	if body.Details != "" {
		msg += ": " + body.Details
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return status.Error(codes.InvalidArgument, msg)
	case http.StatusMethodNotAllowed:
		return status.Error(codes.Unimplemented, msg)
	default:
		return status.Error(codes.Internal, msg)
	}
}
