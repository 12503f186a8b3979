package v2

import (
	"context"
	"errors"
	"time"

	"github.com/Totarae/TranslateApp/internal/model"
	"github.com/Totarae/TranslateApp/internal/service"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName     = "translator.v2.TranslatorService"
	TranslateMethod = "/" + ServiceName + "/Translate"
)

// Translator операция перевода, которую обслуживает gRPC-сервер.
type Translator interface {
	Translate(ctx context.Context, req model.TranslateRequest) (*model.TranslateResponse, error)
}

// TranslatorServiceServer серверная часть translator.v2.TranslatorService.
// Сообщения передаются как google.protobuf.Struct.
type TranslatorServiceServer interface {
	Translate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)
}

// ServiceDesc описание сервиса для grpc.Server.RegisterService.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TranslatorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Translate", Handler: translateHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "translator/v2/translator.proto",
}

func translateHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TranslatorServiceServer).Translate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: TranslateMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TranslatorServiceServer).Translate(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

type GRPCServer struct {
	Service Translator
	Logger  *zap.Logger
}

func NewGRPCServer(svc Translator, logger *zap.Logger) *GRPCServer {
	return &GRPCServer{Service: svc, Logger: logger}
}

// NewServer создаёт grpc.Server с зарегистрированным сервисом и логированием вызовов.
func NewServer(svc Translator, logger *zap.Logger) *grpc.Server {
	s := grpc.NewServer(grpc.UnaryInterceptor(LoggingInterceptor(logger)))
	s.RegisterService(&ServiceDesc, NewGRPCServer(svc, logger))
	return s
}

func (s *GRPCServer) Translate(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()

	var text string
	switch v := fields["text"].GetKind().(type) {
	case nil, *structpb.Value_NullValue:
	case *structpb.Value_StringValue:
		text = v.StringValue
	default:
		s.Logger.Error("Translation error", zap.String("stage", "decode"), zap.String("reason", "text is not a string"))
		return nil, status.Error(codes.Internal, service.ErrTranslationFailed.Error())
	}

	direction := model.EnToBn
	if d, ok := fields["direction"].GetKind().(*structpb.Value_StringValue); ok {
		direction = model.ParseDirection(d.StringValue)
	}

	result, err := s.Service.Translate(ctx, model.TranslateRequest{Text: text, Direction: direction})
	if err != nil {
		if errors.Is(err, service.ErrNoText) {
			return nil, status.Error(codes.InvalidArgument, service.ErrNoText.Error())
		}
		return nil, status.Error(codes.Internal, service.ErrTranslationFailed.Error())
	}

	out, err := structpb.NewStruct(map[string]any{
		"formatted":  result.Formatted,
		"translated": result.Translated,
		"combined":   result.Combined,
	})
	if err != nil {
		s.Logger.Error("Translation error", zap.String("stage", "encode"), zap.Error(err))
		return nil, status.Error(codes.Internal, service.ErrTranslationFailed.Error())
	}
	return out, nil
}

// LoggingInterceptor пишет в лог каждый unary-вызов.
func LoggingInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Info("gRPC Request",
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
			zap.Duration("duration", time.Since(start)),
		)
		return resp, err
	}
}

// Translate клиентский вызов translator.v2.TranslatorService/Translate.
func Translate(ctx context.Context, cc grpc.ClientConnInterface, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := cc.Invoke(ctx, TranslateMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
