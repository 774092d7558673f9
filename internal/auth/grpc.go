package auth

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	authorizationKey = "authorization"
	bearerPrefix     = "bearer "
)

// UnaryServerInterceptor rejects calls without a valid bearer token. write
// reports whether a full method name mutates state and so needs the
// controller role. Verified claims are stored on the handler context.
func UnaryServerInterceptor(v *Verifier, write func(fullMethod string) bool) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		token, err := TokenFromMetadata(md)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		claims, err := v.Verify(token)
		if err != nil {
			return nil, status.Error(codes.Unauthenticated, err.Error())
		}
		if err := Authorize(claims, write != nil && write(info.FullMethod)); err != nil {
			return nil, status.Error(codes.PermissionDenied, err.Error())
		}
		return handler(ContextWithClaims(ctx, claims), req)
	}
}

// TokenFromMetadata extracts the token from an "authorization: Bearer" header.
func TokenFromMetadata(md metadata.MD) (string, error) {
	vals := md.Get(authorizationKey)
	if len(vals) == 0 {
		return "", fmt.Errorf("%w: missing %s metadata", ErrUnauthenticated, authorizationKey)
	}
	raw := strings.TrimSpace(vals[0])
	if len(raw) <= len(bearerPrefix) || !strings.EqualFold(raw[:len(bearerPrefix)], bearerPrefix) {
		return "", fmt.Errorf("%w: authorization is not a bearer token", ErrUnauthenticated)
	}
	return strings.TrimSpace(raw[len(bearerPrefix):]), nil
}

// TokenCredentials attaches a bearer token to every outgoing call.
type TokenCredentials struct {
	Token string
	// Secure requires a TLS transport before the token is sent.
	Secure bool
}

var _ credentials.PerRPCCredentials = TokenCredentials{}

// GetRequestMetadata implements credentials.PerRPCCredentials.
func (c TokenCredentials) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{authorizationKey: "Bearer " + c.Token}, nil
}

// RequireTransportSecurity implements credentials.PerRPCCredentials.
func (c TokenCredentials) RequireTransportSecurity() bool { return c.Secure }
