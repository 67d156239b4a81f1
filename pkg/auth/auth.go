package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/bufbuild/connect-go"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"droscher.com/DrinkCatalog/configs"
	"droscher.com/DrinkCatalog/pkg/model"
	"droscher.com/DrinkCatalog/pkg/repository"
)

var ErrNotAuthenticated = errors.New("not authenticated")

type UserKey struct{}

type userRepository interface {
	GetUserFromEmail(ctx context.Context, email string) (*model.User, error)
}

type Manager struct {
	conf   *configs.Config
	repo   userRepository
	logger *zap.Logger
}

func NewAuthManager(conf *configs.Config, repo userRepository, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, repo: repo, logger: logger}
}

// GrpcAuthInterceptor resolves the bearer token's user into the request context. Requests without an
// Authorization header continue anonymously; handlers that need a user reject them via CurrentUser.
func (a *Manager) GrpcAuthInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			if req.Header().Get("Authorization") == "" {
				return next(ctx, req)
			}

			user, err := a.authenticate(ctx, req.Header())
			if err != nil {
				return nil, err
			}

			return next(context.WithValue(ctx, UserKey{}, user), req)
		}
	}
}

func (a *Manager) authenticate(ctx context.Context, header http.Header) (*model.User, error) {
	keyFunc := func(token *jwt.Token) (interface{}, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return []byte(a.conf.Auth.SecretKey), nil
	}

	accessToken, err := a.extractTokenFromHeader(header)
	if err != nil {
		return nil, err
	}

	token, err := jwt.ParseWithClaims(*accessToken, jwt.MapClaims{}, keyFunc)
	if err != nil {
		a.logger.Error("error parsing token", zap.Error(err))

		return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("error parsing token: %w", err))
	}

	claims, found := token.Claims.(jwt.MapClaims)
	if !found || !token.Valid {
		a.logger.Error("invalid token", zap.Any("claims", claims))

		return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("invalid token"))
	}

	if a.conf.Auth.Audience != "" && !claims.VerifyAudience(a.conf.Auth.Audience, true) {
		a.logger.Error("token for another audience", zap.Any("claims", claims))

		return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("invalid token audience"))
	}

	email, found := claims["email"].(string)
	if !found {
		a.logger.Error("unable to get user id from token", zap.Any("claims", claims))

		return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("unable to get user id from token"))
	}

	user, err := a.repo.GetUserFromEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("unknown user %q", email))
		}

		a.logger.Error("error authenticating user", zap.Error(err))

		return nil, connect.NewError(connect.CodeInternal, errors.New("error authenticating user"))
	}

	return user, nil
}

func (a *Manager) extractTokenFromHeader(header http.Header) (*string, error) {
	authorization := header.Get("Authorization")

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return nil, connect.NewError(connect.CodeUnauthenticated, errors.New("authorization format must be Bearer {token}"))
	}

	return &token, nil
}

// CurrentUser returns the authenticated user of the request.
func CurrentUser(ctx context.Context) (*model.User, error) {
	user, ok := ctx.Value(UserKey{}).(*model.User)
	if !ok || user == nil {
		return nil, connect.NewError(connect.CodeUnauthenticated, ErrNotAuthenticated)
	}

	return user, nil
}

func CurrentUserID(ctx context.Context) (uint, error) {
	user, err := CurrentUser(ctx)
	if err != nil {
		return 0, err
	}

	return user.ID, nil
}

// WithUser returns a context carrying user, as the interceptor would.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, UserKey{}, user)
}
