package server

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bufbuild/connect-go"
	"go.uber.org/zap"

	"droscher.com/DrinkCatalog/pkg/repository"
	"droscher.com/DrinkCatalog/pkg/server/grpc"
	api "droscher.com/DrinkCatalog/pkg/server/grpc/api/v1"
	"droscher.com/DrinkCatalog/pkg/server/grpc/api/v1/apiv1connect"
)

type UserServer struct {
	apiv1connect.UnimplementedUserServiceHandler
	repository repository.UserRepository
	logger     *zap.Logger
}

func NewUserServer(repository repository.UserRepository, logger *zap.Logger) *UserServer {
	return &UserServer{repository: repository, logger: logger}
}

// AddUser registers a regular user; administrators are promoted in the database.
func (u *UserServer) AddUser(ctx context.Context, request *connect.Request[api.AddUserRequest]) (*connect.Response[api.AddUserResponse], error) {
	email := strings.TrimSpace(request.Msg.Email)
	if email == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("%w: email is required", ErrInvalidInput))
	}

	user, err := u.repository.AddUser(ctx, strings.TrimSpace(request.Msg.Name), email, false)
	if err != nil {
		return nil, toConnectError(u.logger, "add user", err)
	}

	return connect.NewResponse(&api.AddUserResponse{User: grpc.UserFromModel(user)}), nil
}

func (u *UserServer) GetUserByEmail(ctx context.Context, request *connect.Request[api.GetUserByEmailRequest]) (*connect.Response[api.GetUserByEmailResponse], error) {
	user, err := u.repository.GetUserFromEmail(ctx, request.Msg.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, connect.NewError(connect.CodeNotFound, err)
		}

		return nil, toConnectError(u.logger, "get user", err)
	}

	return connect.NewResponse(&api.GetUserByEmailResponse{User: grpc.UserFromModel(user)}), nil
}
