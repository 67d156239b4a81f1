package apiv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	connect_go "github.com/bufbuild/connect-go"

	v1 "droscher.com/DrinkCatalog/pkg/server/grpc/api/v1"
)

// UserServiceName is the fully-qualified name of the UserService service.
const UserServiceName = "drinkcatalog.v1.UserService"

// Procedure paths of the UserService RPCs.
const (
	UserServiceAddUserProcedure        = "/drinkcatalog.v1.UserService/AddUser"
	UserServiceGetUserByEmailProcedure = "/drinkcatalog.v1.UserService/GetUserByEmail"
)

// UserServiceClient is a client for the drinkcatalog.v1.UserService service.
type UserServiceClient interface {
	AddUser(context.Context, *connect_go.Request[v1.AddUserRequest]) (*connect_go.Response[v1.AddUserResponse], error)
	GetUserByEmail(context.Context, *connect_go.Request[v1.GetUserByEmailRequest]) (*connect_go.Response[v1.GetUserByEmailResponse], error)
}

// NewUserServiceClient constructs a client for the drinkcatalog.v1.UserService service. Messages are always JSON encoded.
func NewUserServiceClient(httpClient connect_go.HTTPClient, baseURL string, opts ...connect_go.ClientOption) UserServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect_go.ClientOption{connect_go.WithCodec(JSONCodec{})}, opts...)

	return &userServiceClient{
		addUser:        connect_go.NewClient[v1.AddUserRequest, v1.AddUserResponse](httpClient, baseURL+UserServiceAddUserProcedure, opts...),
		getUserByEmail: connect_go.NewClient[v1.GetUserByEmailRequest, v1.GetUserByEmailResponse](httpClient, baseURL+UserServiceGetUserByEmailProcedure, opts...),
	}
}

type userServiceClient struct {
	addUser        *connect_go.Client[v1.AddUserRequest, v1.AddUserResponse]
	getUserByEmail *connect_go.Client[v1.GetUserByEmailRequest, v1.GetUserByEmailResponse]
}

func (c *userServiceClient) AddUser(ctx context.Context, req *connect_go.Request[v1.AddUserRequest]) (*connect_go.Response[v1.AddUserResponse], error) {
	return c.addUser.CallUnary(ctx, req)
}

func (c *userServiceClient) GetUserByEmail(ctx context.Context, req *connect_go.Request[v1.GetUserByEmailRequest]) (*connect_go.Response[v1.GetUserByEmailResponse], error) {
	return c.getUserByEmail.CallUnary(ctx, req)
}

// UserServiceHandler is implemented by the server side of the drinkcatalog.v1.UserService service.
type UserServiceHandler interface {
	AddUser(context.Context, *connect_go.Request[v1.AddUserRequest]) (*connect_go.Response[v1.AddUserResponse], error)
	GetUserByEmail(context.Context, *connect_go.Request[v1.GetUserByEmailRequest]) (*connect_go.Response[v1.GetUserByEmailResponse], error)
}

// NewUserServiceHandler builds an HTTP handler from the service implementation. It returns the path on
// which to mount the handler and the handler itself.
func NewUserServiceHandler(svc UserServiceHandler, opts ...connect_go.HandlerOption) (string, http.Handler) {
	opts = append([]connect_go.HandlerOption{connect_go.WithCodec(JSONCodec{})}, opts...)

	userServiceAddUserHandler := connect_go.NewUnaryHandler(UserServiceAddUserProcedure, svc.AddUser, opts...)
	userServiceGetUserByEmailHandler := connect_go.NewUnaryHandler(UserServiceGetUserByEmailProcedure, svc.GetUserByEmail, opts...)

	return "/drinkcatalog.v1.UserService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case UserServiceAddUserProcedure:
			userServiceAddUserHandler.ServeHTTP(w, r)
		case UserServiceGetUserByEmailProcedure:
			userServiceGetUserByEmailHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedUserServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedUserServiceHandler struct{}

func (UnimplementedUserServiceHandler) AddUser(context.Context, *connect_go.Request[v1.AddUserRequest]) (*connect_go.Response[v1.AddUserResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("drinkcatalog.v1.UserService.AddUser is not implemented"))
}

func (UnimplementedUserServiceHandler) GetUserByEmail(context.Context, *connect_go.Request[v1.GetUserByEmailRequest]) (*connect_go.Response[v1.GetUserByEmailResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("drinkcatalog.v1.UserService.GetUserByEmail is not implemented"))
}
