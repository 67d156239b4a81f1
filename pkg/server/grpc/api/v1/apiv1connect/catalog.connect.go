package apiv1connect

import (
	"context"
	"errors"
	"net/http"
	"strings"

	connect_go "github.com/bufbuild/connect-go"

	v1 "droscher.com/DrinkCatalog/pkg/server/grpc/api/v1"
)

// CatalogServiceName is the fully-qualified name of the CatalogService service.
const CatalogServiceName = "drinkcatalog.v1.CatalogService"

// Procedure paths of the CatalogService RPCs.
const (
	CatalogServiceSearchProcedure           = "/drinkcatalog.v1.CatalogService/Search"
	CatalogServiceGetDrinkProcedure         = "/drinkcatalog.v1.CatalogService/GetDrink"
	CatalogServiceListCategoriesProcedure   = "/drinkcatalog.v1.CatalogService/ListCategories"
	CatalogServiceListBrandsProcedure       = "/drinkcatalog.v1.CatalogService/ListBrands"
	CatalogServiceCreateDrinkProcedure      = "/drinkcatalog.v1.CatalogService/CreateDrink"
	CatalogServiceUpdateDrinkProcedure      = "/drinkcatalog.v1.CatalogService/UpdateDrink"
	CatalogServiceDeleteDrinkProcedure      = "/drinkcatalog.v1.CatalogService/DeleteDrink"
	CatalogServiceAddFavoriteProcedure      = "/drinkcatalog.v1.CatalogService/AddFavorite"
	CatalogServiceRemoveFavoriteProcedure   = "/drinkcatalog.v1.CatalogService/RemoveFavorite"
	CatalogServiceIsFavoriteProcedure       = "/drinkcatalog.v1.CatalogService/IsFavorite"
	CatalogServiceListFavoritesProcedure    = "/drinkcatalog.v1.CatalogService/ListFavorites"
	CatalogServiceRecordVoteProcedure       = "/drinkcatalog.v1.CatalogService/RecordVote"
	CatalogServiceGetFeaturedDrinkProcedure = "/drinkcatalog.v1.CatalogService/GetFeaturedDrink"
	CatalogServiceTopVotedDrinkIdProcedure  = "/drinkcatalog.v1.CatalogService/TopVotedDrinkId"
	CatalogServiceRandomDrinkIdProcedure    = "/drinkcatalog.v1.CatalogService/RandomDrinkId"
	CatalogServiceAddReviewProcedure        = "/drinkcatalog.v1.CatalogService/AddReview"
	CatalogServiceGetReviewsProcedure       = "/drinkcatalog.v1.CatalogService/GetReviews"
	CatalogServiceSuggestDrinkProcedure     = "/drinkcatalog.v1.CatalogService/SuggestDrink"
)

// CatalogServiceClient is a client for the drinkcatalog.v1.CatalogService service.
type CatalogServiceClient interface {
	Search(context.Context, *connect_go.Request[v1.SearchRequest]) (*connect_go.Response[v1.SearchResponse], error)
	GetDrink(context.Context, *connect_go.Request[v1.GetDrinkRequest]) (*connect_go.Response[v1.GetDrinkResponse], error)
	ListCategories(context.Context, *connect_go.Request[v1.ListCategoriesRequest]) (*connect_go.Response[v1.ListCategoriesResponse], error)
	ListBrands(context.Context, *connect_go.Request[v1.ListBrandsRequest]) (*connect_go.Response[v1.ListBrandsResponse], error)
	CreateDrink(context.Context, *connect_go.Request[v1.CreateDrinkRequest]) (*connect_go.Response[v1.CreateDrinkResponse], error)
	UpdateDrink(context.Context, *connect_go.Request[v1.UpdateDrinkRequest]) (*connect_go.Response[v1.UpdateDrinkResponse], error)
	DeleteDrink(context.Context, *connect_go.Request[v1.DeleteDrinkRequest]) (*connect_go.Response[v1.DeleteDrinkResponse], error)
	AddFavorite(context.Context, *connect_go.Request[v1.FavoriteRequest]) (*connect_go.Response[v1.FavoriteResponse], error)
	RemoveFavorite(context.Context, *connect_go.Request[v1.FavoriteRequest]) (*connect_go.Response[v1.FavoriteResponse], error)
	IsFavorite(context.Context, *connect_go.Request[v1.FavoriteRequest]) (*connect_go.Response[v1.FavoriteResponse], error)
	ListFavorites(context.Context, *connect_go.Request[v1.ListFavoritesRequest]) (*connect_go.Response[v1.ListFavoritesResponse], error)
	RecordVote(context.Context, *connect_go.Request[v1.RecordVoteRequest]) (*connect_go.Response[v1.RecordVoteResponse], error)
	GetFeaturedDrink(context.Context, *connect_go.Request[v1.GetFeaturedDrinkRequest]) (*connect_go.Response[v1.GetFeaturedDrinkResponse], error)
	TopVotedDrinkId(context.Context, *connect_go.Request[v1.DrinkIdRequest]) (*connect_go.Response[v1.DrinkIdResponse], error)
	RandomDrinkId(context.Context, *connect_go.Request[v1.DrinkIdRequest]) (*connect_go.Response[v1.DrinkIdResponse], error)
	AddReview(context.Context, *connect_go.Request[v1.AddReviewRequest]) (*connect_go.Response[v1.AddReviewResponse], error)
	GetReviews(context.Context, *connect_go.Request[v1.GetReviewsRequest]) (*connect_go.Response[v1.GetReviewsResponse], error)
	SuggestDrink(context.Context, *connect_go.Request[v1.SuggestDrinkRequest]) (*connect_go.Response[v1.SuggestDrinkResponse], error)
}

// NewCatalogServiceClient constructs a client for the drinkcatalog.v1.CatalogService service. Messages are always JSON encoded.
func NewCatalogServiceClient(httpClient connect_go.HTTPClient, baseURL string, opts ...connect_go.ClientOption) CatalogServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect_go.ClientOption{connect_go.WithCodec(JSONCodec{})}, opts...)

	return &catalogServiceClient{
		search:           connect_go.NewClient[v1.SearchRequest, v1.SearchResponse](httpClient, baseURL+CatalogServiceSearchProcedure, opts...),
		getDrink:         connect_go.NewClient[v1.GetDrinkRequest, v1.GetDrinkResponse](httpClient, baseURL+CatalogServiceGetDrinkProcedure, opts...),
		listCategories:   connect_go.NewClient[v1.ListCategoriesRequest, v1.ListCategoriesResponse](httpClient, baseURL+CatalogServiceListCategoriesProcedure, opts...),
		listBrands:       connect_go.NewClient[v1.ListBrandsRequest, v1.ListBrandsResponse](httpClient, baseURL+CatalogServiceListBrandsProcedure, opts...),
		createDrink:      connect_go.NewClient[v1.CreateDrinkRequest, v1.CreateDrinkResponse](httpClient, baseURL+CatalogServiceCreateDrinkProcedure, opts...),
		updateDrink:      connect_go.NewClient[v1.UpdateDrinkRequest, v1.UpdateDrinkResponse](httpClient, baseURL+CatalogServiceUpdateDrinkProcedure, opts...),
		deleteDrink:      connect_go.NewClient[v1.DeleteDrinkRequest, v1.DeleteDrinkResponse](httpClient, baseURL+CatalogServiceDeleteDrinkProcedure, opts...),
		addFavorite:      connect_go.NewClient[v1.FavoriteRequest, v1.FavoriteResponse](httpClient, baseURL+CatalogServiceAddFavoriteProcedure, opts...),
		removeFavorite:   connect_go.NewClient[v1.FavoriteRequest, v1.FavoriteResponse](httpClient, baseURL+CatalogServiceRemoveFavoriteProcedure, opts...),
		isFavorite:       connect_go.NewClient[v1.FavoriteRequest, v1.FavoriteResponse](httpClient, baseURL+CatalogServiceIsFavoriteProcedure, opts...),
		listFavorites:    connect_go.NewClient[v1.ListFavoritesRequest, v1.ListFavoritesResponse](httpClient, baseURL+CatalogServiceListFavoritesProcedure, opts...),
		recordVote:       connect_go.NewClient[v1.RecordVoteRequest, v1.RecordVoteResponse](httpClient, baseURL+CatalogServiceRecordVoteProcedure, opts...),
		getFeaturedDrink: connect_go.NewClient[v1.GetFeaturedDrinkRequest, v1.GetFeaturedDrinkResponse](httpClient, baseURL+CatalogServiceGetFeaturedDrinkProcedure, opts...),
		topVotedDrinkId:  connect_go.NewClient[v1.DrinkIdRequest, v1.DrinkIdResponse](httpClient, baseURL+CatalogServiceTopVotedDrinkIdProcedure, opts...),
		randomDrinkId:    connect_go.NewClient[v1.DrinkIdRequest, v1.DrinkIdResponse](httpClient, baseURL+CatalogServiceRandomDrinkIdProcedure, opts...),
		addReview:        connect_go.NewClient[v1.AddReviewRequest, v1.AddReviewResponse](httpClient, baseURL+CatalogServiceAddReviewProcedure, opts...),
		getReviews:       connect_go.NewClient[v1.GetReviewsRequest, v1.GetReviewsResponse](httpClient, baseURL+CatalogServiceGetReviewsProcedure, opts...),
		suggestDrink:     connect_go.NewClient[v1.SuggestDrinkRequest, v1.SuggestDrinkResponse](httpClient, baseURL+CatalogServiceSuggestDrinkProcedure, opts...),
	}
}

type catalogServiceClient struct {
	search           *connect_go.Client[v1.SearchRequest, v1.SearchResponse]
	getDrink         *connect_go.Client[v1.GetDrinkRequest, v1.GetDrinkResponse]
	listCategories   *connect_go.Client[v1.ListCategoriesRequest, v1.ListCategoriesResponse]
	listBrands       *connect_go.Client[v1.ListBrandsRequest, v1.ListBrandsResponse]
	createDrink      *connect_go.Client[v1.CreateDrinkRequest, v1.CreateDrinkResponse]
	updateDrink      *connect_go.Client[v1.UpdateDrinkRequest, v1.UpdateDrinkResponse]
	deleteDrink      *connect_go.Client[v1.DeleteDrinkRequest, v1.DeleteDrinkResponse]
	addFavorite      *connect_go.Client[v1.FavoriteRequest, v1.FavoriteResponse]
	removeFavorite   *connect_go.Client[v1.FavoriteRequest, v1.FavoriteResponse]
	isFavorite       *connect_go.Client[v1.FavoriteRequest, v1.FavoriteResponse]
	listFavorites    *connect_go.Client[v1.ListFavoritesRequest, v1.ListFavoritesResponse]
	recordVote       *connect_go.Client[v1.RecordVoteRequest, v1.RecordVoteResponse]
	getFeaturedDrink *connect_go.Client[v1.GetFeaturedDrinkRequest, v1.GetFeaturedDrinkResponse]
	topVotedDrinkId  *connect_go.Client[v1.DrinkIdRequest, v1.DrinkIdResponse]
	randomDrinkId    *connect_go.Client[v1.DrinkIdRequest, v1.DrinkIdResponse]
	addReview        *connect_go.Client[v1.AddReviewRequest, v1.AddReviewResponse]
	getReviews       *connect_go.Client[v1.GetReviewsRequest, v1.GetReviewsResponse]
	suggestDrink     *connect_go.Client[v1.SuggestDrinkRequest, v1.SuggestDrinkResponse]
}

func (c *catalogServiceClient) Search(ctx context.Context, req *connect_go.Request[v1.SearchRequest]) (*connect_go.Response[v1.SearchResponse], error) {
	return c.search.CallUnary(ctx, req)
}

func (c *catalogServiceClient) GetDrink(ctx context.Context, req *connect_go.Request[v1.GetDrinkRequest]) (*connect_go.Response[v1.GetDrinkResponse], error) {
	return c.getDrink.CallUnary(ctx, req)
}

func (c *catalogServiceClient) ListCategories(ctx context.Context, req *connect_go.Request[v1.ListCategoriesRequest]) (*connect_go.Response[v1.ListCategoriesResponse], error) {
	return c.listCategories.CallUnary(ctx, req)
}

func (c *catalogServiceClient) ListBrands(ctx context.Context, req *connect_go.Request[v1.ListBrandsRequest]) (*connect_go.Response[v1.ListBrandsResponse], error) {
	return c.listBrands.CallUnary(ctx, req)
}

func (c *catalogServiceClient) CreateDrink(ctx context.Context, req *connect_go.Request[v1.CreateDrinkRequest]) (*connect_go.Response[v1.CreateDrinkResponse], error) {
	return c.createDrink.CallUnary(ctx, req)
}

func (c *catalogServiceClient) UpdateDrink(ctx context.Context, req *connect_go.Request[v1.UpdateDrinkRequest]) (*connect_go.Response[v1.UpdateDrinkResponse], error) {
	return c.updateDrink.CallUnary(ctx, req)
}

func (c *catalogServiceClient) DeleteDrink(ctx context.Context, req *connect_go.Request[v1.DeleteDrinkRequest]) (*connect_go.Response[v1.DeleteDrinkResponse], error) {
	return c.deleteDrink.CallUnary(ctx, req)
}

func (c *catalogServiceClient) AddFavorite(ctx context.Context, req *connect_go.Request[v1.FavoriteRequest]) (*connect_go.Response[v1.FavoriteResponse], error) {
	return c.addFavorite.CallUnary(ctx, req)
}

func (c *catalogServiceClient) RemoveFavorite(ctx context.Context, req *connect_go.Request[v1.FavoriteRequest]) (*connect_go.Response[v1.FavoriteResponse], error) {
	return c.removeFavorite.CallUnary(ctx, req)
}

func (c *catalogServiceClient) IsFavorite(ctx context.Context, req *connect_go.Request[v1.FavoriteRequest]) (*connect_go.Response[v1.FavoriteResponse], error) {
	return c.isFavorite.CallUnary(ctx, req)
}

func (c *catalogServiceClient) ListFavorites(ctx context.Context, req *connect_go.Request[v1.ListFavoritesRequest]) (*connect_go.Response[v1.ListFavoritesResponse], error) {
	return c.listFavorites.CallUnary(ctx, req)
}

func (c *catalogServiceClient) RecordVote(ctx context.Context, req *connect_go.Request[v1.RecordVoteRequest]) (*connect_go.Response[v1.RecordVoteResponse], error) {
	return c.recordVote.CallUnary(ctx, req)
}

func (c *catalogServiceClient) GetFeaturedDrink(ctx context.Context, req *connect_go.Request[v1.GetFeaturedDrinkRequest]) (*connect_go.Response[v1.GetFeaturedDrinkResponse], error) {
	return c.getFeaturedDrink.CallUnary(ctx, req)
}

func (c *catalogServiceClient) TopVotedDrinkId(ctx context.Context, req *connect_go.Request[v1.DrinkIdRequest]) (*connect_go.Response[v1.DrinkIdResponse], error) {
	return c.topVotedDrinkId.CallUnary(ctx, req)
}

func (c *catalogServiceClient) RandomDrinkId(ctx context.Context, req *connect_go.Request[v1.DrinkIdRequest]) (*connect_go.Response[v1.DrinkIdResponse], error) {
	return c.randomDrinkId.CallUnary(ctx, req)
}

func (c *catalogServiceClient) AddReview(ctx context.Context, req *connect_go.Request[v1.AddReviewRequest]) (*connect_go.Response[v1.AddReviewResponse], error) {
	return c.addReview.CallUnary(ctx, req)
}

func (c *catalogServiceClient) GetReviews(ctx context.Context, req *connect_go.Request[v1.GetReviewsRequest]) (*connect_go.Response[v1.GetReviewsResponse], error) {
	return c.getReviews.CallUnary(ctx, req)
}

func (c *catalogServiceClient) SuggestDrink(ctx context.Context, req *connect_go.Request[v1.SuggestDrinkRequest]) (*connect_go.Response[v1.SuggestDrinkResponse], error) {
	return c.suggestDrink.CallUnary(ctx, req)
}

// CatalogServiceHandler is implemented by the server side of the drinkcatalog.v1.CatalogService service.
type CatalogServiceHandler interface {
	Search(context.Context, *connect_go.Request[v1.SearchRequest]) (*connect_go.Response[v1.SearchResponse], error)
	GetDrink(context.Context, *connect_go.Request[v1.GetDrinkRequest]) (*connect_go.Response[v1.GetDrinkResponse], error)
	ListCategories(context.Context, *connect_go.Request[v1.ListCategoriesRequest]) (*connect_go.Response[v1.ListCategoriesResponse], error)
	ListBrands(context.Context, *connect_go.Request[v1.ListBrandsRequest]) (*connect_go.Response[v1.ListBrandsResponse], error)
	CreateDrink(context.Context, *connect_go.Request[v1.CreateDrinkRequest]) (*connect_go.Response[v1.CreateDrinkResponse], error)
	UpdateDrink(context.Context, *connect_go.Request[v1.UpdateDrinkRequest]) (*connect_go.Response[v1.UpdateDrinkResponse], error)
	DeleteDrink(context.Context, *connect_go.Request[v1.DeleteDrinkRequest]) (*connect_go.Response[v1.DeleteDrinkResponse], error)
	AddFavorite(context.Context, *connect_go.Request[v1.FavoriteRequest]) (*connect_go.Response[v1.FavoriteResponse], error)
	RemoveFavorite(context.Context, *connect_go.Request[v1.FavoriteRequest]) (*connect_go.Response[v1.FavoriteResponse], error)
	IsFavorite(context.Context, *connect_go.Request[v1.FavoriteRequest]) (*connect_go.Response[v1.FavoriteResponse], error)
	ListFavorites(context.Context, *connect_go.Request[v1.ListFavoritesRequest]) (*connect_go.Response[v1.ListFavoritesResponse], error)
	RecordVote(context.Context, *connect_go.Request[v1.RecordVoteRequest]) (*connect_go.Response[v1.RecordVoteResponse], error)
	GetFeaturedDrink(context.Context, *connect_go.Request[v1.GetFeaturedDrinkRequest]) (*connect_go.Response[v1.GetFeaturedDrinkResponse], error)
	TopVotedDrinkId(context.Context, *connect_go.Request[v1.DrinkIdRequest]) (*connect_go.Response[v1.DrinkIdResponse], error)
	RandomDrinkId(context.Context, *connect_go.Request[v1.DrinkIdRequest]) (*connect_go.Response[v1.DrinkIdResponse], error)
	AddReview(context.Context, *connect_go.Request[v1.AddReviewRequest]) (*connect_go.Response[v1.AddReviewResponse], error)
	GetReviews(context.Context, *connect_go.Request[v1.GetReviewsRequest]) (*connect_go.Response[v1.GetReviewsResponse], error)
	SuggestDrink(context.Context, *connect_go.Request[v1.SuggestDrinkRequest]) (*connect_go.Response[v1.SuggestDrinkResponse], error)
}

// NewCatalogServiceHandler builds an HTTP handler from the service implementation. It returns the path on
// which to mount the handler and the handler itself.
func NewCatalogServiceHandler(svc CatalogServiceHandler, opts ...connect_go.HandlerOption) (string, http.Handler) {
	opts = append([]connect_go.HandlerOption{connect_go.WithCodec(JSONCodec{})}, opts...)

	catalogServiceSearchHandler := connect_go.NewUnaryHandler(CatalogServiceSearchProcedure, svc.Search, opts...)
	catalogServiceGetDrinkHandler := connect_go.NewUnaryHandler(CatalogServiceGetDrinkProcedure, svc.GetDrink, opts...)
	catalogServiceListCategoriesHandler := connect_go.NewUnaryHandler(CatalogServiceListCategoriesProcedure, svc.ListCategories, opts...)
	catalogServiceListBrandsHandler := connect_go.NewUnaryHandler(CatalogServiceListBrandsProcedure, svc.ListBrands, opts...)
	catalogServiceCreateDrinkHandler := connect_go.NewUnaryHandler(CatalogServiceCreateDrinkProcedure, svc.CreateDrink, opts...)
	catalogServiceUpdateDrinkHandler := connect_go.NewUnaryHandler(CatalogServiceUpdateDrinkProcedure, svc.UpdateDrink, opts...)
	catalogServiceDeleteDrinkHandler := connect_go.NewUnaryHandler(CatalogServiceDeleteDrinkProcedure, svc.DeleteDrink, opts...)
	catalogServiceAddFavoriteHandler := connect_go.NewUnaryHandler(CatalogServiceAddFavoriteProcedure, svc.AddFavorite, opts...)
	catalogServiceRemoveFavoriteHandler := connect_go.NewUnaryHandler(CatalogServiceRemoveFavoriteProcedure, svc.RemoveFavorite, opts...)
	catalogServiceIsFavoriteHandler := connect_go.NewUnaryHandler(CatalogServiceIsFavoriteProcedure, svc.IsFavorite, opts...)
	catalogServiceListFavoritesHandler := connect_go.NewUnaryHandler(CatalogServiceListFavoritesProcedure, svc.ListFavorites, opts...)
	catalogServiceRecordVoteHandler := connect_go.NewUnaryHandler(CatalogServiceRecordVoteProcedure, svc.RecordVote, opts...)
	catalogServiceGetFeaturedDrinkHandler := connect_go.NewUnaryHandler(CatalogServiceGetFeaturedDrinkProcedure, svc.GetFeaturedDrink, opts...)
	catalogServiceTopVotedDrinkIdHandler := connect_go.NewUnaryHandler(CatalogServiceTopVotedDrinkIdProcedure, svc.TopVotedDrinkId, opts...)
	catalogServiceRandomDrinkIdHandler := connect_go.NewUnaryHandler(CatalogServiceRandomDrinkIdProcedure, svc.RandomDrinkId, opts...)
	catalogServiceAddReviewHandler := connect_go.NewUnaryHandler(CatalogServiceAddReviewProcedure, svc.AddReview, opts...)
	catalogServiceGetReviewsHandler := connect_go.NewUnaryHandler(CatalogServiceGetReviewsProcedure, svc.GetReviews, opts...)
	catalogServiceSuggestDrinkHandler := connect_go.NewUnaryHandler(CatalogServiceSuggestDrinkProcedure, svc.SuggestDrink, opts...)

	return "/drinkcatalog.v1.CatalogService/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case CatalogServiceSearchProcedure:
			catalogServiceSearchHandler.ServeHTTP(w, r)
		case CatalogServiceGetDrinkProcedure:
			catalogServiceGetDrinkHandler.ServeHTTP(w, r)
		case CatalogServiceListCategoriesProcedure:
			catalogServiceListCategoriesHandler.ServeHTTP(w, r)
		case CatalogServiceListBrandsProcedure:
			catalogServiceListBrandsHandler.ServeHTTP(w, r)
		case CatalogServiceCreateDrinkProcedure:
			catalogServiceCreateDrinkHandler.ServeHTTP(w, r)
		case CatalogServiceUpdateDrinkProcedure:
			catalogServiceUpdateDrinkHandler.ServeHTTP(w, r)
		case CatalogServiceDeleteDrinkProcedure:
			catalogServiceDeleteDrinkHandler.ServeHTTP(w, r)
		case CatalogServiceAddFavoriteProcedure:
			catalogServiceAddFavoriteHandler.ServeHTTP(w, r)
		case CatalogServiceRemoveFavoriteProcedure:
			catalogServiceRemoveFavoriteHandler.ServeHTTP(w, r)
		case CatalogServiceIsFavoriteProcedure:
			catalogServiceIsFavoriteHandler.ServeHTTP(w, r)
		case CatalogServiceListFavoritesProcedure:
			catalogServiceListFavoritesHandler.ServeHTTP(w, r)
		case CatalogServiceRecordVoteProcedure:
			catalogServiceRecordVoteHandler.ServeHTTP(w, r)
		case CatalogServiceGetFeaturedDrinkProcedure:
			catalogServiceGetFeaturedDrinkHandler.ServeHTTP(w, r)
		case CatalogServiceTopVotedDrinkIdProcedure:
			catalogServiceTopVotedDrinkIdHandler.ServeHTTP(w, r)
		case CatalogServiceRandomDrinkIdProcedure:
			catalogServiceRandomDrinkIdHandler.ServeHTTP(w, r)
		case CatalogServiceAddReviewProcedure:
			catalogServiceAddReviewHandler.ServeHTTP(w, r)
		case CatalogServiceGetReviewsProcedure:
			catalogServiceGetReviewsHandler.ServeHTTP(w, r)
		case CatalogServiceSuggestDrinkProcedure:
			catalogServiceSuggestDrinkHandler.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

// UnimplementedCatalogServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedCatalogServiceHandler struct{}

func (UnimplementedCatalogServiceHandler) Search(context.Context, *connect_go.Request[v1.SearchRequest]) (*connect_go.Response[v1.SearchResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("drinkcatalog.v1.CatalogService.Search is not implemented"))
}

func (UnimplementedCatalogServiceHandler) GetDrink(context.Context, *connect_go.Request[v1.GetDrinkRequest]) (*connect_go.Response[v1.GetDrinkResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("drinkcatalog.v1.CatalogService.GetDrink is not implemented"))
}

func (UnimplementedCatalogServiceHandler) ListCategories(context.Context, *connect_go.Request[v1.ListCategoriesRequest]) (*connect_go.Response[v1.ListCategoriesResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("drinkcatalog.v1.CatalogService.ListCategories is not implemented"))
}

func (UnimplementedCatalogServiceHandler) ListBrands(context.Context, *connect_go.Request[v1.ListBrandsRequest]) (*connect_go.Response[v1.ListBrandsResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("drinkcatalog.v1.CatalogService.ListBrands is not implemented"))
}

func (UnimplementedCatalogServiceHandler) CreateDrink(context.Context, *connect_go.Request[v1.CreateDrinkRequest]) (*connect_go.Response[v1.CreateDrinkResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("drinkcatalog.v1.CatalogService.CreateDrink is not implemented"))
}

func (UnimplementedCatalogServiceHandler) UpdateDrink(context.Context, *connect_go.Request[v1.UpdateDrinkRequest]) (*connect_go.Response[v1.UpdateDrinkResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("drinkcatalog.v1.CatalogService.UpdateDrink is not implemented"))
}

func (UnimplementedCatalogServiceHandler) DeleteDrink(context.Context, *connect_go.Request[v1.DeleteDrinkRequest]) (*connect_go.Response[v1.DeleteDrinkResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("drinkcatalog.v1.CatalogService.DeleteDrink is not implemented"))
}

func (UnimplementedCatalogServiceHandler) AddFavorite(context.Context, *connect_go.Request[v1.FavoriteRequest]) (*connect_go.Response[v1.FavoriteResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("drinkcatalog.v1.CatalogService.AddFavorite is not implemented"))
}

func (UnimplementedCatalogServiceHandler) RemoveFavorite(context.Context, *connect_go.Request[v1.FavoriteRequest]) (*connect_go.Response[v1.FavoriteResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("drinkcatalog.v1.CatalogService.RemoveFavorite is not implemented"))
}

func (UnimplementedCatalogServiceHandler) IsFavorite(context.Context, *connect_go.Request[v1.FavoriteRequest]) (*connect_go.Response[v1.FavoriteResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("drinkcatalog.v1.CatalogService.IsFavorite is not implemented"))
}

func (UnimplementedCatalogServiceHandler) ListFavorites(context.Context, *connect_go.Request[v1.ListFavoritesRequest]) (*connect_go.Response[v1.ListFavoritesResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("drinkcatalog.v1.CatalogService.ListFavorites is not implemented"))
}

func (UnimplementedCatalogServiceHandler) RecordVote(context.Context, *connect_go.Request[v1.RecordVoteRequest]) (*connect_go.Response[v1.RecordVoteResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("drinkcatalog.v1.CatalogService.RecordVote is not implemented"))
}

func (UnimplementedCatalogServiceHandler) GetFeaturedDrink(context.Context, *connect_go.Request[v1.GetFeaturedDrinkRequest]) (*connect_go.Response[v1.GetFeaturedDrinkResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("drinkcatalog.v1.CatalogService.GetFeaturedDrink is not implemented"))
}

func (UnimplementedCatalogServiceHandler) TopVotedDrinkId(context.Context, *connect_go.Request[v1.DrinkIdRequest]) (*connect_go.Response[v1.DrinkIdResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("drinkcatalog.v1.CatalogService.TopVotedDrinkId is not implemented"))
}

func (UnimplementedCatalogServiceHandler) RandomDrinkId(context.Context, *connect_go.Request[v1.DrinkIdRequest]) (*connect_go.Response[v1.DrinkIdResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("drinkcatalog.v1.CatalogService.RandomDrinkId is not implemented"))
}

func (UnimplementedCatalogServiceHandler) AddReview(context.Context, *connect_go.Request[v1.AddReviewRequest]) (*connect_go.Response[v1.AddReviewResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("drinkcatalog.v1.CatalogService.AddReview is not implemented"))
}

func (UnimplementedCatalogServiceHandler) GetReviews(context.Context, *connect_go.Request[v1.GetReviewsRequest]) (*connect_go.Response[v1.GetReviewsResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("drinkcatalog.v1.CatalogService.GetReviews is not implemented"))
}

func (UnimplementedCatalogServiceHandler) SuggestDrink(context.Context, *connect_go.Request[v1.SuggestDrinkRequest]) (*connect_go.Response[v1.SuggestDrinkResponse], error) {
	return nil, connect_go.NewError(connect_go.CodeUnimplemented, errors.New("drinkcatalog.v1.CatalogService.SuggestDrink is not implemented"))
}
