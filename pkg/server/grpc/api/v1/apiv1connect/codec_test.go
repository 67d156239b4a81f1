package apiv1connect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "droscher.com/DrinkCatalog/pkg/server/grpc/api/v1"
	"droscher.com/DrinkCatalog/pkg/server/grpc/api/v1/apiv1connect"
)

func TestJSONCodec_EmptyBodyLeavesZeroMessage(t *testing.T) {
	var request v1.ListBrandsRequest

	require.NoError(t, apiv1connect.JSONCodec{}.Unmarshal(nil, &request))
}

func TestJSONCodec_UsesFieldNames(t *testing.T) {
	data, err := apiv1connect.JSONCodec{}.Marshal(&v1.FavoriteRequest{DrinkId: 4})

	require.NoError(t, err)
	assert.JSONEq(t, `{"drinkId":4}`, string(data))
}

func TestJSONCodec_RejectsGarbage(t *testing.T) {
	var request v1.SearchRequest

	err := apiv1connect.JSONCodec{}.Unmarshal([]byte("{"), &request)

	assert.ErrorContains(t, err, "invalid json message")
}
