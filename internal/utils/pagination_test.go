package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listParamsForQuery(t *testing.T, query string) *ReviewListParams {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/v1/reviews?"+query, nil)

	return GetReviewListParams(c)
}

func TestGetReviewListParams_Defaults(t *testing.T) {
	params := listParamsForQuery(t, "")

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, DefaultPageSize, params.PageSize)
	assert.Equal(t, SortRecent, params.Sort)
	assert.Empty(t, params.Product)
}

func TestGetReviewListParams_Clamping(t *testing.T) {
	params := listParamsForQuery(t, "page=0&page_size=100")
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, MaxPageSize, params.PageSize)

	params = listParamsForQuery(t, "page=-3&page_size=0")
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, MinPageSize, params.PageSize)
}

func TestGetReviewListParams_SortModes(t *testing.T) {
	assert.Equal(t, SortHighest, listParamsForQuery(t, "sort=highest").Sort)
	assert.Equal(t, SortLowest, listParamsForQuery(t, "sort=lowest").Sort)
	assert.Equal(t, SortRecent, listParamsForQuery(t, "sort=alphabetical").Sort)
}

func TestGetReviewListParams_ProductFilter(t *testing.T) {
	params := listParamsForQuery(t, "product=CRM+Solutions")
	assert.Equal(t, "CRM Solutions", params.Product)
}

func TestGetSkip(t *testing.T) {
	params := &ReviewListParams{Page: 3, PageSize: 6}
	assert.Equal(t, 12, params.GetSkip())
	assert.Equal(t, 6, params.GetLimit())
}

func TestCreatePaginationMeta(t *testing.T) {
	params := &ReviewListParams{Page: 1, PageSize: 6}
	meta := CreatePaginationMeta(params, 13)

	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, int64(13), meta.Total)
	assert.True(t, meta.HasNext)
	assert.False(t, meta.HasPrevious)
	require.NotNil(t, meta.NextPage)
	assert.Equal(t, 2, *meta.NextPage)
	assert.Nil(t, meta.PreviousPage)
}

func TestCreatePaginationMeta_LastPage(t *testing.T) {
	params := &ReviewListParams{Page: 3, PageSize: 6}
	meta := CreatePaginationMeta(params, 13)

	assert.False(t, meta.HasNext)
	assert.True(t, meta.HasPrevious)
	assert.Nil(t, meta.NextPage)
	require.NotNil(t, meta.PreviousPage)
	assert.Equal(t, 2, *meta.PreviousPage)
}

func TestCreatePaginationMeta_Empty(t *testing.T) {
	params := &ReviewListParams{Page: 1, PageSize: 6}
	meta := CreatePaginationMeta(params, 0)

	assert.Equal(t, 0, meta.TotalPages)
	assert.False(t, meta.HasNext)
	assert.False(t, meta.HasPrevious)
}
