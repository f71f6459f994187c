package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ReviewListParams are the query controls for the public review listing.
type ReviewListParams struct {
	Page     int    `json:"page" form:"page"`
	PageSize int    `json:"page_size" form:"page_size"`
	Sort     string `json:"sort" form:"sort"`
	Product  string `json:"product" form:"product"`
}

type PaginationMeta struct {
	Page         int   `json:"page"`
	PageSize     int   `json:"page_size"`
	Total        int64 `json:"total"`
	TotalPages   int   `json:"total_pages"`
	HasNext      bool  `json:"has_next"`
	HasPrevious  bool  `json:"has_previous"`
	NextPage     *int  `json:"next_page,omitempty"`
	PreviousPage *int  `json:"previous_page,omitempty"`
}

func GetReviewListParams(c *gin.Context) *ReviewListParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(DefaultPageSize)))
	sort := c.DefaultQuery("sort", SortRecent)
	product := c.Query("product")

	if page < 1 {
		page = 1
	}

	if pageSize < MinPageSize {
		pageSize = MinPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	if sort != SortRecent && sort != SortHighest && sort != SortLowest {
		sort = SortRecent
	}

	return &ReviewListParams{
		Page:     page,
		PageSize: pageSize,
		Sort:     sort,
		Product:  product,
	}
}

func (p *ReviewListParams) GetSkip() int {
	return (p.Page - 1) * p.PageSize
}

func (p *ReviewListParams) GetLimit() int {
	return p.PageSize
}

func CreatePaginationMeta(params *ReviewListParams, total int64) *PaginationMeta {
	totalPages := int(math.Ceil(float64(total) / float64(params.PageSize)))

	meta := &PaginationMeta{
		Page:        params.Page,
		PageSize:    params.PageSize,
		Total:       total,
		TotalPages:  totalPages,
		HasNext:     params.Page < totalPages,
		HasPrevious: params.Page > 1,
	}

	if meta.HasNext {
		nextPage := params.Page + 1
		meta.NextPage = &nextPage
	}

	if meta.HasPrevious {
		previousPage := params.Page - 1
		meta.PreviousPage = &previousPage
	}

	return meta
}
