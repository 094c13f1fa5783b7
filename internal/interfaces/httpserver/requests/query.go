package requests

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/chaosweaver007/Genesis/internal/domain/query"
	"github.com/chaosweaver007/Genesis/internal/utils/platformerrors"
	"github.com/chaosweaver007/Genesis/internal/utils/ptr"
)

// GetPaginationFromQuery parses the optional limit/offset query parameters.
// Absent values stay nil so each repository applies its own default page size.
func GetPaginationFromQuery(reqCtx *gin.Context) (*query.Pagination, error) {
	var limit *int
	if limitStr := reqCtx.Query("limit"); limitStr != "" {
		limitInt, err := strconv.Atoi(limitStr)
		if err != nil || limitInt < 1 {
			return nil, platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerHandler, platformerrors.ErrorTypeValidation, "invalid limit number", nil, "31242368-7522-44e2-9898-a915acfd810c")
		}
		limit = ptr.ToInt(limitInt)
	}

	var offset *int
	if offsetStr := reqCtx.Query("offset"); offsetStr != "" {
		offsetInt, err := strconv.Atoi(offsetStr)
		if err != nil || offsetInt < 0 {
			return nil, platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerHandler, platformerrors.ErrorTypeValidation, "invalid offset number", nil, "0db42eb0-15f2-4b52-8c57-3d38d51cd000")
		}
		offset = ptr.ToInt(offsetInt)
	}

	return &query.Pagination{Limit: limit, Offset: offset}, nil
}
