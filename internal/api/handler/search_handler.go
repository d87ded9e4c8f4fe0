package handler

import (
	"reel-go/internal/api/dto"
	"reel-go/internal/api/response"
	"reel-go/internal/service"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	searchService *service.SearchService
}

func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchVideos 视频搜索
// @Summary 视频搜索
// @Description 按标题、描述、作者搜索，Elasticsearch 不可用时降级为数据库模糊查询
// @Tags 搜索
// @Produce json
// @Security BearerAuth
// @Param q query string true "关键词"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(20)
// @Success 200 {object} response.Response{data=dto.SearchVideoData} "搜索成功"
// @Failure 400 {object} response.ErrorResponse "请求参数无效"
// @Router /search/videos [get]
func (h *SearchHandler) SearchVideos(c *gin.Context) {
	var req dto.SearchVideoRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		handleBindError(c, err)
		return
	}

	data, err := h.searchService.SearchVideos(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, "Search videos", err)
		return
	}

	response.OK(c, "搜索成功", data)
}
