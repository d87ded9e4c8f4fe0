package handler

import (
	"reel-go/internal/api/dto"
	"reel-go/internal/api/response"
	"reel-go/internal/service"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaService *service.MediaService
}

func NewMediaHandler(mediaService *service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// CreateUploadURL 申请直传地址
// @Summary 申请视频直传地址
// @Description 返回预签名 PUT 地址，客户端直接上传到对象存储，完成后用 video_url 发布视频
// @Tags 视频
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UploadURLRequest true "文件信息"
// @Success 200 {object} response.Response{data=dto.UploadURLData} "获取成功"
// @Failure 400 {object} response.ErrorResponse "不支持的文件格式"
// @Router /videos/upload-url [post]
func (h *MediaHandler) CreateUploadURL(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req dto.UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindError(c, err)
		return
	}

	data, err := h.mediaService.CreateUploadURL(c.Request.Context(), userID, &req)
	if err != nil {
		handleServiceError(c, "Create upload url", err)
		return
	}

	response.OK(c, "获取成功", data)
}
