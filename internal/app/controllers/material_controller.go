package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tanvir/materialhub/internal/app/models/dto"
	"github.com/tanvir/materialhub/internal/app/services"
	"github.com/tanvir/materialhub/internal/middleware"
	"github.com/tanvir/materialhub/internal/pkg/helpers"
)

// MaterialController handles material upload, listing, moderation and download
type MaterialController struct {
	materialService *services.MaterialService
}

// NewMaterialController creates a new MaterialController
func NewMaterialController(materialService *services.MaterialService) *MaterialController {
	return &MaterialController{
		materialService: materialService,
	}
}

// GetAllMaterials lists materials
// @Summary List materials
// @Description Retrieves materials with optional courseId, status and uploaderId filters. With scope=visible, authenticated non-moderators only see approved materials and their own uploads; anonymous callers only see approved ones.
// @Tags materials
// @Produce json
// @Param courseId query int false "Filter by course ID"
// @Param status query string false "Filter by status (pending, approved, denied)"
// @Param uploaderId query int false "Filter by uploader ID"
// @Param scope query string false "Set to 'visible' to apply visibility rules"
// @Param page query int false "Page number"
// @Param size query int false "Page size"
// @Success 200 {object} dto.MaterialListResponse "Materials retrieved"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /materials [get]
func (c *MaterialController) GetAllMaterials(ctx *gin.Context) {
	callerID, _ := middleware.GetUserID(ctx)
	callerRole, _ := middleware.GetUserRole(ctx)

	var req dto.MaterialFilterRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid query parameters"})
		return
	}
	req.Page, req.Size = helpers.ParsePaginationParams(ctx)

	materials, total, err := c.materialService.GetAll(ctx.Request.Context(), &req, callerID, callerRole)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	responses := make([]dto.MaterialResponse, 0, len(materials))
	for _, material := range materials {
		responses = append(responses, dto.NewMaterialResponse(material))
	}

	ctx.JSON(http.StatusOK, dto.MaterialListResponse{
		Materials:      responses,
		PaginationInfo: helpers.NewPaginationInfo(total, req.Page, req.Size),
	})
}

// UploadMaterial uploads a new material
// @Summary Upload a material
// @Description Uploads a PDF for a course. The material starts in pending status.
// @Tags materials
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Material title"
// @Param courseId formData int true "Course ID"
// @Param file formData file true "PDF file (max 20 MB)"
// @Success 201 {object} dto.MaterialResponse "Material uploaded"
// @Failure 400 {object} dto.ErrorResponse "Invalid upload data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Course not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /materials/upload [post]
func (c *MaterialController) UploadMaterial(ctx *gin.Context) {
	callerID, ok := middleware.GetUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Authentication required"})
		return
	}

	title := ctx.PostForm("title")

	courseID, err := strconv.ParseInt(ctx.PostForm("courseId"), 10, 64)
	if err != nil || courseID <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid course ID"})
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "A PDF file is required"})
		return
	}

	material, err := c.materialService.Upload(ctx.Request.Context(), callerID, title, courseID, fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMaterialResponse(material))
}

// UpdateMaterialStatus records a moderation decision
// @Summary Update material status
// @Description Sets a material's status to pending, approved or denied. Moderator or admin only.
// @Tags materials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Material ID"
// @Param request body dto.UpdateMaterialStatusRequest true "New status"
// @Success 200 {object} dto.MaterialResponse "Status updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid status"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /materials/{id}/status [patch]
func (c *MaterialController) UpdateMaterialStatus(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	var req dto.UpdateMaterialStatusRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	material, err := c.materialService.SetStatus(ctx.Request.Context(), id, req.Status)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMaterialResponse(material))
}

// DownloadMaterial serves a material's file as an attachment
// @Summary Download a material
// @Description Streams the material's PDF as an attachment and increments its download counter
// @Tags materials
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "Material ID"
// @Success 200 {file} file "PDF file"
// @Failure 400 {object} dto.ErrorResponse "Invalid material ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /materials/{id}/download [get]
func (c *MaterialController) DownloadMaterial(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	callerID, _ := middleware.GetUserID(ctx)
	callerRole, _ := middleware.GetUserRole(ctx)

	material, fullPath, err := c.materialService.Download(ctx.Request.Context(), id, callerID, callerRole)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.FileAttachment(fullPath, material.OriginalName)
}

// GetMaterialFile serves a stored file inline by its file id
// @Summary View a material's file
// @Description Streams the PDF inline by file id without counting a download
// @Tags materials
// @Produce application/pdf
// @Security BearerAuth
// @Param fileId path int true "File ID"
// @Success 200 {file} file "PDF file"
// @Failure 400 {object} dto.ErrorResponse "Invalid file ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "File not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /materials/file/{fileId} [get]
func (c *MaterialController) GetMaterialFile(ctx *gin.Context) {
	fileID, err := strconv.ParseInt(ctx.Param("fileId"), 10, 64)
	if err != nil || fileID <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid ID"})
		return
	}

	callerID, _ := middleware.GetUserID(ctx)
	callerRole, _ := middleware.GetUserRole(ctx)

	material, fullPath, err := c.materialService.GetFile(ctx.Request.Context(), fileID, callerID, callerRole)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Type", material.MimeType)
	ctx.File(fullPath)
}

// DeleteMaterial removes a material
// @Summary Delete a material
// @Description Deletes a material and its file. Allowed for the uploader, moderators and admins.
// @Tags materials
// @Produce json
// @Security BearerAuth
// @Param id path int true "Material ID"
// @Success 200 {object} dto.MessageResponse "Material deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid material ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Material not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /materials/{id} [delete]
func (c *MaterialController) DeleteMaterial(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	callerID, _ := middleware.GetUserID(ctx)
	callerRole, _ := middleware.GetUserRole(ctx)

	if err := c.materialService.Delete(ctx.Request.Context(), id, callerID, callerRole); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Material deleted successfully"})
}
