package apiv1

import (
	"jobboard-backend/controllers"
	filestorage "jobboard-backend/lib/file-storage"
	"jobboard-backend/middleware"
	apimodels "jobboard-backend/models/api"
	candidateapimodels "jobboard-backend/models/api/candidate"

	"github.com/gofiber/fiber/v2"
)

type fileApiController struct {
	controllers.BaseAPIController
}

// InitFileApiRouters registers the photo upload, requests above bodyLimit bytes are rejected before parsing
func InitFileApiRouters(app *fiber.App, bodyLimit int64) {
	controller := fileApiController{}
	app.Post("photo", middleware.WithBodyLimit(bodyLimit), controller.uploadPhoto)
}

// @Summary Upload photo
// @Tags File
// @Description Upload an applicant photo, returns the public URL to put into photoProfile
// @Accept multipart/form-data
// @Param   photo		formData		file	true	"image file"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.PhotoUploadResult}
// @Failure 400 {object} apimodels.Response
// @Failure 413 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/photo [post]
func (c *fileApiController) uploadPhoto(ctx *fiber.Ctx) error {
	if filestorage.Instance == nil {
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(apimodels.NewError("Photo upload is not configured"))
	}
	fileHeader, err := ctx.FormFile("photo")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("No file uploaded"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Upload failed")
	}
	defer file.Close()

	url, err := filestorage.Instance.UploadPhoto(ctx.UserContext(), fileHeader.Filename, fileHeader.Header.Get(fiber.HeaderContentType), fileHeader.Size, file)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Upload failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(candidateapimodels.PhotoUploadResult{URL: url}))
}
