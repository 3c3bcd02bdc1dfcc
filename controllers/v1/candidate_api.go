package apiv1

import (
	"fmt"
	"jobboard-backend/controllers"
	candidatehandler "jobboard-backend/lib/candidate"
	"jobboard-backend/models"
	apimodels "jobboard-backend/models/api"
	candidateapimodels "jobboard-backend/models/api/candidate"

	"github.com/gofiber/fiber/v2"
)

type candidateApiController struct {
	controllers.BaseAPIController
}

func InitCandidateApiRouters(app *fiber.App) {
	controller := candidateApiController{}
	app.Route("jobs/:id/candidates", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Delete("", controller.delete)
		router.Put("order", controller.reorder)
		router.Put("status", controller.updateStatus)
		router.Get("export", controller.export)
		router.Get(":candidate_id", controller.get)
	})
	app.Patch("manage-candidates", controller.manage)
}

// @Summary Job candidates
// @Tags Candidate
// @Description Candidates of the job sorted by order
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.CandidateList}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/jobs/{id}/candidates [get]
func (c *candidateApiController) list(ctx *fiber.Ctx) error {
	jobID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	result, err := candidatehandler.Instance.List(ctx.UserContext(), jobID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to fetch candidates")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Get candidate
// @Tags Candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Param   candidate_id		path    string  				    	true         "candidate ID"
// @Success 200 {object} apimodels.Response{data=dbmodels.Candidate}
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/jobs/{id}/candidates/{candidate_id} [get]
func (c *candidateApiController) get(ctx *fiber.Ctx) error {
	jobID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID, err := c.GetParam(ctx, "candidate_id", "Candidate ID is required")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := candidatehandler.Instance.Get(ctx.UserContext(), jobID, candidateID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to fetch candidate")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Reorder candidates
// @Tags Candidate
// @Description Sets the order of the listed candidates, the order is not checked for gaps
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Param	body body	 candidateapimodels.ReorderRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.ReorderResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/space/jobs/{id}/candidates/order [put]
func (c *candidateApiController) reorder(ctx *fiber.Ctx) error {
	jobID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.ReorderRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.doReorder(ctx, jobID, payload.NewOrder)
}

// @Summary Update candidates status
// @Tags Candidate
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Param	body body	 candidateapimodels.StatusRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.StatusResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/space/jobs/{id}/candidates/status [put]
func (c *candidateApiController) updateStatus(ctx *fiber.Ctx) error {
	jobID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.StatusRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.doUpdateStatus(ctx, jobID, payload.CandidateIDs, payload.Status)
}

// @Summary Delete candidates
// @Tags Candidate
// @Description Deletes the listed candidates, the rest of the job is renumbered 1..N
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Param	body body	 candidateapimodels.DeleteRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=candidateapimodels.DeleteResult}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/space/jobs/{id}/candidates [delete]
func (c *candidateApiController) delete(ctx *fiber.Ctx) error {
	jobID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.DeleteRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return c.doDelete(ctx, jobID, payload.CandidateIDs)
}

// @Summary Manage candidates
// @Tags Candidate
// @Description Single endpoint for updateOrder, updateStatus and delete actions
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 candidateapimodels.ManageRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/space/manage-candidates [patch]
func (c *candidateApiController) manage(ctx *fiber.Ctx) error {
	var payload candidateapimodels.ManageRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	switch payload.Action {
	case models.ManageActionUpdateOrder:
		return c.doReorder(ctx, payload.JobID, payload.NewOrder)
	case models.ManageActionUpdateStatus:
		return c.doUpdateStatus(ctx, payload.JobID, payload.CandidateIDs, payload.Status)
	default:
		return c.doDelete(ctx, payload.JobID, payload.CandidateIDs)
	}
}

// @Summary Export candidates
// @Tags Candidate
// @Description Ordered candidate list as an xlsx or pdf file
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Param   format				query		string	false	"xlsx (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/jobs/{id}/candidates/export [get]
func (c *candidateApiController) export(ctx *fiber.Ctx) error {
	jobID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	format := models.ExportFormat(ctx.Query("format", string(models.ExportFormatXlsx)))
	fileName, buf, err := candidatehandler.Instance.Export(ctx.UserContext(), jobID, format)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to export candidates")
	}
	ctx.Attachment(fileName)
	ctx.Set(fiber.HeaderContentType, format.ContentType())
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

func (c *candidateApiController) doReorder(ctx *fiber.Ctx, jobID string, newOrder []candidateapimodels.OrderItem) error {
	result, err := candidatehandler.Instance.Reorder(ctx.UserContext(), jobID, newOrder)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to manage candidates")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessageResponse("Order updated successfully", result))
}

func (c *candidateApiController) doUpdateStatus(ctx *fiber.Ctx, jobID string, candidateIDs []string, status models.CandidateStatus) error {
	result, err := candidatehandler.Instance.UpdateStatus(ctx.UserContext(), jobID, candidateIDs, status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to manage candidates")
	}
	msg := fmt.Sprintf("Status updated to %s for %d candidate(s)", status, result.UpdatedCount)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessageResponse(msg, result))
}

func (c *candidateApiController) doDelete(ctx *fiber.Ctx, jobID string, candidateIDs []string) error {
	result, err := candidatehandler.Instance.Delete(ctx.UserContext(), jobID, candidateIDs)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to manage candidates")
	}
	msg := fmt.Sprintf("%d candidate(s) deleted successfully", result.DeletedCount)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessageResponse(msg, result))
}
