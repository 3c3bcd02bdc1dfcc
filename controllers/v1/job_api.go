package apiv1

import (
	"jobboard-backend/controllers"
	candidatehandler "jobboard-backend/lib/candidate"
	jobhandler "jobboard-backend/lib/job"
	"jobboard-backend/middleware"
	apimodels "jobboard-backend/models/api"
	candidateapimodels "jobboard-backend/models/api/candidate"
	jobapimodels "jobboard-backend/models/api/job"
	"time"

	"github.com/gofiber/fiber/v2"
)

type jobApiController struct {
	controllers.BaseAPIController
}

// InitJobApiRouters registers the public job routes, applications are rate limited by limiter when it is set
func InitJobApiRouters(app *fiber.App, limiter middleware.Limiter, applyLimit int, applyWindow time.Duration) {
	controller := jobApiController{}
	app.Route("jobs", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Get("form", controller.form)
			idRoute.Post("apply", middleware.RateLimit(limiter, middleware.ApplyRateKey, applyLimit, applyWindow), controller.apply)
		})
	})
}

// InitSpaceJobApiRouters registers the recruiter job routes
func InitSpaceJobApiRouters(app *fiber.App) {
	controller := jobApiController{}
	app.Route("jobs", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Patch("", controller.update)
			idRoute.Delete("", controller.delete)
		})
	})
}

// @Summary Job list
// @Tags Job
// @Description Jobs sorted from newest, optionally filtered by status
// @Param   status		query		string	false	"active/inactive/draft"
// @Success 200 {object} apimodels.Response{data=[]dbmodels.Job}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs [get]
func (c *jobApiController) list(ctx *fiber.Ctx) error {
	var filter jobapimodels.JobFilter
	if err := ctx.QueryParser(&filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("Invalid query"))
	}
	list, err := jobhandler.Instance.List(ctx.UserContext(), filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to fetch jobs")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get job
// @Tags Job
// @Param   id          		path    string  				    	true         "job ID"
// @Success 200 {object} apimodels.Response{data=dbmodels.Job}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/{id} [get]
func (c *jobApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := jobhandler.Instance.GetByID(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to fetch job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Application form
// @Tags Job
// @Description Job title and the requirement of every application form field
// @Param   id          		path    string  				    	true         "job ID"
// @Success 200 {object} apimodels.Response{data=jobapimodels.FormRequirementsView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/jobs/{id}/form [get]
func (c *jobApiController) form(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := jobhandler.Instance.FormRequirements(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to fetch application form")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Apply
// @Tags Job
// @Description Submit an application, the candidate is placed last in the job order
// @Param   id          		path    string  				    	true         "job ID"
// @Param	body body	 candidateapimodels.ApplyData	true	"request body"
// @Success 200 {object} apimodels.Response{data=dbmodels.Candidate}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 429 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @Failure 503 {object} apimodels.Response
// @router /api/v1/jobs/{id}/apply [post]
func (c *jobApiController) apply(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload candidateapimodels.ApplyData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := candidatehandler.Instance.Apply(ctx.UserContext(), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to submit application")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessageResponse("Application submitted successfully", rec))
}

// @Summary Create job
// @Tags Job
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 jobapimodels.JobData	true	"request body"
// @Success 200 {object} apimodels.Response{data=dbmodels.Job}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/jobs [post]
func (c *jobApiController) create(ctx *fiber.Ctx) error {
	var payload jobapimodels.JobData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := jobhandler.Instance.Create(ctx.UserContext(), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to create job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessageResponse("Job created successfully", rec))
}

// @Summary Update job
// @Tags Job
// @Description Partial update, omitted fields stay untouched
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Param	body body	 jobapimodels.JobUpdate	true	"request body"
// @Success 200 {object} apimodels.Response{data=dbmodels.Job}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/jobs/{id} [patch]
func (c *jobApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload jobapimodels.JobUpdate
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	rec, err := jobhandler.Instance.Update(ctx.UserContext(), id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to update job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessageResponse("Job updated successfully", rec))
}

// @Summary Delete job
// @Tags Job
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/jobs/{id} [delete]
func (c *jobApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = jobhandler.Instance.Delete(ctx.UserContext(), id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Failed to delete job")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewMessageResponse("Job deleted successfully", nil))
}
