package handlers

import (
	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService      services.JobService
	proposalService services.ProposalService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService, proposalService services.ProposalService) *JobHandler {
	return &JobHandler{
		BaseHandler:     base,
		jobService:      jobService,
		proposalService: proposalService,
	}
}

func (h *JobHandler) Create(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), actor, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, job)
}

// List - публичный листинг, скрытые объявления не попадают в выдачу
func (h *JobHandler) List(c *gin.Context) {
	var filter dto.JobListFilter
	if !h.BindAndValidate_Query(c, &filter) {
		return
	}
	page, pageSize := ParsePagination(c)

	jobs, total, err := h.jobService.List(filter, page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Paginated(c, jobs, total, page, pageSize)
}

func (h *JobHandler) Get(c *gin.Context) {
	// Актор может отсутствовать: роут публичный
	actor := middleware.GetActor(c)

	job, err := h.jobService.Get(actor, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, job)
}

func (h *JobHandler) UpdateStatus(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.UpdateJobStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateStatus(c.Request.Context(), actor, c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, job)
}

func (h *JobHandler) SubmitProposal(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.CreateProposalRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	proposal, err := h.proposalService.Submit(c.Request.Context(), actor, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, proposal)
}

func (h *JobHandler) ListProposals(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	proposals, err := h.proposalService.ListByJob(actor, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, proposals)
}

func (h *JobHandler) DecideProposal(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	var req dto.UpdateProposalRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	proposal, err := h.proposalService.Decide(c.Request.Context(), actor, c.Param("id"), req.Status)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, proposal)
}
