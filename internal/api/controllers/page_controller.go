package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"travelexplorer/internal/models/request_models"
	"travelexplorer/internal/services"
	"travelexplorer/pkg/utils"
)

type PageController struct {
	pageService    services.PageServiceInterface
	contactService services.ContactServiceInterface
}

func NewPageController(pageService services.PageServiceInterface, contactService services.ContactServiceInterface) *PageController {
	return &PageController{
		pageService:    pageService,
		contactService: contactService,
	}
}

// About godoc
// @Summary About page content
// @Tags Pages
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /pages/about [get]
func (p *PageController) About(c *gin.Context) {
	utils.RespondSuccess(c, p.pageService.About(), "")
}

// Home godoc
// @Summary Home page content
// @Description Site features and the best rated destinations
// @Tags Pages
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /pages/home [get]
func (p *PageController) Home(c *gin.Context) {
	utils.RespondSuccess(c, p.pageService.Home(c.Request.Context()), "")
}

// ContactInfo godoc
// @Summary Contact channels
// @Tags Pages
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /pages/contact [get]
func (p *PageController) ContactInfo(c *gin.Context) {
	utils.RespondSuccess(c, p.pageService.Contact(), "")
}

// SubmitContact godoc
// @Summary Send a message
// @Description Store a contact message and acknowledge it by e-mail
// @Tags Pages
// @Accept json
// @Produce json
// @Param request body request_models.ContactRequest true "Message"
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /contact [post]
func (p *PageController) SubmitContact(c *gin.Context) {
	var req request_models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	accepted, err := p.contactService.SubmitMessage(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, accepted, "Message sent successfully")
}

// ListContactMessages godoc
// @Summary List contact messages
// @Tags Pages
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(20) minimum(1) maximum(100)
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /contact/messages [get]
func (p *PageController) ListContactMessages(c *gin.Context) {
	page, pageSize, ok := utils.ParsePagination(c, 20)
	if !ok {
		return
	}

	messages, err := p.contactService.ListMessages(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, messages, "Messages fetched successfully")
}
