package api

import (
	"errors"
	"net/http"

	"futuresign-backend/internal/delivery/http/response"
	"futuresign-backend/internal/domain"
	"futuresign-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", handler.SubmitContact)
	public.GET("/contact", handler.ListContacts)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Persist a contact form submission. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.SubmitContactRequest  true  "Contact Form Data"
// @Success      201      {object}  response.Response{data=domain.ContactSubmission}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	sub, err := h.contactUC.Submit(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPayload) {
			c.Error(apperror.BadRequest(err.Error()))
			return
		}
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to save your message. Please try again later.", err))
		return
	}

	response.Success(c, http.StatusCreated, "Contact form submitted successfully", sub)
}

// ListContacts godoc
// @Summary      List Contact Submissions
// @Description  Return every stored submission, newest first. Intended for internal review; there is no pagination.
// @Tags         contact
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.ContactSubmission}
// @Failure      500  {object}  response.Response
// @Router       /contact [get]
func (h *ContactHandler) ListContacts(c *gin.Context) {
	subs, err := h.contactUC.List(c.Request.Context())
	if err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to load submissions", err))
		return
	}

	// Return [] rather than null when the store is empty.
	if subs == nil {
		subs = []domain.ContactSubmission{}
	}

	response.Success(c, http.StatusOK, "Contact submissions retrieved", subs)
}
