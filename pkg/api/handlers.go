package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ragecodemaster/landing/pkg/cardinput"
	"github.com/ragecodemaster/landing/pkg/clients/telegram"
	"github.com/ragecodemaster/landing/pkg/content"
	"github.com/ragecodemaster/landing/pkg/models"
	"github.com/ragecodemaster/landing/pkg/services"
	"github.com/ragecodemaster/landing/pkg/views"
)

// Handlers contains all HTTP handlers for the site
type Handlers struct {
	submissions services.LeadSubmissionService
	views       *views.Renderer
	telegram    telegram.Client
}

// NewHandlers creates a new Handlers instance
func NewHandlers(submissions services.LeadSubmissionService, renderer *views.Renderer, telegramClient telegram.Client) *Handlers {
	return &Handlers{
		submissions: submissions,
		views:       renderer,
		telegram:    telegramClient,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Landing serves the marketing page with a fresh consultation form.
func (h *Handlers) Landing(c *gin.Context) {
	view := views.ConsultationView{Form: models.ConsultationForm{FormID: uuid.NewString()}}
	c.Render(http.StatusOK, views.Page{Node: h.views.Landing(view)})
}

// SubmitConsultation handles the consultation form post.
func (h *Handlers) SubmitConsultation(c *gin.Context) {
	var form models.ConsultationForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("Error binding consultation form: %v", err)
		c.String(http.StatusBadRequest, "Invalid form submission")
		return
	}

	out, err := h.submissions.SubmitConsultation(c.Request.Context(), form)
	if h.renderSubmitError(c, err) {
		return
	}

	if out.State == services.Success {
		c.Render(http.StatusOK, views.Page{Node: h.views.Landing(views.ConsultationView{Submitted: true})})
		return
	}

	form.FormID = keepFormID(form.FormID)
	c.Render(http.StatusUnprocessableEntity, views.Page{Node: h.views.Landing(views.ConsultationView{Form: form, Errors: out.Errors})})
}

// CardLinkPage serves the card-linking form, preselecting ?course= when it
// names a known course.
func (h *Handlers) CardLinkPage(c *gin.Context) {
	view := views.CardLinkView{Form: models.CardLinkForm{FormID: uuid.NewString()}}
	if course, ok := content.CourseByID(c.Query("course")); ok {
		view.Form.Course = course.ID
		view.Course = &course
	}
	c.Render(http.StatusOK, views.Page{Node: h.views.CardLink(view)})
}

// SubmitCardLink handles the card-linking form post.
func (h *Handlers) SubmitCardLink(c *gin.Context) {
	var form models.CardLinkForm
	if err := c.ShouldBind(&form); err != nil {
		log.Printf("Error binding card link form: %v", err)
		c.String(http.StatusBadRequest, "Invalid form submission")
		return
	}

	var course *content.Course
	if found, ok := content.CourseByID(form.Course); ok {
		course = &found
	} else {
		form.Course = ""
	}

	out, err := h.submissions.SubmitCardLink(c.Request.Context(), form)
	if h.renderSubmitError(c, err) {
		return
	}

	if out.State == services.Success {
		c.Render(http.StatusOK, views.Page{Node: h.views.CardLinkSuccess(course)})
		return
	}

	// Show the visitor their input the way the formatter would have left it.
	form.CardNumber = cardinput.FormatCardNumber(form.CardNumber)
	form.Expiry = cardinput.FormatExpiry(form.Expiry)
	form.CVV = cardinput.FormatCVV(form.CVV)
	form.Zip = cardinput.FormatZip(form.Zip)
	form.FormID = keepFormID(form.FormID)

	view := views.CardLinkView{Form: form, Errors: out.Errors, Course: course}
	c.Render(http.StatusUnprocessableEntity, views.Page{Node: h.views.CardLink(view)})
}

// renderSubmitError writes the response for a failed submit call and
// reports whether it did.
func (h *Handlers) renderSubmitError(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, services.ErrSubmissionInFlight):
		c.Render(http.StatusConflict, views.Page{Node: h.views.InFlight()})
	default:
		log.Printf("Error processing submission (request %s): %v", c.GetString("request_id"), err)
		c.String(http.StatusInternalServerError, "Something went wrong")
	}
	return true
}

func keepFormID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

// Format returns the as-you-type formatted value for one card field.
func (h *Handlers) Format(c *gin.Context) {
	var req models.FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	c.JSON(http.StatusOK, models.FormatResponse{Value: cardinput.Format(req.Field, req.Value)})
}

// Notify relays a text message to the team's Telegram chat.
func (h *Handlers) Notify(c *gin.Context) {
	var req models.NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Error parsing notification request: %v", err)
		c.JSON(http.StatusInternalServerError, models.NotifyResponse{Error: "Invalid JSON format"})
		return
	}

	if err := h.telegram.SendMessage(c.Request.Context(), req.Text); err != nil {
		log.Printf("Error sending Telegram message (request %s): %v", c.GetString("request_id"), err)
		c.JSON(http.StatusInternalServerError, models.NotifyResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, models.NotifyResponse{OK: true})
}
