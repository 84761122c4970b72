package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recoverylink-backend/internal/contact/dto"
	"recoverylink-backend/internal/contact/usecase"
	"recoverylink-backend/pkg/apperror"
)

// ContactHandler handles care-team contact HTTP requests
type ContactHandler struct {
	contactUsecase usecase.ContactUsecase
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(contactUsecase usecase.ContactUsecase) *ContactHandler {
	return &ContactHandler{contactUsecase: contactUsecase}
}

// CreateContact registers a new care-team contact
// POST /api/contacts
func (h *ContactHandler) CreateContact(c *gin.Context) {
	patientID := c.GetString("patientID")

	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactUsecase.Register(patientID, &req)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// GetContacts lists the patient's contacts, newest first
// GET /api/contacts
func (h *ContactHandler) GetContacts(c *gin.Context) {
	patientID := c.GetString("patientID")

	contacts, err := h.contactUsecase.List(patientID)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"contacts": contacts,
		"total":    len(contacts),
	})
}

// GetContactByID returns a single contact
// GET /api/contacts/:id
func (h *ContactHandler) GetContactByID(c *gin.Context) {
	patientID := c.GetString("patientID")
	contactID := c.Param("id")

	contact, err := h.contactUsecase.Get(patientID, contactID)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// UpdateContact applies a partial update
// PUT /api/contacts/:id
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	patientID := c.GetString("patientID")
	contactID := c.Param("id")

	var req dto.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.contactUsecase.Update(patientID, contactID, &req)
	if err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// DeleteContact removes a contact permanently
// DELETE /api/contacts/:id
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	patientID := c.GetString("patientID")
	contactID := c.Param("id")

	if err := h.contactUsecase.Delete(patientID, contactID); err != nil {
		c.JSON(apperror.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted successfully"})
}
