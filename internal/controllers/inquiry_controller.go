package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/AliHaider728/royal-palm-map-clone/internal/dtos"
	"github.com/AliHaider728/royal-palm-map-clone/internal/services"
	"github.com/AliHaider728/royal-palm-map-clone/internal/utils"
)

type InquiryController struct {
	inquiryService *services.InquiryService
	validate       *validator.Validate
}

func NewInquiryController(is *services.InquiryService) *InquiryController {
	return &InquiryController{inquiryService: is, validate: validator.New()}
}

// POST /api/v1/inquiries
func (c *InquiryController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.CreateInquiryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := c.validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation error", nil, err)
		return
	}

	inq, err := c.inquiryService.Create(r.Context(), req)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, inq)
}
