package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/minhasfinancas/api/internal/application"
	"github.com/minhasfinancas/api/internal/domain/entity"
	"github.com/minhasfinancas/api/internal/domain/errs"
	repo "github.com/minhasfinancas/api/internal/domain/repository"
	"github.com/minhasfinancas/api/pkg/response"
	"github.com/minhasfinancas/api/pkg/validation"
)

const msgQueryUserNotFound = "Query failed. User not found."

type EntryHandler struct {
	Svc    *application.EntryService
	Users  *application.UserService
	Logger *logrus.Logger
}

func NewEntryHandler(svc *application.EntryService, users *application.UserService, logger *logrus.Logger) *EntryHandler {
	return &EntryHandler{Svc: svc, Users: users, Logger: logger}
}

// entryRequest carries the user reference in a dedicated "user" field; the
// owner is never derived from the entry's own id.
type entryRequest struct {
	Description string          `json:"description"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	Value       decimal.Decimal `json:"value"`
	UserID      int64           `json:"user"`
	Type        string          `json:"type"`
	Status      string          `json:"status"`
}

type entryResponse struct {
	ID               int64           `json:"id"`
	Description      string          `json:"description"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	Value            decimal.Decimal `json:"value"`
	UserID           int64           `json:"user"`
	Type             string          `json:"type"`
	Status           string          `json:"status"`
	RegistrationDate time.Time       `json:"registration_date"`
}

func toEntryResponse(e *entity.Entry) entryResponse {
	return entryResponse{
		ID:               e.ID,
		Description:      e.Description,
		Month:            e.Month,
		Year:             e.Year,
		Value:            e.Value,
		UserID:           e.UserID,
		Type:             e.Type.String(),
		Status:           e.Status.String(),
		RegistrationDate: e.RegistrationDate,
	}
}

func toEntryResponses(list []*entity.Entry) []entryResponse {
	out := make([]entryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEntryResponse(e))
	}
	return out
}

// toEntity converts the request; the service's Validate owns the rule
// checks, so only the enum strings get decoded here.
func (h *EntryHandler) toEntity(req entryRequest) (*entity.Entry, error) {
	e := &entity.Entry{
		Description: req.Description,
		Month:       req.Month,
		Year:        req.Year,
		Value:       req.Value,
		UserID:      req.UserID,
	}
	if req.Type != "" {
		typ, err := entity.ParseEntryType(req.Type)
		if err != nil {
			return nil, errs.BusinessRule(application.MsgInvalidType)
		}
		e.Type = typ
	}
	if req.Status != "" {
		status, err := entity.ParseEntryStatus(req.Status)
		if err != nil {
			return nil, errs.BusinessRule(application.MsgInvalidStatus)
		}
		e.Status = status
	}
	return e, nil
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error[any](c, http.StatusBadRequest, application.MsgEntryNotFound, nil)
		return 0, false
	}
	return id, true
}

// List GET /api/entries?description=&month=&year=&user=&type=&status=
// The user parameter is mandatory and must resolve to an existing user.
func (h *EntryHandler) List(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user"), 10, 64)
	if err != nil || userID <= 0 {
		response.Error[any](c, http.StatusBadRequest, msgQueryUserNotFound, nil)
		return
	}
	if _, err := h.Users.FindByID(c.Request.Context(), userID); err != nil {
		response.Error[any](c, http.StatusBadRequest, msgQueryUserNotFound, nil)
		return
	}

	filter := repo.EntryFilter{
		Description: c.Query("description"),
		UserID:      userID,
	}
	if raw := c.Query("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, application.MsgInvalidMonth, nil)
			return
		}
		filter.Month = &v
	}
	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, application.MsgInvalidYear, nil)
			return
		}
		filter.Year = &v
	}
	if v := c.Query("type"); v != "" {
		typ, err := entity.ParseEntryType(v)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, application.MsgInvalidType, nil)
			return
		}
		filter.Type = typ
	}
	if v := c.Query("status"); v != "" {
		status, err := entity.ParseEntryStatus(v)
		if err != nil {
			response.Error[any](c, http.StatusBadRequest, application.MsgInvalidStatus, nil)
			return
		}
		filter.Status = status
	}

	list, err := h.Svc.Find(c.Request.Context(), filter)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toEntryResponses(list), "entries", nil)
}

// Get GET /api/entries/:id
func (h *EntryHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	e, err := h.Svc.FindByID(c.Request.Context(), id)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toEntryResponse(e), "entry", nil)
}

// Create POST /api/entries
func (h *EntryHandler) Create(c *gin.Context) {
	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	e, err := h.toEntity(req)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	saved, err := h.Svc.Save(c.Request.Context(), e)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toEntryResponse(saved), "entry created", nil)
}

// Update PUT /api/entries/:id replaces the mutable fields.
// The id comes from the path, never from the body.
func (h *EntryHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	existing, err := h.Svc.FindByID(c.Request.Context(), id)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	var req entryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	e, err := h.toEntity(req)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	e.ID = existing.ID
	e.RegistrationDate = existing.RegistrationDate
	if e.Status == "" {
		e.Status = existing.Status
	}

	updated, err := h.Svc.Update(c.Request.Context(), e)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toEntryResponse(updated), "entry updated", nil)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus PUT /api/entries/:id/status
func (h *EntryHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	existing, err := h.Svc.FindByID(c.Request.Context(), id)
	if err != nil {
		response.DomainError(c, err)
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, application.MsgInvalidStatus, nil)
		return
	}
	status, err := entity.ParseEntryStatus(req.Status)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, application.MsgInvalidStatus, nil)
		return
	}

	updated, err := h.Svc.UpdateStatus(c.Request.Context(), existing, status)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toEntryResponse(updated), "entry status updated", nil)
}

// Delete DELETE /api/entries/:id
func (h *EntryHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	existing, err := h.Svc.FindByID(c.Request.Context(), id)
	if err != nil {
		response.DomainError(c, err)
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), existing); err != nil {
		response.DomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
