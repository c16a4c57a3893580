package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"automark/internal/core/domain"
	"automark/internal/core/port"
	"automark/internal/validator"
)

// updateCampaignReq is the PATCH body. Absent fields are left untouched.
type updateCampaignReq struct {
	Name           *string          `json:"name" validate:"omitempty,min=1,max=200"`
	BusinessGoal   *string          `json:"business_goal" validate:"omitempty,min=1"`
	TargetAudience *string          `json:"target_audience" validate:"omitempty,min=1"`
	Budget         *decimal.Decimal `json:"budget" validate:"omitempty,positive_decimal"`
	Channels       []string         `json:"channels" validate:"omitempty,min=1,unique,dive,channel"`
	Strategy       *domain.Strategy `json:"strategy"`
}

type adCopyReq struct {
	Platform string `json:"platform" validate:"required"`
}

type executeResp struct {
	Success   bool                            `json:"success"`
	Activated int                             `json:"activated"`
	Result    []domain.ChannelExecutionResult `json:"result"`
}

type pauseResp struct {
	Success bool                            `json:"success"`
	Result  []domain.ChannelExecutionResult `json:"result"`
}

type syncResp struct {
	Success bool                       `json:"success"`
	Records []domain.PerformanceRecord `json:"records"`
}

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// ownedCampaign resolves {id} and checks the caller owns the campaign. It
// writes the error response and returns false on failure.
func (h *Handler) ownedCampaign(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid campaign id")
		return uuid.Nil, false
	}
	if _, err = h.svc.GetCampaign(r.Context(), userIDFrom(r.Context()), id); err != nil {
		h.writeError(w, r, err)
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req port.CreateCampaignReq
	if err := decode(r, &req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	req.UserID = userIDFrom(r.Context())
	c, err := h.svc.CreateCampaign(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListCampaigns(r.Context(), userIDFrom(r.Context()))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if list == nil {
		list = []domain.Campaign{}
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), userIDFrom(r.Context()), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	var req updateCampaignReq
	if err = decode(r, &req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err = validator.Struct(req); err != nil {
		h.writeError(w, r, err)
		return
	}

	upd := domain.CampaignUpdate{
		Name:           req.Name,
		BusinessGoal:   req.BusinessGoal,
		TargetAudience: req.TargetAudience,
		Budget:         req.Budget,
		Strategy:       req.Strategy,
	}
	if len(req.Channels) > 0 {
		if upd.Channels, err = domain.ParseChannels(req.Channels); err != nil {
			h.writeError(w, r, &domain.ValidationError{Fields: map[string]string{"channels": err.Error()}})
			return
		}
	}

	c, err := h.svc.UpdateCampaign(r.Context(), userIDFrom(r.Context()), id, upd)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleExecuteCampaign runs the campaign on its channels. When no channel
// succeeded the per-channel results are still returned, with 502.
func (h *Handler) handleExecuteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ownedCampaign(w, r)
	if !ok {
		return
	}
	results, err := h.svc.ExecuteCampaign(r.Context(), id)
	if err != nil && !errors.Is(err, domain.ErrNoChannelSucceeded) {
		h.writeError(w, r, err)
		return
	}
	status := http.StatusOK
	if err != nil {
		status = http.StatusBadGateway
	}
	h.writeJSON(w, status, executeResp{
		Success:   err == nil,
		Activated: domain.CountSucceeded(results),
		Result:    results,
	})
}

func (h *Handler) handlePauseCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ownedCampaign(w, r)
	if !ok {
		return
	}
	results, err := h.svc.PauseCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, pauseResp{Success: true, Result: results})
}

func (h *Handler) handleSyncPerformance(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ownedCampaign(w, r)
	if !ok {
		return
	}
	records, err := h.svc.SyncPerformanceData(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if records == nil {
		records = []domain.PerformanceRecord{}
	}
	h.writeJSON(w, http.StatusOK, syncResp{Success: true, Records: records})
}

func (h *Handler) handleListPerformance(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ownedCampaign(w, r)
	if !ok {
		return
	}
	records, err := h.svc.ListPerformance(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if records == nil {
		records = []domain.PerformanceRecord{}
	}
	h.writeJSON(w, http.StatusOK, records)
}

func (h *Handler) handleListLogs(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ownedCampaign(w, r)
	if !ok {
		return
	}
	logs, err := h.svc.ListExecutionLogs(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if logs == nil {
		logs = []domain.ExecutionLogEntry{}
	}
	h.writeJSON(w, http.StatusOK, logs)
}

func (h *Handler) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ownedCampaign(w, r)
	if !ok {
		return
	}
	a, err := h.svc.GetAnalytics(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, a)
}

func (h *Handler) handleGenerateAdCopy(w http.ResponseWriter, r *http.Request) {
	id, ok := h.ownedCampaign(w, r)
	if !ok {
		return
	}
	var req adCopyReq
	if err := decode(r, &req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := validator.Struct(req); err != nil {
		h.writeError(w, r, err)
		return
	}
	items, err := h.svc.GenerateAdCopy(r.Context(), id, req.Platform)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, items)
}

func (h *Handler) handleGenerateStrategy(w http.ResponseWriter, r *http.Request) {
	var req port.StrategyReq
	if err := decode(r, &req); err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := validator.Struct(req); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.svc.GenerateStrategy(r.Context(), req))
}
