package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/AlexZinkM/donate-action/donate"
	"github.com/AlexZinkM/donate-action/internal/common"
	"github.com/AlexZinkM/donate-action/internal/events"
	"github.com/AlexZinkM/donate-action/internal/metrics"
	"github.com/AlexZinkM/donate-action/internal/model"
)

const (
	// ActionPath is where the donate action is served
	ActionPath = "/api/donate"

	maxRequestBodySize = 1 << 20 // 1MB, a post body is one address

	msgInvalidBody = "Invalid request body"
)

// DonateHandler serves the donate action
type DonateHandler struct {
	builder   *donate.Builder
	publisher events.Publisher
	metrics   *metrics.Metrics
	logger    *slog.Logger
	meta      donate.ActionMeta
	baseURL   string
	cluster   string
}

// Options are the static settings of a DonateHandler
type Options struct {
	Meta    donate.ActionMeta
	BaseURL string // optional, see donate.RequestHref
	Cluster string
}

// NewDonateHandler creates a new DonateHandler. A nil publisher disables events.
func NewDonateHandler(builder *donate.Builder, publisher events.Publisher, m *metrics.Metrics, logger *slog.Logger, opts Options) *DonateHandler {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &DonateHandler{
		builder:   builder,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		meta:      opts.Meta,
		baseURL:   opts.BaseURL,
		cluster:   opts.Cluster,
	}
}

// Action handles GET and OPTIONS /api/donate
// @Summary      Get donate action
// @Description  Returns the action descriptor with preset donation amounts. OPTIONS returns the same document.
// @Tags         donate
// @Produce      json
// @Success      200  {object}  model.ActionGetResponse
// @Router       /api/donate [get]
// @Router       /api/donate [options]
func (h *DonateHandler) Action(w http.ResponseWriter, r *http.Request) {
	href := donate.RequestHref(r, h.baseURL, "")
	writeJSON(w, donate.NewActionDescriptor(href, h.meta), http.StatusOK)
}

// Transaction handles POST /api/donate
// @Summary      Build donation transaction
// @Description  Builds an unsigned SOL transfer from account to the recipient for the wallet to sign
// @Tags         donate
// @Accept       json
// @Produce      json
// @Param        amount   query     number                   false  "Amount in SOL (default 0.1)"
// @Param        request  body      model.ActionPostRequest  true   "Sender account"
// @Success      200      {object}  model.ActionPostResponse
// @Failure      400      {object}  model.ActionError
// @Failure      500      {string}  string
// @Router       /api/donate [post]
func (h *DonateHandler) Transaction(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	var req model.ActionPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(r.Context(), "failed to decode donate request", "error", err)
		h.metrics.RecordValidationFailure("invalid_body")
		writeActionError(w, msgInvalidBody, http.StatusBadRequest)
		return
	}

	donation, err := donate.NewDonation(req.Account, r.URL.Query().Get("amount"))
	if err != nil {
		h.rejectInvalid(w, r, err)
		return
	}

	built, err := h.builder.Build(r.Context(), donation)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to build donation transaction",
			"sender", donation.Sender.String(),
			"lamports", donation.Lamports,
			"error", err,
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	resp, err := built.PostResponse()
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to serialize donation transaction", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.metrics.RecordDonationBuilt(h.cluster, donation.Lamports)
	h.publish(r, built)

	writeJSON(w, resp, http.StatusOK)
}

// ActionsJSON handles GET /actions.json
// @Summary      Actions discovery rules
// @Description  Maps website paths to the action API so clients can unfurl links into blinks
// @Tags         donate
// @Produce      json
// @Success      200  {object}  model.ActionsJSON
// @Router       /actions.json [get]
func (h *DonateHandler) ActionsJSON(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, donate.ActionRules(ActionPath), http.StatusOK)
}

// QRCode handles GET /api/donate/qr
// @Summary      Blink QR code
// @Description  PNG QR code of the solana-action URL; amount pins a preset amount
// @Tags         donate
// @Produce      png
// @Param        amount  query     number  false  "Amount in SOL"
// @Success      200     {file}    binary
// @Failure      400     {object}  model.ActionError
// @Router       /api/donate/qr [get]
func (h *DonateHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	href := donate.RequestHref(r, h.baseURL, ActionPath)

	if raw := strings.TrimSpace(r.URL.Query().Get("amount")); raw != "" {
		amount, err := donate.ParseAmount(raw)
		if err == nil {
			_, err = donate.ToLamports(amount)
		}
		if err != nil {
			h.rejectInvalid(w, r, err)
			return
		}
		href += "?amount=" + common.FormatSOL(amount)
	}

	png, err := donate.GenerateQRCode(donate.BlinkURL(href), donate.DefaultQRSize)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to generate QR code", "href", href, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// MethodNotAllowed answers any other method on the action path
func (h *DonateHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Allow", "GET, POST, OPTIONS")
	writeActionError(w, "Method not allowed. Should be GET or POST", http.StatusMethodNotAllowed)
}

// rejectInvalid answers a ValidationError with 400; anything else is a 500.
func (h *DonateHandler) rejectInvalid(w http.ResponseWriter, r *http.Request, err error) {
	var v *donate.ValidationError
	if !errors.As(err, &v) {
		h.logger.ErrorContext(r.Context(), "unexpected validation failure", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.logger.WarnContext(r.Context(), "donate request rejected",
		"reason", v.Reason,
		"amount", r.URL.Query().Get("amount"),
		"error", err,
	)
	h.metrics.RecordValidationFailure(v.Reason)
	writeActionError(w, v.Message, http.StatusBadRequest)
}

// publish sends the donation event. Failures are logged only.
func (h *DonateHandler) publish(r *http.Request, built *donate.BuiltDonation) {
	event := &events.DonationEvent{
		Sender:               built.Donation.Sender.String(),
		Recipient:            built.Recipient.String(),
		Lamports:             built.Donation.Lamports,
		AmountSOL:            common.FormatSOL(built.Donation.AmountSOL),
		Blockhash:            built.Blockhash.String(),
		LastValidBlockHeight: built.LastValidBlockHeight,
		Cluster:              h.cluster,
		BuiltAt:              time.Now().UTC(),
	}
	if err := h.publisher.PublishDonation(r.Context(), event); err != nil {
		h.logger.WarnContext(r.Context(), "failed to publish donation event", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeActionError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, model.NewActionError(message), status)
}
