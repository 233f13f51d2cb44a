package voice

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/otoplaza/showroom-ai/internal/appointments"
	"github.com/otoplaza/showroom-ai/pkg/logging"
)

// Handler handles the Twilio webhook and the outbound call endpoints
type Handler struct {
	driver      *Driver
	dialer      Dialer
	repo        appointments.Repository
	ownerNumber string
	webhookPath string
	logger      *logging.Logger
	now         func() time.Time
}

// NewHandler creates a new voice handler. webhookPath is the path Twilio
// posts speech results to, echoed in every Gather action.
func NewHandler(driver *Driver, dialer Dialer, repo appointments.Repository, ownerNumber, webhookPath string, logger *logging.Logger) *Handler {
	return &Handler{
		driver:      driver,
		dialer:      dialer,
		repo:        repo,
		ownerNumber: ownerNumber,
		webhookPath: webhookPath,
		logger:      logger,
		now:         time.Now,
	}
}

// Webhook handles POST requests from Twilio with the caller's transcribed
// speech and answers with TwiML.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeTwiML(w, speakAndHangup("Bir hata oluştu. Tekrar arayabilirsiniz."))
		return
	}

	caller := r.FormValue("From")
	speech := r.FormValue("SpeechResult")
	callSID := r.FormValue("CallSid")

	result, err := h.driver.HandleTurn(r.Context(), callSID, caller, speech)
	if err != nil {
		h.logger.Error("voice turn failed", "error", err, "call_sid", callSID)
		h.writeTwiML(w, speakAndHangup("Bir hata oluştu. Tekrar arayabilirsiniz."))
		return
	}

	if result.Done {
		h.writeTwiML(w, speakAndHangup(result.Speech))
		return
	}
	h.writeTwiML(w, speakAndListen(result.Speech, h.webhookPath))
}

func (h *Handler) writeTwiML(w http.ResponseWriter, doc *TwiML) {
	body, err := doc.Render()
	if err != nil {
		h.logger.Error("failed to render twiml", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.Write(body)
}

// MakeCall handles GET /make-call requests, dialing the showroom owner.
func (h *Handler) MakeCall(w http.ResponseWriter, r *http.Request) {
	call, err := h.dialer.StartCall(r.Context(), h.ownerNumber)
	if err != nil {
		h.logger.Error("failed to start call", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"message":  "Arama başlatıldı",
		"call_sid": call.SID,
		"status":   call.Status,
	})
}

// CallbackRequest is the body of POST /request-callback.
type CallbackRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	VehicleType  string `json:"vehicle_type"`
	VehiclePrice int    `json:"vehicle_price"`
}

// CallbackResponse reports the stored request and, when dialing worked,
// the started call.
type CallbackResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	CallbackID int    `json:"callback_id,omitempty"`
	CallSID    string `json:"call_sid,omitempty"`
	Note       string `json:"note,omitempty"`
}

// RequestCallback handles POST /request-callback requests. The request is
// stored as a callback appointment first, so a failed outbound call still
// leaves the showroom a number to dial by hand.
func (h *Handler) RequestCallback(w http.ResponseWriter, r *http.Request) {
	var req CallbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Phone) == "" || strings.TrimSpace(req.VehicleType) == "" {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(CallbackResponse{Success: false, Message: "Eksik bilgi"})
		return
	}

	phone := normalizeCallbackPhone(req.Phone)
	name := req.Name
	if name == "" {
		name = "Callback Talebi"
	}

	now := h.now()
	create := &appointments.CreateRequest{
		Name:              name,
		Phone:             phone,
		VehicleType:       req.VehicleType,
		Date:              now.Format("2006-01-02"),
		Time:              now.Format("15:04"),
		VehiclePrice:      req.VehiclePrice,
		CallbackRequested: true,
	}
	saved, err := h.repo.Append(r.Context(), create)
	if err != nil {
		h.logger.Error("failed to save callback request", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(CallbackResponse{Success: false, Message: "Sistem hatası"})
		return
	}

	resp := CallbackResponse{Success: true, CallbackID: saved.ID}
	if call, err := h.dialer.StartCall(r.Context(), phone); err != nil {
		h.logger.Error("callback call failed", "error", err, "callback_id", saved.ID)
		resp.Message = "Geri arama talebi alındı, manuel arama yapılacak"
		resp.Note = "Otomatik arama başlatılamadı"
	} else {
		resp.Message = "Geri arama talebi alındı ve arama başlatıldı"
		resp.CallSID = call.SID
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// normalizeCallbackPhone rewrites a local number into the 90-prefixed form
// Twilio dials.
func normalizeCallbackPhone(phone string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	phone = replacer.Replace(phone)

	switch {
	case strings.HasPrefix(phone, "0"):
		return "90" + phone[1:]
	case strings.HasPrefix(phone, "5"):
		return "90" + phone
	case strings.HasPrefix(phone, "90"):
		return phone
	default:
		return "90" + phone
	}
}
