package voice

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/otoplaza/showroom-ai/internal/appointments"
	"github.com/otoplaza/showroom-ai/internal/extract"
	"github.com/otoplaza/showroom-ai/internal/observability/metrics"
	"github.com/otoplaza/showroom-ai/pkg/logging"
)

const (
	greeting         = "Hoşgeldiniz! Randevu almak için isim soyisminizi söyleyebilir misiniz?"
	bookingFailed    = "Özür dilerim, randevunuz kaydedilemedi. Lütfen daha sonra tekrar arayın."
	confirmationLine = "Harika! Randevunuz başarıyla oluşturuldu. Randevu numaranız: %d. Galeri ekibimiz size ulaşacak. İyi günler!"
)

// TurnResult is what the webhook speaks back for one caller utterance.
type TurnResult struct {
	Speech string
	// Done ends the call instead of listening for another utterance.
	Done bool
}

// Driver runs the voice booking dialogue: it collects the appointment
// fields one question at a time and books once everything is known. The
// caller's number stands in for the phone field, so it is never asked.
type Driver struct {
	sessions *SessionStore
	analyzer *extract.Analyzer
	repo     appointments.Repository
	logger   *logging.Logger
	metrics  *metrics.AssistantMetrics

	// Twilio redelivers webhooks on slow responses; one lock per call
	// keeps duplicate deliveries from racing on the same session.
	locks sync.Map
}

// NewDriver creates the dialogue driver.
func NewDriver(sessions *SessionStore, analyzer *extract.Analyzer, repo appointments.Repository, logger *logging.Logger, m *metrics.AssistantMetrics) *Driver {
	if analyzer == nil {
		analyzer = extract.NewAnalyzer()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Driver{
		sessions: sessions,
		analyzer: analyzer,
		repo:     repo,
		logger:   logger,
		metrics:  m,
	}
}

func (d *Driver) lockCall(callSID string) func() {
	mu, _ := d.locks.LoadOrStore(callSID, &sync.Mutex{})
	mu.(*sync.Mutex).Lock()
	return func() { mu.(*sync.Mutex).Unlock() }
}

// HandleTurn processes one utterance for a call and returns what to say next.
func (d *Driver) HandleTurn(ctx context.Context, callSID, caller, speech string) (TurnResult, error) {
	unlock := d.lockCall(callSID)
	defer unlock()

	d.metrics.ObserveTurn("voice")

	session, err := d.sessions.Load(ctx, callSID)
	if err != nil {
		return TurnResult{}, err
	}
	if session == nil {
		session = &Session{CallSID: callSID, Caller: caller}
	}

	if strings.TrimSpace(speech) == "" {
		if err := d.sessions.Save(ctx, session); err != nil {
			return TurnResult{}, err
		}
		return TurnResult{Speech: greeting}, nil
	}

	session.History = append(session.History, speech)
	session.Collected = d.analyzer.Analyze(extract.Request{
		Turns:    []string{speech},
		Existing: session.Collected,
		Scope:    extract.ScopeMessage,
		Merge:    extract.FillMissing,
		Spoken:   true,
	})

	d.logger.Info("voice turn",
		"call_sid", callSID,
		"next_missing", string(extract.NextMissingField(session.Collected)))

	if extract.NextMissingField(session.Collected) == extract.FieldNone {
		return d.book(ctx, session)
	}

	if err := d.sessions.Save(ctx, session); err != nil {
		return TurnResult{}, err
	}
	return TurnResult{Speech: nextQuestion(session.Collected)}, nil
}

// book finalizes the appointment. The session is deleted only after the
// record is safely on disk, so a failed write keeps the call alive.
func (d *Driver) book(ctx context.Context, session *Session) (TurnResult, error) {
	info := session.Collected
	if info.Phone == "" {
		info.Phone = callerPhone(session.Caller)
	}

	req := appointments.FromInfo(info)
	appointment, err := d.repo.Append(ctx, &req)
	if err != nil {
		d.logger.Error("failed to persist voice appointment", "error", err, "call_sid", session.CallSID)
		d.metrics.ObserveAppointment("voice", "failed")
		if saveErr := d.sessions.Save(ctx, session); saveErr != nil {
			return TurnResult{}, saveErr
		}
		return TurnResult{Speech: bookingFailed, Done: true}, nil
	}

	d.logger.Info("appointment booked from call",
		"id", appointment.ID,
		"call_sid", session.CallSID,
		"name", appointment.Name)
	d.metrics.ObserveAppointment("voice", "created")

	if err := d.sessions.Delete(ctx, session.CallSID); err != nil {
		d.logger.Error("failed to delete voice session", "error", err, "call_sid", session.CallSID)
	}
	d.locks.Delete(session.CallSID)

	return TurnResult{
		Speech: fmt.Sprintf(confirmationLine, appointment.ID),
		Done:   true,
	}, nil
}

// nextQuestion asks for the first field still missing, in booking order.
func nextQuestion(info extract.Info) string {
	switch extract.NextMissingField(info) {
	case extract.FieldName:
		return "İsim soyisminizi tekrar söyleyebilir misiniz?"
	case extract.FieldVehicleType:
		return "Hangi araç için randevu istiyorsunuz? Otomobil, SUV, Karavan?"
	case extract.FieldDate:
		return "Hangi gün geleceksiniz? Pazartesi, Salı gibi gün söyleyin."
	case extract.FieldTime:
		return "Saat kaçta? Örneğin saat 14 veya saat 15 gibi."
	default:
		return "Randevu oluşturuluyor."
	}
}

// callerPhone strips the country prefix Twilio puts on the caller id.
func callerPhone(caller string) string {
	phone := strings.ReplaceAll(caller, "+90", "")
	return strings.ReplaceAll(phone, "+", "")
}
