package conversation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/trace"

	"github.com/otoplaza/showroom-ai/internal/appointments"
	"github.com/otoplaza/showroom-ai/internal/extract"
	"github.com/otoplaza/showroom-ai/internal/observability/metrics"
	"github.com/otoplaza/showroom-ai/pkg/logging"
)

// History longer than this is trimmed to the system message plus the most
// recent exchanges before saving.
const (
	maxHistoryLen  = 12
	keptHistoryLen = 10

	llmMaxTokens   = 500
	llmTemperature = 0.7
)

const (
	successSuffix       = "\n\n✅ Mükemmel! Randevunuz başarıyla kaydedildi!\nRandevu Numaranız: #%d\nGaleri ekibimiz size ulaşacak."
	persistFailedSuffix = "\n\n❌ Üzgünüm, randevu oluşturulurken bir hata oluştu. Lütfen tekrar deneyin."
	incompleteSuffix    = "\n\n⚠️ Lütfen tüm bilgileri tek mesajda verin: İsim, telefon, araç tipi, tarih, saat"
)

// Reply is the assistant's answer to one chat message.
type Reply struct {
	Response           string                    `json:"response"`
	ConversationID     string                    `json:"conversation_id"`
	AppointmentCreated *appointments.Appointment `json:"appointment_created,omitempty"`
}

// Service runs the showroom chat assistant: it keeps per-conversation
// history, forwards messages to the model and books an appointment when the
// model signals that every detail has been collected.
type Service struct {
	store        *historyStore
	llm          LLMClient
	analyzer     *extract.Analyzer
	repo         appointments.Repository
	systemPrompt string
	model        string
	logger       *logging.Logger
	metrics      *metrics.AssistantMetrics
}

// ServiceConfig carries the dependencies for NewService.
type ServiceConfig struct {
	Redis      *redis.Client
	LLM        LLMClient
	Analyzer   *extract.Analyzer
	Repo       appointments.Repository
	Inventory  string
	Model      string
	HistoryTTL time.Duration
	Logger     *logging.Logger
	Metrics    *metrics.AssistantMetrics
	Tracer     trace.Tracer
}

// NewService creates the chat service.
func NewService(cfg ServiceConfig) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	analyzer := cfg.Analyzer
	if analyzer == nil {
		analyzer = extract.NewAnalyzer()
	}
	return &Service{
		store:        newHistoryStore(cfg.Redis, cfg.HistoryTTL, cfg.Tracer),
		llm:          cfg.LLM,
		analyzer:     analyzer,
		repo:         cfg.Repo,
		systemPrompt: buildSystemPrompt(cfg.Inventory),
		model:        cfg.Model,
		logger:       logger,
		metrics:      cfg.Metrics,
	}
}

// HandleMessage processes one customer message and returns the reply.
func (s *Service) HandleMessage(ctx context.Context, conversationID, message string) (*Reply, error) {
	s.metrics.ObserveTurn("chat")

	history, err := s.store.Load(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		history = []ChatMessage{{Role: ChatRoleSystem, Content: s.systemPrompt}}
	}
	history = append(history, ChatMessage{Role: ChatRoleUser, Content: message})

	start := time.Now()
	resp, err := s.llm.Complete(ctx, LLMRequest{
		Model:       s.model,
		Messages:    history,
		MaxTokens:   llmMaxTokens,
		Temperature: llmTemperature,
	})
	if err != nil {
		s.metrics.ObserveLLMRequest("error", time.Since(start).Seconds())
		return nil, err
	}
	s.metrics.ObserveLLMRequest("ok", time.Since(start).Seconds())

	text := resp.Text
	history = append(history, ChatMessage{Role: ChatRoleAssistant, Content: text})

	reply := &Reply{ConversationID: conversationID}
	booked := false

	if strings.Contains(text, TriggerToken) {
		text, reply.AppointmentCreated = s.finalize(ctx, message, text)
		history[len(history)-1].Content = text
		booked = reply.AppointmentCreated != nil
	}

	if booked {
		// A fresh conversation after a successful booking, only the
		// instructions survive.
		history = history[:1]
	} else if len(history) > maxHistoryLen {
		trimmed := make([]ChatMessage, 0, 1+keptHistoryLen)
		trimmed = append(trimmed, history[0])
		trimmed = append(trimmed, history[len(history)-keptHistoryLen:]...)
		history = trimmed
	}

	if err := s.store.Save(ctx, conversationID, history); err != nil {
		return nil, err
	}

	s.logProgress(conversationID, history)

	reply.Response = text
	return reply, nil
}

// finalize books the appointment the trigger token announced. Only the last
// customer message is analyzed so stale details from earlier in the
// conversation can never leak into the record.
func (s *Service) finalize(ctx context.Context, lastUserMessage, text string) (string, *appointments.Appointment) {
	text = strings.ReplaceAll(text, TriggerToken, "")

	info := s.analyzer.Analyze(extract.Request{
		Turns: []string{lastUserMessage},
		Scope: extract.ScopeMessage,
		Merge: extract.OverwriteAll,
	})

	if !info.Complete() {
		s.logger.Info("booking signal without complete details", "info", info)
		return text + incompleteSuffix, nil
	}

	req := appointments.FromInfo(info)
	appointment, err := s.repo.Append(ctx, &req)
	if err != nil {
		s.logger.Error("failed to persist appointment", "error", err)
		s.metrics.ObserveAppointment("chat", "failed")
		return text + persistFailedSuffix, nil
	}

	s.logger.Info("appointment booked from chat", "id", appointment.ID, "name", appointment.Name)
	s.metrics.ObserveAppointment("chat", "created")
	return text + fmt.Sprintf(successSuffix, appointment.ID), appointment
}

// logProgress reports which appointment fields the conversation so far
// already contains.
func (s *Service) logProgress(conversationID string, history []ChatMessage) {
	var turns []string
	for _, msg := range history {
		if msg.Role == ChatRoleUser {
			turns = append(turns, msg.Content)
		}
	}
	if len(turns) == 0 {
		return
	}

	info := s.analyzer.Analyze(extract.Request{
		Turns: turns,
		Scope: extract.ScopeHistory,
		Merge: extract.FillMissing,
	})

	for _, field := range collectedFields(info) {
		s.metrics.ObserveExtraction(string(field))
	}
	s.logger.Info("conversation progress",
		"conversation_id", conversationID,
		"next_missing", string(extract.NextMissingField(info)))
}

func collectedFields(info extract.Info) []extract.Field {
	var fields []extract.Field
	if info.Name != "" {
		fields = append(fields, extract.FieldName)
	}
	if info.Phone != "" {
		fields = append(fields, extract.FieldPhone)
	}
	if info.VehicleType != "" {
		fields = append(fields, extract.FieldVehicleType)
	}
	if info.Date != "" {
		fields = append(fields, extract.FieldDate)
	}
	if info.Time != "" {
		fields = append(fields, extract.FieldTime)
	}
	return fields
}
