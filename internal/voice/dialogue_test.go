package voice

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otoplaza/showroom-ai/internal/appointments"
	"github.com/otoplaza/showroom-ai/internal/extract"
)

// Wednesday, so "pazartesi" resolves to 2025-06-16.
var referenceNow = time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)

func newTestDriver(t *testing.T) (*Driver, *appointments.FileRepository, *SessionStore) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	repo, err := appointments.NewFileRepository(filepath.Join(t.TempDir(), "appointments.json"))
	require.NoError(t, err)

	sessions := NewSessionStore(rdb, 0, nil)
	analyzer := extract.NewAnalyzerAt(func() time.Time { return referenceNow })
	return NewDriver(sessions, analyzer, repo, nil, nil), repo, sessions
}

func TestHandleTurnGreetsOnSilence(t *testing.T) {
	driver, _, sessions := newTestDriver(t)

	result, err := driver.HandleTurn(context.Background(), "CA1", "+905321234567", "")
	require.NoError(t, err)

	assert.Equal(t, greeting, result.Speech)
	assert.False(t, result.Done)

	session, err := sessions.Load(context.Background(), "CA1")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "+905321234567", session.Caller)
}

func TestHandleTurnFullBookingFlow(t *testing.T) {
	driver, repo, sessions := newTestDriver(t)
	ctx := context.Background()

	_, err := driver.HandleTurn(ctx, "CA1", "+905321234567", "")
	require.NoError(t, err)

	turns := []struct {
		speech string
		want   string
	}{
		{"Mehmet Demir", "Hangi araç için randevu istiyorsunuz? Otomobil, SUV, Karavan?"},
		{"otomobil", "Hangi gün geleceksiniz? Pazartesi, Salı gibi gün söyleyin."},
		{"pazartesi", "Saat kaçta? Örneğin saat 14 veya saat 15 gibi."},
	}
	for _, turn := range turns {
		result, err := driver.HandleTurn(ctx, "CA1", "+905321234567", turn.speech)
		require.NoError(t, err)
		assert.Equal(t, turn.want, result.Speech)
		assert.False(t, result.Done)
	}

	result, err := driver.HandleTurn(ctx, "CA1", "+905321234567", "saat 14")
	require.NoError(t, err)
	assert.True(t, result.Done)
	assert.Contains(t, result.Speech, "Randevunuz başarıyla oluşturuldu")
	assert.Contains(t, result.Speech, "Randevu numaranız: 1")

	appointment, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Mehmet Demir", appointment.Name)
	assert.Equal(t, "otomobil", appointment.VehicleType)
	assert.Equal(t, "2025-06-16", appointment.Date)
	assert.Equal(t, "14:00", appointment.Time)
	assert.Equal(t, "5321234567", appointment.Phone, "caller id without the country prefix")

	session, err := sessions.Load(ctx, "CA1")
	require.NoError(t, err)
	assert.Nil(t, session, "session is gone once the booking is stored")
}

func TestHandleTurnRepeatsQuestionOnNoise(t *testing.T) {
	driver, _, _ := newTestDriver(t)
	ctx := context.Background()

	_, err := driver.HandleTurn(ctx, "CA1", "+905321234567", "")
	require.NoError(t, err)

	// A single-word utterance cannot be a full name, the slot stays empty.
	result, err := driver.HandleTurn(ctx, "CA1", "+905321234567", "şey")
	require.NoError(t, err)
	assert.Equal(t, "İsim soyisminizi tekrar söyleyebilir misiniz?", result.Speech)
	assert.False(t, result.Done)
}

func TestHandleTurnKeepsEarlierAnswers(t *testing.T) {
	driver, _, sessions := newTestDriver(t)
	ctx := context.Background()

	_, err := driver.HandleTurn(ctx, "CA1", "+905321234567", "Mehmet Demir")
	require.NoError(t, err)

	// A later utterance that also looks like a name must not replace the
	// one already collected.
	_, err = driver.HandleTurn(ctx, "CA1", "+905321234567", "Ayşe Kaya")
	require.NoError(t, err)

	session, err := sessions.Load(ctx, "CA1")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "Mehmet Demir", session.Collected.Name)
	assert.Len(t, session.History, 2)
}

func TestHandleTurnCombinedUtteranceBooking(t *testing.T) {
	driver, repo, _ := newTestDriver(t)
	ctx := context.Background()

	_, err := driver.HandleTurn(ctx, "CA1", "+905321234567", "Mehmet Demir")
	require.NoError(t, err)

	// The remaining three fields arrive in one utterance; the caller id
	// fills the phone.
	result, err := driver.HandleTurn(ctx, "CA1", "+905321234567", "otomobil yarın saat 10")
	require.NoError(t, err)
	assert.True(t, result.Done)

	appointment, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "2025-06-12", appointment.Date)
	assert.Equal(t, "10:00", appointment.Time)
}

func TestCallerPhone(t *testing.T) {
	assert.Equal(t, "5321234567", callerPhone("+905321234567"))
	assert.Equal(t, "15551234567", callerPhone("+15551234567"))
	assert.Equal(t, "5321234567", callerPhone("5321234567"))
}

func TestNextQuestionOrder(t *testing.T) {
	assert.Contains(t, nextQuestion(extract.Info{}), "İsim soyisminizi")
	assert.Contains(t, nextQuestion(extract.Info{Name: "Mehmet Demir"}), "Hangi araç")
	assert.Contains(t, nextQuestion(extract.Info{Name: "Mehmet Demir", VehicleType: "suv"}), "Hangi gün")
	assert.Contains(t, nextQuestion(extract.Info{Name: "Mehmet Demir", VehicleType: "suv", Date: "2025-06-16"}), "Saat kaçta")
}
