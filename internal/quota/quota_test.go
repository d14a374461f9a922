package quota

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowmaxapp/lowmax/internal/models"
)

func events(now time.Time, offsets ...time.Duration) []models.AnalysisEvent {
	history := make([]models.AnalysisEvent, 0, len(offsets))
	for _, off := range offsets {
		history = append(history, models.AnalysisEvent{Date: now.Add(off)})
	}
	return history
}

func TestRollingWindow_CanAnalyze(t *testing.T) {
	now := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	p := NewRollingWindow(3, 7*24*time.Hour)

	tests := []struct {
		name    string
		history []models.AnalysisEvent
		want    bool
	}{
		{
			name:    "пустой журнал всегда разрешает",
			history: nil,
			want:    true,
		},
		{
			name:    "две записи в окне",
			history: events(now, -time.Hour, -48*time.Hour),
			want:    true,
		},
		{
			name:    "три записи в окне исчерпывают лимит",
			history: events(now, -time.Hour, -2*time.Hour, -3*time.Hour),
			want:    false,
		},
		{
			name:    "ровно семь дней назад — включительная нижняя граница",
			history: events(now, -7*24*time.Hour, -7*24*time.Hour, -7*24*time.Hour),
			want:    false,
		},
		{
			name:    "семь дней и секунда назад — уже вне окна",
			history: events(now, -7*24*time.Hour-time.Second, -7*24*time.Hour-time.Second, -7*24*time.Hour-time.Second),
			want:    true,
		},
		{
			name:    "запись в момент now включается",
			history: events(now, 0, 0, 0),
			want:    false,
		},
		{
			name:    "записи из будущего не считаются",
			history: events(now, time.Hour, time.Hour, time.Hour),
			want:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.CanAnalyze(tt.history, now))
		})
	}
}

func TestRollingWindow_Remaining(t *testing.T) {
	now := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	p := NewRollingWindow(3, 7*24*time.Hour)

	assert.Equal(t, 3, p.Remaining(nil, now))
	assert.Equal(t, 1, p.Remaining(events(now, -time.Hour, -time.Minute), now))
	assert.Equal(t, 0, p.Remaining(events(now, -1*time.Hour, -2*time.Hour, -3*time.Hour, -4*time.Hour), now))
}

// Сценарий из журнала: пустой журнал, три анализа за час, затем записи
// искусственно состарены на восемь дней.
func TestRollingWindow_Scenario(t *testing.T) {
	now := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	p := NewRollingWindow(3, 7*24*time.Hour)

	var history []models.AnalysisEvent
	require.True(t, p.CanAnalyze(history, now))
	require.Equal(t, 3, p.Remaining(history, now))

	for i := 0; i < 3; i++ {
		history = Record(history, now.Add(time.Duration(i)*time.Minute-time.Hour), nil)
	}
	assert.False(t, p.CanAnalyze(history, now))
	assert.Equal(t, 0, p.Remaining(history, now))

	for i := range history {
		history[i].Date = now.AddDate(0, 0, -8)
	}
	assert.True(t, p.CanAnalyze(history, now))
	assert.Equal(t, 3, p.Remaining(history, now))
}

// Монотонность: запись внутри окна уменьшает Remaining ровно на единицу,
// запись вне окна не меняет его.
func TestRollingWindow_Monotonicity(t *testing.T) {
	now := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	p := NewRollingWindow(3, 7*24*time.Hour)

	history := events(now, -time.Hour)
	before := p.Remaining(history, now)

	inWindow := Record(history, now.Add(-time.Minute), nil)
	assert.Equal(t, before-1, p.Remaining(inWindow, now))

	outOfWindow := append(history[:1:1], models.AnalysisEvent{Date: now.AddDate(0, 0, -10)})
	assert.Equal(t, before, p.Remaining(outOfWindow, now))
}

func TestCalendarWeek(t *testing.T) {
	// Пятница; начало недели — понедельник 3 марта.
	now := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)
	p := CalendarWeek{Limit: 2}

	tests := []struct {
		name          string
		history       []models.AnalysisEvent
		wantCan       bool
		wantRemaining int
	}{
		{
			name:          "пустой журнал",
			history:       nil,
			wantCan:       true,
			wantRemaining: 2,
		},
		{
			name:          "анализ прошлой недели не считается",
			history:       events(now, -5*24*time.Hour),
			wantCan:       true,
			wantRemaining: 2,
		},
		{
			name:          "два анализа этой недели исчерпывают лимит",
			history:       events(now, -time.Hour, -24*time.Hour),
			wantCan:       false,
			wantRemaining: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantCan, p.CanAnalyze(tt.history, now))
			assert.Equal(t, tt.wantRemaining, p.Remaining(tt.history, now))
		})
	}
}

func TestRecord(t *testing.T) {
	now := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)

	history := Record(nil, now, []string{"0011"})
	require.Len(t, history, 1)
	assert.NotEmpty(t, history[0].ID)
	assert.Equal(t, now, history[0].Date)
	assert.Equal(t, []string{"0011"}, history[0].PhotoHashes)

	// Старые события не удаляются при записи.
	old := events(now, -30*24*time.Hour)
	history = Record(old, now, nil)
	assert.Len(t, history, 2)
	assert.NotNil(t, history[1].PhotoHashes)
}
