// Package quota реализует политику ограничения числа анализов.
//
// Политика чистая: окно считается в момент запроса по журналу событий,
// журнал при записи не усекается. Основная политика — скользящее окно
// в семь дней; календарная неделя с понедельника оставлена как
// устаревший вариант и выбирается конфигурацией.
package quota

import (
	"time"

	"github.com/google/uuid"

	"github.com/lowmaxapp/lowmax/internal/lib/dateutil"
	"github.com/lowmaxapp/lowmax/internal/models"
)

// DefaultLimit — число анализов в окне по умолчанию.
// Продакшен: 3 | Тест: 10.
const DefaultLimit = 3

// DefaultWindow — ширина скользящего окна по умолчанию.
const DefaultWindow = 7 * 24 * time.Hour

// Policy решает, допустим ли новый анализ при данном журнале событий.
type Policy interface {
	// CanAnalyze сообщает, допустим ли новый анализ в момент now.
	CanAnalyze(history []models.AnalysisEvent, now time.Time) bool
	// Remaining возвращает число оставшихся анализов в текущем окне, не меньше нуля.
	Remaining(history []models.AnalysisEvent, now time.Time) int
}

// RollingWindow — основная политика: не более Limit анализов
// за скользящее окно Window, границы окна включительно.
type RollingWindow struct {
	Limit  int
	Window time.Duration
}

// NewRollingWindow возвращает политику скользящего окна со значениями по умолчанию
// вместо неположительных параметров.
func NewRollingWindow(limit int, window time.Duration) RollingWindow {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return RollingWindow{Limit: limit, Window: window}
}

func (p RollingWindow) countInWindow(history []models.AnalysisEvent, now time.Time) int {
	start := now.Add(-p.Window)
	count := 0
	for _, e := range history {
		if !e.Date.Before(start) && !e.Date.After(now) {
			count++
		}
	}
	return count
}

// CanAnalyze сообщает, меньше ли число событий в окне, чем Limit.
// Пустой журнал всегда разрешает анализ.
func (p RollingWindow) CanAnalyze(history []models.AnalysisEvent, now time.Time) bool {
	return p.countInWindow(history, now) < p.Limit
}

// Remaining возвращает max(0, Limit - число событий в окне).
func (p RollingWindow) Remaining(history []models.AnalysisEvent, now time.Time) int {
	remaining := p.Limit - p.countInWindow(history, now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CalendarWeek — устаревшая политика: счётчик анализов с начала
// календарной недели (понедельник). Несовместима со скользящим окном,
// сохранена для выбора конфигурацией.
type CalendarWeek struct {
	Limit int
}

func (p CalendarWeek) countThisWeek(history []models.AnalysisEvent, now time.Time) int {
	start := dateutil.WeekStart(now)
	count := 0
	for _, e := range history {
		if !e.Date.Before(start) && !e.Date.After(now) {
			count++
		}
	}
	return count
}

// CanAnalyze сообщает, меньше ли число событий с понедельника, чем Limit.
func (p CalendarWeek) CanAnalyze(history []models.AnalysisEvent, now time.Time) bool {
	return p.countThisWeek(history, now) < p.Limit
}

// Remaining возвращает max(0, Limit - число событий с понедельника).
func (p CalendarWeek) Remaining(history []models.AnalysisEvent, now time.Time) int {
	remaining := p.Limit - p.countThisWeek(history, now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Record добавляет в журнал новое событие анализа и возвращает обновлённый журнал.
// Старые события не удаляются: окно считается при чтении.
func Record(history []models.AnalysisEvent, now time.Time, photoHashes []string) []models.AnalysisEvent {
	if photoHashes == nil {
		photoHashes = []string{}
	}
	return append(history, models.AnalysisEvent{
		ID:          uuid.New().String(),
		Date:        now,
		PhotoHashes: photoHashes,
	})
}
