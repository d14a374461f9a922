// Package checkin считает производные метрики журнала чек-инов:
// серию дней, сводку последней недели и процент выполнения привычек.
// Пакет только читает профиль, запись чек-ина — операция сервиса профиля.
package checkin

import (
	"time"

	"github.com/lowmaxapp/lowmax/internal/content"
	"github.com/lowmaxapp/lowmax/internal/lib/dateutil"
	"github.com/lowmaxapp/lowmax/internal/models"
)

// summaryDays — глубина недельной сводки.
const summaryDays = 7

// ProfileSource определяет доступ на чтение к профилю.
type ProfileSource interface {
	Get() *models.UserProfile
}

// DaySummary — итог одного дня недельной сводки.
type DaySummary struct {
	Date    string   `json:"date"`    // Ключ даты YYYY-MM-DD
	Weekday int      `json:"weekday"` // Индекс дня недели, понедельник = 0
	Habits  []string `json:"habits"`  // Отмеченные привычки
	Done    int      `json:"done"`    // Число отмеченных привычек
}

// Summary — сводка журнала чек-инов на момент запроса.
type Summary struct {
	Streak     int          `json:"streak"`     // Текущая серия дней
	Today      []string     `json:"today"`      // Привычки, отмеченные сегодня
	Completion int          `json:"completion"` // Процент выполнения сегодня
	Week       []DaySummary `json:"week"`       // Последние 7 дней, по порядку
}

// Service вычисляет метрики чек-инов.
type Service struct {
	profile ProfileSource
}

// New создает сервис метрик чек-инов.
func New(profile ProfileSource) *Service {
	return &Service{profile: profile}
}

// Summary возвращает сводку чек-инов в момент now.
func (s *Service) Summary(now time.Time) Summary {
	checkins := s.profile.Get().Checkins
	total := len(content.Habits())

	today := checkins[dateutil.DateKey(now)]
	completion := 0
	if total > 0 {
		completion = len(today) * 100 / total
	}

	week := make([]DaySummary, 0, summaryDays)
	for i, key := range dateutil.LastNDays(now, summaryDays) {
		habits := checkins[key]
		week = append(week, DaySummary{
			Date:    key,
			Weekday: dateutil.WeekdayIndex(now.AddDate(0, 0, i-summaryDays+1)),
			Habits:  habits,
			Done:    len(habits),
		})
	}

	return Summary{
		Streak:     dateutil.Streak(checkins, now),
		Today:      today,
		Completion: completion,
		Week:       week,
	}
}
