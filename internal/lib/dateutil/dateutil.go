// Package dateutil содержит чистые функции календарной арифметики для чек-инов:
// локальные ключи дат, индексы дней недели с понедельника и подсчёт серии дней.
package dateutil

import "time"

// DateKeyLayout — формат ключа даты в журнале чек-инов.
const DateKeyLayout = "2006-01-02"

// DateKey возвращает локальную дату в формате YYYY-MM-DD.
// Ключи строятся от локального времени, чтобы чек-ин не "переезжал"
// на соседний день из-за часового пояса.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// WeekdayIndex возвращает индекс дня недели, где понедельник = 0, воскресенье = 6.
func WeekdayIndex(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 6
	}
	return wd - 1
}

// WeekStart возвращает начало календарной недели (понедельник, 00:00)
// для переданного момента в его локации.
func WeekStart(t time.Time) time.Time {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -WeekdayIndex(t))
}

// Streak считает текущую серию дней с хотя бы одной отмеченной привычкой.
// Сегодняшний день без отметок серию не обрывает: пользователь мог ещё
// не успеть отметиться. Глубина просмотра ограничена годом.
func Streak(checkins map[string][]string, now time.Time) int {
	streak := 0
	day := now
	for i := 0; i < 365; i++ {
		if len(checkins[DateKey(day)]) > 0 {
			streak++
			day = day.AddDate(0, 0, -1)
		} else if i == 0 {
			day = day.AddDate(0, 0, -1)
		} else {
			break
		}
	}
	return streak
}

// LastNDays возвращает ключи последних n дней в хронологическом порядке,
// заканчивая сегодняшним днём.
func LastNDays(now time.Time, n int) []string {
	keys := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		keys = append(keys, DateKey(now.AddDate(0, 0, -i)))
	}
	return keys
}
