// Package models содержит доменные структуры профиля пользователя LowMax,
// а также вспомогательные типы для приёма данных из JSON-запросов.
// Профиль — единственный корневой агрегат: один экземпляр на установку приложения.
package models

import "time"

// Слоты фотографий профиля.
const (
	PhotoSlotFront        = "front"        // Фронтальная фотография
	PhotoSlotLeftProfile  = "leftProfile"  // Левый профиль
	PhotoSlotRightProfile = "rightProfile" // Правый профиль
)

// Photos хранит ссылки на три загруженные фотографии (data-URL или object-URL).
// Ссылки эфемерны: в хранилище никогда не сериализуются.
type Photos struct {
	Front        *string `json:"front"`
	LeftProfile  *string `json:"leftProfile"`
	RightProfile *string `json:"rightProfile"`
}

// EvolutionEntry — сохранённая пара фотографий "до/после" с подписью периода.
// Поля Before и After обнуляются перед записью в хранилище.
type EvolutionEntry struct {
	ID     string  `json:"id"`     // Уникальный идентификатор записи
	Before *string `json:"before"` // Фотография "до"
	After  *string `json:"after"`  // Фотография "после"
	Period string  `json:"period"` // Подпись периода сравнения, например "1 mês"
}

// AnalysisEvent — запись журнала о проведённом анализе.
// Журнал append-only: политика квоты считает окно при чтении, не при записи.
type AnalysisEvent struct {
	ID          string    `json:"id"`          // Уникальный идентификатор события
	Date        time.Time `json:"date"`        // Момент завершения анализа
	PhotoHashes []string  `json:"photoHashes"` // Перцептивные хэши фотографий анализа
}

// UserProfile — корневой агрегат приложения.
// Мутируется только через именованные операции сервиса профиля,
// чтобы эффект персистентности срабатывал на каждое изменение.
type UserProfile struct {
	Goal              string              `json:"goal"`              // Цель: face, skin, posture, general или ""
	Photos            Photos              `json:"photos"`            // Текущие фотографии (не персистентны)
	LastAnalysisPhoto *string             `json:"lastAnalysisPhoto"` // Фронтальная фотография последнего анализа (не персистентна)
	Scores            *AnalysisResult     `json:"scores"`            // Результат последнего анализа
	Checkins          map[string][]string `json:"checkins"`          // Дата (YYYY-MM-DD) -> идентификаторы привычек
	Evolution         []EvolutionEntry    `json:"evolution"`         // Записи эволюции "до/после"
	AnalysisHistory   []AnalysisEvent     `json:"analysisHistory"`   // Журнал событий анализа

	// Устаревшие счётчики календарной недели. Вытеснены скользящим окном,
	// сохраняются только для обратной миграции документов старых ревизий.
	LastAnalysisDate    *time.Time `json:"lastAnalysisDate"`
	WeeklyAnalysisCount int        `json:"weeklyAnalysisCount"`
	WeekStartDate       *string    `json:"weekStartDate"`
}

// DefaultProfile возвращает документ профиля со значениями по умолчанию.
// Используется при первом запуске и как основа прямой миграции старых документов.
func DefaultProfile() *UserProfile {
	return &UserProfile{
		Goal:            "",
		Checkins:        map[string][]string{},
		Evolution:       []EvolutionEntry{},
		AnalysisHistory: []AnalysisEvent{},
	}
}

// DummyCheckin используется для приёма чек-ина из JSON-запроса.
type DummyCheckin struct {
	Date   string   `json:"date" validate:"required,datetime=2006-01-02"` // Дата чек-ина
	Habits []string `json:"habits"`                                       // Отмеченные привычки (пустой список очищает день)
}

// DummyEvolutionEntry используется для приёма новой записи эволюции из JSON-запроса.
type DummyEvolutionEntry struct {
	Before *string `json:"before"`                     // Фотография "до" (data-URL)
	After  *string `json:"after"`                      // Фотография "после" (data-URL)
	Period string  `json:"period" validate:"required"` // Подпись периода
}
