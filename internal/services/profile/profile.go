// Package profile содержит контейнер состояния профиля пользователя.
//
// Сервис — единственный владелец агрегата UserProfile: все мутации идут
// через именованные операции под мьютексом, и каждая мутация сразу
// персистится в хранилище. Хранилище само применяет правило среза
// фотографий, вызывающему об этом знать не нужно.
package profile

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lowmaxapp/lowmax/internal/content"
	"github.com/lowmaxapp/lowmax/internal/models"
	"github.com/lowmaxapp/lowmax/internal/quota"
)

// Store определяет методы персистентности профиля.
type Store interface {
	// Load возвращает профиль из хранилища либо документ по умолчанию.
	Load() *models.UserProfile
	// Save сериализует профиль без фотографий и пишет его в хранилище.
	Save(profile *models.UserProfile)
	// LoadLoggedIn возвращает сохранённый флаг входа.
	LoadLoggedIn() bool
	// SaveLoggedIn сохраняет флаг входа.
	SaveLoggedIn(loggedIn bool)
}

// Service — контейнер состояния профиля с дисциплиной одного писателя.
type Service struct {
	mu       sync.Mutex
	store    Store
	policy   quota.Policy
	profile  *models.UserProfile
	loggedIn bool
	log      *slog.Logger
}

// New загружает профиль из хранилища и возвращает сервис.
// Повреждённое хранилище даёт документ по умолчанию без ошибки.
func New(store Store, policy quota.Policy, log *slog.Logger) *Service {
	return &Service{
		store:    store,
		policy:   policy,
		profile:  store.Load(),
		loggedIn: store.LoadLoggedIn(),
		log:      log,
	}
}

// Get возвращает снимок текущего профиля.
// Снимок отвязан от внутреннего состояния: мутировать его безопасно.
func (s *Service) Get() *models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.profile)
}

// SetGoal устанавливает цель эволюции. Пустая строка сбрасывает цель.
func (s *Service) SetGoal(goal string) error {
	const op = "services.profile.SetGoal"

	if !content.ValidGoal(goal) {
		return fmt.Errorf("%s: unknown goal %q", op, goal)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Goal = goal
	s.persist()

	s.log.Info("goal updated", slog.String("goal", goal))
	return nil
}

// SetPhoto записывает ссылку на фотографию в слот. Nil очищает слот.
func (s *Service) SetPhoto(slot string, photo *string) error {
	const op = "services.profile.SetPhoto"

	s.mu.Lock()
	defer s.mu.Unlock()

	switch slot {
	case models.PhotoSlotFront:
		s.profile.Photos.Front = photo
	case models.PhotoSlotLeftProfile:
		s.profile.Photos.LeftProfile = photo
	case models.PhotoSlotRightProfile:
		s.profile.Photos.RightProfile = photo
	default:
		return fmt.Errorf("%s: unknown photo slot %q", op, slot)
	}

	s.persist()
	return nil
}

// ResetPhotos очищает все три слота фотографий.
func (s *Service) ResetPhotos() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Photos = models.Photos{}
	s.persist()
}

// SetScores заменяет результат последнего анализа без записи события квоты.
func (s *Service) SetScores(scores *models.AnalysisResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Scores = scores
	s.persist()
}

// AddCheckin перезаписывает список привычек за день.
// Пустой список допустим и очищает отметки дня.
func (s *Service) AddCheckin(date string, habitIDs []string) error {
	const op = "services.profile.AddCheckin"

	for _, id := range habitIDs {
		if !content.ValidHabit(id) {
			return fmt.Errorf("%s: unknown habit %q", op, id)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.profile.Checkins == nil {
		s.profile.Checkins = map[string][]string{}
	}
	habits := make([]string, len(habitIDs))
	copy(habits, habitIDs)
	s.profile.Checkins[date] = habits
	s.persist()

	s.log.Info("checkin saved",
		slog.String("date", date),
		slog.Int("habits", len(habits)))
	return nil
}

// AddEvolution добавляет запись эволюции в начало списка и возвращает её.
func (s *Service) AddEvolution(req models.DummyEvolutionEntry) models.EvolutionEntry {
	entry := models.EvolutionEntry{
		ID:     uuid.NewString(),
		Before: req.Before,
		After:  req.After,
		Period: req.Period,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile.Evolution = append([]models.EvolutionEntry{entry}, s.profile.Evolution...)
	s.persist()

	s.log.Info("evolution entry added", slog.String("id", entry.ID))
	return entry
}

// CanAnalyze сообщает, допускает ли политика квоты новый анализ в момент now.
func (s *Service) CanAnalyze(now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.policy.CanAnalyze(s.profile.AnalysisHistory, now)
}

// RemainingAnalyses возвращает остаток квоты анализов в текущем окне.
func (s *Service) RemainingAnalyses(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.policy.Remaining(s.profile.AnalysisHistory, now)
}

// PhotoHashes возвращает все перцептивные хэши из журнала анализов.
func (s *Service) PhotoHashes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var hashes []string
	for _, e := range s.profile.AnalysisHistory {
		hashes = append(hashes, e.PhotoHashes...)
	}
	return hashes
}

// RecordAnalysis фиксирует завершённый анализ: сохраняет оценки,
// снимок фронтальной фотографии и событие журнала квоты.
func (s *Service) RecordAnalysis(scores *models.AnalysisResult, photo *string, hashes []string, now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile.Scores = scores
	s.profile.LastAnalysisPhoto = photo
	s.profile.AnalysisHistory = quota.Record(s.profile.AnalysisHistory, now, hashes)
	s.persist()

	s.log.Info("analysis recorded",
		slog.Int("overall", scores.Overall),
		slog.Int("history_len", len(s.profile.AnalysisHistory)))
}

// IsLoggedIn возвращает флаг симулированного входа.
func (s *Service) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}

// SetLoggedIn сохраняет флаг симулированного входа.
func (s *Service) SetLoggedIn(loggedIn bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loggedIn = loggedIn
	s.store.SaveLoggedIn(loggedIn)
}

// persist пишет текущий профиль в хранилище. Вызывается под мьютексом.
func (s *Service) persist() {
	s.store.Save(s.profile)
}

// snapshot возвращает глубокую копию профиля по изменяемым коллекциям.
// Строки за указателями неизменяемы, их указатели разделяются.
func snapshot(p *models.UserProfile) *models.UserProfile {
	cp := *p

	cp.Checkins = make(map[string][]string, len(p.Checkins))
	for date, habits := range p.Checkins {
		cp.Checkins[date] = append([]string(nil), habits...)
	}

	cp.Evolution = make([]models.EvolutionEntry, len(p.Evolution))
	copy(cp.Evolution, p.Evolution)

	cp.AnalysisHistory = make([]models.AnalysisEvent, len(p.AnalysisHistory))
	for i, e := range p.AnalysisHistory {
		e.PhotoHashes = append([]string(nil), e.PhotoHashes...)
		cp.AnalysisHistory[i] = e
	}

	if p.Scores != nil {
		scores := *p.Scores
		cp.Scores = &scores
	}
	return &cp
}
