// Package analysis оркестрирует проведение анализа внешности:
// проверка квоты, поиск дубликата фотографии, вызов стратегии оценки
// и фиксация результата в профиле. При любой ошибке профиль не меняется.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lowmaxapp/lowmax/internal/imagehash"
	"github.com/lowmaxapp/lowmax/internal/lib/sl"
	"github.com/lowmaxapp/lowmax/internal/models"
	"github.com/lowmaxapp/lowmax/internal/scoring"
)

// Ожидаемые отказы анализа, различимые для пользовательских сообщений.
var (
	// ErrQuotaExceeded — квота анализов в текущем окне исчерпана.
	ErrQuotaExceeded = errors.New("analysis quota exceeded")
	// ErrDuplicatePhoto — фотография уже участвовала в прежнем анализе.
	ErrDuplicatePhoto = errors.New("photo already analyzed")
	// ErrNoPhoto — в запросе нет фронтальной фотографии.
	ErrNoPhoto = errors.New("front photo is required")
)

// ProfileState определяет операции профиля, нужные оркестрации.
type ProfileState interface {
	// Get возвращает снимок профиля.
	Get() *models.UserProfile
	// CanAnalyze сообщает, допускает ли квота новый анализ.
	CanAnalyze(now time.Time) bool
	// RemainingAnalyses возвращает остаток квоты.
	RemainingAnalyses(now time.Time) int
	// PhotoHashes возвращает хэши фотографий прежних анализов.
	PhotoHashes() []string
	// RecordAnalysis фиксирует оценки, фотографию и событие журнала.
	RecordAnalysis(scores *models.AnalysisResult, photo *string, hashes []string, now time.Time)
}

// Request — вход анализа: фронтальная фотография обязательна,
// профильные участвуют только в поиске дубликатов.
type Request struct {
	Front        string
	LeftProfile  string
	RightProfile string
}

// Result — результат успешного анализа.
type Result struct {
	Scores    *models.AnalysisResult
	Remaining int
}

// Service — оркестратор анализа.
type Service struct {
	profile  ProfileState
	strategy scoring.Strategy
	hasher   imagehash.Hasher
	log      *slog.Logger
}

// New создает оркестратор анализа.
func New(profile ProfileState, strategy scoring.Strategy, hasher imagehash.Hasher, log *slog.Logger) *Service {
	return &Service{
		profile:  profile,
		strategy: strategy,
		hasher:   hasher,
		log:      log,
	}
}

// Run проводит анализ в момент now. Порядок проверок фиксирован:
// квота, затем дубликат, затем стратегия; фиксация только после успеха.
func (s *Service) Run(ctx context.Context, req Request, now time.Time) (*Result, error) {
	const op = "services.analysis.Run"

	if req.Front == "" {
		return nil, ErrNoPhoto
	}
	if !s.profile.CanAnalyze(now) {
		s.log.Info("analysis rejected: quota exceeded")
		return nil, ErrQuotaExceeded
	}

	hashes, err := s.hashPhotos(req)
	if err != nil {
		// Нечитаемая фотография не должна блокировать анализ:
		// проверка дубликатов просто пропускается.
		s.log.Warn("failed to hash photos, skipping duplicate check", sl.Err(err))
		hashes = nil
	}
	if len(hashes) > 0 {
		check := imagehash.CheckForDuplicates(hashes[0], s.profile.PhotoHashes(), imagehash.DuplicateThreshold)
		if check.IsDuplicate {
			s.log.Info("analysis rejected: duplicate photo",
				slog.Float64("similarity", check.SimilarityScore))
			return nil, ErrDuplicatePhoto
		}
	}

	scores, err := s.strategy.Score(ctx, scoring.ScoreRequest{
		Goal:  s.profile.Get().Goal,
		Image: req.Front,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	front := req.Front
	s.profile.RecordAnalysis(scores, &front, hashes, now)

	remaining := s.profile.RemainingAnalyses(now)
	s.log.Info("analysis completed",
		slog.Int("overall", scores.Overall),
		slog.Int("remaining", remaining))

	return &Result{Scores: scores, Remaining: remaining}, nil
}

// Status возвращает доступность анализа и остаток квоты в момент now.
func (s *Service) Status(now time.Time) (bool, int) {
	return s.profile.CanAnalyze(now), s.profile.RemainingAnalyses(now)
}

// hashPhotos считает перцептивные хэши всех переданных фотографий.
// Первый хэш всегда фронтальный.
func (s *Service) hashPhotos(req Request) ([]string, error) {
	var hashes []string
	for _, photo := range []string{req.Front, req.LeftProfile, req.RightProfile} {
		if photo == "" {
			continue
		}
		h, err := s.hasher.Hash(photo)
		if err != nil {
			return nil, err
		}
		hashes = append(hashes, h)
	}
	return hashes, nil
}
