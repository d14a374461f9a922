package profile

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lowmaxapp/lowmax/internal/models"
	"github.com/lowmaxapp/lowmax/internal/quota"
)

type storeFake struct {
	profile  *models.UserProfile
	loggedIn bool
	saves    int
}

func (f *storeFake) Load() *models.UserProfile {
	if f.profile == nil {
		return models.DefaultProfile()
	}
	return f.profile
}

func (f *storeFake) Save(profile *models.UserProfile) {
	f.profile = profile
	f.saves++
}

func (f *storeFake) LoadLoggedIn() bool { return f.loggedIn }

func (f *storeFake) SaveLoggedIn(loggedIn bool) { f.loggedIn = loggedIn }

func newTestService(store *storeFake) *Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(store, quota.NewRollingWindow(0, 0), log)
}

func strptr(s string) *string { return &s }

func TestSetGoal(t *testing.T) {
	store := &storeFake{}
	svc := newTestService(store)

	require.NoError(t, svc.SetGoal("face"))
	assert.Equal(t, "face", svc.Get().Goal)
	assert.Equal(t, 1, store.saves)

	require.NoError(t, svc.SetGoal(""))
	assert.Equal(t, "", svc.Get().Goal)

	err := svc.SetGoal("hairline")
	require.Error(t, err)
	assert.Equal(t, 2, store.saves)
}

func TestSetPhoto(t *testing.T) {
	store := &storeFake{}
	svc := newTestService(store)

	require.NoError(t, svc.SetPhoto(models.PhotoSlotFront, strptr("data:image/png;base64,AAAA")))
	require.NoError(t, svc.SetPhoto(models.PhotoSlotLeftProfile, strptr("left")))

	got := svc.Get()
	require.NotNil(t, got.Photos.Front)
	require.NotNil(t, got.Photos.LeftProfile)
	assert.Nil(t, got.Photos.RightProfile)

	require.Error(t, svc.SetPhoto("back", strptr("x")))

	svc.ResetPhotos()
	got = svc.Get()
	assert.Nil(t, got.Photos.Front)
	assert.Nil(t, got.Photos.LeftProfile)
}

func TestAddCheckinOverwritesDay(t *testing.T) {
	store := &storeFake{}
	svc := newTestService(store)

	require.NoError(t, svc.AddCheckin("2026-03-02", []string{"mewing", "skincare"}))
	require.NoError(t, svc.AddCheckin("2026-03-02", []string{"water"}))

	got := svc.Get()
	assert.Equal(t, []string{"water"}, got.Checkins["2026-03-02"])

	// Пустой список очищает день, но ключ остаётся.
	require.NoError(t, svc.AddCheckin("2026-03-02", []string{}))
	got = svc.Get()
	habits, ok := got.Checkins["2026-03-02"]
	require.True(t, ok)
	assert.Empty(t, habits)
}

func TestAddCheckinRejectsUnknownHabit(t *testing.T) {
	store := &storeFake{}
	svc := newTestService(store)

	err := svc.AddCheckin("2026-03-02", []string{"mewing", "meditation"})
	require.Error(t, err)
	assert.Empty(t, svc.Get().Checkins)
	assert.Equal(t, 0, store.saves)
}

func TestAddEvolutionPrepends(t *testing.T) {
	store := &storeFake{}
	svc := newTestService(store)

	first := svc.AddEvolution(models.DummyEvolutionEntry{Period: "1 mês"})
	second := svc.AddEvolution(models.DummyEvolutionEntry{Period: "3 meses"})

	require.NotEmpty(t, first.ID)
	require.NotEmpty(t, second.ID)
	assert.NotEqual(t, first.ID, second.ID)

	got := svc.Get()
	require.Len(t, got.Evolution, 2)
	assert.Equal(t, "3 meses", got.Evolution[0].Period)
	assert.Equal(t, "1 mês", got.Evolution[1].Period)
}

func TestSetScores(t *testing.T) {
	store := &storeFake{}
	svc := newTestService(store)

	svc.SetScores(&models.AnalysisResult{Overall: 82, Potential: 95})

	got := svc.Get()
	require.NotNil(t, got.Scores)
	assert.Equal(t, 82, got.Scores.Overall)
	// Журнал квоты не тронут: оценки заменены без события анализа.
	assert.Empty(t, got.AnalysisHistory)
	assert.Equal(t, 1, store.saves)
}

func TestRecordAnalysis(t *testing.T) {
	store := &storeFake{}
	svc := newTestService(store)
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	assert.True(t, svc.CanAnalyze(now))
	assert.Equal(t, quota.DefaultLimit, svc.RemainingAnalyses(now))

	scores := &models.AnalysisResult{Overall: 78, Potential: 95}
	svc.RecordAnalysis(scores, strptr("front"), []string{"hash-1"}, now)

	got := svc.Get()
	require.NotNil(t, got.Scores)
	assert.Equal(t, 78, got.Scores.Overall)
	require.NotNil(t, got.LastAnalysisPhoto)
	require.Len(t, got.AnalysisHistory, 1)
	assert.Equal(t, []string{"hash-1"}, got.AnalysisHistory[0].PhotoHashes)
	assert.Equal(t, []string{"hash-1"}, svc.PhotoHashes())

	svc.RecordAnalysis(scores, nil, []string{"hash-2"}, now.Add(time.Hour))
	svc.RecordAnalysis(scores, nil, []string{"hash-3"}, now.Add(2*time.Hour))

	assert.False(t, svc.CanAnalyze(now.Add(3*time.Hour)))
	assert.Equal(t, 0, svc.RemainingAnalyses(now.Add(3*time.Hour)))
	// Спустя окно квота восстанавливается, журнал не усечён.
	assert.True(t, svc.CanAnalyze(now.Add(8*24*time.Hour)))
	assert.Len(t, svc.Get().AnalysisHistory, 3)
}

func TestGetReturnsSnapshot(t *testing.T) {
	store := &storeFake{}
	svc := newTestService(store)
	require.NoError(t, svc.AddCheckin("2026-03-02", []string{"mewing"}))

	got := svc.Get()
	got.Checkins["2026-03-02"] = []string{"water"}
	got.Goal = "skin"

	fresh := svc.Get()
	assert.Equal(t, []string{"mewing"}, fresh.Checkins["2026-03-02"])
	assert.Equal(t, "", fresh.Goal)
}

func TestLoggedInFlag(t *testing.T) {
	store := &storeFake{loggedIn: false}
	svc := newTestService(store)

	assert.False(t, svc.IsLoggedIn())
	svc.SetLoggedIn(true)
	assert.True(t, svc.IsLoggedIn())
	assert.True(t, store.loggedIn)
}
