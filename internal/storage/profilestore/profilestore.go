// Package profilestore реализует локальное персистентное хранилище профиля:
// key-value блоб на диске с двумя ключами — документ профиля и флаг входа.
//
// Персистентность best-effort: ошибки записи логируются и не поднимаются
// к вызывающему, состояние сессии остаётся корректным в памяти.
// Фотографии в хранилище не попадают никогда: base64-полезная нагрузка
// легко превышает бюджет хранилища.
package profilestore

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lowmaxapp/lowmax/internal/lib/sl"
	"github.com/lowmaxapp/lowmax/internal/models"
)

// Имена ключей хранилища.
const (
	KeyProfile  = "profile"  // JSON-документ профиля, фотографии обнулены
	KeyLoggedIn = "loggedIn" // Строка "true" / "false"
)

// Store — файловое key-value хранилище документа профиля.
type Store struct {
	dir string
	log *slog.Logger
}

// New создаёт хранилище в каталоге dir, создавая каталог при необходимости.
func New(dir string, log *slog.Logger) (*Store, error) {
	const op = "profilestore.New"
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{dir: dir, log: log}, nil
}

func (s *Store) keyPath(key string) string {
	return filepath.Join(s.dir, key)
}

// Load читает документ профиля. Отсутствующий ключ возвращает документ
// по умолчанию; документ старой ревизии схемы декодируется поверх документа
// по умолчанию, так что новые поля получают свои значения по умолчанию
// (обязательная прямая миграция). Нечитаемый документ молча заменяется
// документом по умолчанию: повреждённое хранилище не должно ронять приложение.
func (s *Store) Load() *models.UserProfile {
	const op = "profilestore.Load"

	profile := models.DefaultProfile()
	raw, err := os.ReadFile(s.keyPath(KeyProfile))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("could not read profile, using defaults", sl.Op(op), sl.Err(err))
		}
		return profile
	}

	if err := json.Unmarshal(raw, profile); err != nil {
		s.log.Warn("corrupt profile document, using defaults", sl.Op(op), sl.Err(err))
		return models.DefaultProfile()
	}

	// Явный null в старом документе не должен оставить nil-колекции.
	if profile.Checkins == nil {
		profile.Checkins = map[string][]string{}
	}
	if profile.Evolution == nil {
		profile.Evolution = []models.EvolutionEntry{}
	}
	if profile.AnalysisHistory == nil {
		profile.AnalysisHistory = []models.AnalysisEvent{}
	}
	return profile
}

// Save сохраняет документ профиля, безусловно обнуляя все фотографии
// и поля before/after записей эволюции — даже если вызывающий забыл
// их вычистить. Оценки сохраняются всегда. Ошибка записи логируется
// и не возвращается: персистентность best-effort.
func (s *Store) Save(profile *models.UserProfile) {
	const op = "profilestore.Save"

	stripped := Strip(profile)
	raw, err := json.Marshal(stripped)
	if err != nil {
		s.log.Warn("could not serialize profile", sl.Op(op), sl.Err(err))
		return
	}
	if err := s.writeKey(KeyProfile, raw); err != nil {
		s.log.Warn("could not save profile", sl.Op(op), sl.Err(err))
	}
}

// LoadLoggedIn читает флаг входа; отсутствующий или нечитаемый ключ — false.
func (s *Store) LoadLoggedIn() bool {
	raw, err := os.ReadFile(s.keyPath(KeyLoggedIn))
	if err != nil {
		return false
	}
	return string(raw) == "true"
}

// SaveLoggedIn записывает флаг входа под собственным ключом.
func (s *Store) SaveLoggedIn(loggedIn bool) {
	const op = "profilestore.SaveLoggedIn"

	value := "false"
	if loggedIn {
		value = "true"
	}
	if err := s.writeKey(KeyLoggedIn, []byte(value)); err != nil {
		s.log.Warn("could not save login flag", sl.Op(op), sl.Err(err))
	}
}

// writeKey записывает значение ключа атомарно: во временный файл с переименованием,
// чтобы сбой посреди записи не повредил прежний документ.
func (s *Store) writeKey(key string, value []byte) error {
	tmp := s.keyPath(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.keyPath(key))
}

// Strip возвращает копию профиля с обнулёнными фотографиями:
// слоты Photos, LastAnalysisPhoto и before/after каждой записи эволюции.
// Исходный документ не меняется.
func Strip(profile *models.UserProfile) *models.UserProfile {
	stripped := *profile
	stripped.Photos = models.Photos{}
	stripped.LastAnalysisPhoto = nil

	stripped.Evolution = make([]models.EvolutionEntry, len(profile.Evolution))
	for i, e := range profile.Evolution {
		e.Before = nil
		e.After = nil
		stripped.Evolution[i] = e
	}
	return &stripped
}
