// Package imagehash реализует эвристики идентичности фотографий:
// перцептивный average-hash 8x8, сравнение хэшей и примитивный детектор
// лица по доле пикселей телесного тона.
//
// Это заведомо упрощённые эвристики, а не модель компьютерного зрения.
// Пакет закрыт интерфейсом Hasher, чтобы реализацию можно было заменить
// настоящим перцептивным хэшем или ML-детектором без правок сервисов.
package imagehash

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"math"
	"strings"

	// Регистрация декодеров поддерживаемых форматов фотографий.
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
)

// DuplicateThreshold — порог схожести в процентах, начиная с которого
// две фотографии считаются дубликатами.
const DuplicateThreshold = 85.0

// hashSide — сторона миниатюры для average-hash.
const hashSide = 8

// Hasher вычисляет токены фотографий и ищет дубликаты среди ранее виденных.
type Hasher interface {
	// Hash возвращает токен фотографии по её содержимому.
	Hash(imageData string) (string, error)
	// IsDuplicate сообщает, совпадает ли токен с одним из прежних.
	IsDuplicate(token string, priorTokens []string) bool
}

// DuplicateCheck — результат поиска дубликата среди прежних хэшей.
type DuplicateCheck struct {
	IsDuplicate      bool    // Найден ли дубликат по порогу
	SimilarityScore  float64 // Максимальная схожесть, процент
	MostSimilarIndex int     // Индекс наиболее похожего хэша, -1 если журнал пуст
}

// FaceCheck — результат эвристической проверки наличия лица.
type FaceCheck struct {
	HasHumanFace bool    // Похоже ли изображение на портрет
	Confidence   float64 // Уверенность, процент
}

// AverageHasher — реализация Hasher на average-hash 8x8.
type AverageHasher struct{}

// Hash декодирует фотографию (raw base64 или data-URL), сжимает её до 8x8,
// переводит в оттенки серого и строит 64-битную строку из нулей и единиц:
// единица — яркость пикселя выше средней.
func (AverageHasher) Hash(imageData string) (string, error) {
	const op = "imagehash.Hash"

	img, err := decode(imageData)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	small := image.NewRGBA(image.Rect(0, 0, hashSide, hashSide))
	draw.ApproxBiLinear.Scale(small, small.Bounds(), img, img.Bounds(), draw.Src, nil)

	grays := make([]float64, 0, hashSide*hashSide)
	sum := 0.0
	for y := 0; y < hashSide; y++ {
		for x := 0; x < hashSide; x++ {
			r, g, b, _ := small.At(x, y).RGBA()
			gray := float64(r>>8)*0.299 + float64(g>>8)*0.587 + float64(b>>8)*0.114
			grays = append(grays, gray)
			sum += gray
		}
	}
	avg := sum / float64(len(grays))

	var sb strings.Builder
	for _, gray := range grays {
		if gray > avg {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String(), nil
}

// IsDuplicate сообщает, достигает ли схожесть токена с одним из прежних
// порога DuplicateThreshold.
func (h AverageHasher) IsDuplicate(token string, priorTokens []string) bool {
	return CheckForDuplicates(token, priorTokens, DuplicateThreshold).IsDuplicate
}

// Similarity возвращает схожесть двух хэшей в процентах [0,100].
// Хэши разной длины или пустые считаются несхожими.
func Similarity(hash1, hash2 string) float64 {
	if len(hash1) != len(hash2) || len(hash1) == 0 {
		return 0
	}
	same := 0
	for i := 0; i < len(hash1); i++ {
		if hash1[i] == hash2[i] {
			same++
		}
	}
	return float64(same) / float64(len(hash1)) * 100
}

// CheckForDuplicates ищет среди прежних хэшей наиболее похожий на новый
// и сравнивает максимальную схожесть с порогом.
func CheckForDuplicates(newHash string, existing []string, threshold float64) DuplicateCheck {
	maxSimilarity := 0.0
	mostSimilar := -1
	for i, h := range existing {
		if s := Similarity(newHash, h); s > maxSimilarity {
			maxSimilarity = s
			mostSimilar = i
		}
	}
	return DuplicateCheck{
		IsDuplicate:      mostSimilar >= 0 && maxSimilarity >= threshold,
		SimilarityScore:  maxSimilarity,
		MostSimilarIndex: mostSimilar,
	}
}

// DetectFace оценивает, похоже ли изображение на портрет, по доле пикселей
// телесного тона: у портрета она обычно в пределах 10-70%.
func DetectFace(imageData string) (FaceCheck, error) {
	const op = "imagehash.DetectFace"

	img, err := decode(imageData)
	if err != nil {
		return FaceCheck{}, fmt.Errorf("%s: %w", op, err)
	}

	bounds := img.Bounds()
	total := bounds.Dx() * bounds.Dy()
	if total == 0 {
		return FaceCheck{}, fmt.Errorf("%s: empty image", op)
	}

	skin := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r16, g16, b16, _ := img.At(x, y).RGBA()
			if isSkinTone(int(r16>>8), int(g16>>8), int(b16>>8)) {
				skin++
			}
		}
	}

	ratio := float64(skin) / float64(total)
	has := ratio > 0.10 && ratio < 0.70
	confidence := ratio * 100
	if has {
		confidence = math.Min(ratio*2, 1) * 100
	}
	return FaceCheck{HasHumanFace: has, Confidence: confidence}, nil
}

// isSkinTone проверяет попадание цвета в диапазоны телесных тонов
// для разных типов кожи.
func isSkinTone(r, g, b int) bool {
	light := r > 95 && g > 40 && b > 20 &&
		r > g && r > b &&
		abs(r-g) > 15 &&
		r-b > 15
	medium := r > 60 && g > 40 && b > 30 &&
		r > g && r > b &&
		r-g < 80
	dark := r > 45 && g > 30 && b > 20 &&
		r > g && g > b
	return light || medium || dark
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// decode разбирает фотографию из raw base64 или data-URL.
func decode(imageData string) (image.Image, error) {
	payload := imageData
	if strings.HasPrefix(payload, "data:") {
		idx := strings.Index(payload, ",")
		if idx < 0 {
			return nil, fmt.Errorf("malformed data url")
		}
		payload = payload[idx+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}
