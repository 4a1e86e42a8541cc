package services

import (
	"sort"
	"strings"
	"sync"

	"github.com/BimsaraU/SkyNest-sub000/models"
	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

// ScoredRoom là một phòng kèm điểm phù hợp với query
type ScoredRoom struct {
	Room  models.Room `json:"room"`
	Score int         `json:"score"`
}

// SearchService tìm phòng theo query tự do (tên loại phòng, số phòng...)
type SearchService struct {
	db *gorm.DB
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db}
}

// normalizeInput chuẩn hóa chuỗi: bỏ dấu, lowercase, trim
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// createMatcher tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// calculateSimilarity tính độ tương đồng giữa hai chuỗi theo khoảng cách levenshtein
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

// prepareTypeNames lấy danh sách tên loại phòng duy nhất cho closestmatch
func prepareTypeNames(rooms []models.Room) []string {
	unique := make(map[string]bool)
	for _, room := range rooms {
		name := normalizeInput(room.RoomType.Name)
		if name != "" {
			unique[name] = true
		}
	}

	names := make([]string, 0, len(unique))
	for name := range unique {
		names = append(names, name)
	}
	return names
}

// calculateRoomScore tính điểm phù hợp cho một phòng
func calculateRoomScore(query string, room models.Room, cmType *closestmatch.ClosestMatch) int {
	score := 0

	typeName := normalizeInput(room.RoomType.Name)
	if cmType.Closest(query) == typeName {
		score += 20
	}
	if strings.Contains(query, typeName) {
		score += 15
	}
	if calculateSimilarity(query, typeName) > 0.7 {
		score += 10
	}

	roomNumber := normalizeInput(room.RoomNumber)
	if roomNumber != "" && strings.Contains(query, roomNumber) {
		score += 25
	}

	return score
}

// SearchRooms chấm điểm toàn bộ phòng theo query và trả về danh sách giảm dần theo điểm
func (s *SearchService) SearchRooms(query string) ([]ScoredRoom, error) {
	var rooms []models.Room
	if err := s.db.Preload("RoomType").Find(&rooms).Error; err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return []ScoredRoom{}, nil
	}

	normalizedQuery := normalizeInput(query)
	cmType := createMatcher(prepareTypeNames(rooms))

	scoreCh := make(chan ScoredRoom, len(rooms))
	var wg sync.WaitGroup

	for _, room := range rooms {
		wg.Add(1)
		go func(room models.Room) {
			defer wg.Done()
			score := calculateRoomScore(normalizedQuery, room, cmType)
			if score > 0 {
				scoreCh <- ScoredRoom{Room: room, Score: score}
			}
		}(room)
	}

	wg.Wait()
	close(scoreCh)

	var scored []ScoredRoom
	for sr := range scoreCh {
		scored = append(scored, sr)
	}

	sort.Slice(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored, nil
}
