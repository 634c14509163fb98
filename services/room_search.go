package services

import (
	"sort"
	"strings"

	"hotel-booking/models"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// Hàm chuẩn hóa chuỗi: bỏ dấu tiếng Việt, thường hóa
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
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

// Tạo danh sách loại phòng duy nhất cho closestmatch
func uniqueRoomTypes(rooms []models.Room) []string {
	uniqueValues := make(map[string]bool)
	for _, room := range rooms {
		if room.RoomType != "" {
			uniqueValues[normalizeInput(room.RoomType)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

// Tính điểm phù hợp của một phòng với câu tìm kiếm
func calculateRoomScore(query string, room models.Room, cmType *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	score := 0

	normalizedType := normalizeInput(room.RoomType)
	if cmType.Closest(normalizedQuery) == normalizedType {
		score += 20
	}
	if strings.Contains(normalizedQuery, normalizedType) {
		score += 15
	}

	similarity := calculateSimilarity(normalizedQuery, normalizedType)
	if similarity > 0.7 {
		score += 10
	}

	normalizedDesc := normalizeInput(room.Description)
	for _, word := range strings.Fields(normalizedQuery) {
		if len(word) > 2 && strings.Contains(normalizedDesc, word) {
			score += 2
		}
	}

	return score
}

// SearchRooms xếp hạng phòng theo độ phù hợp với câu tìm kiếm mờ,
// chỉ giữ phòng có điểm lớn hơn 0
func SearchRooms(query string, rooms []models.Room) []models.Room {
	if strings.TrimSpace(query) == "" {
		return rooms
	}

	cmType := createMatcher(uniqueRoomTypes(rooms))

	type scoredRoom struct {
		room  models.Room
		score int
	}

	scored := make([]scoredRoom, 0, len(rooms))
	for _, room := range rooms {
		score := calculateRoomScore(query, room, cmType)
		if score > 0 {
			scored = append(scored, scoredRoom{room: room, score: score})
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	result := make([]models.Room, 0, len(scored))
	for _, s := range scored {
		result = append(result, s.room)
	}
	return result
}
