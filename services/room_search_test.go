package services

import (
	"testing"

	"hotel-booking/models"
)

func TestNormalizeInput(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Phòng Đôi", "phong doi"},
		{"  VIP  ", "vip"},
		{"giường đơn", "giuong don"},
	}
	for _, tt := range tests {
		if got := normalizeInput(tt.input); got != tt.want {
			t.Errorf("normalizeInput(%q) = %q, muốn %q", tt.input, got, tt.want)
		}
	}
}

func TestSearchRooms(t *testing.T) {
	rooms := []models.Room{
		{RoomId: 1, RoomNumber: "101", RoomType: "Phòng đôi", Description: "Có ban công nhìn ra biển"},
		{RoomId: 2, RoomNumber: "102", RoomType: "Phòng đơn", Description: "Phòng nhỏ yên tĩnh"},
		{RoomId: 3, RoomNumber: "103", RoomType: "Suite", Description: "Phòng hạng sang"},
	}

	results := SearchRooms("phong doi", rooms)
	if len(results) == 0 {
		t.Fatal("tìm 'phong doi' phải ra kết quả")
	}
	if results[0].RoomId != 1 {
		t.Errorf("phòng đôi phải đứng đầu, nhận phòng %d", results[0].RoomId)
	}

	// Câu rỗng trả nguyên danh sách
	all := SearchRooms("  ", rooms)
	if len(all) != len(rooms) {
		t.Errorf("câu tìm kiếm rỗng phải trả đủ %d phòng, nhận %d", len(rooms), len(all))
	}
}

func TestCalculateSimilarity(t *testing.T) {
	if got := calculateSimilarity("suite", "suite"); got != 1.0 {
		t.Errorf("chuỗi giống hệt phải có độ tương đồng 1.0, nhận %f", got)
	}
	if got := calculateSimilarity("", ""); got != 1.0 {
		t.Errorf("hai chuỗi rỗng coi như giống nhau, nhận %f", got)
	}
	if got := calculateSimilarity("abc", "xyz"); got != 0.0 {
		t.Errorf("chuỗi khác hoàn toàn phải ra 0, nhận %f", got)
	}
}
