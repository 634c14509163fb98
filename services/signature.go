package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"
	"strings"

	"hotel-booking/dto"
)

// formatAmount ép số tiền về dạng chuỗi ngắn nhất không mất chính xác,
// để hai phía client/server ký ra cùng một chuỗi
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// signableFields trích tập trường được ký từ payload thanh toán.
// Tên khóa và thứ tự (alphabet) phải khớp tuyệt đối với phía client.
func signableFields(payload *dto.PaymentPayload) map[string]string {
	return map[string]string{
		"amount":     formatAmount(payload.AmountDue),
		"bookingId":  strconv.FormatUint(uint64(payload.BookingID), 10),
		"change":     formatAmount(payload.Change),
		"method":     payload.PaymentMethod,
		"paidAmount": formatAmount(payload.AmountTendered),
		"status":     payload.Status,
		"timestamp":  strconv.FormatInt(payload.Timestamp, 10),
		"transId":    payload.TransactionRef,
	}
}

// SignPayload tính chữ ký HMAC-SHA256 trên chuỗi key=value nối bằng "&",
// khóa sắp theo alphabet, mã hóa hex
func SignPayload(payload *dto.PaymentPayload, secret string) string {
	fields := signableFields(payload)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+fields[k])
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strings.Join(pairs, "&")))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature so sánh chữ ký theo thời gian không đổi
func VerifySignature(payload *dto.PaymentPayload, secret, signature string) bool {
	expected := SignPayload(payload, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
