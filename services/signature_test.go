package services

import (
	"testing"

	"hotel-booking/dto"
)

func basePayload() *dto.PaymentPayload {
	return &dto.PaymentPayload{
		BookingID:      42,
		PaymentMethod:  "momo",
		TransactionRef: "TXN-001",
		AmountDue:      1500000,
		AmountTendered: 1500000,
		Change:         0,
		Status:         "completed",
		Timestamp:      1750000000,
		CustomerEmail:  "khach@test.vn",
	}
}

func TestSignPayloadDeterministic(t *testing.T) {
	p := basePayload()
	first := SignPayload(p, "secret")
	second := SignPayload(p, "secret")
	if first != second {
		t.Errorf("cùng payload cùng secret phải ra cùng chữ ký: %s != %s", first, second)
	}
	if len(first) != 64 {
		t.Errorf("chữ ký hex SHA-256 phải dài 64 ký tự, nhận %d", len(first))
	}
}

func TestVerifySignature(t *testing.T) {
	p := basePayload()
	sig := SignPayload(p, "secret")

	if !VerifySignature(p, "secret", sig) {
		t.Error("chữ ký đúng phải được chấp nhận")
	}
	if VerifySignature(p, "khac", sig) {
		t.Error("secret khác phải bị từ chối")
	}

	tampered := basePayload()
	tampered.AmountDue = 1
	if VerifySignature(tampered, "secret", sig) {
		t.Error("payload bị sửa phải bị từ chối")
	}
}

func TestSignPayloadFieldSensitivity(t *testing.T) {
	base := SignPayload(basePayload(), "secret")

	mutations := []func(p *dto.PaymentPayload){
		func(p *dto.PaymentPayload) { p.BookingID = 43 },
		func(p *dto.PaymentPayload) { p.PaymentMethod = "tien_mat" },
		func(p *dto.PaymentPayload) { p.TransactionRef = "TXN-002" },
		func(p *dto.PaymentPayload) { p.AmountDue = 1 },
		func(p *dto.PaymentPayload) { p.AmountTendered = 1 },
		func(p *dto.PaymentPayload) { p.Change = 9 },
		func(p *dto.PaymentPayload) { p.Status = "pending" },
		func(p *dto.PaymentPayload) { p.Timestamp = 1 },
	}

	for i, mutate := range mutations {
		p := basePayload()
		mutate(p)
		if SignPayload(p, "secret") == base {
			t.Errorf("mutation %d không làm đổi chữ ký", i)
		}
	}
}
