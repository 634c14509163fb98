package notification

import (
	"fmt"

	"hotel-booking/services/logger"

	"github.com/olahol/melody"
)

// EventType loại sự kiện phát ra sau khi commit transaction
type EventType string

const (
	EventBookingConfirmed EventType = "BOOKING_CONFIRMED"
	EventBookingCancelled EventType = "BOOKING_CANCELLED"
	EventExcessAmount     EventType = "EXCESS_AMOUNT"
)

// Event mang dữ liệu thông báo. Service nghiệp vụ chỉ tạo Event sau khi
// transaction đã commit; việc gửi đi nằm trọn ở đây nên lỗi gửi không bao
// giờ lan ngược vào nghiệp vụ.
type Event struct {
	Type         EventType
	Email        string
	BookingID    uint
	RoomNumber   string
	CheckIn      string
	CheckOut     string
	InvoiceID    uint
	ExcessAmount float64
}

// Dispatcher nhận các sự kiện hậu-commit và gửi chúng đi
type Dispatcher interface {
	Dispatch(events []Event)
}

// Mailer gửi email thông báo cho từng loại sự kiện
type Mailer interface {
	SendBookingConfirmation(ev Event) error
	SendCancellationNotice(ev Event) error
	SendExcessAmountNotice(ev Event) error
}

// Service gửi email và broadcast websocket cho bảng điều khiển admin.
// Mọi lỗi chỉ được log, không trả về cho caller.
type Service struct {
	mailer Mailer
	m      *melody.Melody
	logger logger.Logger
}

func NewService(mailer Mailer, m *melody.Melody, l logger.Logger) *Service {
	return &Service{
		mailer: mailer,
		m:      m,
		logger: l,
	}
}

func (s *Service) Dispatch(events []Event) {
	for _, ev := range events {
		var err error
		switch ev.Type {
		case EventBookingConfirmed:
			err = s.mailer.SendBookingConfirmation(ev)
		case EventBookingCancelled:
			err = s.mailer.SendCancellationNotice(ev)
		case EventExcessAmount:
			err = s.mailer.SendExcessAmountNotice(ev)
		default:
			s.logger.Error("Loại sự kiện không xác định: %s", ev.Type)
			continue
		}
		if err != nil {
			s.logger.Error("Gửi email %s cho đơn %d không thành công: %v", ev.Type, ev.BookingID, err)
		}

		s.broadcast(ev)
	}
}

func (s *Service) broadcast(ev Event) {
	if s.m == nil {
		return
	}
	if err := s.m.Broadcast([]byte(buildMessage(ev))); err != nil {
		s.logger.Error("Broadcast websocket không thành công: %v", err)
	}
}

func buildMessage(ev Event) string {
	switch ev.Type {
	case EventBookingConfirmed:
		return fmt.Sprintf("🔔 Đơn %d vừa đặt phòng %s từ %s đến %s.", ev.BookingID, ev.RoomNumber, ev.CheckIn, ev.CheckOut)
	case EventBookingCancelled:
		return fmt.Sprintf("🔔 Đơn %d phòng %s đã bị hủy.", ev.BookingID, ev.RoomNumber)
	case EventExcessAmount:
		return fmt.Sprintf("🔔 Hóa đơn %d của đơn %d thừa %.0f cần hoàn lại.", ev.InvoiceID, ev.BookingID, ev.ExcessAmount)
	default:
		return ""
	}
}
