package notification

import (
	"fmt"
	"net/smtp"
	"os"
)

// SMTPMailer gửi email qua SMTP, cấu hình từ biến môi trường
type SMTPMailer struct {
	from     string
	password string
	host     string
	port     string
}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{
		from:     os.Getenv("SMTP_FROM"),
		password: os.Getenv("SMTP_PASSWORD"),
		host:     os.Getenv("SMTP_HOST"),
		port:     os.Getenv("SMTP_PORT"),
	}
}

func (s *SMTPMailer) send(to, subject, body string) error {
	msg := []byte("MIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n" +
		"Subject: " + subject + "\r\n\r\n" + body)

	auth := smtp.PlainAuth("", s.from, s.password, s.host)
	return smtp.SendMail(s.host+":"+s.port, auth, s.from, []string{to}, msg)
}

func (s *SMTPMailer) SendBookingConfirmation(ev Event) error {
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<body>
			<p>Xin chào,</p>
			<p>Đơn đặt phòng <strong>#%d</strong> của bạn đã được ghi nhận.</p>
			<p>Phòng: <strong>%s</strong></p>
			<p>Nhận phòng: <strong>%s</strong>, trả phòng: <strong>%s</strong></p>
			<p>Xin cám ơn,<br>Khách sạn</p>
		</body>
		</html>
	`, ev.BookingID, ev.RoomNumber, ev.CheckIn, ev.CheckOut)

	return s.send(ev.Email, "Xác nhận đặt phòng", body)
}

func (s *SMTPMailer) SendCancellationNotice(ev Event) error {
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<body>
			<p>Xin chào,</p>
			<p>Đơn đặt phòng <strong>#%d</strong> (phòng %s) đã được hủy theo yêu cầu của bạn.</p>
			<p>Xin cám ơn,<br>Khách sạn</p>
		</body>
		</html>
	`, ev.BookingID, ev.RoomNumber)

	return s.send(ev.Email, "Thông báo hủy đặt phòng", body)
}

func (s *SMTPMailer) SendExcessAmountNotice(ev Event) error {
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<body>
			<p>Xin chào,</p>
			<p>Thanh toán cho hóa đơn <strong>%d</strong> (đơn #%d) thừa <strong>%.0f</strong>.</p>
			<p>Số tiền thừa sẽ được hoàn về ví của bạn trong vòng 24 giờ.</p>
			<p>Xin cám ơn,<br>Khách sạn</p>
		</body>
		</html>
	`, ev.InvoiceID, ev.BookingID, ev.ExcessAmount)

	return s.send(ev.Email, "Thông báo hoàn tiền thừa", body)
}
