package services

import (
	stderrors "errors"

	"hotel-booking/dto"
	"hotel-booking/errors"
	"hotel-booking/models"
	"hotel-booking/validator"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService xử lý đăng ký và đăng nhập
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register tạo tài khoản khách hàng mới
func (s *AuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	if err := validator.ValidateEmail(req.Email); err != nil {
		return nil, err
	}
	if err := validator.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	var existing models.User
	if err := s.db.Where("email = ? OR username = ?", req.Email, req.Username).First(&existing).Error; err == nil {
		return nil, errors.NewAppError(errors.ErrCodeUserExists, "Email hoặc tên đăng nhập đã tồn tại", nil)
	} else if !stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn người dùng", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi mã hóa mật khẩu", err)
	}

	user := models.User{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Username:    req.Username,
		Password:    string(hashed),
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi tạo người dùng", err)
	}

	return &user, nil
}

// Login kiểm tra thông tin đăng nhập và phát hành token
func (s *AuthService) Login(req *dto.LoginRequest) (string, *models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", req.Username).First(&user).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, errors.NewAppError(errors.ErrCodeUserNotFound, "Sai tên đăng nhập hoặc mật khẩu", err)
		}
		return "", nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn người dùng", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", nil, errors.NewAppError(errors.ErrCodeInvalidPassword, "Sai tên đăng nhập hoặc mật khẩu", err)
	}

	token, err := CreateToken(&user)
	if err != nil {
		return "", nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi phát hành token", err)
	}

	return token, &user, nil
}

// GetProfile lấy thông tin người dùng hiện tại
func (s *AuthService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeUserNotFound, "Không tìm thấy người dùng", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi truy vấn người dùng", err)
	}
	return &user, nil
}
