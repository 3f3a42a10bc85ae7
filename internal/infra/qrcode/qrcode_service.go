package qrcode

import (
	"encoding/json"
	"net/url"
	"path"
	"strconv"
	"strings"

	"bakery/config"
	"bakery/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	pickupType  = "pickup"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// PickupData is the payload of a pickup QR code.
type PickupData struct {
	OrderID int64  `json:"order_id"`
	Type    string `json:"type"`
}

// NewQRCodeService creates a QR code service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level, baseURL := defaultSize, "M", ""
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		if cfg.QRCode.ErrorCorrectionLevel != "" {
			level = cfg.QRCode.ErrorCorrectionLevel
		}
		baseURL = strings.TrimRight(cfg.QRCode.BaseURL, "/")
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(level),
		baseURL:              baseURL,
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GeneratePickupQR renders a PNG for orderID. With a base URL the code links
// to the order page, otherwise it carries a small JSON payload.
func (s *qrcodeService) GeneratePickupQR(orderID int64) ([]byte, error) {
	if orderID <= 0 {
		return nil, errors.Errorf("invalid order id: %d", orderID)
	}

	content, err := s.content(orderID)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) content(orderID int64) (string, error) {
	if s.baseURL != "" {
		return s.baseURL + "/orders/" + strconv.FormatInt(orderID, 10), nil
	}

	jsonData, err := json.Marshal(PickupData{OrderID: orderID, Type: pickupType})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(jsonData), nil
}

// ParsePickupQR accepts either payload written by GeneratePickupQR and
// returns the order id.
func (s *qrcodeService) ParsePickupQR(qrData string) (int64, error) {
	qrData = strings.TrimSpace(qrData)
	if strings.HasPrefix(qrData, "{") {
		var data PickupData
		if err := json.Unmarshal([]byte(qrData), &data); err != nil {
			return 0, errors.Wrap(err, "failed to unmarshal QR code data")
		}
		if data.Type != pickupType {
			return 0, errors.Errorf("invalid QR code type: %s", data.Type)
		}
		if data.OrderID <= 0 {
			return 0, errors.Errorf("invalid order id: %d", data.OrderID)
		}

		return data.OrderID, nil
	}

	u, err := url.Parse(qrData)
	if err != nil {
		return 0, errors.Wrap(err, "failed to parse QR code url")
	}
	if path.Base(path.Dir(u.Path)) != "orders" {
		return 0, errors.Errorf("QR code url does not point at an order: %s", qrData)
	}
	orderID, err := strconv.ParseInt(path.Base(u.Path), 10, 64)
	if err != nil || orderID <= 0 {
		return 0, errors.Errorf("invalid order id in QR code url: %s", qrData)
	}

	return orderID, nil
}
