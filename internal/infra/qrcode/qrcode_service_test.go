package qrcode

import (
	"testing"

	"bakery/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 0, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{Size: tt.size, ErrorCorrectionLevel: tt.errorCorrectionLevel}})
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GeneratePickupQR(t *testing.T) {
	service := NewQRCodeService(nil)

	qrBytes, err := service.GeneratePickupQR(42)
	require.NoError(t, err)
	require.Greater(t, len(qrBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GeneratePickupQR_InvalidID(t *testing.T) {
	service := NewQRCodeService(nil)

	_, err := service.GeneratePickupQR(0)

	assert.Error(t, err)
}

func TestQRCodeService_Content(t *testing.T) {
	jsonService := NewQRCodeService(nil).(*qrcodeService)
	content, err := jsonService.content(42)
	require.NoError(t, err)
	assert.JSONEq(t, `{"order_id":42,"type":"pickup"}`, content)

	urlService := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{BaseURL: "https://bakery.test/"}}).(*qrcodeService)
	content, err = urlService.content(42)
	require.NoError(t, err)
	assert.Equal(t, "https://bakery.test/orders/42", content)
}

func TestQRCodeService_ParsePickupQR(t *testing.T) {
	service := NewQRCodeService(nil)

	tests := []struct {
		name    string
		data    string
		want    int64
		wantErr bool
	}{
		{name: "json payload", data: `{"order_id":42,"type":"pickup"}`, want: 42},
		{name: "url payload", data: "https://bakery.test/orders/17", want: 17},
		{name: "wrong type", data: `{"order_id":42,"type":"subscription"}`, wantErr: true},
		{name: "missing id", data: `{"type":"pickup"}`, wantErr: true},
		{name: "broken json", data: `{"order_id":`, wantErr: true},
		{name: "other url", data: "https://bakery.test/products/17", wantErr: true},
		{name: "non numeric id", data: "https://bakery.test/orders/abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParsePickupQR(tt.data)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
