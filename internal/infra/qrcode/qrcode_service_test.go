package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"articlehub/config"

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
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, defaultBaseURL)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_ArticleURL(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://articles.example.com/api/v1/")

	assert.Equal(t, "https://articles.example.com/api/v1/articles/my-article", service.ArticleURL("my-article"))
	assert.Equal(t, "https://articles.example.com/api/v1/articles/a%2Fb", service.ArticleURL("a/b"))
}

func TestQRCodeService_GenerateArticleQR(t *testing.T) {
	service := NewQRCodeService(256, "M", defaultBaseURL)

	qrBytes, err := service.GenerateArticleQR("my-article")
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_GenerateArticleQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, "M", defaultBaseURL)

			qrBytes, err := service.GenerateArticleQR("cool-article")
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(qrBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
		})
	}
}

func TestNewQRCodeServiceFromConfig_Defaults(t *testing.T) {
	service := NewQRCodeServiceFromConfig(&config.Config{})

	assert.Equal(t, defaultBaseURL+"/articles/my-article", service.ArticleURL("my-article"))
}

func TestNewQRCodeServiceFromConfig_UsesSection(t *testing.T) {
	service := NewQRCodeServiceFromConfig(&config.Config{
		QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H", BaseURL: "https://x.test"},
	})

	assert.Equal(t, "https://x.test/articles/s", service.ArticleURL("s"))

	qrBytes, err := service.GenerateArticleQR("s")
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}
