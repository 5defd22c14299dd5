package service

// QRCodeService renders share codes for articles.
type QRCodeService interface {
	// GenerateArticleQR returns a PNG encoding the public URL of the article.
	GenerateArticleQR(slug string) ([]byte, error)

	// ArticleURL returns the public URL encoded into the QR code.
	ArticleURL(slug string) string
}
