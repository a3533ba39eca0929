package service

// QRCodeService renders QR codes as PNG images.
type QRCodeService interface {
	// GenerateLinkQR encodes a bookmark link.
	GenerateLinkQR(link string) ([]byte, error)
}
