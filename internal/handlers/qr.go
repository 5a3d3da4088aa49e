package handlers

import (
	"net/http"

	qrcode "github.com/skip2/go-qrcode"
)

// JoinQR serves a QR code pointing at the join form, for printed material
// and slide decks. Scanning opens the form directly.
func JoinQR(w http.ResponseWriter, r *http.Request) {
	url := "http://" + r.Host + "/join"

	png, err := qrcode.Encode(url, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "failed to generate qr", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
