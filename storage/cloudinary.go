package storage

import (
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Cloudinary configuration via environment variables:
// CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY, CLOUDINARY_API_SECRET, CLOUDINARY_FOLDER (optional)

// UploadBase64Image performs a signed Cloudinary upload and returns the hosted URL.
// Used for user avatars; returns "" on any failure so callers can keep the raw value.
func UploadBase64Image(base64ImageSrc string, publicID string) string {
	if base64ImageSrc == "" {
		return ""
	}

	// Strip the data-URI prefix if present
	payload := base64ImageSrc
	if i := strings.Index(base64ImageSrc, ","); i != -1 {
		payload = base64ImageSrc[i+1:]
	}

	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	folder := os.Getenv("CLOUDINARY_FOLDER")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		fmt.Printf("ERROR: Missing Cloudinary env vars\n")
		return ""
	}

	endpoint := "https://api.cloudinary.com/v1_1/" + cloudName + "/image/upload"

	// Build form data for signed upload
	form := url.Values{}
	form.Set("file", "data:image/jpeg;base64,"+payload)
	form.Set("api_key", apiKey)
	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	form.Set("timestamp", timestamp)
	if folder != "" {
		form.Set("folder", folder)
	}
	form.Set("public_id", publicID)

	// Signature over sorted params (excluding file and api_key)
	toSign := ""
	if folder != "" {
		toSign = "folder=" + folder + "&public_id=" + publicID + "&timestamp=" + timestamp
	} else {
		toSign = "public_id=" + publicID + "&timestamp=" + timestamp
	}
	h := sha1.New()
	io.WriteString(h, toSign+apiSecret)
	form.Set("signature", fmt.Sprintf("%x", h.Sum(nil)))

	resp, err := http.PostForm(endpoint, form)
	if err != nil {
		fmt.Printf("ERROR: Cloudinary upload failed: %v\n", err)
		return ""
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	var parsed struct {
		SecureURL string `json:"secure_url"`
		URL       string `json:"url"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		fmt.Printf("ERROR: Cloudinary response parse failed: %v\n", err)
		return ""
	}
	if parsed.SecureURL != "" {
		return parsed.SecureURL
	}
	return parsed.URL
}
