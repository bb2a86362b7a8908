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
// CLOUDINARY_CLOUD_NAME, CLOUDINARY_API_KEY, CLOUDINARY_API_SECRET,
// CLOUDINARY_FOLDER (optional)

// Cloudinary deletes listing images through Cloudinary's signed destroy
// endpoint. Implements services.ImageStore.
type Cloudinary struct{}

func NewCloudinary() *Cloudinary {
	return &Cloudinary{}
}

// publicIDFromURL derives the storage key from an image URL: the last
// path segment, stripped of its extension.
// URL format: https://res.cloudinary.com/{cloud_name}/image/upload/v{version}/{public_id}.{format}
func publicIDFromURL(imageURL string) (string, error) {
	parts := strings.Split(imageURL, "/")
	last := parts[len(parts)-1]
	publicID := strings.Split(last, ".")[0]
	if publicID == "" {
		return "", fmt.Errorf("no public ID in image URL %q", imageURL)
	}
	return publicID, nil
}

// DeleteImage removes a single image. Best-effort from the caller's
// point of view: the caller logs the error and keeps going.
func (c *Cloudinary) DeleteImage(imageURL string) error {
	publicID, err := publicIDFromURL(imageURL)
	if err != nil {
		return err
	}

	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	folder := os.Getenv("CLOUDINARY_FOLDER")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return fmt.Errorf("missing Cloudinary env vars")
	}

	finalPublicID := publicID
	if folder != "" {
		finalPublicID = folder + "/" + publicID
	}

	// Signed destroy request (signature must be SHA1)
	timestamp := fmt.Sprintf("%d", time.Now().Unix())
	signatureString := fmt.Sprintf("public_id=%s&timestamp=%s%s", finalPublicID, timestamp, apiSecret)
	signature := fmt.Sprintf("%x", sha1.Sum([]byte(signatureString)))

	form := url.Values{}
	form.Add("public_id", finalPublicID)
	form.Add("api_key", apiKey)
	form.Add("timestamp", timestamp)
	form.Add("signature", signature)

	endpoint := "https://api.cloudinary.com/v1_1/" + cloudName + "/image/destroy"
	req, err := http.NewRequest("POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode != 200 {
		return fmt.Errorf("cloudinary destroy returned status %d: %s", res.StatusCode, string(body))
	}

	var deleteRes struct {
		Result string `json:"result"`
		Error  struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &deleteRes); err != nil {
		return err
	}
	if deleteRes.Error.Message != "" {
		return fmt.Errorf("cloudinary destroy error: %s", deleteRes.Error.Message)
	}
	if deleteRes.Result != "ok" && deleteRes.Result != "not found" {
		return fmt.Errorf("cloudinary destroy result not ok: %s", deleteRes.Result)
	}

	return nil
}
