package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"kazistore/internal/config"
)

const maxUploadBytes = 10 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

var uploadClient = &http.Client{Timeout: 30 * time.Second}

// OptimizeImage injects Cloudinary transform parameters for on-the-fly
// resizing. Non-Cloudinary URLs pass through untouched.
func OptimizeImage(url string, width int) string {
	if !strings.Contains(url, "cloudinary.com") {
		return url
	}
	return strings.Replace(url, "/upload/", fmt.Sprintf("/upload/f_auto,q_auto,w_%d/", width), 1)
}

type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

/*
POST /admin/api/uploads
Forwards a product image to Cloudinary's unsigned upload endpoint and
returns the stable secure URL. The upload preset takes care of incoming
transformations on the Cloudinary side.
*/
func UploadImage(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/uploads"
		defer handlePanic(c, route)

		file, header, err := c.Request.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
			return
		}
		defer file.Close()

		if header.Size > maxUploadBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds 10MB limit"})
			return
		}

		contentType := header.Header.Get("Content-Type")
		if !allowedImageTypes[contentType] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "only jpeg, png and webp images are accepted"})
			return
		}

		secureURL, err := forwardToCloudinary(cfg, file, header.Filename)
		if err != nil {
			log.Println("[UPLOAD] [ERROR] cloudinary upload failed:", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "image upload failed"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"url": secureURL})
	}
}

func forwardToCloudinary(cfg config.Config, file io.Reader, filename string) (string, error) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		defer pw.Close()
		defer writer.Close()

		if err := writer.WriteField("upload_preset", cfg.CloudinaryUploadPreset); err != nil {
			pw.CloseWithError(err)
			return
		}
		part, err := writer.CreateFormFile("file", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
	}()

	endpoint := fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cfg.CloudinaryCloudName)
	req, err := http.NewRequest(http.MethodPost, endpoint, pr)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := uploadClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("cloudinary returned %d: %s", resp.StatusCode, string(body))
	}

	var parsed cloudinaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if parsed.SecureURL == "" {
		return "", fmt.Errorf("cloudinary response missing secure_url")
	}
	return parsed.SecureURL, nil
}
