package utils

import (
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"

	"studytask/config"
)

type slideConversionResponse struct {
	Success    bool   `json:"success"`
	SlideCount int    `json:"slide_count"`
	Error      string `json:"error"`
}

// RequestSlideConversion asks the external conversion service to turn
// a lesson's PDF into slide images. The service owns the rendered
// files; only the resulting slide count comes back. Returns 0 with an
// error when the service is unreachable or rejects the file.
func RequestSlideConversion(lessonID uint, pdfPath string) (int, error) {
	client := resty.New().SetTimeout(60 * time.Second)

	var result slideConversionResponse
	resp, err := client.R().
		SetHeader("Authorization", "Bearer "+config.AppConfig.SlideServiceKey).
		SetBody(map[string]interface{}{
			"lesson_id": lessonID,
			"pdf_path":  pdfPath,
		}).
		SetResult(&result).
		Post(config.AppConfig.SlideServiceURL)
	if err != nil {
		log.Printf("Error calling slide conversion service for lesson %d: %v", lessonID, err)
		return 0, err
	}

	if resp.StatusCode() != 200 || !result.Success {
		log.Printf("Slide conversion failed for lesson %d: %s", lessonID, result.Error)
		return 0, fmt.Errorf("slide conversion failed: %s", result.Error)
	}

	return result.SlideCount, nil
}
