package course

import "gorm.io/gorm"

// Lesson carries exactly one content source: an uploaded video, an
// external video URL or a PDF. Video file and URL are mutually
// exclusive; the creation validator enforces this.
type Lesson struct {
	gorm.Model
	Title              string `json:"title"`
	VideoPath          string `json:"video_path"`
	VideoURL           string `json:"video_url"`
	PDFPath            string `json:"pdf_path"`
	ConvertPDFToSlides bool   `json:"convert_pdf_to_slides" gorm:"default:false"`
	SlideCount         int    `json:"slide_count" gorm:"default:0"` // filled by the external converter
	IsDeleted          bool   `gorm:"default:false"`
}
