package scanning

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	"image/png"
	"strings"

	"github.com/gen2brain/go-fitz"
	"github.com/gen2brain/heic"
)

// itemScanPrompt is the shared extraction prompt used by all model providers.
const itemScanPrompt = `You are analyzing a photographed or scanned document (a card, note, list, receipt, flyer, or similar). Carefully read all text in the image and extract every actionable item you find.

Each item must be one of these types, with the listed data fields:

- "birthday": someone's birthday or anniversary. data: {"personName": string, "date": "YYYY-MM-DD", "recurring": true}
- "invitation": an invitation to an event. data: {"eventName": string, "date": "YYYY-MM-DD", "time": string, "location": string}
- "todo": a task or to-do entry. data: {"task": string, "priority": "low"|"medium"|"high"} or {"items": [string]} for a whole list
- "receipt": a purchase receipt or invoice. data: {"merchant": string, "amount": number, "currency": string, "date": "YYYY-MM-DD", "lineItems": [{"description": string, "amount": number}]}
- "gift-card": a gift card, gift certificate, or voucher. data: {"brand": string, "amount": number, "code": string}
- "meeting-notes": notes from a meeting. data: {"subject": string, "date": "YYYY-MM-DD", "notes": string, "actionItems": [string]}
- "workout-plan": an exercise or training plan. data: {"planName": string, "exercises": [string]}
- "prescription": a medication prescription. data: {"medication": string, "dosage": string, "frequency": string, "prescriber": string}

For each item, produce a JSON object:
{"type": "<one of the types above>", "confidence": <number between 0 and 1>, "title": "<short label>", "description": "<one-line summary>", "data": {<type-specific fields>}}

Rules:
- Return ONLY a JSON array of these objects. No prose, no markdown code fences.
- One image may yield several items of different types (a birthday card that also implies buying a gift yields both a birthday and a todo).
- Return an empty array [] if nothing actionable is found.
- Omit data fields you cannot read rather than guessing.
- Dates must be in YYYY-MM-DD format and amounts must be numbers, not strings.`

// pdfToImage renders the first page of a PDF as PNG. Most scanned
// artifacts are single page.
func pdfToImage(pdfData []byte) ([]byte, error) {
	doc, err := fitz.NewFromMemory(pdfData)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer doc.Close()

	img, err := doc.Image(0)
	if err != nil {
		return nil, fmt.Errorf("rendering PDF page: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// imageToPNG converts any supported image format to PNG.
func imageToPNG(imageData []byte, mimeType string) ([]byte, error) {
	var img image.Image
	var err error

	// HEIC/HEIF (common for iPhone captures) is not supported by the
	// standard image package.
	if isHEICFormat(imageData) || isHEICMimeType(mimeType) {
		img, err = heic.Decode(bytes.NewReader(imageData))
		if err != nil {
			return nil, fmt.Errorf("decoding HEIC/HEIF image: %w", err)
		}
	} else {
		img, _, err = image.Decode(bytes.NewReader(imageData))
		if err != nil {
			return nil, fmt.Errorf("decoding image: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// isHEICFormat checks the ftyp box brands HEIC containers start with.
func isHEICFormat(data []byte) bool {
	if len(data) < 12 || string(data[4:8]) != "ftyp" {
		return false
	}
	switch string(data[8:12]) {
	case "heic", "heif", "mif1", "msf1":
		return true
	}
	return false
}

func isHEICMimeType(mimeType string) bool {
	m := strings.ToLower(strings.TrimSpace(mimeType))
	return strings.Contains(m, "heic") || strings.Contains(m, "heif")
}

// prepareImage normalizes the MIME type and converts the payload to PNG.
// The capture surface may hand us JPEG, PNG, GIF, HEIC, or PDF; the model
// always receives PNG.
func prepareImage(imageData []byte, contentType string) ([]byte, error) {
	if len(imageData) == 0 {
		return nil, ErrNoImage
	}

	mimeType := strings.ToLower(strings.TrimSpace(contentType))
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	if mimeType == "application/pdf" {
		data, err := pdfToImage(imageData)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadImage, err)
		}
		return data, nil
	}

	if mimeType == "image/png" && !isHEICFormat(imageData) {
		return imageData, nil
	}

	data, err := imageToPNG(imageData, mimeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadImage, err)
	}
	return data, nil
}
