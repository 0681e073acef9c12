package handle

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"design-evaluator/api/internal/evaluate"
	"design-evaluator/api/internal/util"
)

// Analyze handles POST /analyze: one design image, either as multipart field
// "file" or as a JSON body with a base64 "image_data" payload.
func (h *Handle) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Detail: "POST only"})
		return
	}

	var img evaluate.Image
	var err error
	if isJSONRequest(r) {
		var req imageRequest
		if req, err = h.readImageJSON(w, r); err == nil {
			img, err = decodeImageData("image_data", req.ImageData)
		}
	} else {
		img, err = h.readImageField(w, r, "file")
	}
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.AnalyzeTimeout)
	defer cancel()

	out, err := h.ev.Analyze(ctx, img)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

type urlRequest struct {
	URL           string `json:"url"`
	ComparisonURL string `json:"comparison_url"`
}

// imageRequest is the JSON body variant of the upload endpoints: images as
// base64 strings or data URLs instead of multipart fields.
type imageRequest struct {
	ImageData       string `json:"image_data"`
	ComparisonImage string `json:"comparison_image"`
}

func isJSONRequest(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

func (h *Handle) readImageJSON(w http.ResponseWriter, r *http.Request) (imageRequest, error) {
	// Base64 expands the payload by a third; double covers two images.
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes*2+1<<20)

	var req imageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return imageRequest{}, evaluate.NewError(evaluate.KindInvalidInput, "bad json body", err)
	}
	return req, nil
}

// decodeImageData turns a base64 or data-URL payload into an Image. The
// data-URL MIME hint wins; otherwise the type is sniffed from the bytes.
func decodeImageData(field, payload string) (evaluate.Image, error) {
	if strings.TrimSpace(payload) == "" {
		return evaluate.Image{}, evaluate.NewError(evaluate.KindInvalidInput,
			field+" is required", nil)
	}
	data, hint, err := util.DecodeBase64MaybeDataURL(payload)
	if err != nil {
		return evaluate.Image{}, evaluate.NewError(evaluate.KindInvalidInput,
			field+" is not valid base64", err)
	}
	mime := hint
	if mime == "" {
		mime = util.SniffMimeHTTP(data)
	}
	return evaluate.Image{Data: data, MIME: mime}, nil
}

// AnalyzeURL handles POST /analyze-url: captures a screenshot of the page
// and feeds it through the same analysis path as an upload.
func (h *Handle) AnalyzeURL(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Detail: "POST only"})
		return
	}

	var req urlRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, evaluate.NewError(evaluate.KindInvalidInput, "bad json body", err))
		return
	}
	if strings.TrimSpace(req.URL) == "" {
		h.writeError(w, r, evaluate.NewError(evaluate.KindInvalidInput, "url is required", nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.URLAnalyzeTimeout)
	defer cancel()

	shot, err := h.capt.Screenshot(ctx, req.URL)
	if err != nil {
		h.writeError(w, r, evaluate.NewError(evaluate.KindUnreachableURL,
			"failed to capture screenshot of the url", err))
		return
	}

	out, err := h.ev.Analyze(ctx, evaluate.Image{Data: shot, MIME: "image/png"})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// readImageField reads one bounded multipart image field into an Image.
func (h *Handle) readImageField(w http.ResponseWriter, r *http.Request, field string) (evaluate.Image, error) {
	// Bound the body before parsing; a decent margin covers multipart framing.
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes+1<<20)

	file, header, err := r.FormFile(field)
	if err != nil {
		return evaluate.Image{}, evaluate.NewError(evaluate.KindInvalidInput,
			"missing or unreadable file field "+field, err)
	}
	defer file.Close()

	data, err := readBounded(file, h.cfg.MaxUploadBytes)
	if err != nil {
		return evaluate.Image{}, evaluate.NewError(evaluate.KindInvalidInput,
			"file "+field+" exceeds the upload limit", err)
	}
	return evaluate.Image{Data: data, MIME: header.Header.Get("Content-Type")}, nil
}

func readBounded(f multipart.File, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, io.ErrShortBuffer
	}
	return data, nil
}
