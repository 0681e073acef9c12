package handle

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"design-evaluator/api/internal/evaluate"
)

// Compare handles POST /compare: two design images as multipart fields
// "design_a" and "design_b", or as a JSON body with base64 "image_data" and
// "comparison_image" payloads.
func (h *Handle) Compare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Detail: "POST only"})
		return
	}

	var imgA, imgB evaluate.Image
	var err error
	if isJSONRequest(r) {
		var req imageRequest
		if req, err = h.readImageJSON(w, r); err == nil {
			if imgA, err = decodeImageData("image_data", req.ImageData); err == nil {
				imgB, err = decodeImageData("comparison_image", req.ComparisonImage)
			}
		}
		if err != nil {
			h.writeError(w, r, err)
			return
		}
	} else {
		if imgA, err = h.readImageField(w, r, "design_a"); err != nil {
			h.writeError(w, r, err)
			return
		}
		if imgB, err = h.readImageField(w, r, "design_b"); err != nil {
			h.writeError(w, r, err)
			return
		}
	}

	// Both evaluations run concurrently, so the budget is one analysis, not two.
	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.AnalyzeTimeout)
	defer cancel()

	out, err := h.ev.Compare(ctx, imgA, imgB)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// CompareURLs handles POST /compare-urls: captures both pages concurrently,
// then compares the screenshots.
func (h *Handle) CompareURLs(w http.ResponseWriter, r *http.Request) {
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
	if strings.TrimSpace(req.ComparisonURL) == "" {
		h.writeError(w, r, evaluate.NewError(evaluate.KindInvalidInput,
			"comparison_url is required for url comparison", nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.URLAnalyzeTimeout)
	defer cancel()

	var shotA, shotB []byte
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		shotA, err = h.capt.Screenshot(gctx, req.URL)
		return err
	})
	g.Go(func() error {
		var err error
		shotB, err = h.capt.Screenshot(gctx, req.ComparisonURL)
		return err
	})
	if err := g.Wait(); err != nil {
		h.writeError(w, r, evaluate.NewError(evaluate.KindUnreachableURL,
			"failed to capture screenshot of one of the urls", err))
		return
	}

	out, err := h.ev.Compare(ctx,
		evaluate.Image{Data: shotA, MIME: "image/png"},
		evaluate.Image{Data: shotB, MIME: "image/png"},
	)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
