package handler

import (
	"log"
	"net/http"
	"time"

	"sienna-watch/internal/render"
	"sienna-watch/internal/service"
	"sienna-watch/pkg/apierror"
	"sienna-watch/pkg/response"
)

// ListingHandler serves the inventory page and applies mark/remove actions.
type ListingHandler struct {
	listings *service.ListingService
}

// NewListingHandler creates a new listing handler.
func NewListingHandler(listings *service.ListingService) *ListingHandler {
	return &ListingHandler{listings: listings}
}

// Index handles GET / and renders the current filtered view. The view is
// recomputed on every request so mutations show up immediately.
func (h *ListingHandler) Index(w http.ResponseWriter, r *http.Request) {
	records, _, err := h.listings.Views(r.Context())
	if err != nil {
		log.Printf("Load views failed: %v", err)
		response.Error(w, apierror.InternalError("failed to load inventory"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.Index(w, render.PageData{Vehicles: records, GeneratedAt: time.Now()}); err != nil {
		log.Printf("Render failed: %v", err)
	}
}

// Mutate handles POST / with a single markVin or removeVin form field.
// Unknown or malformed requests are a no-op; every request ends in a redirect
// back to the page, carrying an optional anchor fragment.
func (h *ListingHandler) Mutate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err == nil {
		switch {
		case r.PostFormValue("removeVin") != "":
			vin := r.PostFormValue("removeVin")
			log.Printf("Removing VIN: %s", vin)
			if err := h.listings.Remove(r.Context(), vin); err != nil {
				log.Printf("Remove %s failed: %v", vin, err)
				response.Error(w, apierror.InternalError("failed to update listing state"))
				return
			}
		case r.PostFormValue("markVin") != "":
			vin := r.PostFormValue("markVin")
			log.Printf("Marking VIN: %s", vin)
			if err := h.listings.Mark(r.Context(), vin); err != nil {
				log.Printf("Mark %s failed: %v", vin, err)
				response.Error(w, apierror.InternalError("failed to update listing state"))
				return
			}
		}
	}

	target := "/"
	if anchor := r.URL.Query().Get("anchor"); anchor != "" {
		target += "#" + anchor
	}
	http.Redirect(w, r, target, http.StatusMovedPermanently)
}
