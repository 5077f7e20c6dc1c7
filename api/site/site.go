package site

/* Cart and worksheet endpoints used by the storefront pages. */

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"midnightgrove/cart"
	"midnightgrove/error_messages"
	"midnightgrove/session"
	"midnightgrove/worksheet"
)

// A cart may hold at most this many units in total. Checked at the boundary
// before any state change.
const maxCartQuantity = 50

type Handlers struct {
	store    *cart.Store
	composer *worksheet.Composer
	logger   *log.Logger
}

func NewHandlers(store *cart.Store, composer *worksheet.Composer, logger *log.Logger) *Handlers {
	return &Handlers{store: store, composer: composer, logger: logger}
}

func (h *Handlers) Register(r *mux.Router) {
	r.HandleFunc("/api/items", h.retrieveItemCount).Methods(http.MethodGet)
	r.HandleFunc("/api/retrieve_cart", h.retrieveCart).Methods(http.MethodGet)
	r.HandleFunc("/api/add_to_cart", h.addToCart).Methods(http.MethodPost)
	r.HandleFunc("/api/remove_from_cart", h.removeFromCart).Methods(http.MethodPost)
	r.HandleFunc("/api/update_quantity", h.updateQuantity).Methods(http.MethodPost)
	r.HandleFunc("/api/clear_cart", h.clearCart).Methods(http.MethodPost)
	r.HandleFunc("/api/worksheets", h.listWorksheetStories).Methods(http.MethodGet)
	r.HandleFunc("/api/worksheets/{story}/{grade}", h.retrieveWorksheet).Methods(http.MethodGet)
}

/* Send the number of items in the client's cart */
func (h *Handlers) retrieveItemCount(w http.ResponseWriter, r *http.Request) {
	session_id := session.BeginSession(w, r)
	state := h.store.State(session_id)

	respondJSON(w, r, http.StatusOK, map[string]int{"items": state.ItemCount})
}

/* Send the full cart state */
func (h *Handlers) retrieveCart(w http.ResponseWriter, r *http.Request) {
	session_id := session.BeginSession(w, r)
	state := h.store.State(session_id)

	respondJSON(w, r, http.StatusOK, state)
}

/* Add one unit of a product variant to the client's cart */
func (h *Handlers) addToCart(w http.ResponseWriter, r *http.Request) {
	item, err := validateItem(r)
	if err != nil {
		h.logger.WithError(err).Warn("add_to_cart: rejected item")
		respondError(w, http.StatusBadRequest, error_messages.ErrInvalidItem.Error())
		return
	}

	session_id := session.BeginSession(w, r)
	state := h.store.State(session_id)
	if state.ItemCount >= maxCartQuantity {
		respondError(w, http.StatusBadRequest, error_messages.ErrCartTooLarge.Error())
		return
	}

	next := h.store.Dispatch(session_id, cart.AddItem{Item: *item})
	h.logger.WithFields(log.Fields{
		"product": item.ProductID,
		"variant": item.VariantID,
	}).Info("Added item to cart")

	respondJSON(w, r, http.StatusCreated, next)
}

type lineRequest struct {
	ProductID string `json:"productId"`
	VariantID string `json:"variantId"`
	Quantity  int    `json:"quantity"`
}

/* Remove a product variant line from the client's cart */
func (h *Handlers) removeFromCart(w http.ResponseWriter, r *http.Request) {
	var req lineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, error_messages.ErrInvalidItem.Error())
		return
	}

	session_id := session.BeginSession(w, r)
	next := h.store.Dispatch(session_id, cart.RemoveItem{
		ProductID: req.ProductID,
		VariantID: req.VariantID,
	})

	respondJSON(w, r, http.StatusOK, next)
}

/* Set the exact quantity of a line; zero or less removes it */
func (h *Handlers) updateQuantity(w http.ResponseWriter, r *http.Request) {
	var req lineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, error_messages.ErrInvalidItem.Error())
		return
	}
	if req.Quantity > maxCartQuantity {
		respondError(w, http.StatusBadRequest, error_messages.ErrCartTooLarge.Error())
		return
	}

	session_id := session.BeginSession(w, r)
	next := h.store.Dispatch(session_id, cart.UpdateQuantity{
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Quantity:  req.Quantity,
	})

	respondJSON(w, r, http.StatusOK, next)
}

func (h *Handlers) clearCart(w http.ResponseWriter, r *http.Request) {
	session_id := session.BeginSession(w, r)
	next := h.store.Dispatch(session_id, cart.ClearCart{})

	respondJSON(w, r, http.StatusOK, next)
}

/* Send the list of stories with worksheets */
func (h *Handlers) listWorksheetStories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string][]string{"stories": h.composer.Stories()})
}

/* Compose and send the worksheet for one story and grade */
func (h *Handlers) retrieveWorksheet(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	grade, err := strconv.Atoi(vars["grade"])
	if err != nil || !worksheet.Grade(grade).Valid() {
		respondError(w, http.StatusBadRequest, error_messages.ErrUnknownGrade.Error())
		return
	}

	sheet, err := h.composer.Compose(vars["story"], worksheet.Grade(grade))
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, r, http.StatusOK, sheet)
}

/* Decode the JSON body and make sure the item describes a real, purchasable
 * line before it touches the cart. */
func validateItem(r *http.Request) (*cart.CartItem, error) {
	var item cart.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		return nil, err
	}

	if item.ProductID == "" || item.VariantID == "" || item.Title == "" || item.Price < 0 {
		return nil, error_messages.ErrInvalidItem
	}
	return &item, nil
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "encoding failed")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-CSRF-Token", csrf.Token(r))
	w.WriteHeader(status)
	w.Write(body)
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
