package handlers

import (
	"errors"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	errs "github.com/gcordner/chargeguard/internal/errors"
	"github.com/gcordner/chargeguard/internal/model"
	"github.com/gcordner/chargeguard/internal/service"
)

type login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type session struct {
	Token     string `json:"accessToken"`
	ExpiresAt int64  `json:"expiresAt"`
}

// AuthHTTPHandler is http handler for auth endpoint
type AuthHTTPHandler struct {
	authSvc service.AuthService
}

// NewAuthHTTPHandler builds new AuthHTTPHandler
func NewAuthHTTPHandler(authSvc service.AuthService) *AuthHTTPHandler {
	return &AuthHTTPHandler{authSvc: authSvc}
}

// Login logins operator
// @Summary     Login operator
// @Description Verifies provided credentials and signs access token
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       login  body	    login true "Operator credentials"
// @Success     200    {object} session
// @Failure     400    {object} echo.HTTPError
// @Failure     401    {object} echo.HTTPError
// @Router      /api/auth/login [post]
func (h *AuthHTTPHandler) Login(c echo.Context) error {
	var lgn login
	if err := c.Bind(&lgn); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&lgn); err != nil {
		return err
	}

	jwt, err := h.authSvc.Login(lgn.Email, lgn.Password, time.Now().UTC())
	if err != nil {
		var bErr *errs.BusinessErr
		if errors.As(err, &bErr) {
			return echo.NewHTTPError(http.StatusUnauthorized, bErr.Error())
		}
		return err
	}

	return c.JSON(http.StatusOK, &session{
		Token:     jwt.Signed,
		ExpiresAt: jwt.ExpiresAt,
	})
}

type newEntry struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	StreetAddress string `json:"streetAddress"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone"`
	Status        string `json:"status"`
}

type disableEntry struct {
	ID       string `param:"id" validate:"required,uuid"`
	Disabled bool   `json:"disabled"`
}

type deleteEntries struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}

// WatchlistHTTPHandler is http handler for the admin watchlist endpoint
type WatchlistHTTPHandler struct {
	watchlistSvc service.WatchlistService
}

// NewWatchlistHTTPHandler builds new WatchlistHTTPHandler
func NewWatchlistHTTPHandler(watchlistSvc service.WatchlistService) *WatchlistHTTPHandler {
	return &WatchlistHTTPHandler{watchlistSvc: watchlistSvc}
}

// GetAll gets all watchlist entries
// @Summary     Get all watchlist entries
// @Description Returns all entries, sortable by any field
// @Tags        watchlist
// @Security	ApiKeyAuth
// @Produce     json
// @Param       orderby query    string false "Sort field"
// @Param       order   query    string false "asc or desc"
// @Success     200     {array}  model.Entry
// @Failure     500     {object} echo.HTTPError
// @Router      /api/v1/watchlist [get]
// @Router      /api/v2/watchlist [get]
func (h *WatchlistHTTPHandler) GetAll(c echo.Context) error {
	entries, err := h.watchlistSvc.FindAll(c.Request().Context())
	if err != nil {
		return err
	}

	sortEntries(entries, c.QueryParam("orderby"), c.QueryParam("order"))
	return c.JSON(http.StatusOK, entries)
}

// Post appends new watchlist entry
// @Summary     New watchlist entry
// @Description Appends new entry; new entries participate in matching
// @Tags        watchlist
// @Security	ApiKeyAuth
// @Accept		json
// @Produce     json
// @Param 		newEntry body	 newEntry true "Data for new entry"
// @Success     201      {object} model.Entry
// @Failure     400      {object} echo.HTTPError
// @Failure     500      {object} echo.HTTPError
// @Router      /api/v1/watchlist [post]
// @Router      /api/v2/watchlist [post]
func (h *WatchlistHTTPHandler) Post(c echo.Context) error {
	var ne newEntry
	if err := c.Bind(&ne); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&ne); err != nil {
		return err
	}

	entry, err := h.watchlistSvc.Create(c.Request().Context(), &model.Entry{
		FirstName:     ne.FirstName,
		LastName:      ne.LastName,
		StreetAddress: ne.StreetAddress,
		Email:         ne.Email,
		Phone:         ne.Phone,
		Status:        ne.Status,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, entry)
}

// PatchDisable sets the suppression flag of an entry
// @Summary     Suppress/unsuppress entry
// @Description Sets the suppression flag; suppressed entries never match but stay visible
// @Tags        watchlist
// @Security	ApiKeyAuth
// @Accept		json
// @Param       id           path     string       true "Entry guid" Format(uuid)
// @Param 		disableEntry body	  disableEntry true "Suppression flag"
// @Success     204          "Successful status code"
// @Failure     400          {object} echo.HTTPError
// @Failure     500          {object} echo.HTTPError
// @Router      /api/v1/watchlist/{id}/disable [patch]
// @Router      /api/v2/watchlist/{id}/disable [patch]
func (h *WatchlistHTTPHandler) PatchDisable(c echo.Context) error {
	var de disableEntry
	if err := c.Bind(&de); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&de); err != nil {
		return err
	}

	if err := h.watchlistSvc.SetDisabled(c.Request().Context(), de.ID, de.Disabled); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Delete removes entries in bulk
// @Summary     Delete watchlist entries
// @Description Deletes the entries with the provided ids; unknown ids are skipped
// @Tags        watchlist
// @Security	ApiKeyAuth
// @Accept		json
// @Param 		deleteEntries body	 deleteEntries true "Entry ids"
// @Success     204           "Successful status code"
// @Failure     400           {object} echo.HTTPError
// @Failure     500           {object} echo.HTTPError
// @Router      /api/v1/watchlist [delete]
// @Router      /api/v2/watchlist [delete]
func (h *WatchlistHTTPHandler) Delete(c echo.Context) error {
	var de deleteEntries
	if err := c.Bind(&de); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&de); err != nil {
		return err
	}

	if err := h.watchlistSvc.DeleteByIDs(c.Request().Context(), de.IDs); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

type orderEvent struct {
	OrderID string `json:"orderId" validate:"required"`
	From    string `json:"from" validate:"required"`
	To      string `json:"to" validate:"required"`
}

type screeningOutcome struct {
	OrderID  string `json:"orderId"`
	Screened bool   `json:"screened"`
	Held     bool   `json:"held"`
	Reason   string `json:"reason,omitempty"`
}

// OrderEventHTTPHandler is http handler for order lifecycle events
type OrderEventHTTPHandler struct {
	screeningSvc service.ScreeningService
}

// NewOrderEventHTTPHandler builds new OrderEventHTTPHandler
func NewOrderEventHTTPHandler(screeningSvc service.ScreeningService) *OrderEventHTTPHandler {
	return &OrderEventHTTPHandler{screeningSvc: screeningSvc}
}

// Post receives an order status transition event
// @Summary     Order lifecycle event
// @Description Screens the order against the watchlist on pending-to-processing transitions
// @Tags        orders
// @Accept      json
// @Produce     json
// @Param       orderEvent body	orderEvent true "Status transition"
// @Success     200        {object} screeningOutcome
// @Failure     400        {object} echo.HTTPError
// @Router      /api/v1/orders/events [post]
func (h *OrderEventHTTPHandler) Post(c echo.Context) error {
	var ev orderEvent
	if err := c.Bind(&ev); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := c.Validate(&ev); err != nil {
		return err
	}

	if ev.From != model.OrderStatusPending || ev.To != model.OrderStatusProcessing {
		return c.JSON(http.StatusOK, &screeningOutcome{OrderID: ev.OrderID})
	}

	res, err := h.screeningSvc.ScreenOrder(c.Request().Context(), ev.OrderID)
	if err != nil {
		// Fail open: a storage or lookup fault must never block the order
		// pipeline, it is logged for operator attention instead.
		logrus.Errorf("screening of order %s failed open - %v", ev.OrderID, err)
		return c.JSON(http.StatusOK, &screeningOutcome{OrderID: ev.OrderID})
	}

	return c.JSON(http.StatusOK, &screeningOutcome{
		OrderID:  ev.OrderID,
		Screened: true,
		Held:     res.Matched,
		Reason:   string(res.Reason),
	})
}

// sortEntries orders the list for display. Sorting is a presentation
// concern only - matching iterates entries in stored order.
func sortEntries(entries []*model.Entry, orderby string, order string) {
	less := entryLess(orderby)
	desc := strings.EqualFold(order, "desc")

	sort.SliceStable(entries, func(i, j int) bool {
		if desc {
			return less(entries[j], entries[i])
		}
		return less(entries[i], entries[j])
	})
}

func entryLess(orderby string) func(a, b *model.Entry) bool {
	switch orderby {
	case "lastName":
		return func(a, b *model.Entry) bool { return textLess(a.LastName, b.LastName) }
	case "streetAddress":
		return func(a, b *model.Entry) bool { return textLess(a.StreetAddress, b.StreetAddress) }
	case "email":
		return func(a, b *model.Entry) bool { return textLess(a.Email, b.Email) }
	case "phone":
		return func(a, b *model.Entry) bool { return textLess(a.Phone, b.Phone) }
	case "status":
		return func(a, b *model.Entry) bool { return textLess(a.Status, b.Status) }
	case "disabled":
		return func(a, b *model.Entry) bool { return !a.Disabled && b.Disabled }
	default:
		return func(a, b *model.Entry) bool { return textLess(a.FirstName, b.FirstName) }
	}
}

func textLess(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}
