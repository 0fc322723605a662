package matcher

import (
	"strings"

	"github.com/gcordner/chargeguard/internal/model"
)

// Reason identifies which comparison produced a match.
type Reason string

const (
	ReasonBillingName     Reason = "billing name"
	ReasonBillingAddress  Reason = "billing address"
	ReasonBillingEmail    Reason = "billing email"
	ReasonBillingPhone    Reason = "billing phone"
	ReasonShippingName    Reason = "shipping name"
	ReasonShippingAddress Reason = "shipping address"
	ReasonShippingEmail   Reason = "shipping email"
	ReasonShippingPhone   Reason = "shipping phone"
)

// Result is the outcome of a single evaluation. The zero value means no match.
type Result struct {
	Matched bool
	Reason  Reason
	EntryID string
}

// Evaluate compares the order's billing and shipping contact data against
// every non-suppressed entry in stored order. For each entry the comparisons
// run in a fixed order (billing name, address, email, phone, then the same
// four for shipping) and evaluation stops entirely at the first hit, so the
// reported reason is always the first comparison that matched.
//
// Phones are compared digits-only, everything else case-insensitively after
// trimming. An entry field that is blank after normalization never matches:
// shipping email is blank on almost every order, so blank-equals-blank would
// put every such order on hold.
func Evaluate(order *model.OrderContact, entries []*model.Entry) Result {
	if order == nil || len(entries) == 0 {
		return Result{}
	}

	billingName := order.Billing.FirstName + " " + order.Billing.LastName
	shippingName := order.Shipping.FirstName + " " + order.Shipping.LastName
	billingPhone := digits(order.Billing.Phone)
	shippingPhone := digits(order.Shipping.Phone)

	for _, e := range entries {
		if e.Disabled {
			continue
		}

		// The full name is concatenated before comparison, exactly like the
		// per-field values. First and last names are never compared apart.
		entryName := e.FirstName + " " + e.LastName
		entryPhone := digits(e.Phone)

		switch {
		case fieldEqual(billingName, entryName):
			return Result{Matched: true, Reason: ReasonBillingName, EntryID: e.ID}
		case fieldEqual(order.Billing.AddressLine1, e.StreetAddress):
			return Result{Matched: true, Reason: ReasonBillingAddress, EntryID: e.ID}
		case fieldEqual(order.Billing.Email, e.Email):
			return Result{Matched: true, Reason: ReasonBillingEmail, EntryID: e.ID}
		case phoneEqual(billingPhone, entryPhone):
			return Result{Matched: true, Reason: ReasonBillingPhone, EntryID: e.ID}
		case fieldEqual(shippingName, entryName):
			return Result{Matched: true, Reason: ReasonShippingName, EntryID: e.ID}
		case fieldEqual(order.Shipping.AddressLine1, e.StreetAddress):
			return Result{Matched: true, Reason: ReasonShippingAddress, EntryID: e.ID}
		case fieldEqual(order.Shipping.Email, e.Email):
			return Result{Matched: true, Reason: ReasonShippingEmail, EntryID: e.ID}
		case phoneEqual(shippingPhone, entryPhone):
			return Result{Matched: true, Reason: ReasonShippingPhone, EntryID: e.ID}
		}
	}

	return Result{}
}

// fieldEqual reports whether an order field matches an entry field. The
// comparison is exact (no partial or fuzzy matching), case-insensitive and
// ignores surrounding whitespace. Blank entry fields never match.
func fieldEqual(orderField, entryField string) bool {
	entryField = strings.TrimSpace(entryField)
	if entryField == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(orderField), entryField)
}

// phoneEqual compares two already digit-normalized phone numbers.
func phoneEqual(orderPhone, entryPhone string) bool {
	if entryPhone == "" {
		return false
	}
	return orderPhone == entryPhone
}

// digits strips every non-digit character, so "(555) 123-4567" and
// "555.123.4567" normalize to the same value.
func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
