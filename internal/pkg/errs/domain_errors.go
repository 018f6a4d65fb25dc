package errs

// Business error taxonomy shared by the command and query use cases.
// Each kind is a sentinel; use-case code returns Mark(cause, ErrX) so callers
// match with errs.Is and logs keep the cause.
var (
	ErrUserNotFound     = New("user not found")
	ErrProductNotFound  = New("product not found")
	ErrPurchaseNotFound = New("purchase not found")

	ErrInvalidQuantity         = New("invalid quantity")
	ErrInsufficientStock       = New("insufficient stock")
	ErrRefundNotAllowed        = New("refund not allowed")
	ErrInvalidRefundReason     = New("invalid refund reason")
	ErrInvalidStatusTransition = New("invalid purchase status transition")

	// Persistence unavailable, lock timeouts, retry exhaustion. Safe for the caller to retry.
	ErrInfrastructure = New("infrastructure failure")
)

var businessErrors = []error{
	ErrUserNotFound,
	ErrProductNotFound,
	ErrPurchaseNotFound,
	ErrInvalidQuantity,
	ErrInsufficientStock,
	ErrRefundNotAllowed,
	ErrInvalidRefundReason,
	ErrInvalidStatusTransition,
}

func IsBusiness(err error) bool {
	return err != nil && IsAny(err, businessErrors...)
}

// AsInfrastructure keeps business errors untouched and marks everything else
// as ErrInfrastructure.
func AsInfrastructure(err error) error {
	if err == nil || IsBusiness(err) || IsAny(err, ErrInfrastructure) {
		return err
	}
	return Mark(err, ErrInfrastructure)
}

var codes = []struct {
	err  error
	code string
}{
	{ErrUserNotFound, "USER_NOT_FOUND"},
	{ErrProductNotFound, "PRODUCT_NOT_FOUND"},
	{ErrPurchaseNotFound, "PURCHASE_NOT_FOUND"},
	{ErrInvalidQuantity, "INVALID_QUANTITY"},
	{ErrInsufficientStock, "INSUFFICIENT_STOCK"},
	{ErrRefundNotAllowed, "REFUND_NOT_ALLOWED"},
	{ErrInvalidRefundReason, "INVALID_REFUND_REASON"},
	{ErrInvalidStatusTransition, "INVALID_STATUS_TRANSITION"},
	{ErrInfrastructure, "INFRASTRUCTURE"},
}

// Code returns a stable identifier for the first known kind in err, "OK" for
// nil and "INTERNAL" for anything unclassified.
func Code(err error) string {
	if err == nil {
		return "OK"
	}
	for _, c := range codes {
		if Is(err, c.err) {
			return c.code
		}
	}
	return "INTERNAL"
}
