package constant

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusRAC       BookingStatus = "RAC"
	BookingStatusWaitlist  BookingStatus = "WL"
)

type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
	PaymentStatusPending  PaymentStatus = "PENDING"
)

type PaymentRecordStatus string

const (
	PaymentRecordSuccess  PaymentRecordStatus = "SUCCESS"
	PaymentRecordFailed   PaymentRecordStatus = "FAILED"
	PaymentRecordRefunded PaymentRecordStatus = "REFUNDED"
	PaymentRecordPending  PaymentRecordStatus = "PENDING"
)

const (
	PaymentProviderTest = "TEST"
	DefaultCurrency     = "INR"

	// TravelDateLayout is the wire format for travel dates.
	TravelDateLayout = "2006-01-02"
)

type contextKey string

// UserIDKey carries the authenticated user id in request contexts.
const UserIDKey contextKey = "user_id"

// ActorKey caches the resolved caller once a middleware has loaded the account.
const ActorKey contextKey = "actor"
