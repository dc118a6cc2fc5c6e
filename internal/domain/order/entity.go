package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoLines      = errors.New("order must have at least one line")
	ErrInvalidPrice = errors.New("line unit price must be positive")
	ErrInvalidQty   = errors.New("line quantity must be positive")
)

// Orders are append-only: once created, neither the order nor its lines
// change. Unit prices are captured at purchase time so historical orders stay
// stable when catalog prices move.
type Status string

const StatusCompleted Status = "completed"

type Line struct {
	productID      uuid.UUID
	quantity       int32
	unitPriceCents int64
}

func NewLine(productID uuid.UUID, quantity int32, unitPriceCents int64) (Line, error) {
	if quantity <= 0 {
		return Line{}, ErrInvalidQty
	}
	if unitPriceCents <= 0 {
		return Line{}, ErrInvalidPrice
	}
	return Line{
		productID:      productID,
		quantity:       quantity,
		unitPriceCents: unitPriceCents,
	}, nil
}

func (l Line) ProductID() uuid.UUID  { return l.productID }
func (l Line) Quantity() int32       { return l.quantity }
func (l Line) UnitPriceCents() int64 { return l.unitPriceCents }

func (l Line) SubtotalCents() int64 {
	return int64(l.quantity) * l.unitPriceCents
}

type Order struct {
	id         uuid.UUID
	userID     uuid.UUID
	lines      []Line
	totalCents int64
	status     Status
	createdAt  time.Time
}

func NewOrder(userID uuid.UUID, lines []Line) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}

	var total int64
	for _, l := range lines {
		if l.unitPriceCents <= 0 {
			return nil, ErrInvalidPrice
		}
		total += l.SubtotalCents()
	}

	return &Order{
		id:         uuid.New(),
		userID:     userID,
		lines:      lines,
		totalCents: total,
		status:     StatusCompleted,
	}, nil
}

func (o *Order) ID() uuid.UUID        { return o.id }
func (o *Order) UserID() uuid.UUID    { return o.userID }
func (o *Order) Lines() []Line        { return o.lines }
func (o *Order) TotalCents() int64    { return o.totalCents }
func (o *Order) Status() Status       { return o.status }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
