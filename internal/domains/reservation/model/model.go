package model

import (
	"errors"
	"fmt"
	"math"
	"time"

	bookingModel "nirvanica/internal/domains/booking/model"
	roomModel "nirvanica/internal/domains/room/model"
	"nirvanica/shared"
	"nirvanica/shared/timezone"
)

const (
	EntityName = "reservation"

	millisPerDay = 86_400_000

	MinTotalRooms = 1
)

var (
	ErrCheckInPast           = errors.New("check-in date cannot be in the past")
	ErrCheckOutNotAfterStart = errors.New("check-out date must be after the check-in date")
	ErrUnknownRoomType       = errors.New("unknown room type")
	ErrCounterOutOfBounds    = errors.New("counter value out of bounds")
)

// RoomLimitError rejects a room-quantity increase that would push the
// selection past the declared total-room count. It is a warning surfaced to
// the guest, not a hard failure.
type RoomLimitError struct {
	TotalRooms int
}

func (e *RoomLimitError) Error() string {
	return fmt.Sprintf(
		"you can only select %d room%s in total, reduce other room selections first",
		e.TotalRooms,
		shared.Plural(e.TotalRooms),
	)
}

type GuestKind string

const (
	GuestAdults   GuestKind = "adults"
	GuestChildren GuestKind = "children"
	GuestElders   GuestKind = "elders"
	GuestInfants  GuestKind = "infants"
)

// GuestKinds in display order.
var GuestKinds = []GuestKind{GuestAdults, GuestChildren, GuestElders, GuestInfants}

// CounterBounds describes one bounded stepper.
type CounterBounds struct {
	Min     int
	Max     int
	Default int
}

var guestBounds = map[GuestKind]CounterBounds{
	GuestAdults:   {Min: 1, Max: 10, Default: 2},
	GuestChildren: {Min: 0, Max: 8},
	GuestElders:   {Min: 0, Max: 6},
	GuestInfants:  {Min: 0, Max: 4},
}

func BoundsFor(kind GuestKind) CounterBounds {
	return guestBounds[kind]
}

// Form is the booking form state machine: date range, guest steppers, the
// total-room stepper and per-type room quantities. All counters are bounded;
// an action that would leave the bound is rejected and the state is left
// unchanged. A Form belongs to a single guest session and is not safe for
// concurrent use.
type Form struct {
	roomTypes  []roomModel.RoomType
	maxRooms   int
	checkIn    time.Time
	checkOut   time.Time
	guests     map[GuestKind]int
	totalRooms int
	quantities map[string]int
}

func NewForm(roomTypes []roomModel.RoomType, maxRooms int) *Form {
	guests := make(map[GuestKind]int, len(GuestKinds))
	for _, kind := range GuestKinds {
		guests[kind] = guestBounds[kind].Default
	}

	return &Form{
		roomTypes:  roomTypes,
		maxRooms:   maxRooms,
		guests:     guests,
		totalRooms: MinTotalRooms,
		quantities: make(map[string]int, len(roomTypes)),
	}
}

func (f *Form) CheckIn() time.Time  { return f.checkIn }
func (f *Form) CheckOut() time.Time { return f.checkOut }

// MinCheckIn is the earliest selectable check-in date: tomorrow.
func (f *Form) MinCheckIn() time.Time {
	return timezone.Today().AddDate(0, 0, 1)
}

// MinCheckOut is pinned to the day after check-in once one is chosen.
func (f *Form) MinCheckOut() time.Time {
	if f.checkIn.IsZero() {
		return f.MinCheckIn().AddDate(0, 0, 1)
	}

	return f.checkIn.AddDate(0, 0, 1)
}

// SetCheckIn accepts today or later. When the stay would collapse to zero
// nights the check-out date auto-advances to the following day.
func (f *Form) SetCheckIn(date time.Time) error {
	date = midnight(date)
	if date.Before(timezone.Today()) {
		return ErrCheckInPast
	}

	f.checkIn = date
	if !f.checkOut.IsZero() && !f.checkOut.After(f.checkIn) {
		f.checkOut = f.checkIn.AddDate(0, 0, 1)
	}

	return nil
}

func (f *Form) SetCheckOut(date time.Time) error {
	date = midnight(date)
	if !f.checkIn.IsZero() && !date.After(f.checkIn) {
		return ErrCheckOutNotAfterStart
	}

	f.checkOut = date

	return nil
}

// Nights is ceil of the stay length in days, 0 until both dates are set.
func (f *Form) Nights() int {
	if f.checkIn.IsZero() || f.checkOut.IsZero() {
		return 0
	}

	millis := f.checkOut.Sub(f.checkIn).Milliseconds()
	if millis <= 0 {
		return 0
	}

	return int(math.Ceil(float64(millis) / millisPerDay))
}

func (f *Form) GuestCount(kind GuestKind) int {
	return f.guests[kind]
}

func (f *Form) TotalGuests() int {
	total := 0
	for _, kind := range GuestKinds {
		total += f.guests[kind]
	}

	return total
}

func (f *Form) CanIncrementGuest(kind GuestKind) bool {
	return f.guests[kind] < guestBounds[kind].Max
}

func (f *Form) CanDecrementGuest(kind GuestKind) bool {
	return f.guests[kind] > guestBounds[kind].Min
}

// IncrementGuest reports whether the step was applied.
func (f *Form) IncrementGuest(kind GuestKind) bool {
	if !f.CanIncrementGuest(kind) {
		return false
	}

	f.guests[kind]++

	return true
}

func (f *Form) DecrementGuest(kind GuestKind) bool {
	if !f.CanDecrementGuest(kind) {
		return false
	}

	f.guests[kind]--

	return true
}

func (f *Form) SetGuestCount(kind GuestKind, count int) error {
	bounds, ok := guestBounds[kind]
	if !ok {
		return ErrCounterOutOfBounds
	}
	if count < bounds.Min || count > bounds.Max {
		return ErrCounterOutOfBounds
	}

	f.guests[kind] = count

	return nil
}

func (f *Form) TotalRooms() int {
	return f.totalRooms
}

func (f *Form) CanIncrementTotalRooms() bool { return f.totalRooms < f.maxRooms }
func (f *Form) CanDecrementTotalRooms() bool { return f.totalRooms > MinTotalRooms }

// IncrementTotalRooms raises the declared room count. Any change to the
// total resets every room-type quantity and forces re-selection.
func (f *Form) IncrementTotalRooms() bool {
	if !f.CanIncrementTotalRooms() {
		return false
	}

	f.totalRooms++
	f.resetQuantities()

	return true
}

func (f *Form) DecrementTotalRooms() bool {
	if !f.CanDecrementTotalRooms() {
		return false
	}

	f.totalRooms--
	f.resetQuantities()

	return true
}

func (f *Form) SetTotalRooms(count int) error {
	if count < MinTotalRooms || count > f.maxRooms {
		return ErrCounterOutOfBounds
	}

	if count != f.totalRooms {
		f.totalRooms = count
		f.resetQuantities()
	}

	return nil
}

func (f *Form) RoomQuantity(typeID string) int {
	return f.quantities[typeID]
}

func (f *Form) SelectedRoomCount() int {
	total := 0
	for _, quantity := range f.quantities {
		total += quantity
	}

	return total
}

func (f *Form) CanIncrementRoom(typeID string) bool {
	roomType, ok := f.findType(typeID)
	if !ok {
		return false
	}

	return f.quantities[typeID] < roomType.MaxQuantity && f.SelectedRoomCount() < f.totalRooms
}

func (f *Form) CanDecrementRoom(typeID string) bool {
	return f.quantities[typeID] > 0
}

// IncrementRoom adds one unit of the given type. Stepping past the type's
// own cap is silently bounded like any other stepper; stepping past the
// declared total-room count is rejected with a RoomLimitError so the caller
// can surface the warning.
func (f *Form) IncrementRoom(typeID string) error {
	roomType, ok := f.findType(typeID)
	if !ok {
		return ErrUnknownRoomType
	}

	if f.quantities[typeID] >= roomType.MaxQuantity {
		return ErrCounterOutOfBounds
	}

	if f.SelectedRoomCount() >= f.totalRooms {
		return &RoomLimitError{TotalRooms: f.totalRooms}
	}

	f.quantities[typeID]++

	return nil
}

func (f *Form) DecrementRoom(typeID string) bool {
	if !f.CanDecrementRoom(typeID) {
		return false
	}

	f.quantities[typeID]--

	return true
}

// SelectedRooms returns the non-zero selections in catalog order, with the
// nightly rate locked onto each line.
func (f *Form) SelectedRooms() []bookingModel.RoomSelection {
	selections := []bookingModel.RoomSelection{}
	for _, roomType := range f.roomTypes {
		quantity := f.quantities[roomType.ID]
		if quantity == 0 {
			continue
		}

		selections = append(selections, bookingModel.RoomSelection{
			TypeID:   roomType.ID,
			TypeName: roomType.Name,
			Quantity: quantity,
			Price:    roomType.NightlyRate,
		})
	}

	return selections
}

// TotalAmount is the live price: rate x quantity x nights summed over the
// selected types. Zero until dates and at least one room are chosen.
func (f *Form) TotalAmount() float64 {
	nights := f.Nights()
	if nights == 0 {
		return 0
	}

	total := 0.0
	for _, selection := range f.SelectedRooms() {
		total += selection.Price * float64(selection.Quantity) * float64(nights)
	}

	return total
}

// Reset returns the form to its pristine state after a confirmed booking.
func (f *Form) Reset() {
	f.checkIn = time.Time{}
	f.checkOut = time.Time{}
	for _, kind := range GuestKinds {
		f.guests[kind] = guestBounds[kind].Default
	}
	f.totalRooms = MinTotalRooms
	f.resetQuantities()
}

func (f *Form) resetQuantities() {
	f.quantities = make(map[string]int, len(f.roomTypes))
}

func (f *Form) findType(typeID string) (roomModel.RoomType, bool) {
	for _, roomType := range f.roomTypes {
		if roomType.ID == typeID {
			return roomType, true
		}
	}

	return roomModel.RoomType{}, false
}

func midnight(t time.Time) time.Time {
	t = timezone.ToAppTime(t)

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
