// package plan holds the trip entry records the rest of tripline computes
// over, along with the ways to load them: a Postgres store and a YAML file
// loader. Records are plain data; all timeline semantics live downstream.
package plan

import "time"

// Window is a trip's declared date window. Both values are calendar-day
// values; only their date components are meaningful.
type Window struct {
	Start time.Time `json:"start" yaml:"start" db:"start_date"`
	End   time.Time `json:"end" yaml:"end" db:"end_date"`
}

// Trip is the top-level record entries hang off of.
type Trip struct {
	ID      string   `json:"id" yaml:"id" db:"id"`
	Name    string   `json:"name" yaml:"name" db:"name"`
	Members []string `json:"members" yaml:"members"`
	Window  *Window  `json:"window,omitempty" yaml:"window,omitempty"`
}

// Flight has two clock-precise instants.
type Flight struct {
	ID           string    `json:"id" yaml:"id" db:"id"`
	Airline      string    `json:"airline" yaml:"airline" db:"airline"`
	FlightNumber string    `json:"flight_number" yaml:"flight_number" db:"flight_number"`
	Departure    time.Time `json:"departure" yaml:"departure" db:"departure"`
	Arrival      time.Time `json:"arrival" yaml:"arrival" db:"arrival"`
	Cost         float64   `json:"cost" yaml:"cost" db:"cost"`
	PaidBy       string    `json:"paid_by" yaml:"paid_by" db:"paid_by"`
	SplitWith    []string  `json:"split_with,omitempty" yaml:"split_with,omitempty"`
}

// Lodging spans whole days between check-in and check-out.
type Lodging struct {
	ID        string    `json:"id" yaml:"id" db:"id"`
	Name      string    `json:"name" yaml:"name" db:"name"`
	CheckIn   time.Time `json:"check_in" yaml:"check_in" db:"check_in"`
	CheckOut  time.Time `json:"check_out" yaml:"check_out" db:"check_out"`
	Cost      float64   `json:"cost" yaml:"cost" db:"cost"`
	PaidBy    string    `json:"paid_by" yaml:"paid_by" db:"paid_by"`
	SplitWith []string  `json:"split_with,omitempty" yaml:"split_with,omitempty"`
}

// CarRental spans whole days between pickup and dropoff.
type CarRental struct {
	ID        string    `json:"id" yaml:"id" db:"id"`
	Agency    string    `json:"agency" yaml:"agency" db:"agency"`
	Pickup    time.Time `json:"pickup" yaml:"pickup" db:"pickup"`
	Dropoff   time.Time `json:"dropoff" yaml:"dropoff" db:"dropoff"`
	Cost      float64   `json:"cost" yaml:"cost" db:"cost"`
	PaidBy    string    `json:"paid_by" yaml:"paid_by" db:"paid_by"`
	SplitWith []string  `json:"split_with,omitempty" yaml:"split_with,omitempty"`
}

// Restaurant is a reservation: one date plus an optional free-text
// time-of-day string like "7pm" or "19:30". A nil Date means the
// reservation is still an idea and has no place on a timeline.
type Restaurant struct {
	ID        string     `json:"id" yaml:"id" db:"id"`
	Name      string     `json:"name" yaml:"name" db:"name"`
	Date      *time.Time `json:"date,omitempty" yaml:"date,omitempty" db:"date"`
	TimeOfDay string     `json:"time_of_day" yaml:"time_of_day" db:"time_of_day"`
	Cost      float64    `json:"cost" yaml:"cost" db:"cost"`
	PaidBy    string     `json:"paid_by" yaml:"paid_by" db:"paid_by"`
	SplitWith []string   `json:"split_with,omitempty" yaml:"split_with,omitempty"`
}

// Activity is one date plus optional free-text start and end times.
type Activity struct {
	ID        string     `json:"id" yaml:"id" db:"id"`
	Name      string     `json:"name" yaml:"name" db:"name"`
	Date      *time.Time `json:"date,omitempty" yaml:"date,omitempty" db:"date"`
	StartTime string     `json:"start_time" yaml:"start_time" db:"start_time"`
	EndTime   string     `json:"end_time" yaml:"end_time" db:"end_time"`
	Cost      float64    `json:"cost" yaml:"cost" db:"cost"`
	PaidBy    string     `json:"paid_by" yaml:"paid_by" db:"paid_by"`
	SplitWith []string   `json:"split_with,omitempty" yaml:"split_with,omitempty"`
}

// Entries is everything scheduled (or merely dreamed up) for one trip.
type Entries struct {
	Flights     []Flight     `json:"flights" yaml:"flights"`
	Lodgings    []Lodging    `json:"lodgings" yaml:"lodgings"`
	CarRentals  []CarRental  `json:"car_rentals" yaml:"car_rentals"`
	Restaurants []Restaurant `json:"restaurants" yaml:"restaurants"`
	Activities  []Activity   `json:"activities" yaml:"activities"`
}

// Len reports the total record count across all categories.
func (e Entries) Len() int {
	return len(e.Flights) + len(e.Lodgings) + len(e.CarRentals) +
		len(e.Restaurants) + len(e.Activities)
}
