package plan

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// ErrTripNotFound is returned when a trip ID matches nothing.
var ErrTripNotFound = errors.New("trip not found")

// Config is the store's environment-driven configuration.
type Config struct {
	DatabaseURL  string `env:"DATABASE_URL" envDefault:"postgres://localhost:5432/tripline?sslmode=disable"`
	MaxOpenConns int    `env:"DATABASE_MAX_OPEN_CONNS" envDefault:"8"`
}

// Option mutates how the store is opened.
type Option func(*Config)

// WithDatabaseURL overrides the DATABASE_URL environment variable.
func WithDatabaseURL(url string) Option {
	return func(c *Config) {
		c.DatabaseURL = url
	}
}

// Store retrieves trip entry records from Postgres.
type Store struct {
	db  *sqlx.DB
	log zerolog.Logger
}

// Open parses configuration from the environment and connects to the
// database.
func Open(log zerolog.Logger, opts ...Option) (*Store, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse store config: %w", err)
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	db, err := sqlx.Connect("postgres", cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)

	log.Debug().Int("max_open_conns", cfg.MaxOpenConns).Msg("Connected to database")
	return &Store{db: db, log: log}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

type tripRow struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Members   pq.StringArray `db:"members"`
	StartDate sql.NullTime   `db:"start_date"`
	EndDate   sql.NullTime   `db:"end_date"`
}

// Trip loads one trip header record.
func (s *Store) Trip(ctx context.Context, tripID string) (*Trip, error) {
	var row tripRow
	err := s.db.GetContext(ctx, &row,
		`SELECT id, name, members, start_date, end_date FROM trips WHERE id = $1`, tripID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTripNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load trip %q: %w", tripID, err)
	}

	trip := &Trip{
		ID:      row.ID,
		Name:    row.Name,
		Members: row.Members,
	}
	if row.StartDate.Valid && row.EndDate.Valid {
		trip.Window = &Window{Start: row.StartDate.Time, End: row.EndDate.Time}
	}
	return trip, nil
}

type flightRow struct {
	ID           string         `db:"id"`
	Airline      string         `db:"airline"`
	FlightNumber string         `db:"flight_number"`
	Departure    time.Time      `db:"departure"`
	Arrival      time.Time      `db:"arrival"`
	Cost         float64        `db:"cost"`
	PaidBy       sql.NullString `db:"paid_by"`
	SplitWith    pq.StringArray `db:"split_with"`
}

type lodgingRow struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	CheckIn   time.Time      `db:"check_in"`
	CheckOut  time.Time      `db:"check_out"`
	Cost      float64        `db:"cost"`
	PaidBy    sql.NullString `db:"paid_by"`
	SplitWith pq.StringArray `db:"split_with"`
}

type carRentalRow struct {
	ID        string         `db:"id"`
	Agency    string         `db:"agency"`
	Pickup    time.Time      `db:"pickup"`
	Dropoff   time.Time      `db:"dropoff"`
	Cost      float64        `db:"cost"`
	PaidBy    sql.NullString `db:"paid_by"`
	SplitWith pq.StringArray `db:"split_with"`
}

type restaurantRow struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Date      sql.NullTime   `db:"date"`
	TimeOfDay sql.NullString `db:"time_of_day"`
	Cost      float64        `db:"cost"`
	PaidBy    sql.NullString `db:"paid_by"`
	SplitWith pq.StringArray `db:"split_with"`
}

type activityRow struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Date      sql.NullTime   `db:"date"`
	StartTime sql.NullString `db:"start_time"`
	EndTime   sql.NullString `db:"end_time"`
	Cost      float64        `db:"cost"`
	PaidBy    sql.NullString `db:"paid_by"`
	SplitWith pq.StringArray `db:"split_with"`
}

// TripEntries loads every entry record for a trip, one query per category,
// fanned out concurrently.
func (s *Store) TripEntries(ctx context.Context, tripID string) (Entries, error) {
	var (
		entries   Entries
		eg, egCtx = errgroup.WithContext(ctx)
	)

	eg.Go(func() error {
		var rows []flightRow
		err := s.db.SelectContext(egCtx, &rows,
			`SELECT id, airline, flight_number, departure, arrival, cost, paid_by, split_with
			 FROM flights WHERE trip_id = $1 ORDER BY departure`, tripID)
		if err != nil {
			return fmt.Errorf("failed to load flights: %w", err)
		}
		entries.Flights = make([]Flight, len(rows))
		for i, r := range rows {
			entries.Flights[i] = Flight{
				ID: r.ID, Airline: r.Airline, FlightNumber: r.FlightNumber,
				Departure: r.Departure, Arrival: r.Arrival,
				Cost: r.Cost, PaidBy: r.PaidBy.String, SplitWith: r.SplitWith,
			}
		}
		return nil
	})

	eg.Go(func() error {
		var rows []lodgingRow
		err := s.db.SelectContext(egCtx, &rows,
			`SELECT id, name, check_in, check_out, cost, paid_by, split_with
			 FROM lodgings WHERE trip_id = $1 ORDER BY check_in`, tripID)
		if err != nil {
			return fmt.Errorf("failed to load lodgings: %w", err)
		}
		entries.Lodgings = make([]Lodging, len(rows))
		for i, r := range rows {
			entries.Lodgings[i] = Lodging{
				ID: r.ID, Name: r.Name, CheckIn: r.CheckIn, CheckOut: r.CheckOut,
				Cost: r.Cost, PaidBy: r.PaidBy.String, SplitWith: r.SplitWith,
			}
		}
		return nil
	})

	eg.Go(func() error {
		var rows []carRentalRow
		err := s.db.SelectContext(egCtx, &rows,
			`SELECT id, agency, pickup, dropoff, cost, paid_by, split_with
			 FROM car_rentals WHERE trip_id = $1 ORDER BY pickup`, tripID)
		if err != nil {
			return fmt.Errorf("failed to load car rentals: %w", err)
		}
		entries.CarRentals = make([]CarRental, len(rows))
		for i, r := range rows {
			entries.CarRentals[i] = CarRental{
				ID: r.ID, Agency: r.Agency, Pickup: r.Pickup, Dropoff: r.Dropoff,
				Cost: r.Cost, PaidBy: r.PaidBy.String, SplitWith: r.SplitWith,
			}
		}
		return nil
	})

	eg.Go(func() error {
		var rows []restaurantRow
		err := s.db.SelectContext(egCtx, &rows,
			`SELECT id, name, date, time_of_day, cost, paid_by, split_with
			 FROM restaurants WHERE trip_id = $1 ORDER BY date NULLS LAST`, tripID)
		if err != nil {
			return fmt.Errorf("failed to load restaurants: %w", err)
		}
		entries.Restaurants = make([]Restaurant, len(rows))
		for i, r := range rows {
			restaurant := Restaurant{
				ID: r.ID, Name: r.Name, TimeOfDay: r.TimeOfDay.String,
				Cost: r.Cost, PaidBy: r.PaidBy.String, SplitWith: r.SplitWith,
			}
			if r.Date.Valid {
				date := r.Date.Time
				restaurant.Date = &date
			}
			entries.Restaurants[i] = restaurant
		}
		return nil
	})

	eg.Go(func() error {
		var rows []activityRow
		err := s.db.SelectContext(egCtx, &rows,
			`SELECT id, name, date, start_time, end_time, cost, paid_by, split_with
			 FROM activities WHERE trip_id = $1 ORDER BY date NULLS LAST`, tripID)
		if err != nil {
			return fmt.Errorf("failed to load activities: %w", err)
		}
		entries.Activities = make([]Activity, len(rows))
		for i, r := range rows {
			activity := Activity{
				ID: r.ID, Name: r.Name,
				StartTime: r.StartTime.String, EndTime: r.EndTime.String,
				Cost: r.Cost, PaidBy: r.PaidBy.String, SplitWith: r.SplitWith,
			}
			if r.Date.Valid {
				date := r.Date.Time
				activity.Date = &date
			}
			entries.Activities[i] = activity
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return Entries{}, err
	}

	s.log.Debug().
		Str("trip_id", tripID).
		Int("entry_count", entries.Len()).
		Msg("Loaded trip entries")
	return entries, nil
}
