package bigint

import (
	"database/sql/driver"
	"fmt"
	"strconv"
)

// Value implements the [driver.Valuer] interface.
// The integer is stored as its decimal text.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (d Int) Value() (driver.Value, error) {
	return d.String(), nil
}

// Value implements the [driver.Valuer] interface.
// The rational is stored as its "num/den" text.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (r Rat) Value() (driver.Value, error) {
	return r.String(), nil
}

// NullInt represents an integer that can be null.
// Its zero value is null.
// NullInt is not thread-safe.
type NullInt struct {
	Int   Int
	Valid bool
}

// Scan implements the [sql.Scanner] interface.
// It accepts nil, int64, string and []byte values.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullInt) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case nil:
		n.Int, n.Valid = Int{}, false
		return nil
	case int64:
		n.Int = NewInt(value)
	case string:
		n.Int, err = Parse(value)
	case []byte:
		n.Int, err = Parse(string(value))
	default:
		return fmt.Errorf("failed to convert from %T to %T", value, Int{})
	}
	n.Valid = err == nil
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullInt) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Int.Value()
}

// NullRat represents a rational that can be null.
// Its zero value is null.
// NullRat is not thread-safe.
type NullRat struct {
	Rat   Rat
	Valid bool
}

// Scan implements the [sql.Scanner] interface.
// It accepts nil, int64, float64, string and []byte values.
// A float64 is converted through its shortest decimal representation.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullRat) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case nil:
		n.Rat, n.Valid = Rat{}, false
		return nil
	case int64:
		n.Rat = IntRat(NewInt(value))
	case float64:
		n.Rat, err = ParseRat(strconv.FormatFloat(value, 'f', -1, 64))
	case string:
		n.Rat, err = ParseRat(value)
	case []byte:
		n.Rat, err = ParseRat(string(value))
	default:
		return fmt.Errorf("failed to convert from %T to %T", value, Rat{})
	}
	n.Valid = err == nil
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullRat) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Rat.Value()
}
